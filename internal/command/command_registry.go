package command

import "sort"

var registry = map[string]Command{}

// RegisterCommand adds a command under its canonical name and all aliases,
// with middlewares applied (first listed is outermost). Called from init()
// in the command group packages.
func RegisterCommand(cmd Command, mws ...Middleware) {
	cmd = ApplyMiddlewares(cmd, mws...)
	registry[cmd.Name()] = cmd
	for _, a := range cmd.Aliases() {
		registry[a] = cmd
	}
}

// Get resolves a canonical name or alias.
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command once, sorted by canonical name.
func All() []Command {
	seen := map[string]bool{}
	var list []Command
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		seen[cmd.Name()] = true
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
