// Package command is the transport-agnostic command core: a command has a
// canonical name, aliases, a declared parameter schema, and Run(*Context).
// The Discord adapters (slash interactions and prefixed text messages) only
// differ in how they build the Context and where the reply goes.
package command

import (
	"github.com/bwmarrin/discordgo"
)

type ParamKind int

const (
	KindInt ParamKind = iota
	KindString
	KindUser
	KindText // free text; greedily joins tokens in text dispatch
)

// Param declares one positional parameter of a command.
type Param struct {
	Name        string
	Description string
	Kind        ParamKind
	Required    bool
}

type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Group() string
	Category() string
	Params() []Param
	Run(ctx *Context) error
}

// SlashProvider lets a command override the auto-generated slash definition,
// e.g. to expose subcommands. Commands without it get a definition derived
// from Params.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}
