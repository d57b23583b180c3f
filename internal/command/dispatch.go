package command

import "fmt"

// Dispatch runs the guild policy gate and then the command. Both adapters
// route through here so disabled-command enforcement cannot diverge between
// transports. "help" is exempt inside IsCommandDisabled.
func Dispatch(ctx *Context, cmd Command) error {
	if ctx.GuildID != "" && ctx.Storage != nil &&
		ctx.Storage.IsCommandDisabled(ctx.GuildID, cmd.Name()) {
		return ctx.ReplyEphemeral(fmt.Sprintf("⚠️ The command `%s` is currently disabled on this server.", cmd.Name()))
	}
	return cmd.Run(ctx)
}
