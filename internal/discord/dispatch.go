package discord

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"vrtex-economy/internal/command"
)

// dispatchCommand runs cmd through the shared policy gate and converts
// handler errors and panics into a diagnostic delivered via fallback, so one
// bad handler cannot take down an event loop. discordgo does not recover
// panics in handlers itself.
func dispatchCommand(ctx *command.Context, cmd command.Command, fallback func(msg string)) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("command", cmd.Name()).Str("guild", ctx.GuildID).Msg("Command panicked")
			if !ctx.Replied() {
				fallback("⚠️ Something went wrong running that command.")
			}
		}
	}()

	if err := command.Dispatch(ctx, cmd); err != nil {
		log.Error().Err(err).Str("command", cmd.Name()).Str("guild", ctx.GuildID).Msg("Command failed")
		if !ctx.Replied() {
			fallback(fmt.Sprintf("⚠️ Error running command: %v", err))
		}
	}
}
