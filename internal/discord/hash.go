package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// defHash is the stable, runtime-field-free shape a definition is hashed
// over. Discord assigns IDs and versions server-side; those must not
// participate or every sync would look dirty.
type defHash struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        int       `json:"type"`
	Options     []optHash `json:"options,omitempty"`
}

type optHash struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        int       `json:"type"`
	Required    bool      `json:"required"`
	Options     []optHash `json:"options,omitempty"`
}

// hashDefinition returns a deterministic digest of a command definition.
func hashDefinition(def *discordgo.ApplicationCommand) string {
	h := defHash{
		Name:        def.Name,
		Description: def.Description,
		Type:        int(def.Type),
		Options:     hashOptions(def.Options),
	}
	data, _ := json.Marshal(h)
	return fmt.Sprintf("%x", sha1.Sum(data))
}

func hashOptions(opts []*discordgo.ApplicationCommandOption) []optHash {
	if len(opts) == 0 {
		return nil
	}
	out := make([]optHash, len(opts))
	for i, o := range opts {
		out[i] = optHash{
			Name:        o.Name,
			Description: o.Description,
			Type:        int(o.Type),
			Required:    o.Required,
			Options:     hashOptions(o.Options),
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
