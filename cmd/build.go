package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addDeckFlags registers the flags used to pick and override a profile
func addDeckFlags(flags *pflag.FlagSet) {
	flags.StringP("profile", "p", "", "Profile name from your config or a path to a profile file")
	flags.String("kind", "", "Override the profile deck kind: standard, jokers or multiple")
	flags.Int("decks", 0, "Override the number of standard decks for kind multiple")
	flags.Uint64("seed", 0, "Override the shuffle seed (0 seeds from entropy)")
	flags.Bool("no-shuffle", false, "Keep the deck in canonical order")
}

// resolveProfile loads the selected profile and applies flag overrides
func resolveProfile(cmd *cobra.Command) (config.Profile, error) {
	flags := cmd.Flags()
	name, _ := flags.GetString("profile")

	p, err := config.GetProfile(name)
	if err != nil {
		return config.Profile{}, err
	}

	if flags.Changed("kind") {
		p.Kind, _ = flags.GetString("kind")
	}
	if flags.Changed("decks") {
		p.Decks, _ = flags.GetInt("decks")
	}
	if flags.Changed("seed") {
		p.Seed, _ = flags.GetUint64("seed")
	}
	if noShuffle, _ := flags.GetBool("no-shuffle"); noShuffle {
		p.Shuffle = false
	}
	return p, nil
}

// buildDeck creates a deck from a profile and shuffles it if asked to
func buildDeck(p config.Profile) (*deck.Deck, error) {
	kind, err := deck.ParseKind(p.Kind)
	if err != nil {
		return nil, err
	}
	if kind == deck.KindMultiple && p.Decks < 0 {
		return nil, fmt.Errorf("number of decks must not be negative, got %d", p.Decks)
	}

	d, err := deck.New(kind, p.Decks)
	if err != nil {
		return nil, err
	}

	if p.Shuffle {
		if p.Seed != 0 {
			d.ShuffleWith(rand.New(rand.NewPCG(p.Seed, p.Seed)))
		} else {
			d.Shuffle()
		}
	}
	return d, nil
}

// deckFromFlags resolves the profile for cmd and builds its deck
func deckFromFlags(cmd *cobra.Command) (*deck.Deck, error) {
	p, err := resolveProfile(cmd)
	if err != nil {
		return nil, err
	}
	return buildDeck(p)
}
