package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw [count]",
	Short: "Build a deck and draw cards from it",
	Long: `Draw builds a deck from a profile, shuffles it unless told not to, and draws
cards from the top (or the bottom with --bottom). Cards can be placed into the
deck before drawing with --insert-bottom and --insert.

Examples:
  deckhand draw 5
  deckhand draw 3 --profile shoe --seed 42
  deckhand draw 2 --no-shuffle --insert 0=joker
  deckhand draw --bottom --insert-bottom A♥`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid card count: %s", args[0])
			}
			count = n
		}

		d, err := deckFromFlags(cmd)
		if err != nil {
			return err
		}

		if err := applyInserts(cmd, d); err != nil {
			return err
		}

		fromBottom, _ := cmd.Flags().GetBool("bottom")
		var drawn []card.Card
		if fromBottom {
			for i := 0; i < count; i++ {
				c, ok := d.DrawFromBottom()
				if !ok {
					break
				}
				drawn = append(drawn, c)
			}
		} else {
			drawn = d.DrawN(count)
		}

		out := cmd.OutOrStdout()
		if len(drawn) < count {
			fmt.Fprintf(out, "Deck ran out: drew %d of %d requested cards\n", len(drawn), count)
		}
		for _, line := range wrapCards(drawn, terminalWidth()) {
			fmt.Fprintln(out, line)
		}

		if top, ok := d.Peek(); ok {
			fmt.Fprintf(out, "Top card: %s\n", formatCard(top))
		}
		fmt.Fprintf(out, "Cards remaining: %d\n", d.Len())
		return nil
	},
}

// applyInserts places the cards named by --insert-bottom and --insert
func applyInserts(cmd *cobra.Command, d *deck.Deck) error {
	bottom, _ := cmd.Flags().GetStringSlice("insert-bottom")
	for _, token := range bottom {
		c, err := card.Parse(token)
		if err != nil {
			return err
		}
		d.InsertAtBottom(c)
	}

	positional, _ := cmd.Flags().GetStringArray("insert")
	for _, spec := range positional {
		placeStr, token, ok := strings.Cut(spec, "=")
		if !ok {
			return fmt.Errorf("invalid --insert value %q, want PLACE=CARD", spec)
		}
		place, err := strconv.Atoi(placeStr)
		if err != nil {
			return fmt.Errorf("invalid --insert place %q: %w", placeStr, err)
		}
		c, err := card.Parse(token)
		if err != nil {
			return err
		}
		if err := d.InsertFromTop(place, c); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(drawCmd)

	addDeckFlags(drawCmd.Flags())
	drawCmd.Flags().BoolP("bottom", "b", false, "Draw from the bottom of the deck")
	drawCmd.Flags().StringSlice("insert-bottom", nil, "Cards to put at the bottom before drawing, e.g. A♥,10S")
	drawCmd.Flags().StringArray("insert", nil, "Insert a card PLACE positions below the top before drawing, e.g. 0=joker")
}
