package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display every card of a deck in draw order",
	Long: `Show builds a deck from a profile and prints all of its cards, top card first.

You can specify a profile using the --profile flag, which will look for the
profile in your config or treat the value as a path to a profile file.
If no profile is specified, the default profile from your config will be used.

Examples:
  deckhand show
  deckhand show --profile jokers --no-shuffle
  deckhand show --kind multiple --decks 2 --names`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deckFromFlags(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cards := d.Cards()
		fmt.Fprintf(out, "%d cards, top first:\n", len(cards))

		if names, _ := cmd.Flags().GetBool("names"); names {
			for i, c := range cards {
				fmt.Fprintf(out, "%3d. %s (%s)\n", i+1, formatCard(c), c.Name())
			}
			return nil
		}

		for _, line := range wrapCards(cards, terminalWidth()) {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addDeckFlags(showCmd.Flags())
	showCmd.Flags().BoolP("names", "n", false, "Print one card per line with its full name")
}
