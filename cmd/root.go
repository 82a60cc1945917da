package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deckhand",
	Short: "Tool for building, shuffling and drawing from playing card decks",
	Long: `Deckhand is a command-line tool for working with standard playing card decks.
It builds single decks, decks with jokers or multi-deck shoes from named profiles,
shuffles them and draws cards from the top or the bottom.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
