package cmd

import (
	"fmt"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/validator"
	"github.com/spf13/cobra"
)

// profileCmd represents the profile command group
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage deck profiles in your config",
	Long:  `Commands for managing the named deck profiles stored in your config file.`,
}

// profileListCmd represents the profile ls command
var profileListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List configured deck profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(cfg.Profiles) == 0 {
			fmt.Fprintln(out, "No profiles found in your config.")
			fmt.Fprintln(out, "Run 'deckhand profile add' to create one.")
			return nil
		}

		for _, name := range cfg.ProfileNames() {
			p := cfg.Profiles[name]
			marker, suffix := " ", ""
			if name == cfg.DefaultProfile {
				marker, suffix = "*", " [DEFAULT]"
			}
			fmt.Fprintf(out, "%s %s (%s)%s\n", marker, name, describeProfile(p), suffix)
		}
		return nil
	},
}

// profileSetDefaultCmd represents the profile set-default command
var profileSetDefaultCmd = &cobra.Command{
	Use:   "set-default [profile_name]",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if err := config.SetDefaultProfile(name); err != nil {
			return fmt.Errorf("error setting default profile: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default profile set to: %s\n", name)
		return nil
	},
}

// profileAddCmd represents the profile add command
var profileAddCmd = &cobra.Command{
	Use:   "add [profile_name]",
	Short: "Add or replace a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		kind, _ := cmd.Flags().GetString("kind")
		decks, _ := cmd.Flags().GetInt("decks")
		seed, _ := cmd.Flags().GetUint64("seed")
		noShuffle, _ := cmd.Flags().GetBool("no-shuffle")

		p := config.Profile{Kind: kind, Decks: decks, Shuffle: !noShuffle, Seed: seed}

		results := validator.NewValidator("").ValidateProfile(p)
		if len(results.Errors) > 0 {
			return fmt.Errorf("invalid profile: %s", results.Errors[0])
		}
		for _, warn := range results.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warn)
		}

		if err := config.AddProfile(name, p); err != nil {
			return fmt.Errorf("error saving profile: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile %s saved (%s)\n", name, describeProfile(p))
		return nil
	},
}

// profileInitCmd represents the profile init command
var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file with default profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// describeProfile returns a short summary such as "multiple x6, shuffled"
func describeProfile(p config.Profile) string {
	kind, err := deck.ParseKind(p.Kind)
	if err != nil {
		return "invalid kind " + p.Kind
	}

	desc := string(kind)
	if kind == deck.KindMultiple {
		desc = fmt.Sprintf("%s x%d", desc, p.Decks)
	}
	switch {
	case p.Shuffle && p.Seed != 0:
		desc += fmt.Sprintf(", shuffled with seed %d", p.Seed)
	case p.Shuffle:
		desc += ", shuffled"
	default:
		desc += ", unshuffled"
	}
	return desc
}

func init() {
	RootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileSetDefaultCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileInitCmd)

	profileAddCmd.Flags().String("kind", string(deck.KindStandard), "Deck kind: standard, jokers or multiple")
	profileAddCmd.Flags().Int("decks", 0, "Number of standard decks for kind multiple")
	profileAddCmd.Flags().Uint64("seed", 0, "Shuffle seed (0 seeds from entropy)")
	profileAddCmd.Flags().Bool("no-shuffle", false, "Do not shuffle decks built from this profile")
}
