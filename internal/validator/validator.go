package validator

import (
	"fmt"
	"os"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ProfilePath string
	Results     ValidationResults
}

func NewValidator(profilePath string) *Validator {
	return &Validator{
		ProfilePath: profilePath,
		Results:     ValidationResults{},
	}
}

// Validate checks a profile file. A returned error means the file could not
// be read at all; problems with its contents are collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ProfilePath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("profile file not found: %s", v.ProfilePath)
	}

	pf, md, err := config.LoadProfileFile(v.ProfilePath)
	if err != nil {
		return v.Results, err
	}

	for _, key := range md.Undecoded() {
		v.addWarning("unknown key %s", key)
	}

	if !md.IsDefined("profile") {
		v.addError("[profile] table is required")
		return v.Results, nil
	}

	if pf.Profile.Name == "" {
		v.addWarning("profile.name is not set")
	}

	v.validateProfile(pf.Profile.Profile, md.IsDefined("profile", "decks"))

	return v.Results, nil
}

// ValidateProfile checks a profile that is already in memory
func (v *Validator) ValidateProfile(p config.Profile) ValidationResults {
	v.validateProfile(p, p.Decks != 0)
	return v.Results
}

func (v *Validator) validateProfile(p config.Profile, decksSet bool) {
	kind, err := deck.ParseKind(p.Kind)
	if err != nil {
		v.addError("profile.kind: %v (supported: %v)", err, deck.Kinds())
		return
	}

	switch {
	case p.Decks < 0:
		v.addError("profile.decks must not be negative, got %d", p.Decks)
	case kind != deck.KindMultiple && decksSet:
		v.addWarning("profile.decks is ignored for kind %q", kind)
	case kind == deck.KindMultiple && p.Decks == 0:
		v.addWarning("profile.decks is 0, the deck will be empty")
	}

	if p.Seed != 0 && !p.Shuffle {
		v.addWarning("profile.seed is ignored when shuffle is false")
	}
}

// ValidateCards warns about every card whose rank and suit do not pair up,
// such as a Joker with a suit or a ranked card without one.
func (v *Validator) ValidateCards(cards []card.Card) ValidationResults {
	for i, c := range cards {
		if !c.Valid() {
			v.addWarning("card %d (%s of %s) is not a valid pairing", i+1, c.Rank.Name(), c.Suit)
		}
	}
	return v.Results
}

func (v *Validator) addError(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) addWarning(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
