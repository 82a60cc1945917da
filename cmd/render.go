package cmd

import (
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/deckhand/internal/card"
)

var (
	redSuit   = colorize.New(colorize.FgHiRed, colorize.Bold)
	blackSuit = colorize.New(colorize.FgHiWhite, colorize.Bold)
	jokerCard = colorize.New(colorize.FgHiMagenta, colorize.Bold)
)

// formatCard returns the coloured short token for a card
func formatCard(c card.Card) string {
	switch {
	case c.Rank == card.Joker:
		return jokerCard.Sprint(c.String())
	case c.Suit.IsRed():
		return redSuit.Sprint(c.String())
	default:
		return blackSuit.Sprint(c.String())
	}
}

// terminalWidth returns the width of stdout, or 80 if it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapCards lays cards out in rows no wider than width visible columns.
// Every card token is padded to the widest token so columns line up.
func wrapCards(cards []card.Card, width int) []string {
	if len(cards) == 0 {
		return nil
	}

	cell := 0
	for _, c := range cards {
		cell = max(cell, utf8.RuneCountInString(c.String()))
	}
	cell++ // separating space

	perRow := max(1, width/cell)

	var rows []string
	var row strings.Builder
	for i, c := range cards {
		if i > 0 && i%perRow == 0 {
			rows = append(rows, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
		row.WriteString(formatCard(c))
		row.WriteString(strings.Repeat(" ", cell-utf8.RuneCountInString(c.String())))
	}
	rows = append(rows, strings.TrimRight(row.String(), " "))
	return rows
}
