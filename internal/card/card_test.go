package card

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestAllRanksOrder() {
	ranks := AllRanks(false)

	s.Equal([]Rank{
		King, Queen, Jack, Ten, Nine, Eight, Seven,
		Six, Five, Four, Three, Two, Ace,
	}, ranks)
	s.NotContains(ranks, Joker)
}

func (s *CardTestSuite) TestAllRanksWithJoker() {
	ranks := AllRanks(true)

	s.Len(ranks, 14)
	s.Equal(King, ranks[0])
	s.Equal(Ace, ranks[12])
	s.Equal(Joker, ranks[13])
}

func (s *CardTestSuite) TestAllRanksReturnsFreshSlice() {
	first := AllRanks(false)
	first[0] = Joker

	s.Equal(King, AllRanks(false)[0])
}

func (s *CardTestSuite) TestAllSuitsOrder() {
	s.Equal([]Suit{Heart, Diamond, Club, Spade}, AllSuits())
}

func (s *CardTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{name: "ace of spades", card: New(Ace, Spade), expected: "A♠"},
		{name: "ten of hearts", card: New(Ten, Heart), expected: "10♥"},
		{name: "king of diamonds", card: New(King, Diamond), expected: "K♦"},
		{name: "two of clubs", card: New(Two, Club), expected: "2♣"},
		{name: "joker", card: New(Joker, None), expected: "Joker"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *CardTestSuite) TestCardName() {
	s.Equal("Ace of Spades", New(Ace, Spade).Name())
	s.Equal("Queen of Hearts", New(Queen, Heart).Name())
	s.Equal("Joker", New(Joker, None).Name())
}

func (s *CardTestSuite) TestCardEquality() {
	s.Equal(New(Ace, Spade), Card{Rank: Ace, Suit: Spade})
	s.NotEqual(New(Ace, Spade), New(Ace, Heart))
	s.NotEqual(New(Ace, Spade), New(King, Spade))
}

func (s *CardTestSuite) TestCardValid() {
	s.True(New(Ace, Spade).Valid())
	s.True(New(Joker, None).Valid())
	s.False(New(Joker, Heart).Valid(), "joker paired with a suit")
	s.False(New(Seven, None).Valid(), "ordinary rank without a suit")
	s.False(New(Rank(42), Club).Valid(), "rank out of range")
}

func (s *CardTestSuite) TestSuitIsRed() {
	s.True(Heart.IsRed())
	s.True(Diamond.IsRed())
	s.False(Club.IsRed())
	s.False(Spade.IsRed())
	s.False(None.IsRed())
}

func (s *CardTestSuite) TestParse() {
	testCases := []struct {
		token    string
		expected Card
	}{
		{token: "A♠", expected: New(Ace, Spade)},
		{token: "10♥", expected: New(Ten, Heart)},
		{token: "qd", expected: New(Queen, Diamond)},
		{token: "10C", expected: New(Ten, Club)},
		{token: " 7s ", expected: New(Seven, Spade)},
		{token: "joker", expected: New(Joker, None)},
	}

	for _, tc := range testCases {
		s.Run(tc.token, func() {
			c, err := Parse(tc.token)
			s.Require().NoError(err)
			s.Equal(tc.expected, c)
		})
	}
}

func (s *CardTestSuite) TestParseRoundTrip() {
	for _, suit := range AllSuits() {
		for _, rank := range AllRanks(false) {
			c := New(rank, suit)
			parsed, err := Parse(c.String())
			s.Require().NoError(err)
			s.Equal(c, parsed)
		}
	}
}

func (s *CardTestSuite) TestParseUnknown() {
	for _, token := range []string{"", "1♠", "Z", "AX", "11H"} {
		_, err := Parse(token)
		s.ErrorIs(err, ErrUnknownCard, "token %q", token)
	}
}
