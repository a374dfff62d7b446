package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck(144)
	require.Len(t, deck, 144)

	assert.Equal(t, "hearts", deck[0].Suit)
	assert.Equal(t, "A", deck[0].Rank)
	assert.Equal(t, "diamonds", deck[1].Suit)
	assert.Equal(t, "02", deck[4].Rank)
	// Ranks wrap after 52 cards
	assert.Equal(t, "A", deck[52].Rank)
	assert.Equal(t, "card_spades_K", deck[51].Texture)
	assert.True(t, deck[0].IsRed())
	assert.False(t, deck[2].IsRed())
}

func TestCardStack_PushPopOrder(t *testing.T) {
	s := NewCardStack(Point{X: 100, Y: 50}, 2)
	deck := NewDeck(3)

	for _, c := range deck {
		s.Push(c)
	}
	require.Equal(t, 3, s.Count())
	assert.Equal(t, deck, s.Cards(), "visible order equals push order")

	top := s.Pop()
	assert.Same(t, deck[2], top)
	assert.Equal(t, 2, s.Count())

	assert.Nil(t, NewCardStack(Point{}, 2).Pop())
}

func TestCardStack_SlotsPeekOut(t *testing.T) {
	s := NewCardStack(Point{X: 100, Y: 50}, 2)
	deck := NewDeck(3)
	for _, c := range deck {
		s.Push(c)
	}

	for i, c := range deck {
		assert.Equal(t, 100.0, c.X)
		assert.Equal(t, 50.0+2*float64(i), c.Y)
		assert.Equal(t, i, c.Z)
	}
	assert.Equal(t, Point{X: 100, Y: 56}, s.NextSlot())
}
