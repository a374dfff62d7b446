package entity

// Suits in deal order
var Suits = []string{"hearts", "diamonds", "clubs", "spades"}

// Ranks in deal order
var Ranks = []string{"A", "02", "03", "04", "05", "06", "07", "08", "09", "10", "J", "Q", "K"}

// Card is a playing card sprite
type Card struct {
	*Node
	Suit string
	Rank string
	// Z is the draw order within the owning stack
	Z int
}

// NewDeck creates n cards cycling through suits, then ranks:
// card i has suit i%4 and rank (i/4)%13.
func NewDeck(n int) []*Card {
	cards := make([]*Card, n)
	for i := range cards {
		suit := Suits[i%len(Suits)]
		rank := Ranks[(i/len(Suits))%len(Ranks)]
		cards[i] = &Card{
			Node: NewNode(0, 0),
			Suit: suit,
			Rank: rank,
		}
		cards[i].Texture = "card_" + suit + "_" + rank
	}
	return cards
}

// IsRed reports whether the card has a red suit
func (c *Card) IsRed() bool {
	return c.Suit == "hearts" || c.Suit == "diamonds"
}

// CardStack is a pile of cards drawn with a fixed vertical offset so the
// edges of lower cards peek out. The last pushed card is on top.
type CardStack struct {
	Origin Point
	Offset float64
	cards  []*Card
}

// NewCardStack creates an empty stack whose bottom card sits at origin
func NewCardStack(origin Point, offset float64) *CardStack {
	return &CardStack{Origin: origin, Offset: offset}
}

// Count returns the number of cards in the stack
func (s *CardStack) Count() int {
	return len(s.cards)
}

// Push puts a card on top and snaps every card to its slot
func (s *CardStack) Push(c *Card) {
	s.cards = append(s.cards, c)
	s.refresh()
}

// Pop removes the top card, nil if the stack is empty
func (s *CardStack) Pop() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	top := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	s.refresh()
	return top
}

// Cards returns the cards bottom to top. The slice must not be modified.
func (s *CardStack) Cards() []*Card {
	return s.cards
}

// SlotPosition returns where the card at index sits
func (s *CardStack) SlotPosition(index int) Point {
	return Point{X: s.Origin.X, Y: s.Origin.Y + s.Offset*float64(index)}
}

// NextSlot returns where the next pushed card will sit
func (s *CardStack) NextSlot() Point {
	return s.SlotPosition(len(s.cards))
}

func (s *CardStack) refresh() {
	for i, c := range s.cards {
		p := s.SlotPosition(i)
		c.SetPosition(p.X, p.Y)
		c.Z = i
	}
}
