package deck

import (
	"reflect"
	"testing"

	"github.com/everdane/gauntlet/internal/game"
)

func TestDrawCards_InOrder(t *testing.T) {
	m := NewManager()
	c := &game.Combatant{Deck: []string{"a", "b", "c"}}

	m.DrawCards(c, 2)

	if !reflect.DeepEqual(c.Hand, []string{"a", "b"}) {
		t.Fatalf("unexpected hand: %v", c.Hand)
	}
	if !reflect.DeepEqual(c.Deck, []string{"c"}) {
		t.Fatalf("unexpected deck: %v", c.Deck)
	}
}

func TestDrawCards_FlipsDiscardWhenDry(t *testing.T) {
	m := NewManager()
	c := &game.Combatant{Deck: []string{"a"}, Discard: []string{"b", "c"}}

	m.DrawCards(c, 3)

	if !reflect.DeepEqual(c.Hand, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected hand after flip: %v", c.Hand)
	}
	if len(c.Deck) != 0 || len(c.Discard) != 0 {
		t.Fatalf("piles not drained: deck %v discard %v", c.Deck, c.Discard)
	}
}

func TestDrawCards_StopsWhenNothingLeft(t *testing.T) {
	m := NewManager()
	c := &game.Combatant{Deck: []string{"a"}}

	m.DrawCards(c, 5)

	if !reflect.DeepEqual(c.Hand, []string{"a"}) {
		t.Fatalf("unexpected hand: %v", c.Hand)
	}
}

func TestDiscardHand(t *testing.T) {
	m := NewManager()
	c := &game.Combatant{Hand: []string{"a", "b"}, Discard: []string{"z"}}

	m.DiscardHand(c)

	if c.Hand != nil {
		t.Fatalf("hand not cleared: %v", c.Hand)
	}
	if !reflect.DeepEqual(c.Discard, []string{"z", "a", "b"}) {
		t.Fatalf("unexpected discard: %v", c.Discard)
	}
}
