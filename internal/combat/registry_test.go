package combat

import (
	"testing"

	"github.com/everdane/gauntlet/internal/game"
)

func testCombatant(id string) *game.Combatant {
	return &game.Combatant{ID: id, Name: id, Health: 20, MaxHealth: 20, MaxEnergy: 3}
}

func TestRegistry_AssignRejectsDoubleAssignment(t *testing.T) {
	r := NewRegistry(1)
	human := testCombatant("p1")
	opp := testCombatant("o1")

	if _, err := r.Assign(human, opp); err != nil {
		t.Fatalf("first assignment failed: %v", err)
	}
	if _, err := r.Assign(human, testCombatant("o2")); err != ErrAlreadyFighting {
		t.Fatalf("expected ErrAlreadyFighting, got %v", err)
	}
	if got := r.ActiveCount(); got != 1 {
		t.Fatalf("expected 1 active fight, got %d", got)
	}
}

func TestRegistry_PairAllAvoidsOwnOpponent(t *testing.T) {
	r := NewRegistry(1)
	p1 := testCombatant("p1")
	p2 := testCombatant("p2")
	o1 := testCombatant("o1")
	o1.OwnerID = "p1"
	o2 := testCombatant("o2")
	o2.OwnerID = "p2"

	fights, err := r.PairAll([]*game.Combatant{p1, p2}, []*game.Combatant{o1, o2})
	if err != nil {
		t.Fatalf("PairAll failed: %v", err)
	}
	if len(fights) != 2 {
		t.Fatalf("expected 2 fights, got %d", len(fights))
	}
	if fights[0].Opponent != o2 {
		t.Fatalf("p1 should fight o2, got %s", fights[0].Opponent.ID)
	}
	if fights[1].Opponent != o1 {
		t.Fatalf("p2 should fight o1, got %s", fights[1].Opponent.ID)
	}
}

func TestRegistry_PairAllFallsBackToOwnedOpponent(t *testing.T) {
	r := NewRegistry(1)
	p1 := testCombatant("p1")
	o1 := testCombatant("o1")
	o1.OwnerID = "p1"

	fights, err := r.PairAll([]*game.Combatant{p1}, []*game.Combatant{o1})
	if err != nil {
		t.Fatalf("PairAll failed: %v", err)
	}
	if fights[0].Opponent != o1 {
		t.Fatalf("expected fallback pairing with o1, got %s", fights[0].Opponent.ID)
	}
}

func TestRegistry_PairAllRequiresEnoughOpponents(t *testing.T) {
	r := NewRegistry(1)
	if _, err := r.PairAll([]*game.Combatant{testCombatant("p1")}, nil); err != ErrNoOpponents {
		t.Fatalf("expected ErrNoOpponents, got %v", err)
	}
}

func TestRegistry_RemoveUnknownIsNoop(t *testing.T) {
	r := NewRegistry(1)
	r.Remove("nope")

	f, err := r.Assign(testCombatant("p1"), testCombatant("o1"))
	if err != nil {
		t.Fatalf("assignment failed: %v", err)
	}
	r.Remove(f.ID)
	r.Remove(f.ID)
	if got := r.ActiveCount(); got != 0 {
		t.Fatalf("expected 0 active fights, got %d", got)
	}
	if r.FightFor("p1") != nil {
		t.Fatalf("expected p1 to be free after removal")
	}
}

func TestRegistry_GetOpponent(t *testing.T) {
	r := NewRegistry(1)
	human := testCombatant("p1")
	opp := testCombatant("o1")
	if _, err := r.Assign(human, opp); err != nil {
		t.Fatalf("assignment failed: %v", err)
	}
	if got := r.GetOpponent("p1"); got != opp {
		t.Fatalf("expected o1, got %v", got)
	}
	if got := r.GetOpponent("o1"); got != human {
		t.Fatalf("expected p1, got %v", got)
	}
	if got := r.GetOpponent("stranger"); got != nil {
		t.Fatalf("expected nil for unknown combatant, got %v", got)
	}
}
