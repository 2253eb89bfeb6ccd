package notify

import (
	"testing"

	"github.com/everdane/gauntlet/internal/game"
)

func fightMembers(fightID string) []string {
	if fightID == "f1" {
		return []string{"p1", "o1"}
	}
	return nil
}

func TestHub_TargetsFightMembersOnly(t *testing.T) {
	h := NewHub(fightMembers)
	ch1, cancel1 := h.Subscribe("p1")
	defer cancel1()
	ch2, cancel2 := h.Subscribe("bystander")
	defer cancel2()

	h.TurnStateChanged("f1", game.TurnPlayer)

	select {
	case ev := <-ch1:
		if ev.Type != EventTurnStateChanged || ev.State != game.TurnPlayer {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatalf("expected an event for the fight member")
	}
	select {
	case ev := <-ch2:
		t.Fatalf("bystander received %+v", ev)
	default:
	}
}

func TestHub_NotifyReachesOneCombatant(t *testing.T) {
	h := NewHub(fightMembers)
	ch, cancel := h.Subscribe("p1")
	defer cancel()

	h.Notify("p1", "Strike fizzles")

	ev := <-ch
	if ev.Type != EventNotification || ev.Message != "Strike fizzles" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub(fightMembers)
	ch, cancel := h.Subscribe("p1")
	defer cancel()

	// Overfill the queue; publish must never block.
	for i := 0; i < subscriberBuffer+5; i++ {
		h.CardPlayed("f1", "p1", "o1", "strike")
	}

	if len(ch) != subscriberBuffer {
		t.Fatalf("expected a full queue of %d, got %d", subscriberBuffer, len(ch))
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	h := NewHub(fightMembers)
	ch, cancel := h.Subscribe("p1")
	cancel()

	h.FightEnded("f1", "p1")

	select {
	case ev := <-ch:
		t.Fatalf("cancelled subscriber received %+v", ev)
	default:
	}
}
