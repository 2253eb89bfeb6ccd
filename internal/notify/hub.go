// Package notify fans combat events out to observing connections. Clients
// never write through this channel; it is strictly one-way.
package notify

import (
	"sync"

	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
)

// Event is the JSON envelope pushed to subscribers.
type Event struct {
	Type    string `json:"type"`
	FightID string `json:"fight_id,omitempty"`

	// turn_state_changed
	State game.TurnState `json:"state,omitempty"`

	// card_played
	CasterID string `json:"caster_id,omitempty"`
	TargetID string `json:"target_id,omitempty"`
	CardID   string `json:"card_id,omitempty"`

	// fight_ended
	WinnerID string `json:"winner_id,omitempty"`

	// notification
	Message string `json:"message,omitempty"`
}

const (
	EventTurnStateChanged = "turn_state_changed"
	EventCardPlayed       = "card_played"
	EventFightEnded       = "fight_ended"
	EventNotification     = "notification"
)

// subscriber queues hold a short burst; a consumer that cannot keep up
// loses events rather than stalling combat.
const subscriberBuffer = 32

// Hub implements the combat core's Notifier. It targets events at the
// specific connections whose fight changed, resolved through the members
// lookup (wired to the fight registry at startup).
type Hub struct {
	mu      sync.Mutex
	subs    map[string]map[chan Event]struct{}
	members func(fightID string) []string
}

// NewHub creates a hub. members maps a fight id to the combatant ids that
// should observe its events.
func NewHub(members func(fightID string) []string) *Hub {
	return &Hub{
		subs:    make(map[string]map[chan Event]struct{}),
		members: members,
	}
}

// Subscribe registers an observer for one combatant's events. The
// returned cancel func must be called when the connection goes away.
func (h *Hub) Subscribe(combatantID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	if h.subs[combatantID] == nil {
		h.subs[combatantID] = make(map[chan Event]struct{})
	}
	h.subs[combatantID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[combatantID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, combatantID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// TurnStateChanged notifies a fight's observers of a turn transition.
func (h *Hub) TurnStateChanged(fightID string, state game.TurnState) {
	h.publishToFight(fightID, Event{Type: EventTurnStateChanged, FightID: fightID, State: state})
}

// CardPlayed notifies a fight's observers of one resolved (or fizzled)
// card play.
func (h *Hub) CardPlayed(fightID, casterID, targetID, cardID string) {
	h.publishToFight(fightID, Event{
		Type:     EventCardPlayed,
		FightID:  fightID,
		CasterID: casterID,
		TargetID: targetID,
		CardID:   cardID,
	})
}

// FightEnded notifies a fight's observers of the terminal state.
func (h *Hub) FightEnded(fightID, winnerID string) {
	h.publishToFight(fightID, Event{Type: EventFightEnded, FightID: fightID, WinnerID: winnerID})
}

// Notify sends user-facing rejection/info text to one combatant.
func (h *Hub) Notify(combatantID, message string) {
	h.publish([]string{combatantID}, Event{Type: EventNotification, Message: message})
}

func (h *Hub) publishToFight(fightID string, ev Event) {
	if h.members == nil {
		return
	}
	h.publish(h.members(fightID), ev)
}

// publish delivers without ever blocking the publishing fight; a full
// subscriber queue drops the event.
func (h *Hub) publish(ids []string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, id := range ids {
		for ch := range h.subs[id] {
			select {
			case ch <- ev:
			default:
				logging.Warn("dropping event for slow subscriber", logging.Fields{"combatant_id": id, "event": ev.Type})
			}
		}
	}
}
