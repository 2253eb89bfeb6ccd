package combat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/everdane/gauntlet/internal/engine"
	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
)

var (
	ErrFightOver          = errors.New("fight already ended")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrUnknownCard        = errors.New("unknown card")
	ErrCardNotInHand      = errors.New("card is not in hand")
	ErrInsufficientEnergy = errors.New("not enough energy")
)

// Orchestrator drives one fight's round/turn cycle. All state mutation for
// the fight happens under its mutex, so requests serialize per fight and
// never block other fights.
type Orchestrator struct {
	mu sync.Mutex

	fight    *game.Fight
	resolver *engine.Resolver
	catalog  Catalog
	hands    HandManager
	notifier Notifier
	policy   Policy
	rules    Rules

	ctx     context.Context
	onEnded func(*game.Fight)
}

// NewOrchestrator wires one fight to its collaborators. The context bounds
// the opponent-turn goroutine; onEnded fires once, inside the fight lock,
// when the fight reaches its terminal state.
func NewOrchestrator(ctx context.Context, fight *game.Fight, resolver *engine.Resolver, catalog Catalog, hands HandManager, notifier Notifier, rules Rules, onEnded func(*game.Fight)) *Orchestrator {
	return &Orchestrator{
		fight:    fight,
		resolver: resolver,
		catalog:  catalog,
		hands:    hands,
		notifier: notifier,
		rules:    rules,
		ctx:      ctx,
		onEnded:  onEnded,
	}
}

// StartFirstRound opens round one and hands the turn to the player.
func (o *Orchestrator) StartFirstRound() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fight.State != game.TurnNone {
		return
	}
	o.beginRoundLocked()
}

// PlayCard validates a card-play request from the human side and resolves
// it. Turn ownership is strict: a request outside PlayerTurn or from the
// wrong combatant mutates nothing.
func (o *Orchestrator) PlayCard(combatantID, cardID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	f := o.fight
	if f.Ended() {
		return ErrFightOver
	}
	if f.State != game.TurnPlayer || f.Player.ID != combatantID {
		return ErrNotYourTurn
	}
	card, ok := o.catalog.GetCardSpec(cardID)
	if !ok {
		return ErrUnknownCard
	}
	if !f.Player.HasInHand(cardID) {
		return ErrCardNotInHand
	}
	if card.Cost > f.Player.Energy {
		return ErrInsufficientEnergy
	}
	o.playCardLocked(f.Player, card)
	return nil
}

// EndTurn closes the human turn: discard, end-of-turn ticks, then the
// opponent turn starts on the fight's own goroutine.
func (o *Orchestrator) EndTurn(combatantID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	f := o.fight
	if f.Ended() {
		return ErrFightOver
	}
	if f.State != game.TurnPlayer || f.Player.ID != combatantID {
		return ErrNotYourTurn
	}
	o.hands.DiscardHand(f.Player)
	o.endOfTurnLocked(f.Player)
	if o.checkFightEndLocked() {
		return nil
	}
	o.startOpponentTurnLocked()
	return nil
}

// beginRoundLocked starts the next round: energy refill and card draw for
// both sides, then the player turn.
func (o *Orchestrator) beginRoundLocked() {
	f := o.fight
	f.Round++
	draw := o.rules.PerRoundDraw
	if f.Round == 1 {
		draw = o.rules.FirstRoundDraw
	}
	for _, c := range []*game.Combatant{f.Player, f.Opponent} {
		c.ResetEnergy()
		o.hands.DrawCards(c, draw)
	}
	o.startPlayerTurnLocked()
}

func (o *Orchestrator) startPlayerTurnLocked() {
	f := o.fight
	f.State = game.TurnPlayer
	f.Player.Statuses.Tick(game.StartOfTurn)
	o.notifier.TurnStateChanged(f.ID, f.State)
}

func (o *Orchestrator) startOpponentTurnLocked() {
	f := o.fight
	f.State = game.TurnOpponent
	f.Opponent.Statuses.Tick(game.StartOfTurn)
	o.notifier.TurnStateChanged(f.ID, f.State)
	go o.runOpponentTurn()
}

// playCardLocked applies one validated card play. An active stun consumes
// the play with no effect.
func (o *Orchestrator) playCardLocked(source *game.Combatant, card game.Card) {
	f := o.fight
	source.SpendEnergy(card.Cost)
	source.RemoveFromHand(card.CardID)
	source.NoteCardPlayed(card.Cost)

	if source.Statuses.Potency(game.StatusStun) > 0 {
		source.Statuses.ConsumePotency(game.StatusStun, 1)
		logging.Info("card fizzled", logging.Fields{"fight_id": f.ID, "card_id": card.CardID, "caster": source.ID})
		o.notifier.Notify(source.ID, card.Name+" fizzles")
	} else {
		outcome := o.resolver.Resolve(card.Effect, source, f)
		logging.Info("card resolved", logging.Fields{
			"fight_id": f.ID,
			"card_id":  card.CardID,
			"caster":   source.ID,
			"summary":  outcome.Joined(),
		})
	}
	o.notifier.CardPlayed(f.ID, source.ID, primaryTargetID(card, source, f), card.CardID)
	o.checkFightEndLocked()
}

// runOpponentTurn plays the automated side with a cooperative pacing wait
// between cards, then closes the round.
func (o *Orchestrator) runOpponentTurn() {
	for {
		o.mu.Lock()
		f := o.fight
		if f.Ended() || f.State != game.TurnOpponent {
			o.mu.Unlock()
			return
		}
		card, ok := o.policy.NextCard(f.Opponent, o.catalog)
		if !ok {
			o.finishOpponentTurnLocked()
			o.mu.Unlock()
			return
		}
		o.playCardLocked(f.Opponent, card)
		ended := f.Ended()
		o.mu.Unlock()
		if ended {
			return
		}
		if !o.pace() {
			return
		}
	}
}

func (o *Orchestrator) finishOpponentTurnLocked() {
	f := o.fight
	o.hands.DiscardHand(f.Opponent)
	o.endOfTurnLocked(f.Opponent)
	if o.checkFightEndLocked() {
		return
	}
	o.beginRoundLocked()
}

// endOfTurnLocked runs the end-of-turn status ticks for the combatant
// whose turn just ended and resets its turn-scoped counters.
func (o *Orchestrator) endOfTurnLocked(c *game.Combatant) {
	res := c.Statuses.Tick(game.EndOfTurn)
	if res.BurnDamage > 0 {
		taken := c.ApplyHealthDelta(-res.BurnDamage)
		logging.Info("burn tick", logging.Fields{"fight_id": o.fight.ID, "combatant": c.ID, "damage": taken})
	}
	if res.SalveHeal > 0 {
		c.ApplyHealthDelta(res.SalveHeal)
	}
	c.ResetTurnCounters()
}

// pace waits the configured opponent delay, giving up when the session
// context is cancelled. Suspends only this fight.
func (o *Orchestrator) pace() bool {
	if o.rules.OpponentDelay <= 0 {
		return true
	}
	t := time.NewTimer(o.rules.OpponentDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-o.ctx.Done():
		return false
	}
}

// checkFightEndLocked moves the fight to its terminal state when either
// side's health reached zero. Further PlayCard/EndTurn requests are then
// rejected with ErrFightOver.
func (o *Orchestrator) checkFightEndLocked() bool {
	f := o.fight
	if f.Ended() {
		return true
	}
	playerDown := f.Player.Health <= 0
	opponentDown := f.Opponent.Health <= 0
	if !playerDown && !opponentDown {
		return false
	}

	winner := ""
	switch {
	case playerDown && opponentDown:
		// simultaneous knockout: nobody advances
	case playerDown:
		winner = f.Opponent.ID
	default:
		winner = f.Player.ID
	}
	f.State = game.TurnEnded
	f.Winner = winner
	f.Player.ConcludeFight()
	f.Opponent.ConcludeFight()
	logging.Info("fight ended", logging.Fields{"fight_id": f.ID, "winner": winner, "rounds": f.Round})
	o.notifier.FightEnded(f.ID, winner)
	if o.onEnded != nil {
		o.onEnded(f)
	}
	return true
}

// primaryTargetID picks the combatant a card is principally aimed at, for
// the CardPlayed notification.
func primaryTargetID(card game.Card, source *game.Combatant, f *game.Fight) string {
	switch card.Effect.Target {
	case game.TargetSelf, game.TargetAlly, game.TargetAllAllies:
		return source.ID
	default:
		if other := f.OpponentOf(source); other != nil {
			return other.ID
		}
		return source.ID
	}
}
