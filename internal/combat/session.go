package combat

import (
	"context"
	"errors"
	"sync"

	"github.com/everdane/gauntlet/internal/engine"
	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
)

var ErrNoActiveFight = errors.New("no active fight for combatant")

// SessionDeps are the explicitly constructed collaborators a combat
// session runs against. No process-wide singletons: whoever owns the
// combat phase builds these and passes them in.
type SessionDeps struct {
	Registry    *Registry
	Resolver    *engine.Resolver
	Catalog     Catalog
	Hands       HandManager
	Notifier    Notifier
	Progression Progression
	Rules       Rules

	// OnFightEnd, when set, observes each concluded fight (stats writes).
	OnFightEnd func(*game.Fight)
}

// Session owns one turn orchestrator per fight, starts the first round
// everywhere, and reports overall completion once the registry counts zero
// active fights.
type Session struct {
	mu            sync.Mutex
	deps          SessionDeps
	orchestrators map[string]*Orchestrator

	ctx          context.Context
	cancel       context.CancelFunc
	completeOnce sync.Once
}

// NewSession creates a combat session over the given collaborators.
func NewSession(deps SessionDeps) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		deps:          deps,
		orchestrators: make(map[string]*Orchestrator),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Begin pairs every human with an opponent and opens round one for all
// fights. Each fight runs independently from here on.
func (s *Session) Begin(humans, opponents []*game.Combatant) error {
	fights, err := s.deps.Registry.PairAll(humans, opponents)
	if err != nil {
		return err
	}

	s.mu.Lock()
	for _, f := range fights {
		o := NewOrchestrator(s.ctx, f, s.deps.Resolver, s.deps.Catalog, s.deps.Hands, s.deps.Notifier, s.deps.Rules, s.handleFightEnded)
		s.orchestrators[f.Player.ID] = o
		s.orchestrators[f.Opponent.ID] = o
	}
	orchs := make([]*Orchestrator, 0, len(fights))
	for _, f := range fights {
		orchs = append(orchs, s.orchestrators[f.Player.ID])
	}
	s.mu.Unlock()

	logging.Info("combat session started", logging.Fields{"fights": len(fights)})
	for _, o := range orchs {
		o.StartFirstRound()
	}
	return nil
}

// SetOnFightEnd installs the fight-end observer. Must be called before
// Begin; the observer runs inside the concluding fight's lock.
func (s *Session) SetOnFightEnd(fn func(*game.Fight)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deps.OnFightEnd = fn
}

// PlayCard routes a play-card request to the requester's fight.
func (s *Session) PlayCard(combatantID, cardID string) error {
	o := s.orchestratorFor(combatantID)
	if o == nil {
		return ErrNoActiveFight
	}
	return o.PlayCard(combatantID, cardID)
}

// EndTurn routes an end-turn request to the requester's fight.
func (s *Session) EndTurn(combatantID string) error {
	o := s.orchestratorFor(combatantID)
	if o == nil {
		return ErrNoActiveFight
	}
	return o.EndTurn(combatantID)
}

// Close cancels every fight's pacing wait and releases the session.
func (s *Session) Close() {
	s.cancel()
}

func (s *Session) orchestratorFor(combatantID string) *Orchestrator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orchestrators[combatantID]
}

// handleFightEnded runs inside the concluding fight's lock: registry
// removal, the stats observer, and — at zero active fights — the one-time
// progression callback.
func (s *Session) handleFightEnded(f *game.Fight) {
	s.deps.Registry.Remove(f.ID)

	s.mu.Lock()
	delete(s.orchestrators, f.Player.ID)
	delete(s.orchestrators, f.Opponent.ID)
	onEnd := s.deps.OnFightEnd
	s.mu.Unlock()

	if onEnd != nil {
		onEnd(f)
	}
	if s.deps.Registry.ActiveCount() == 0 && s.deps.Progression != nil {
		s.completeOnce.Do(s.deps.Progression.OnAllFightsComplete)
	}
}
