package service

import (
	"errors"

	"github.com/everdane/gauntlet/internal/combat"
	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
	"github.com/everdane/gauntlet/internal/storage"
)

var (
	ErrFightNotFound      = errors.New("no active fight for this player")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrFightOver          = errors.New("fight already ended")
	ErrUnknownCard        = errors.New("unknown card")
	ErrCardNotInHand      = errors.New("card is not in hand")
	ErrInsufficientEnergy = errors.New("not enough energy")
)

// CombatService is the application surface over one combat session:
// request validation and routing on the way in, stats persistence on the
// way out. The API layer maps its sentinel errors to HTTP responses.
type CombatService struct {
	session *combat.Session
	repo    storage.Repository
}

// NewCombatService wires the session to the repository.
func NewCombatService(session *combat.Session, repo storage.Repository) *CombatService {
	return &CombatService{session: session, repo: repo}
}

// StartCombat registers the human profiles and opens every fight. Human
// combatant IDs double as player UUIDs so request routing stays a map
// lookup.
func (s *CombatService) StartCombat(humans, opponents []*game.Combatant) error {
	if s.repo != nil {
		for _, h := range humans {
			if err := s.repo.UpsertProfile(h.ID, h.Name); err != nil {
				logging.Error("failed to upsert player profile", err, logging.Fields{"player_id": h.ID})
			}
		}
	}
	return s.session.Begin(humans, opponents)
}

// PlayCard routes a play-card request for the calling player.
func (s *CombatService) PlayCard(playerUUID, cardID string) error {
	return mapCombatErr(s.session.PlayCard(playerUUID, cardID))
}

// EndTurn routes an end-turn request for the calling player.
func (s *CombatService) EndTurn(playerUUID string) error {
	return mapCombatErr(s.session.EndTurn(playerUUID))
}

// FightView returns the caller's fight snapshot with the opponent's hand
// redacted; observers never see the automated side's cards.
func (s *CombatService) FightView(playerUUID string) (combat.Snapshot, error) {
	snap, ok := s.session.SnapshotFor(playerUUID)
	if !ok {
		return combat.Snapshot{}, ErrFightNotFound
	}
	if snap.Player.ID != playerUUID {
		snap.Player, snap.Opponent = snap.Opponent, snap.Player
	}
	snap.Opponent.Hand = nil
	return snap, nil
}

// HandleFightEnd persists the outcome of one concluded fight. Wired as the
// session's OnFightEnd observer; failures are logged, never propagated —
// a storage hiccup must not abort other fights.
func (s *CombatService) HandleFightEnd(f *game.Fight) {
	if s.repo == nil {
		return
	}
	res := &game.FightResult{
		FightID:    f.ID,
		PlayerID:   f.Player.ID,
		OpponentID: f.Opponent.ID,
		WinnerID:   f.Winner,
		Rounds:     f.Round,
	}
	if err := s.repo.RecordFightResult(res); err != nil {
		logging.Error("failed to record fight result", err, logging.Fields{"fight_id": f.ID})
	}
	if err := s.repo.UpdateStatsOnFightEnd(f.Player.ID, f.Winner); err != nil {
		logging.Error("failed to update player stats", err, logging.Fields{"fight_id": f.ID, "player_id": f.Player.ID})
	}
}

// Leaderboard returns the top profiles by wins.
func (s *CombatService) Leaderboard(limit int) ([]game.Profile, error) {
	return s.repo.GetTopPlayers(limit)
}

// mapCombatErr translates combat-core sentinels into the service taxonomy.
func mapCombatErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, combat.ErrNoActiveFight):
		return ErrFightNotFound
	case errors.Is(err, combat.ErrNotYourTurn):
		return ErrNotYourTurn
	case errors.Is(err, combat.ErrFightOver):
		return ErrFightOver
	case errors.Is(err, combat.ErrUnknownCard):
		return ErrUnknownCard
	case errors.Is(err, combat.ErrCardNotInHand):
		return ErrCardNotInHand
	case errors.Is(err, combat.ErrInsufficientEnergy):
		return ErrInsufficientEnergy
	default:
		return err
	}
}
