package constants

// Centralized constants for env keys, headers, routes and message strings.
const (
	// Environment variable keys
	EnvConfigPath = "GAUNTLET_CONFIG"
	EnvDBPath     = "GAUNTLET_DB"

	// HTTP headers and content types
	HeaderPlayerUUID  = "X-Player-UUID"
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteCards       = "/cards"
	RouteProfile     = "/profile"
	RouteLeaderboard = "/leaderboard"
	RouteVersion     = "/version"
	RouteFightState  = "/fights/current"
	RouteFightPlay   = "/fights/play"
	RouteFightEnd    = "/fights/end-turn"
	RouteNotifySock  = "/ws"
)

// JSON keys used across API responses
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// User-facing error messages returned by the API
const (
	ErrInvalidRequest     = "invalid request"
	ErrIdentityRequired   = "player identity required"
	ErrFightNotFound      = "no active fight for this player"
	ErrNotYourTurn        = "not your turn"
	ErrInsufficientEnergy = "not enough energy"
	ErrUnknownCard        = "unknown card"
	ErrCardNotInHand      = "card is not in your hand"
	ErrFightOver          = "fight already ended"
	ErrFailedPlayCard     = "failed to play card"
	ErrFailedEndTurn      = "failed to end turn"

	ErrProfileNotFound        = "no profile for this player"
	ErrFailedFetchCards       = "failed to fetch cards"
	ErrFailedFetchLeaderboard = "failed to fetch leaderboard"
)

// Structured log field names
const (
	LogFieldAddr      = "addr"
	LogFieldFightID   = "fight_id"
	LogFieldPlayerID  = "player_id"
	LogFieldCardID    = "card_id"
	LogFieldEffect    = "effect"
	LogFieldTurnState = "turn_state"
)
