package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	userRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/user"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/game"
)

// Config holds the HTTP server's dependencies
type Config struct {
	// GameService executes every game operation
	GameService game.Service

	// UserRepo resolves session tokens for authentication
	UserRepo userRepo.Repository

	// Hub broadcasts the live game feed; it doubles as the game
	// service's event sink
	Hub *Hub
}

// Server exposes the game service over HTTP
type Server struct {
	games game.Service
	users userRepo.Repository
	hub   *Hub
}

// New creates a new HTTP server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.UserRepo == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	hub := cfg.Hub
	if hub == nil {
		hub = NewHub()
	}

	return &Server{
		games: cfg.GameService,
		users: cfg.UserRepo,
		hub:   hub,
	}, nil
}

// Handler builds the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/games", s.requireUser(s.handleCreateGame))
	mux.HandleFunc("POST /api/games/{id}/join", s.requireUser(s.handleJoinGame))
	mux.HandleFunc("POST /api/games/{id}/start", s.requireUser(s.handleStartGame))
	mux.HandleFunc("GET /api/games/{id}", s.requireUser(s.handleGetGame))
	mux.HandleFunc("GET /api/games/{id}/my-cards", s.requireUser(s.handleMyCards))
	mux.HandleFunc("POST /api/games/{id}/select", s.requireUser(s.handleSelectCard))
	mux.HandleFunc("POST /api/games/{id}/play", s.requireUser(s.handlePlayCard))
	mux.HandleFunc("POST /api/games/{id}/swap", s.requireUser(s.handleSwapCard))
	mux.HandleFunc("GET /api/games/{id}/submissions", s.requireUser(s.handleGetSubmissions))
	mux.HandleFunc("POST /api/submissions/{id}/vote", s.requireUser(s.handleCastVote))
	mux.HandleFunc("GET /api/games/{id}/penalties", s.requireUser(s.handleGetPenalties))
	mux.HandleFunc("GET /api/games/{id}/chat", s.requireUser(s.handleGetChat))
	mux.HandleFunc("POST /api/games/{id}/chat", s.requireUser(s.handlePostChat))
	mux.HandleFunc("GET /api/notifications", s.requireUser(s.handleGetNotifications))
	mux.HandleFunc("POST /api/notifications/{id}/read", s.requireUser(s.handleMarkNotificationRead))
	mux.HandleFunc("GET /ws/games/{id}", s.handleWebsocket)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	var gameErr game.GameError
	if !errors.As(err, &gameErr) {
		return http.StatusInternalServerError
	}

	switch gameErr {
	case game.ErrGameNotFound, game.ErrSubmissionNotFound, game.ErrCardNotInHand:
		return http.StatusNotFound
	case game.ErrNotGroupMember, game.ErrNotCreator, game.ErrOwnSubmission, game.ErrPlayerNotInGame:
		return http.StatusForbidden
	case game.ErrPlayerAlreadyInGame, game.ErrAlreadyVoted, game.ErrPassAlreadyUsed, game.ErrSwapAlreadyUsed:
		return http.StatusConflict
	case game.ErrInvalidGameState, game.ErrNotYourTurn, game.ErrHandTimeExpired,
		game.ErrSubmissionNotPending, game.ErrNotEnoughPlayers, game.ErrMustPlaySelected,
		game.ErrInvalidPlayAction, game.ErrInvalidVoteType, game.ErrNoReplacementCard:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
