package adminapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/wricardo/fishtournament/config"
	"github.com/wricardo/fishtournament/registry"
)

// Server is the admin/observer-facing HTTP surface: tournament and
// game introspection over registry.Manager, board preset listing over
// config.Manager, and the websocket event stream.
type Server struct {
	registry *registry.Manager
	configs  *config.Manager
	hub      *Hub
	router   *mux.Router
}

// NewServer builds a ready-to-serve Server. hub may be nil if the
// caller does not want a websocket event stream.
func NewServer(reg *registry.Manager, cfg *config.Manager, hub *Hub) *Server {
	s := &Server{registry: reg, configs: cfg, hub: hub, router: mux.NewRouter()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/tournaments", s.handleListTournaments).Methods("GET")
	api.HandleFunc("/tournaments/{id}", s.handleGetTournament).Methods("GET")
	api.HandleFunc("/tournaments/{id}/games", s.handleListGames).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleGetGame).Methods("GET")

	api.HandleFunc("/configs", s.handleListConfigs).Methods("GET")
	api.HandleFunc("/configs/{name}", s.handleGetConfig).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket)
	s.router.HandleFunc("/health", s.handleHealth)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleListTournaments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tournaments": s.registry.ListTournaments(),
	})
}

func (s *Server) handleGetTournament(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, err := s.registry.GetTournament(id)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	games, err := s.registry.ListGames(id)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	g, err := s.registry.GetGame(id)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, g)
}

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	list, err := s.configs.ListConfigs()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"configs": list})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(mux.Vars(r)["name"], ".json")
	preset, err := s.configs.LoadConfig(name)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, preset)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		http.Error(w, "event stream disabled", http.StatusNotFound)
		return
	}
	tournamentID := r.URL.Query().Get("tournament")
	if tournamentID == "" {
		http.Error(w, "tournament parameter required", http.StatusBadRequest)
		return
	}
	if _, err := s.registry.GetTournament(tournamentID); err != nil {
		http.Error(w, "unknown tournament", http.StatusNotFound)
		return
	}
	s.hub.ServeWS(w, r, tournamentID)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
