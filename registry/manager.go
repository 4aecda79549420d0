package registry

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wricardo/fishtournament/game"
	"github.com/wricardo/fishtournament/referee"
)

var (
	// ErrTournamentNotFound is returned when a tournament id has no
	// matching record.
	ErrTournamentNotFound = errors.New("registry: tournament not found")
	// ErrGameNotFound is returned when a game id has no matching record.
	ErrGameNotFound = errors.New("registry: game not found")
)

// TournamentStatus names where a tracked tournament is in its
// lifecycle.
type TournamentStatus int

const (
	TournamentRunning TournamentStatus = iota
	TournamentFinished
)

// TournamentRecord is a snapshot of one tournament's bookkeeping: who
// entered, whether it has finished, and (once it has) each
// participant's final status, in entry order.
type TournamentRecord struct {
	ID            string
	PlayerCount   int
	Status        TournamentStatus
	FinalStatuses []referee.ClientStatus
	CreatedAt     time.Time
	FinishedAt    time.Time
	GameIDs       []string
}

// GameRecord is a snapshot of one refereed game within a tournament's
// bracket.
type GameRecord struct {
	ID           string
	TournamentID string
	Round        int
	Participants []game.PlayerId
	Result       *referee.GameResult
	CreatedAt    time.Time
}

// Manager is the in-memory, RWMutex-guarded store of every tournament
// and game the admin API can introspect.
type Manager struct {
	mu          sync.RWMutex
	tournaments map[string]*TournamentRecord
	games       map[string]*GameRecord
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	return &Manager{
		tournaments: make(map[string]*TournamentRecord),
		games:       make(map[string]*GameRecord),
	}
}

// CreateTournament starts tracking a new tournament of playerCount
// entrants and returns its id.
func (m *Manager) CreateTournament(playerCount int) string {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournaments[id] = &TournamentRecord{
		ID:          id,
		PlayerCount: playerCount,
		Status:      TournamentRunning,
		CreatedAt:   time.Now(),
	}
	return id
}

// RecordGame adds a finished game's result under tournamentID, tagged
// with its bracket round, and returns the new game's id.
func (m *Manager) RecordGame(tournamentID string, round int, participants []game.PlayerId, result referee.GameResult) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tournaments[tournamentID]
	if !ok {
		return "", ErrTournamentNotFound
	}

	id := uuid.NewString()
	m.games[id] = &GameRecord{
		ID:           id,
		TournamentID: tournamentID,
		Round:        round,
		Participants: append([]game.PlayerId{}, participants...),
		Result:       &result,
		CreatedAt:    time.Now(),
	}
	t.GameIDs = append(t.GameIDs, id)
	return id, nil
}

// FinishTournament marks tournamentID finished with its final
// per-entrant statuses.
func (m *Manager) FinishTournament(tournamentID string, statuses []referee.ClientStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tournaments[tournamentID]
	if !ok {
		return ErrTournamentNotFound
	}
	t.Status = TournamentFinished
	t.FinalStatuses = append([]referee.ClientStatus{}, statuses...)
	t.FinishedAt = time.Now()
	return nil
}

// GetTournament retrieves a tournament record by id.
func (m *Manager) GetTournament(id string) (*TournamentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tournaments[id]
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return t, nil
}

// GetGame retrieves a game record by id.
func (m *Manager) GetGame(id string) (*GameRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// ListTournaments returns every tracked tournament, running or
// finished.
func (m *Manager) ListTournaments() []*TournamentRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*TournamentRecord, 0, len(m.tournaments))
	for _, t := range m.tournaments {
		out = append(out, t)
	}
	return out
}

// ListGames returns every game recorded under tournamentID.
func (m *Manager) ListGames(tournamentID string) ([]*GameRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tournaments[tournamentID]
	if !ok {
		return nil, ErrTournamentNotFound
	}
	out := make([]*GameRecord, 0, len(t.GameIDs))
	for _, id := range t.GameIDs {
		if g, ok := m.games[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

// Count returns how many tournaments are currently tracked.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tournaments)
}
