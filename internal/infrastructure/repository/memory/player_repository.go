package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/team-registry/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[int64]player.Player
	byTeam  map[int64][]int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		players: make(map[int64]player.Player),
		byTeam:  make(map[int64][]int64),
	}
}

// Create stores item unless its ID is taken anywhere in the repository.
func (r *PlayerRepository) Create(_ context.Context, item player.Player) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(item), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p, ok, nil
}

// ListByTeam returns the team's players ordered by ascending ID.
func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byTeam[teamID]
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.players[id])
	}

	return out, nil
}

// List returns every player ordered by ascending ID.
func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b player.Player) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (r *PlayerRepository) insert(p player.Player) bool {
	if _, exists := r.players[p.ID]; exists {
		return false
	}
	r.players[p.ID] = p

	ids := r.byTeam[p.TeamID]
	idx, _ := slices.BinarySearch(ids, p.ID)
	r.byTeam[p.TeamID] = slices.Insert(ids, idx, p.ID)

	return true
}
