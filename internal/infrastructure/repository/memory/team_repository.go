package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/team-registry/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[int64]team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: make(map[int64]team.Team)}
}

// Create stores item unless its ID is taken; the bool reports whether it was stored.
func (r *TeamRepository) Create(_ context.Context, item team.Team) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[item.ID]; exists {
		return false, nil
	}
	r.teams[item.ID] = cloneTeam(item)

	return true, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return cloneTeam(item), true, nil
}

func (r *TeamRepository) SetCaptain(_ context.Context, teamID, playerID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.teams[teamID]
	if !ok {
		return false, nil
	}
	captainID := playerID
	item.CaptainID = &captainID
	r.teams[teamID] = item

	return true, nil
}

func (r *TeamRepository) ListIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0, len(r.teams))
	for id := range r.teams {
		out = append(out, id)
	}
	slices.Sort(out)

	return out, nil
}

func cloneTeam(item team.Team) team.Team {
	if item.CaptainID != nil {
		captainID := *item.CaptainID
		item.CaptainID = &captainID
	}
	return item
}
