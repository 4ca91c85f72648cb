package usecase

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/shopspring/decimal"
)

// QueryEngine answers read queries against a Registry. Rosters and team lists
// come back in ascending ID order; superlative ties go to the lowest player ID.
type QueryEngine struct {
	registry *Registry
}

func NewQueryEngine(registry *Registry) *QueryEngine {
	return &QueryEngine{registry: registry}
}

func (q *QueryEngine) GetCaptain(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetCaptain")
	defer span.End()

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	item, err := q.getTeam(ctx, teamID)
	if err != nil {
		return 0, err
	}
	if !item.HasCaptain() {
		return 0, errors.Wrapf(ErrCaptainNotAssigned, "team=%d", teamID)
	}

	return *item.CaptainID, nil
}

func (q *QueryEngine) GetPlayerName(ctx context.Context, playerID int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetPlayerName")
	defer span.End()

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	item, err := q.getPlayer(ctx, playerID)
	if err != nil {
		return "", err
	}

	return item.Name, nil
}

func (q *QueryEngine) GetTeamName(ctx context.Context, teamID int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetTeamName")
	defer span.End()

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	item, err := q.getTeam(ctx, teamID)
	if err != nil {
		return "", err
	}

	return item.Name, nil
}

func (q *QueryEngine) GetTeamRoster(ctx context.Context, teamID int64) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetTeamRoster")
	defer span.End()

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	roster, err := q.getRoster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	ids := playerIDs(roster)
	slices.Sort(ids)

	return ids, nil
}

func (q *QueryEngine) GetBestPlayer(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetBestPlayer")
	defer span.End()

	return q.pickFromRoster(ctx, teamID, player.Better)
}

func (q *QueryEngine) GetOldestPlayer(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetOldestPlayer")
	defer span.End()

	return q.pickFromRoster(ctx, teamID, player.Older)
}

func (q *QueryEngine) GetHighestPaidPlayer(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetHighestPaidPlayer")
	defer span.End()

	return q.pickFromRoster(ctx, teamID, player.BetterPaid)
}

func (q *QueryEngine) GetAllTeamIDs(ctx context.Context) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetAllTeamIDs")
	defer span.End()

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	ids, err := q.registry.teamRepo.ListIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list team ids")
	}
	if ids == nil {
		return []int64{}, nil
	}
	slices.Sort(ids)

	return ids, nil
}

func (q *QueryEngine) GetPlayerSalary(ctx context.Context, playerID int64) (decimal.Decimal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetPlayerSalary")
	defer span.End()

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	item, err := q.getPlayer(ctx, playerID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return item.Salary, nil
}

// GetTopPlayers ranks every registered player by skill and returns at most n IDs.
func (q *QueryEngine) GetTopPlayers(ctx context.Context, n int) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetTopPlayers")
	defer span.End()

	if n <= 0 {
		return []int64{}, nil
	}

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	items, err := q.registry.playerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list players")
	}

	ranked := slices.Clone(items)
	slices.SortFunc(ranked, func(a, b player.Player) int {
		switch {
		case player.Better(a, b):
			return -1
		case player.Better(b, a):
			return 1
		default:
			return 0
		}
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return playerIDs(ranked), nil
}

// GetAwayJerseyColor fails when either team is unknown instead of guessing a colour.
func (q *QueryEngine) GetAwayJerseyColor(ctx context.Context, homeTeamID, awayTeamID int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.GetAwayJerseyColor")
	defer span.End()

	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	home, err := q.getTeam(ctx, homeTeamID)
	if err != nil {
		return "", err
	}
	away, err := q.getTeam(ctx, awayTeamID)
	if err != nil {
		return "", err
	}

	return team.AwayColor(home, away), nil
}

func (q *QueryEngine) pickFromRoster(ctx context.Context, teamID int64, better func(a, b player.Player) bool) (int64, error) {
	q.registry.mu.RLock()
	defer q.registry.mu.RUnlock()

	roster, err := q.getRoster(ctx, teamID)
	if err != nil {
		return 0, err
	}
	if len(roster) == 0 {
		return 0, errors.Wrapf(ErrPlayerNotFound, "team=%d has no players", teamID)
	}

	best := roster[0]
	for _, candidate := range roster[1:] {
		if better(candidate, best) {
			best = candidate
		}
	}

	return best.ID, nil
}

func (q *QueryEngine) getTeam(ctx context.Context, teamID int64) (team.Team, error) {
	item, exists, err := q.registry.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, errors.Wrap(err, "get team by id")
	}
	if !exists {
		return team.Team{}, errors.Wrapf(ErrTeamNotFound, "team=%d", teamID)
	}

	return item, nil
}

func (q *QueryEngine) getPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	item, exists, err := q.registry.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "get player by id")
	}
	if !exists {
		return player.Player{}, errors.Wrapf(ErrPlayerNotFound, "player=%d", playerID)
	}

	return item, nil
}

func (q *QueryEngine) getRoster(ctx context.Context, teamID int64) ([]player.Player, error) {
	if _, err := q.getTeam(ctx, teamID); err != nil {
		return nil, err
	}

	roster, err := q.registry.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, errors.Wrap(err, "list players by team")
	}

	return roster, nil
}

func playerIDs(items []player.Player) []int64 {
	out := make([]int64, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
