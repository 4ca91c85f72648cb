package usecase

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
)

const defaultImportWorkers = 4

type ImportKind string

const (
	ImportKindTeam    ImportKind = "team"
	ImportKindPlayer  ImportKind = "player"
	ImportKindCaptain ImportKind = "captain"
)

var importKindOrder = map[ImportKind]int{
	ImportKindTeam:    0,
	ImportKindPlayer:  1,
	ImportKindCaptain: 2,
}

// ImportBatch is applied in three phases: teams, players, then captains in
// listed order, so a later captain for the same team wins.
type ImportBatch struct {
	Teams    []team.Team
	Players  []player.Player
	Captains []int64
}

type ImportFailure struct {
	Kind ImportKind
	ID   int64
	Err  error
}

type ImportResult struct {
	TeamsRegistered   int
	PlayersRegistered int
	CaptainsAssigned  int
	Failures          []ImportFailure
}

type ImportService struct {
	registry *Registry
	workers  int
	logger   *logging.Logger
}

func NewImportService(registry *Registry, workers int, logger *logging.Logger) *ImportService {
	if workers < 1 {
		workers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		registry: registry,
		workers:  workers,
		logger:   logger,
	}
}

// Import registers everything it can and reports the rest as failures. The
// returned error is reserved for problems running the import itself.
func (s *ImportService) Import(ctx context.Context, batch ImportBatch) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	var result ImportResult

	for _, item := range batch.Teams {
		err := s.registry.RegisterTeam(ctx, RegisterTeamInput{
			ID:             item.ID,
			Name:           item.Name,
			CreatedOn:      item.CreatedOn,
			PrimaryColor:   item.PrimaryColor,
			SecondaryColor: item.SecondaryColor,
		})
		if err != nil {
			result.Failures = append(result.Failures, ImportFailure{Kind: ImportKindTeam, ID: item.ID, Err: err})
			continue
		}
		result.TeamsRegistered++
	}

	registered, failures, err := s.importPlayers(ctx, batch.Players)
	if err != nil {
		return ImportResult{}, err
	}
	result.PlayersRegistered = registered
	result.Failures = append(result.Failures, failures...)

	for _, playerID := range batch.Captains {
		if err := s.registry.AssignCaptain(ctx, playerID); err != nil {
			result.Failures = append(result.Failures, ImportFailure{Kind: ImportKindCaptain, ID: playerID, Err: err})
			continue
		}
		result.CaptainsAssigned++
	}

	slices.SortStableFunc(result.Failures, func(a, b ImportFailure) int {
		if c := cmp.Compare(importKindOrder[a.Kind], importKindOrder[b.Kind]); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	for _, failure := range result.Failures {
		s.logger.WarnContext(ctx, "import item rejected",
			"kind", string(failure.Kind),
			"id", failure.ID,
			"error", failure.Err,
		)
	}
	s.logger.InfoContext(ctx, "import finished",
		"teams", result.TeamsRegistered,
		"players", result.PlayersRegistered,
		"captains", result.CaptainsAssigned,
		"failures", len(result.Failures),
	)

	return result, nil
}

func (s *ImportService) importPlayers(ctx context.Context, items []player.Player) (int, []ImportFailure, error) {
	if len(items) == 0 {
		return 0, nil, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return 0, nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	failures := make(chan ImportFailure, len(items))
	var registered atomic.Int32

	var workers sync.WaitGroup
	for _, item := range items {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			err := s.registry.RegisterPlayer(ctx, RegisterPlayerInput{
				ID:         item.ID,
				TeamID:     item.TeamID,
				Name:       item.Name,
				BirthDate:  item.BirthDate,
				SkillLevel: item.SkillLevel,
				Salary:     item.Salary,
			})
			if err != nil {
				failures <- ImportFailure{Kind: ImportKindPlayer, ID: item.ID, Err: err}
				return
			}
			registered.Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return 0, nil, errors.Wrap(err, "submit player to worker pool")
		}
	}

	workers.Wait()
	close(failures)

	out := make([]ImportFailure, 0, len(failures))
	for failure := range failures {
		out = append(out, failure)
	}

	return int(registered.Load()), out, nil
}
