package usecase

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/riskibarqy/team-registry/internal/platform/calendar"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/shopspring/decimal"
)

type RegisterTeamInput struct {
	ID             int64
	Name           string
	CreatedOn      calendar.Date
	PrimaryColor   string
	SecondaryColor string
}

type RegisterPlayerInput struct {
	ID         int64
	TeamID     int64
	Name       string
	BirthDate  calendar.Date
	SkillLevel int
	Salary     decimal.Decimal
}

// Registry owns every team and player write. Its lock also serialises
// QueryEngine reads so a scan never observes a half-applied registration.
type Registry struct {
	mu         sync.RWMutex
	teamRepo   team.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewRegistry(teamRepo team.Repository, playerRepo player.Repository, logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.Default()
	}
	return &Registry{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (r *Registry) RegisterTeam(ctx context.Context, input RegisterTeamInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.Registry.RegisterTeam")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	created, err := r.teamRepo.Create(ctx, team.Team{
		ID:             input.ID,
		Name:           input.Name,
		CreatedOn:      input.CreatedOn,
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
	})
	if err != nil {
		return errors.Wrap(err, "create team")
	}
	if !created {
		return errors.Wrapf(ErrDuplicateIdentifier, "team=%d", input.ID)
	}

	r.logger.DebugContext(ctx, "team registered", "team_id", input.ID, "name", input.Name)
	return nil
}

func (r *Registry) RegisterPlayer(ctx context.Context, input RegisterPlayerInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.Registry.RegisterPlayer")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists, err := r.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return errors.Wrap(err, "get team")
	}
	if !exists {
		return errors.Wrapf(ErrTeamNotFound, "team=%d", input.TeamID)
	}

	created, err := r.playerRepo.Create(ctx, player.Player{
		ID:         input.ID,
		TeamID:     input.TeamID,
		Name:       input.Name,
		BirthDate:  input.BirthDate,
		SkillLevel: input.SkillLevel,
		Salary:     input.Salary,
	})
	if err != nil {
		return errors.Wrap(err, "create player")
	}
	if !created {
		return errors.Wrapf(ErrDuplicateIdentifier, "player=%d", input.ID)
	}

	r.logger.DebugContext(ctx, "player registered", "player_id", input.ID, "team_id", input.TeamID)
	return nil
}

// AssignCaptain makes the player captain of its own team, replacing any previous captain.
func (r *Registry) AssignCaptain(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.Registry.AssignCaptain")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists, err := r.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return errors.Wrap(err, "get player")
	}
	if !exists {
		return errors.Wrapf(ErrPlayerNotFound, "player=%d", playerID)
	}

	// Teams are never removed, so the player's team is always present.
	if _, err := r.teamRepo.SetCaptain(ctx, item.TeamID, item.ID); err != nil {
		return errors.Wrap(err, "set captain")
	}

	r.logger.DebugContext(ctx, "captain assigned", "player_id", item.ID, "team_id", item.TeamID)
	return nil
}
