// Package seedfile reads import batches from JSON documents.
package seedfile

import (
	"context"
	"fmt"
	"io"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/riskibarqy/team-registry/internal/platform/calendar"
	"github.com/riskibarqy/team-registry/internal/usecase"
	"github.com/shopspring/decimal"
)

type teamPayload struct {
	ID             *int64 `json:"id" validate:"required"`
	Name           string `json:"name"`
	CreatedOn      string `json:"created_on" validate:"required,datetime=2006-01-02"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

type playerPayload struct {
	ID         *int64           `json:"id" validate:"required"`
	TeamID     *int64           `json:"team_id" validate:"required"`
	Name       string           `json:"name"`
	BirthDate  string           `json:"birth_date" validate:"required,datetime=2006-01-02"`
	SkillLevel *int             `json:"skill_level" validate:"required"`
	Salary     *decimal.Decimal `json:"salary" validate:"required"`
}

type batchPayload struct {
	Teams    []teamPayload   `json:"teams" validate:"unique=ID,dive"`
	Players  []playerPayload `json:"players" validate:"unique=ID,dive"`
	Captains []int64         `json:"captains"`
}

type Loader struct {
	validator *validator.Validate
}

func NewLoader() *Loader {
	return &Loader{validator: validator.New()}
}

func (l *Loader) LoadFile(ctx context.Context, path string) (usecase.ImportBatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return usecase.ImportBatch{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return l.Load(ctx, f)
}

// Load decodes and validates one batch. Unknown fields, missing required
// fields and repeated IDs inside a section are rejected with ErrInvalidInput.
func (l *Loader) Load(ctx context.Context, r io.Reader) (usecase.ImportBatch, error) {
	var payload batchPayload
	decoder := sonic.ConfigDefault.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return usecase.ImportBatch{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := l.validator.StructCtx(ctx, payload); err != nil {
		return usecase.ImportBatch{}, fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return payload.toBatch()
}

func (p batchPayload) toBatch() (usecase.ImportBatch, error) {
	out := usecase.ImportBatch{
		Teams:    make([]team.Team, 0, len(p.Teams)),
		Players:  make([]player.Player, 0, len(p.Players)),
		Captains: append([]int64(nil), p.Captains...),
	}

	for _, item := range p.Teams {
		createdOn, err := calendar.Parse(item.CreatedOn)
		if err != nil {
			return usecase.ImportBatch{}, fmt.Errorf("%w: team=%d: %v", usecase.ErrInvalidInput, *item.ID, err)
		}
		out.Teams = append(out.Teams, team.Team{
			ID:             *item.ID,
			Name:           item.Name,
			CreatedOn:      createdOn,
			PrimaryColor:   item.PrimaryColor,
			SecondaryColor: item.SecondaryColor,
		})
	}

	for _, item := range p.Players {
		birthDate, err := calendar.Parse(item.BirthDate)
		if err != nil {
			return usecase.ImportBatch{}, fmt.Errorf("%w: player=%d: %v", usecase.ErrInvalidInput, *item.ID, err)
		}
		out.Players = append(out.Players, player.Player{
			ID:         *item.ID,
			TeamID:     *item.TeamID,
			Name:       item.Name,
			BirthDate:  birthDate,
			SkillLevel: *item.SkillLevel,
			Salary:     *item.Salary,
		})
	}

	return out, nil
}
