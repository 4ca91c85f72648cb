package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/team-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/team-registry/internal/platform/calendar"
	"github.com/shopspring/decimal"
)

func newMemoryEngine() (*Registry, *QueryEngine) {
	registry := NewRegistry(memory.NewTeamRepository(), memory.NewPlayerRepository(), nil)
	return registry, NewQueryEngine(registry)
}

func mustRegisterTeam(t *testing.T, registry *Registry, id int64, name, primary, secondary string) {
	t.Helper()

	err := registry.RegisterTeam(context.Background(), RegisterTeamInput{
		ID:             id,
		Name:           name,
		CreatedOn:      calendar.NewDate(2020, time.January, 1),
		PrimaryColor:   primary,
		SecondaryColor: secondary,
	})
	if err != nil {
		t.Fatalf("register team %d: %v", id, err)
	}
}

func mustRegisterPlayer(t *testing.T, registry *Registry, id, teamID int64, skill int, salary string, born calendar.Date) {
	t.Helper()

	err := registry.RegisterPlayer(context.Background(), RegisterPlayerInput{
		ID:         id,
		TeamID:     teamID,
		Name:       "player",
		BirthDate:  born,
		SkillLevel: skill,
		Salary:     decimal.RequireFromString(salary),
	})
	if err != nil {
		t.Fatalf("register player %d: %v", id, err)
	}
}

// seedScenario registers two teams with one player each:
// team 1 Red/White with player 10 (skill 8, 1000, 1990-01-01) and
// team 2 Blue/White with player 20 (skill 9, 2000, 1985-01-01).
func seedScenario(t *testing.T, registry *Registry) {
	t.Helper()

	mustRegisterTeam(t, registry, 1, "Red", "Red", "White")
	mustRegisterTeam(t, registry, 2, "Blue", "Blue", "White")
	mustRegisterPlayer(t, registry, 10, 1, 8, "1000", calendar.NewDate(1990, time.January, 1))
	mustRegisterPlayer(t, registry, 20, 2, 9, "2000", calendar.NewDate(1985, time.January, 1))
}
