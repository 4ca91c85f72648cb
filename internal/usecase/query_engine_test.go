package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	playermock "github.com/riskibarqy/team-registry/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/team-registry/internal/mocks/domain/team"
	"github.com/riskibarqy/team-registry/internal/platform/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestQueryEngine_Scenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	seedScenario(t, registry)

	best, err := query.GetBestPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("get best player: %v", err)
	}
	if best != 10 {
		t.Fatalf("unexpected best player: got=%d want=10", best)
	}

	color, err := query.GetAwayJerseyColor(ctx, 1, 2)
	if err != nil {
		t.Fatalf("get away jersey color: %v", err)
	}
	if color != "Blue" {
		t.Fatalf("unexpected away color: got=%q want=Blue", color)
	}

	name, err := query.GetPlayerName(ctx, 20)
	if err != nil {
		t.Fatalf("get player name: %v", err)
	}
	if name != "player" {
		t.Fatalf("unexpected player name: %q", name)
	}

	salary, err := query.GetPlayerSalary(ctx, 20)
	if err != nil {
		t.Fatalf("get player salary: %v", err)
	}
	if !salary.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected salary: %s", salary)
	}

	ids, err := query.GetAllTeamIDs(ctx)
	if err != nil {
		t.Fatalf("get all team ids: %v", err)
	}
	if !slices.Equal(ids, []int64{1, 2}) {
		t.Fatalf("unexpected team ids: %v", ids)
	}
}

func TestQueryEngine_AwayJerseyColorClash(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	mustRegisterTeam(t, registry, 1, "Red", "Red", "White")
	mustRegisterTeam(t, registry, 2, "Also Red", "Red", "White")

	color, err := query.GetAwayJerseyColor(ctx, 1, 2)
	if err != nil {
		t.Fatalf("get away jersey color: %v", err)
	}
	if color != "White" {
		t.Fatalf("expected secondary on clash, got %q", color)
	}
}

func TestQueryEngine_AwayJerseyColorUnknownTeams(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	seedScenario(t, registry)

	tests := []struct {
		name       string
		home, away int64
	}{
		{name: "unknown home", home: 999, away: 2},
		{name: "unknown away", home: 1, away: 999},
		{name: "both unknown", home: 998, away: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := query.GetAwayJerseyColor(ctx, tt.home, tt.away); !errors.Is(err, ErrTeamNotFound) {
				t.Fatalf("expected ErrTeamNotFound, got %v", err)
			}
		})
	}
}

func TestQueryEngine_UnknownIdentifiers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	seedScenario(t, registry)

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{name: "captain", want: ErrTeamNotFound, call: func() error { _, err := query.GetCaptain(ctx, 999); return err }},
		{name: "team name", want: ErrTeamNotFound, call: func() error { _, err := query.GetTeamName(ctx, 999); return err }},
		{name: "roster", want: ErrTeamNotFound, call: func() error { _, err := query.GetTeamRoster(ctx, 999); return err }},
		{name: "best", want: ErrTeamNotFound, call: func() error { _, err := query.GetBestPlayer(ctx, 999); return err }},
		{name: "oldest", want: ErrTeamNotFound, call: func() error { _, err := query.GetOldestPlayer(ctx, 999); return err }},
		{name: "highest paid", want: ErrTeamNotFound, call: func() error { _, err := query.GetHighestPaidPlayer(ctx, 999); return err }},
		{name: "player name", want: ErrPlayerNotFound, call: func() error { _, err := query.GetPlayerName(ctx, 999); return err }},
		{name: "player salary", want: ErrPlayerNotFound, call: func() error { _, err := query.GetPlayerSalary(ctx, 999); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestQueryEngine_Superlatives(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	mustRegisterTeam(t, registry, 1, "Red", "Red", "White")
	mustRegisterTeam(t, registry, 2, "Blue", "Blue", "White")

	born := calendar.NewDate(1990, time.June, 1)
	mustRegisterPlayer(t, registry, 14, 1, 7, "1500.50", calendar.NewDate(1988, time.March, 3))
	mustRegisterPlayer(t, registry, 12, 1, 9, "1500.5", born)
	mustRegisterPlayer(t, registry, 13, 1, 9, "999.99", calendar.NewDate(1988, time.March, 3))
	mustRegisterPlayer(t, registry, 11, 1, 3, "1500.49", born)
	// Team 2 holds the global extremes; they must never leak into team 1 answers.
	mustRegisterPlayer(t, registry, 20, 2, 99, "1000000", calendar.NewDate(1950, time.January, 1))

	best, err := query.GetBestPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("get best player: %v", err)
	}
	if best != 12 {
		t.Fatalf("expected lowest id among skill ties, got %d", best)
	}

	oldest, err := query.GetOldestPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("get oldest player: %v", err)
	}
	if oldest != 13 {
		t.Fatalf("expected lowest id among birth ties, got %d", oldest)
	}

	paid, err := query.GetHighestPaidPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("get highest paid player: %v", err)
	}
	if paid != 12 {
		t.Fatalf("expected 1500.5 == 1500.50 tie to go to lowest id, got %d", paid)
	}
}

func TestQueryEngine_SuperlativesOnEmptyRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	mustRegisterTeam(t, registry, 1, "Empty", "Red", "White")

	roster, err := query.GetTeamRoster(ctx, 1)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if roster == nil || len(roster) != 0 {
		t.Fatalf("expected empty non-nil roster, got %v", roster)
	}

	for name, pick := range map[string]func(context.Context, int64) (int64, error){
		"best":         query.GetBestPlayer,
		"oldest":       query.GetOldestPlayer,
		"highest paid": query.GetHighestPaidPlayer,
	} {
		if _, err := pick(ctx, 1); !errors.Is(err, ErrPlayerNotFound) {
			t.Fatalf("%s: expected ErrPlayerNotFound, got %v", name, err)
		}
	}
}

func TestQueryEngine_RosterIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	seedScenario(t, registry)

	before, err := query.GetTeamRoster(ctx, 1)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}

	mustRegisterPlayer(t, registry, 21, 2, 1, "1", calendar.NewDate(2001, time.January, 1))
	mustRegisterPlayer(t, registry, 5, 1, 1, "1", calendar.NewDate(2001, time.January, 1))

	after, err := query.GetTeamRoster(ctx, 1)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if !slices.Equal(before, []int64{10}) {
		t.Fatalf("unexpected initial roster: %v", before)
	}
	if !slices.Equal(after, []int64{5, 10}) {
		t.Fatalf("unexpected roster after registrations: %v", after)
	}
}

func TestQueryEngine_GetTopPlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	seedScenario(t, registry)

	tests := []struct {
		name string
		n    int
		want []int64
	}{
		{name: "fewer players than n", n: 5, want: []int64{20, 10}},
		{name: "exact", n: 2, want: []int64{20, 10}},
		{name: "truncated", n: 1, want: []int64{20}},
		{name: "zero", n: 0, want: []int64{}},
		{name: "negative", n: -3, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.GetTopPlayers(ctx, tt.n)
			if err != nil {
				t.Fatalf("get top players: %v", err)
			}
			if got == nil || !slices.Equal(got, tt.want) {
				t.Fatalf("unexpected top players: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestQueryEngine_GetTopPlayersOrdering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	mustRegisterTeam(t, registry, 1, "Red", "Red", "White")
	mustRegisterTeam(t, registry, 2, "Blue", "Blue", "White")

	born := calendar.NewDate(1990, time.January, 1)
	skills := map[int64]int{31: 5, 7: 9, 12: 5, 40: 7, 3: 9, 18: 1}
	for id, skill := range skills {
		teamID := int64(1)
		if id%2 == 0 {
			teamID = 2
		}
		mustRegisterPlayer(t, registry, id, teamID, skill, "1", born)
	}

	got, err := query.GetTopPlayers(ctx, 10)
	if err != nil {
		t.Fatalf("get top players: %v", err)
	}
	want := []int64{3, 7, 40, 12, 31, 18}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected ranking: got=%v want=%v", got, want)
	}

	seen := make(map[int64]struct{}, len(got))
	for i, id := range got {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d in ranking", id)
		}
		seen[id] = struct{}{}
		if i > 0 && skills[got[i-1]] < skills[id] {
			t.Fatalf("ranking not non-increasing at %d: %v", i, got)
		}
	}
}

func TestQueryEngine_ConcurrentRegistrationAndQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry, query := newMemoryEngine()
	mustRegisterTeam(t, registry, 1, "Red", "Red", "White")

	const players = 200
	born := calendar.NewDate(1990, time.January, 1)

	var wg sync.WaitGroup
	errCh := make(chan error, players*2)
	for i := 1; i <= players; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			errCh <- registry.RegisterPlayer(ctx, RegisterPlayerInput{
				ID:         id,
				TeamID:     1,
				BirthDate:  born,
				SkillLevel: int(id % 10),
				Salary:     decimal.NewFromInt(id),
			})
		}(int64(i))
		go func() {
			defer wg.Done()
			roster, err := query.GetTeamRoster(ctx, 1)
			if err == nil && !slices.IsSorted(roster) {
				err = errors.New("roster not sorted")
			}
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	roster, err := query.GetTeamRoster(ctx, 1)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if len(roster) != players {
		t.Fatalf("unexpected roster size: got=%d want=%d", len(roster), players)
	}

	paid, err := query.GetHighestPaidPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("get highest paid: %v", err)
	}
	if paid != players {
		t.Fatalf("unexpected highest paid: got=%d want=%d", paid, players)
	}
}

func TestQueryEngine_PropagatesStorageErrorsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storageErr := errors.New("storage offline")
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	query := NewQueryEngine(NewRegistry(teamRepo, playerRepo, nil))

	teamRepo.
		On("GetByID", mock.Anything, int64(1)).
		Return(team.Team{ID: 1}, true, nil).
		Once()
	playerRepo.
		On("ListByTeam", mock.Anything, int64(1)).
		Return([]player.Player(nil), storageErr).
		Once()
	playerRepo.
		On("List", mock.Anything).
		Return([]player.Player(nil), storageErr).
		Once()
	teamRepo.
		On("ListIDs", mock.Anything).
		Return([]int64(nil), storageErr).
		Once()

	if _, err := query.GetBestPlayer(ctx, 1); !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error from roster, got %v", err)
	}
	if _, err := query.GetTopPlayers(ctx, 3); !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error from list, got %v", err)
	}
	if _, err := query.GetAllTeamIDs(ctx); !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error from list ids, got %v", err)
	}
}

func TestQueryEngine_SortsRosterFromUnorderedStorageUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	query := NewQueryEngine(NewRegistry(teamRepo, playerRepo, nil))

	teamRepo.
		On("GetByID", mock.Anything, int64(1)).
		Return(team.Team{ID: 1}, true, nil).
		Once()
	playerRepo.
		On("ListByTeam", mock.Anything, int64(1)).
		Return([]player.Player{{ID: 30, TeamID: 1}, {ID: 10, TeamID: 1}, {ID: 20, TeamID: 1}}, nil).
		Once()

	roster, err := query.GetTeamRoster(ctx, 1)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if !slices.Equal(roster, []int64{10, 20, 30}) {
		t.Fatalf("unexpected roster order: %v", roster)
	}
}
