package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/iter"
)

type TeamReport struct {
	TeamID              int64
	Name                string
	CaptainID           *int64
	Roster              []int64
	BestPlayerID        *int64
	OldestPlayerID      *int64
	HighestPaidPlayerID *int64
}

type LeagueReport struct {
	Teams      []TeamReport
	TopPlayers []int64
}

type ReportService struct {
	query *QueryEngine
}

func NewReportService(query *QueryEngine) *ReportService {
	return &ReportService{query: query}
}

// Build summarises every team concurrently. Each summary is assembled from
// individual queries, so registrations racing with Build may show up in some
// fields and not others.
func (s *ReportService) Build(ctx context.Context, topN int) (LeagueReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Build")
	defer span.End()

	teamIDs, err := s.query.GetAllTeamIDs(ctx)
	if err != nil {
		return LeagueReport{}, errors.Wrap(err, "list team ids")
	}

	teams, err := iter.MapErr(teamIDs, func(teamID *int64) (TeamReport, error) {
		return s.teamReport(ctx, *teamID)
	})
	if err != nil {
		return LeagueReport{}, err
	}

	top, err := s.query.GetTopPlayers(ctx, topN)
	if err != nil {
		return LeagueReport{}, errors.Wrap(err, "get top players")
	}

	return LeagueReport{
		Teams:      teams,
		TopPlayers: top,
	}, nil
}

func (s *ReportService) teamReport(ctx context.Context, teamID int64) (TeamReport, error) {
	name, err := s.query.GetTeamName(ctx, teamID)
	if err != nil {
		return TeamReport{}, errors.Wrapf(err, "team report %d", teamID)
	}
	roster, err := s.query.GetTeamRoster(ctx, teamID)
	if err != nil {
		return TeamReport{}, errors.Wrapf(err, "team report %d", teamID)
	}

	out := TeamReport{
		TeamID: teamID,
		Name:   name,
		Roster: roster,
	}

	captainID, err := s.query.GetCaptain(ctx, teamID)
	switch {
	case err == nil:
		out.CaptainID = &captainID
	case !errors.Is(err, ErrCaptainNotAssigned):
		return TeamReport{}, errors.Wrapf(err, "team report %d", teamID)
	}

	pickers := []struct {
		pick func(context.Context, int64) (int64, error)
		dst  **int64
	}{
		{pick: s.query.GetBestPlayer, dst: &out.BestPlayerID},
		{pick: s.query.GetOldestPlayer, dst: &out.OldestPlayerID},
		{pick: s.query.GetHighestPaidPlayer, dst: &out.HighestPaidPlayerID},
	}
	for _, p := range pickers {
		playerID, err := p.pick(ctx, teamID)
		if errors.Is(err, ErrPlayerNotFound) {
			continue
		}
		if err != nil {
			return TeamReport{}, errors.Wrapf(err, "team report %d", teamID)
		}
		*p.dst = &playerID
	}

	return out, nil
}
