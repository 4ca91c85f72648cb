package report

import (
	"context"
	"fmt"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/team-registry/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type teamSummary struct {
	TeamID              int64   `json:"team_id"`
	Name                string  `json:"name"`
	CaptainID           *int64  `json:"captain_id,omitempty"`
	Roster              []int64 `json:"roster"`
	BestPlayerID        *int64  `json:"best_player_id,omitempty"`
	OldestPlayerID      *int64  `json:"oldest_player_id,omitempty"`
	HighestPaidPlayerID *int64  `json:"highest_paid_player_id,omitempty"`
}

type leagueSummary struct {
	Teams      []teamSummary `json:"teams"`
	TopPlayers []int64       `json:"top_players"`
}

func toSummary(in usecase.LeagueReport) leagueSummary {
	out := leagueSummary{
		Teams:      make([]teamSummary, 0, len(in.Teams)),
		TopPlayers: in.TopPlayers,
	}
	if out.TopPlayers == nil {
		out.TopPlayers = []int64{}
	}
	for _, item := range in.Teams {
		roster := item.Roster
		if roster == nil {
			roster = []int64{}
		}
		out.Teams = append(out.Teams, teamSummary{
			TeamID:              item.TeamID,
			Name:                item.Name,
			CaptainID:           item.CaptainID,
			Roster:              roster,
			BestPlayerID:        item.BestPlayerID,
			OldestPlayerID:      item.OldestPlayerID,
			HighestPaidPlayerID: item.HighestPaidPlayerID,
		})
	}
	return out
}

// newEncoder is swapped in tests to force encoding failures.
var newEncoder = sonic.ConfigDefault.NewEncoder

// Write encodes the report as one JSON document followed by a newline. The
// document is staged in a pooled buffer, so nothing reaches w when encoding
// fails.
func Write(ctx context.Context, w io.Writer, in usecase.LeagueReport) error {
	_, span := startSpan(ctx, "report.Write")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := newEncoder(buf).Encode(toSummary(in)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
