package team

import "github.com/riskibarqy/team-registry/internal/platform/calendar"

// Team is a registered club. CaptainID stays nil until a captain is assigned.
type Team struct {
	ID             int64
	Name           string
	CreatedOn      calendar.Date
	PrimaryColor   string
	SecondaryColor string
	CaptainID      *int64
}

func (t Team) HasCaptain() bool {
	return t.CaptainID != nil
}

// AwayColor picks the jersey an away team wears against home: its secondary
// colour when both primaries match, its primary otherwise.
func AwayColor(home, away Team) string {
	if home.PrimaryColor == away.PrimaryColor {
		return away.SecondaryColor
	}
	return away.PrimaryColor
}
