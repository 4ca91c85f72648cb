package player

import (
	"github.com/riskibarqy/team-registry/internal/platform/calendar"
	"github.com/shopspring/decimal"
)

// Player belongs to exactly one team for its whole lifetime.
type Player struct {
	ID         int64
	TeamID     int64
	Name       string
	BirthDate  calendar.Date
	SkillLevel int
	Salary     decimal.Decimal
}

// Better reports whether p ranks above other by skill. Equal skill falls back
// to the lower ID so rankings stay stable.
func Better(p, other Player) bool {
	if p.SkillLevel != other.SkillLevel {
		return p.SkillLevel > other.SkillLevel
	}
	return p.ID < other.ID
}

// Older reports whether p was born before other, lower ID first on equal dates.
func Older(p, other Player) bool {
	if p.BirthDate != other.BirthDate {
		return p.BirthDate.Before(other.BirthDate)
	}
	return p.ID < other.ID
}

// BetterPaid compares salaries exactly, lower ID first on equal amounts.
func BetterPaid(p, other Player) bool {
	if cmp := p.Salary.Cmp(other.Salary); cmp != 0 {
		return cmp > 0
	}
	return p.ID < other.ID
}
