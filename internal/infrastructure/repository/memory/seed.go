package memory

import (
	"time"

	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	"github.com/riskibarqy/team-registry/internal/platform/calendar"
	"github.com/shopspring/decimal"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Persija Jakarta", CreatedOn: calendar.NewDate(1928, time.November, 28), PrimaryColor: "Red", SecondaryColor: "White"},
		{ID: 2, Name: "Persib Bandung", CreatedOn: calendar.NewDate(1933, time.March, 14), PrimaryColor: "Blue", SecondaryColor: "White"},
		{ID: 3, Name: "Persebaya Surabaya", CreatedOn: calendar.NewDate(1927, time.June, 18), PrimaryColor: "Green", SecondaryColor: "Black"},
		{ID: 4, Name: "Bali United", CreatedOn: calendar.NewDate(2015, time.February, 15), PrimaryColor: "Red", SecondaryColor: "Black"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 10, TeamID: 1, Name: "Andritany Ardhiyasa", BirthDate: calendar.NewDate(1991, time.December, 26), SkillLevel: 78, Salary: decimal.RequireFromString("90000.00")},
		{ID: 11, TeamID: 1, Name: "Hansamu Yama", BirthDate: calendar.NewDate(1995, time.January, 16), SkillLevel: 74, Salary: decimal.RequireFromString("88000.00")},
		{ID: 12, TeamID: 1, Name: "Maciej Gajos", BirthDate: calendar.NewDate(1991, time.March, 19), SkillLevel: 84, Salary: decimal.RequireFromString("98000.50")},
		{ID: 20, TeamID: 2, Name: "Teja Paku Alam", BirthDate: calendar.NewDate(1994, time.September, 14), SkillLevel: 76, Salary: decimal.RequireFromString("85000.00")},
		{ID: 21, TeamID: 2, Name: "Nick Kuipers", BirthDate: calendar.NewDate(1992, time.October, 8), SkillLevel: 80, Salary: decimal.RequireFromString("92000.00")},
		{ID: 22, TeamID: 2, Name: "Marc Klok", BirthDate: calendar.NewDate(1993, time.April, 20), SkillLevel: 86, Salary: decimal.RequireFromString("99000.00")},
		{ID: 30, TeamID: 3, Name: "Dusan Stevanovic", BirthDate: calendar.NewDate(1996, time.May, 29), SkillLevel: 73, Salary: decimal.RequireFromString("84000.00")},
		{ID: 31, TeamID: 3, Name: "Bruno Moreira", BirthDate: calendar.NewDate(1989, time.July, 3), SkillLevel: 82, Salary: decimal.RequireFromString("95000.00")},
		{ID: 40, TeamID: 4, Name: "Ricky Fajrin", BirthDate: calendar.NewDate(1995, time.September, 6), SkillLevel: 72, Salary: decimal.RequireFromString("80000.00")},
		{ID: 41, TeamID: 4, Name: "Eber Bessa", BirthDate: calendar.NewDate(1992, time.March, 21), SkillLevel: 81, Salary: decimal.RequireFromString("97000.00")},
	}
}

// SeedCaptains lists player IDs to promote after the seed players are registered.
func SeedCaptains() []int64 {
	return []int64{12, 22, 31}
}
