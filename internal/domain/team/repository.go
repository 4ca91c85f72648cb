package team

import "context"

// Repository describes team storage needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) (bool, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	SetCaptain(ctx context.Context, teamID, playerID int64) (bool, error)
	ListIDs(ctx context.Context) ([]int64, error)
}
