package player

import "context"

// Repository describes player storage needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) (bool, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	List(ctx context.Context) ([]Player, error)
}
