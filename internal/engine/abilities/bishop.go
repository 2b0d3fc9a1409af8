package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// Bishop (rank 5): Collects gold for religious (blue) districts.
// The Warlord cannot target the Bishop's city unless the Bishop was murdered.
type Bishop struct{}

func (b Bishop) Role() engine.CharacterRole { return engine.RoleBishop }
func (b Bishop) NeedsTarget() bool          { return false }
func (b Bishop) Describe() string {
	return "action: gold for each religious (blue) district; the Warlord cannot touch your city"
}

func (b Bishop) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	return incomeOnly(actor, engine.RoleBishop, "bishop"), nil
}
