package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// Merchant (rank 6): Collects gold for trade (green) districts, plus 1 gold.
type Merchant struct{}

func (m Merchant) Role() engine.CharacterRole { return engine.RoleMerchant }
func (m Merchant) NeedsTarget() bool          { return false }
func (m Merchant) Describe() string {
	return "action: 1 gold, plus gold for each trade (green) district"
}

func (m Merchant) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	events := incomeOnly(actor, engine.RoleMerchant, "merchant")
	actor.AddGold(1)
	events[len(events)-1].Data["bonus"] = 1
	return events, nil
}
