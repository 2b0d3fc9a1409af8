package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// Architect (rank 7): Draws 2 extra cards when called and can build up to
// 3 districts. Both happen without invoking the ability.
type Architect struct{}

func (a Architect) Role() engine.CharacterRole { return engine.RoleArchitect }
func (a Architect) NeedsTarget() bool          { return false }
func (a Architect) Describe() string {
	return "passive: you drew 2 extra cards and may build up to 3 districts this turn"
}

func (a Architect) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	return []engine.Event{
		{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
			"ability": "architect", "build_limit": engine.RoleArchitect.BuildLimit(),
		}},
	}, nil
}
