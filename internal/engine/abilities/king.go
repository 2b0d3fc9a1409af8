package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// King (rank 4): Collects gold for noble (yellow) districts and takes the crown.
type King struct{}

func (k King) Role() engine.CharacterRole { return engine.RoleKing }
func (k King) NeedsTarget() bool          { return false }
func (k King) Describe() string {
	return "action: gold for each noble (yellow) district, and take the crown"
}

func (k King) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	var events []engine.Event
	if ev := engine.CollectIncome(actor, engine.RoleKing); ev != nil {
		events = append(events, *ev)
	}
	if err := g.PassCrown(actor.ID); err != nil {
		return nil, err
	}
	events = append(events, engine.Event{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
		"ability": "king",
	}})
	return events, nil
}
