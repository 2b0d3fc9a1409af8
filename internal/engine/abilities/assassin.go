package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// Assassin (rank 1): Choose a rank from 2 to 8. That character skips their turn.
type Assassin struct{}

func (a Assassin) Role() engine.CharacterRole { return engine.RoleAssassin }
func (a Assassin) NeedsTarget() bool          { return true }
func (a Assassin) Describe() string {
	return "action <2-8>: murder a character; it loses its whole turn"
}

func (a Assassin) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	rank, err := g.ChooseRank(ctx, actor, engine.RoleAssassin, req.TargetRank, 2, engine.MaxRank)
	if err != nil {
		return nil, err
	}
	target, _ := engine.RoleByRank(rank)
	if err := g.Marks.MarkAssassinated(target); err != nil {
		return nil, err
	}
	return []engine.Event{
		{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
			"ability": "assassin", "target_role": target.String(), "target_rank": rank,
		}},
	}, nil
}
