package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// Thief (rank 2): Choose a rank from 3 to 8. When that character is called,
// the thief takes all their gold.
type Thief struct{}

func (t Thief) Role() engine.CharacterRole { return engine.RoleThief }
func (t Thief) NeedsTarget() bool          { return true }
func (t Thief) Describe() string {
	return "action <3-8>: rob a character; you get its gold when it is called"
}

func (t Thief) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	rank, err := g.ChooseRank(ctx, actor, engine.RoleThief, req.TargetRank, 3, engine.MaxRank)
	if err != nil {
		return nil, err
	}
	target, _ := engine.RoleByRank(rank)
	if err := g.Marks.MarkRobbed(target, actor); err != nil {
		return nil, err
	}
	return []engine.Event{
		{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
			"ability": "thief", "target_role": target.String(), "target_rank": rank,
		}},
	}, nil
}
