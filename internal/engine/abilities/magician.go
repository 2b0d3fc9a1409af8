package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// Magician (rank 3): Either swap hand with another player,
// or discard any number of cards and draw that many.
type Magician struct{}

func (m Magician) Role() engine.CharacterRole { return engine.RoleMagician }
func (m Magician) NeedsTarget() bool          { return true }
func (m Magician) Describe() string {
	return "action swap <player#> | action redraw <i,j,...>: trade hands, or replace cards from your hand"
}

func (m Magician) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	choice, err := g.ChooseMagic(ctx, actor, req.Magic)
	if err != nil {
		return nil, err
	}

	switch choice.Mode {
	case engine.MagicSwap:
		target := g.GetPlayer(choice.Target)
		if target == nil {
			return nil, engine.ErrInvalidTarget
		}
		actor.SwapHands(target)
		return []engine.Event{
			{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
				"ability": "magician", "mode": "swap_hand", "target": target.Name,
			}},
		}, nil

	default:
		// Indices are ascending; remove from the back so earlier ones stay valid.
		discarded := make([]engine.District, 0, len(choice.Discard))
		for i := len(choice.Discard) - 1; i >= 0; i-- {
			if d, ok := actor.RemoveFromHand(choice.Discard[i]); ok {
				discarded = append(discarded, d)
			}
		}
		g.Deck.Return(discarded)
		drawn := g.Deck.Draw(len(discarded))
		actor.Hand = append(actor.Hand, drawn...)
		return []engine.Event{
			{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
				"ability": "magician", "mode": "discard_draw", "count": len(discarded),
			}},
		}, nil
	}
}
