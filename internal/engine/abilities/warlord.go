package abilities

import (
	"context"

	"citadels-console/internal/engine"
)

// Keep cannot be destroyed by the Warlord.
const Keep = "Keep"

// Warlord (rank 8): Collects gold for military (red) districts.
// Can destroy one district in another player's city by paying (cost - 1) gold.
type Warlord struct{}

func (w Warlord) Role() engine.CharacterRole { return engine.RoleWarlord }
func (w Warlord) NeedsTarget() bool          { return true }
func (w Warlord) Describe() string {
	return "action <player#> <district#>: gold for each military (red) district, then destroy a district for its cost - 1"
}

// Targets returns the players whose cities the Warlord may attack: not
// the actor, not an active Bishop, and holding at least one district.
func (w Warlord) Targets(g *engine.Game, actor *engine.Player) []*engine.Player {
	var targets []*engine.Player
	for _, p := range g.Players {
		if p.ID == actor.ID || len(p.City) == 0 {
			continue
		}
		if g.HasActiveRole(p.ID, engine.RoleBishop) {
			continue
		}
		targets = append(targets, p)
	}
	return targets
}

func (w Warlord) Resolve(ctx context.Context, g *engine.Game, actor *engine.Player, req engine.AbilityRequest) ([]engine.Event, error) {
	var events []engine.Event
	if ev := engine.CollectIncome(actor, engine.RoleWarlord); ev != nil {
		events = append(events, *ev)
	}
	used := engine.Event{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
		"ability": "warlord",
	}}
	if req.NoDestroy {
		return append(events, used), nil
	}

	choice, ok, err := g.ChooseDestruction(ctx, actor, w.Targets(g, actor), req.Destroy)
	if err != nil {
		return nil, err
	}
	if !ok {
		return append(events, used), nil
	}

	target := g.GetPlayer(choice.Target)
	d := target.City[choice.District]
	cost := d.Cost - 1
	if d.Name == Keep || cost > actor.Gold {
		reason := "not enough gold"
		if d.Name == Keep {
			reason = "protected"
		}
		events = append(events, engine.Event{Type: engine.EventDestroyRefused, Player: actor.ID, Data: map[string]any{
			"target": target.Name, "district": d.Name, "cost": cost, "reason": reason,
		}})
		return append(events, used), nil
	}

	actor.AddGold(-cost)
	target.DestroyDistrict(choice.District)
	events = append(events, engine.Event{Type: engine.EventDestroyed, Player: actor.ID, Data: map[string]any{
		"target":   target.Name,
		"district": d.Name,
		"cost":     cost,
	}})
	return append(events, used), nil
}
