package abilities

import "citadels-console/internal/engine"

// Registry returns a registry holding all eight base-game abilities.
func Registry() *engine.AbilityRegistry {
	reg := engine.NewAbilityRegistry()
	reg.Register(Assassin{})
	reg.Register(Thief{})
	reg.Register(Magician{})
	reg.Register(King{})
	reg.Register(Bishop{})
	reg.Register(Merchant{})
	reg.Register(Architect{})
	reg.Register(Warlord{})
	return reg
}

// incomeOnly collects the role's color income and reports the ability use.
func incomeOnly(actor *engine.Player, role engine.CharacterRole, name string) []engine.Event {
	var events []engine.Event
	if ev := engine.CollectIncome(actor, role); ev != nil {
		events = append(events, *ev)
	}
	return append(events, engine.Event{Type: engine.EventAbilityUsed, Player: actor.ID, Data: map[string]any{
		"ability": name,
	}})
}
