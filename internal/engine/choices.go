package engine

import (
	"context"
	"fmt"
	"slices"
)

// maxBotAttempts bounds how often an automated agent is re-asked after an
// invalid answer before the engine picks for it. Humans are asked until
// they answer correctly.
const maxBotAttempts = 3

func (g *Game) rejected(p *Player, what string, input any) {
	g.emit(Event{Type: EventInputRejected, Player: p.ID, Data: map[string]any{
		"choice": what, "input": input,
	}})
}

// ChooseRank resolves a target rank in [min, max]. A preset inside the
// range is used as-is; otherwise the actor's agent is asked until it
// answers within range.
func (g *Game) ChooseRank(ctx context.Context, actor *Player, role CharacterRole, preset, min, max int) (int, error) {
	if preset >= min && preset <= max {
		return preset, nil
	}
	if preset != 0 {
		g.rejected(actor, "rank", preset)
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		r, err := actor.Agent.ChooseRank(ctx, actor, role, min, max)
		if err != nil {
			return 0, fmt.Errorf("%s rank choice: %w", actor.Name, err)
		}
		if r >= min && r <= max {
			return r, nil
		}
		g.rejected(actor, "rank", r)
		if !actor.IsHuman() && attempt >= maxBotAttempts {
			return min + g.rng.IntN(max-min+1), nil
		}
	}
}

// ChooseMagic resolves the Magician's choice, asking the agent when the
// preset is missing or invalid.
func (g *Game) ChooseMagic(ctx context.Context, actor *Player, preset *MagicChoice) (MagicChoice, error) {
	if preset != nil {
		if c, ok := g.validMagic(actor, *preset); ok {
			return c, nil
		}
		g.rejected(actor, "magic", *preset)
	}
	others := g.Others(actor)
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return MagicChoice{}, err
		}
		c, err := actor.Agent.ChooseMagic(ctx, actor, others)
		if err != nil {
			return MagicChoice{}, fmt.Errorf("%s magic choice: %w", actor.Name, err)
		}
		if v, ok := g.validMagic(actor, c); ok {
			return v, nil
		}
		g.rejected(actor, "magic", c)
		if !actor.IsHuman() && attempt >= maxBotAttempts {
			return MagicChoice{Mode: MagicRedraw}, nil
		}
	}
}

// validMagic checks a choice and normalizes redraw indices (deduplicated,
// ascending).
func (g *Game) validMagic(actor *Player, c MagicChoice) (MagicChoice, bool) {
	switch c.Mode {
	case MagicSwap:
		t := g.GetPlayer(c.Target)
		if t == nil || t.ID == actor.ID {
			return c, false
		}
		return c, true
	case MagicRedraw:
		seen := make(map[int]bool, len(c.Discard))
		var idx []int
		for _, i := range c.Discard {
			if i < 0 || i >= len(actor.Hand) {
				return c, false
			}
			if !seen[i] {
				seen[i] = true
				idx = append(idx, i)
			}
		}
		slices.Sort(idx)
		return MagicChoice{Mode: MagicRedraw, Discard: idx}, true
	}
	return c, false
}

// ChooseDestruction resolves the Warlord's target among eligible players.
// It returns false when the agent declines or nobody is eligible.
func (g *Game) ChooseDestruction(ctx context.Context, actor *Player, eligible []*Player, preset *DestroyChoice) (DestroyChoice, bool, error) {
	if len(eligible) == 0 {
		return DestroyChoice{}, false, nil
	}
	if preset != nil {
		if validDestroy(eligible, *preset) {
			return *preset, true, nil
		}
		g.rejected(actor, "destroy", *preset)
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return DestroyChoice{}, false, err
		}
		c, ok, err := actor.Agent.ChooseDestruction(ctx, actor, eligible)
		if err != nil {
			return DestroyChoice{}, false, fmt.Errorf("%s destroy choice: %w", actor.Name, err)
		}
		if !ok {
			return DestroyChoice{}, false, nil
		}
		if validDestroy(eligible, c) {
			return c, true, nil
		}
		g.rejected(actor, "destroy", c)
		if !actor.IsHuman() && attempt >= maxBotAttempts {
			return DestroyChoice{}, false, nil
		}
	}
}

func validDestroy(eligible []*Player, c DestroyChoice) bool {
	for _, p := range eligible {
		if p.ID == c.Target {
			return c.District >= 0 && c.District < len(p.City)
		}
	}
	return false
}
