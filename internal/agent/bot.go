// Package agent holds the computer player.
package agent

import (
	"context"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"citadels-console/internal/engine"
	"citadels-console/internal/engine/abilities"
)

// Bot plays a simple greedy strategy from its own seeded source.
type Bot struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

func NewBot(seed uint64, log logrus.FieldLogger) *Bot {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Bot{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log: log,
	}
}

// ChooseCharacter picks uniformly from what is on offer.
func (b *Bot) ChooseCharacter(ctx context.Context, p *engine.Player, offer engine.DraftOffer) (string, error) {
	if len(offer.Available) == 0 {
		return "", nil
	}
	return offer.Available[b.rng.IntN(len(offer.Available))].String(), nil
}

// PlayTurn draws when the hand is nearly empty and takes gold otherwise,
// uses the role's ability, then builds the dearest affordable districts.
func (b *Bot) PlayTurn(ctx context.Context, t *engine.Turn) error {
	p := t.Player()
	log := b.log.WithField("player", p.Name).WithField("role", t.Role().String())

	if len(p.Hand) <= 1 {
		drawn, err := t.DrawCards()
		if err != nil {
			return err
		}
		if len(t.PendingDraw()) > 0 {
			if err := t.KeepCard(dearest(drawn)); err != nil {
				return err
			}
		}
	} else if err := t.TakeGold(); err != nil {
		return err
	}

	if _, err := t.UseAbility(ctx, engine.AbilityRequest{}); err != nil {
		return err
	}

	for t.BuildsLeft() > 0 {
		i := bestBuild(p)
		if i < 0 {
			break
		}
		d, err := t.Build(i)
		if err != nil {
			return err
		}
		log.WithField("district", d.Name).Debug("bot built")
	}
	return nil
}

// ChooseRank targets a random rank in range.
func (b *Bot) ChooseRank(ctx context.Context, p *engine.Player, role engine.CharacterRole, min, max int) (int, error) {
	return min + b.rng.IntN(max-min+1), nil
}

// ChooseMagic swaps with the biggest hand when it beats its own, and
// otherwise redraws every card it cannot pay for.
func (b *Bot) ChooseMagic(ctx context.Context, p *engine.Player, others []*engine.Player) (engine.MagicChoice, error) {
	var richest *engine.Player
	for _, o := range others {
		if richest == nil || len(o.Hand) > len(richest.Hand) {
			richest = o
		}
	}
	if richest != nil && len(richest.Hand) > len(p.Hand) {
		return engine.MagicChoice{Mode: engine.MagicSwap, Target: richest.ID}, nil
	}
	var discard []int
	for i, d := range p.Hand {
		if d.Cost > p.Gold {
			discard = append(discard, i)
		}
	}
	return engine.MagicChoice{Mode: engine.MagicRedraw, Discard: discard}, nil
}

// ChooseDestruction destroys the dearest district it can pay for, picking
// among equally priced ones at random. It declines when nothing is
// affordable.
func (b *Bot) ChooseDestruction(ctx context.Context, p *engine.Player, targets []*engine.Player) (engine.DestroyChoice, bool, error) {
	var options []engine.DestroyChoice
	best := -1
	for _, t := range targets {
		for i, d := range t.City {
			cost := d.Cost - 1
			if d.Name == abilities.Keep || cost > p.Gold || cost < best {
				continue
			}
			if cost > best {
				best = cost
				options = options[:0]
			}
			options = append(options, engine.DestroyChoice{Target: t.ID, District: i})
		}
	}
	if len(options) == 0 {
		return engine.DestroyChoice{}, false, nil
	}
	return options[b.rng.IntN(len(options))], true, nil
}

func dearest(cards []engine.District) int {
	best := 0
	for i, d := range cards {
		if d.Cost > cards[best].Cost {
			best = i
		}
	}
	return best
}

// bestBuild returns the hand index of the most expensive district the
// player can afford and has not built yet, or -1.
func bestBuild(p *engine.Player) int {
	best := -1
	for i, d := range p.Hand {
		if d.Cost > p.Gold || p.CityHas(d.Name) {
			continue
		}
		if best < 0 || d.Cost > p.Hand[best].Cost {
			best = i
		}
	}
	return best
}
