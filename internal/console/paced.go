package console

import (
	"context"

	"citadels-console/internal/engine"
)

// Paced wraps a computer player's Agent. Before each of its turns the
// human presses "t"; with debug on the computer's hand is shown first.
type Paced struct {
	engine.Agent
	human *Human
	wait  bool
}

func NewPaced(a engine.Agent, human *Human, wait bool) *Paced {
	return &Paced{Agent: a, human: human, wait: wait}
}

func (p *Paced) PlayTurn(ctx context.Context, t *engine.Turn) error {
	if p.wait {
		if err := p.human.WaitTurn(ctx); err != nil {
			return err
		}
	}
	if p.human.Debug() {
		pl := t.Player()
		C.Debug.Fprintf(p.human.out, "[debug] %s has %d gold.\n", pl.Name, pl.Gold)
		RenderCards(p.human.out, "[debug] "+pl.Name+"'s hand", pl.Hand)
	}
	return p.Agent.PlayTurn(ctx, t)
}
