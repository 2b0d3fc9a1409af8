package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"citadels-console/internal/engine"
	"citadels-console/internal/storage"
)

// Human is the Agent for the player at the keyboard.
type Human struct {
	in    LineReader
	out   io.Writer
	repo  storage.Repository
	game  *engine.Game
	debug bool
}

// NewHuman reads from in and writes to out. repo may be nil, which
// disables save and load.
func NewHuman(in LineReader, out io.Writer, repo storage.Repository) *Human {
	return &Human{in: in, out: out, repo: repo}
}

// Attach binds the game the commands act on.
func (h *Human) Attach(g *engine.Game) { h.game = g }

// Debug reports whether computer hands should be shown.
func (h *Human) Debug() bool { return h.debug }

func (h *Human) SetDebug(on bool) { h.debug = on }

func (h *Human) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return readLine(h.in, prompt)
}

func (h *Human) ChooseCharacter(ctx context.Context, p *engine.Player, offer engine.DraftOffer) (string, error) {
	if len(offer.FaceUp) > 0 {
		names := make([]string, len(offer.FaceUp))
		for i, r := range offer.FaceUp {
			names[i] = r.String()
		}
		fmt.Fprintf(h.out, "Face-up: %s\n", strings.Join(names, ", "))
	}
	C.Prompt.Fprintln(h.out, "Choose your character. Available characters:")
	for _, r := range offer.Available {
		fmt.Fprintf(h.out, " %d. %s\n", r.Rank(), r)
	}
	for {
		line, err := h.ask(ctx, "> ")
		if err != nil {
			return "", err
		}
		if handled, err := h.lookCommand(ctx, line, p); handled || err != nil {
			if err != nil {
				return "", err
			}
			continue
		}
		if n, err := strconv.Atoi(line); err == nil {
			if r, ok := engine.RoleByRank(n); ok {
				return r.String(), nil
			}
		}
		return line, nil
	}
}

func (h *Human) ChooseRank(ctx context.Context, p *engine.Player, role engine.CharacterRole, min, max int) (int, error) {
	verb := "assassinate"
	if role == engine.RoleThief {
		verb = "rob"
	}
	for r := min; r <= max; r++ {
		c, _ := engine.RoleByRank(r)
		fmt.Fprintf(h.out, " %d. %s\n", r, c)
	}
	for {
		line, err := h.ask(ctx, fmt.Sprintf("Enter the character number to %s (%d-%d): ", verb, min, max))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			C.Warn.Fprintln(h.out, "Please enter a valid number.")
			continue
		}
		return n, nil
	}
}

func (h *Human) ChooseMagic(ctx context.Context, p *engine.Player, others []*engine.Player) (engine.MagicChoice, error) {
	for {
		line, err := h.ask(ctx, "Choose: 1. Swap hands  2. Redraw  > ")
		if err != nil {
			return engine.MagicChoice{}, err
		}
		switch strings.ToLower(line) {
		case "1", "swap":
			h.printOthers(others)
			line, err := h.ask(ctx, "Enter player number to swap with: ")
			if err != nil {
				return engine.MagicChoice{}, err
			}
			return engine.MagicChoice{Mode: engine.MagicSwap, Target: h.playerID(line)}, nil
		case "2", "redraw":
			RenderCards(h.out, "Your hand", p.Hand)
			line, err := h.ask(ctx, "Enter the cards to discard (comma-separated, empty for none): ")
			if err != nil {
				return engine.MagicChoice{}, err
			}
			if line == "" {
				return engine.MagicChoice{Mode: engine.MagicRedraw}, nil
			}
			idx, ok := parseIndexList(line, len(p.Hand))
			if !ok {
				C.Warn.Fprintln(h.out, "Invalid card numbers.")
				continue
			}
			return engine.MagicChoice{Mode: engine.MagicRedraw, Discard: idx}, nil
		default:
			C.Warn.Fprintln(h.out, "Type 1 or 2.")
		}
	}
}

func (h *Human) ChooseDestruction(ctx context.Context, p *engine.Player, targets []*engine.Player) (engine.DestroyChoice, bool, error) {
	for _, t := range targets {
		RenderCards(h.out, fmt.Sprintf("%d. %s", h.seat(t.ID), t.Name), t.City)
	}
	for {
		line, err := h.ask(ctx, "Enter player number and district number to destroy, or 'none': ")
		if err != nil {
			return engine.DestroyChoice{}, false, err
		}
		if line == "" || strings.EqualFold(line, "none") {
			return engine.DestroyChoice{}, false, nil
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			C.Warn.Fprintln(h.out, "Usage: <player number> <district number>")
			continue
		}
		d, err := strconv.Atoi(fields[1])
		if err != nil {
			C.Warn.Fprintln(h.out, "Please enter a valid number.")
			continue
		}
		return engine.DestroyChoice{Target: h.playerID(fields[0]), District: d - 1}, true, nil
	}
}

// playerID maps a 1-based seat number to a player ID, or "" if it is
// not a seat.
func (h *Human) playerID(s string) string {
	if h.game == nil {
		return ""
	}
	i, ok := parseIndex(s, len(h.game.Players))
	if !ok {
		return ""
	}
	return h.game.Players[i].ID
}

func (h *Human) seat(id string) int {
	if h.game == nil {
		return 0
	}
	return h.game.PlayerIndex(id) + 1
}

func (h *Human) printOthers(others []*engine.Player) {
	for _, o := range others {
		fmt.Fprintf(h.out, " %d. %s (%d cards)\n", h.seat(o.ID), o.Name, len(o.Hand))
	}
}
