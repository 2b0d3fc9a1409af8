package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"citadels-console/internal/engine"
	"citadels-console/internal/storage"
)

var actionHelp = map[engine.CharacterRole]string{
	engine.RoleAssassin:  "Type action <character number> to assassinate a character.",
	engine.RoleThief:     "Type action <character number> to steal gold from a character.",
	engine.RoleMagician:  "You may do:\n - action swap <player number> (to swap hands)\n - action redraw <n1,n2,...> (to discard and redraw cards)",
	engine.RoleKing:      "You receive gold for yellow districts and take the crown.",
	engine.RoleBishop:    "You receive gold for blue districts and are immune to the Warlord.",
	engine.RoleMerchant:  "You receive gold for green districts and 1 bonus gold.",
	engine.RoleArchitect: "You drew 2 extra cards and may build up to 3 districts.",
	engine.RoleWarlord:   "You receive gold for red districts and may destroy another player's district by paying its cost minus 1.\n - action <player number> <district number>, or action none",
}

// PlayTurn asks for the income choice, then runs commands until "end".
func (h *Human) PlayTurn(ctx context.Context, t *engine.Turn) error {
	p := t.Player()
	C.Header.Fprintf(h.out, "\nYour turn. You are the %s.\n", t.Role())
	if err := h.income(ctx, t); err != nil {
		return err
	}

	for {
		line, err := h.ask(ctx, "> ")
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "end":
			fmt.Fprintln(h.out, "You ended your turn.")
			return nil
		case "t":
			fmt.Fprintln(h.out, "It is your turn. Type 'end' when you are done.")
		case "cards":
			fmt.Fprintln(h.out, "Use 'cards' only when prompted at the start of your turn.")
		case "build":
			h.build(t, args)
		case "action":
			if err := h.action(ctx, t, args); err != nil {
				return err
			}
		default:
			handled, err := h.lookCommand(ctx, line, p)
			if err != nil {
				return err
			}
			if !handled {
				C.Warn.Fprintln(h.out, "Unknown command. Type 'help' for a list of commands.")
			}
		}
	}
}

func (h *Human) income(ctx context.Context, t *engine.Turn) error {
	line, err := h.ask(ctx, "Do you want to take 2 gold or draw 2 cards? (gold/cards) ")
	if err != nil {
		return err
	}
	switch strings.ToLower(line) {
	case "gold":
		return t.TakeGold()
	case "cards":
		drawn, err := t.DrawCards()
		if err != nil {
			return err
		}
		if len(t.PendingDraw()) == 0 {
			fmt.Fprintf(h.out, "The deck is almost empty; you drew %d card(s).\n", len(drawn))
			return nil
		}
		RenderCards(h.out, "You drew", drawn)
		for {
			line, err := h.ask(ctx, fmt.Sprintf("Enter the number of the card to keep (1-%d): ", len(drawn)))
			if err != nil {
				return err
			}
			if i, ok := parseIndex(line, len(drawn)); ok {
				return t.KeepCard(i)
			}
			C.Warn.Fprintln(h.out, "Invalid input. Please enter a valid card number.")
		}
	default:
		C.Warn.Fprintln(h.out, "Invalid input. You receive 2 gold by default.")
		return t.TakeGold()
	}
}

func (h *Human) build(t *engine.Turn, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "Usage: build <card number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		C.Warn.Fprintln(h.out, "Invalid index format.")
		return
	}
	_, err = t.Build(n - 1)
	switch {
	case err == nil:
	case errors.Is(err, engine.ErrNotEnoughGold):
		C.Warn.Fprintf(h.out, "You cannot afford that (%d gold).\n", t.Player().Gold)
	case errors.Is(err, engine.ErrAlreadyBuilt):
		C.Warn.Fprintln(h.out, "You already have that district in your city.")
	case errors.Is(err, engine.ErrBuildLimit):
		C.Warn.Fprintf(h.out, "You can only build %d district(s) this turn.\n", t.BuildLimit())
	default:
		C.Warn.Fprintln(h.out, "You cannot build that.")
	}
}

func (h *Human) action(ctx context.Context, t *engine.Turn, args []string) error {
	role := t.Role()
	if len(args) == 0 {
		C.Info.Fprintln(h.out, actionHelp[role])
	}
	if t.AbilityUsed() {
		C.Warn.Fprintln(h.out, "You have already used your ability this turn.")
		return nil
	}
	_, err := t.UseAbility(ctx, h.actionRequest(role, args))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQuit), ctx.Err() != nil:
		return err
	default:
		C.Warn.Fprintf(h.out, "That did not work: %v\n", err)
		return nil
	}
}

// actionRequest turns typed arguments into preset choices. Anything
// missing or malformed is left empty so the ability prompts for it.
func (h *Human) actionRequest(role engine.CharacterRole, args []string) engine.AbilityRequest {
	var req engine.AbilityRequest
	if len(args) == 0 {
		return req
	}
	switch role {
	case engine.RoleAssassin, engine.RoleThief:
		if n, err := strconv.Atoi(args[0]); err == nil {
			req.TargetRank = n
		}
	case engine.RoleMagician:
		mode := strings.ToLower(args[0])
		switch {
		case mode == "swap" && len(args) > 1:
			req.Magic = &engine.MagicChoice{Mode: engine.MagicSwap, Target: h.playerID(args[1])}
		case mode == "redraw" && len(args) > 1 && h.game != nil:
			if p := h.self(); p != nil {
				if idx, ok := parseIndexList(strings.Join(args[1:], ","), len(p.Hand)); ok {
					req.Magic = &engine.MagicChoice{Mode: engine.MagicRedraw, Discard: idx}
				}
			}
		}
	case engine.RoleWarlord:
		if strings.EqualFold(args[0], "none") || strings.EqualFold(args[0], "skip") {
			req.NoDestroy = true
			break
		}
		if len(args) > 1 {
			if d, err := strconv.Atoi(args[1]); err == nil {
				req.Destroy = &engine.DestroyChoice{Target: h.playerID(args[0]), District: d - 1}
			}
		}
	}
	return req
}

// lookCommand handles the commands allowed at any prompt: looking at the
// table, saving, loading and quitting. A successful load returns
// engine.ErrRoundAbandoned.
func (h *Human) lookCommand(ctx context.Context, line string, p *engine.Player) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "hand":
		RenderCards(h.out, "Your hand", p.Hand)
	case "gold":
		fmt.Fprintf(h.out, "You have %d gold.\n", p.Gold)
	case "city":
		h.showCity(p, args)
	case "info":
		h.info(p, args)
	case "all":
		if h.game != nil {
			RenderAll(h.out, h.game)
		}
	case "help":
		RenderHelp(h.out)
	case "debug":
		h.debug = !h.debug
		state := "off"
		if h.debug {
			state = "on"
		}
		C.Debug.Fprintf(h.out, "Debug mode %s.\n", state)
	case "save":
		h.save(ctx, args)
	case "load":
		return true, h.load(ctx, args)
	case "quit", "exit":
		return true, ErrQuit
	default:
		return false, nil
	}
	return true, nil
}

func (h *Human) showCity(p *engine.Player, args []string) {
	target := p
	if len(args) > 0 {
		id := h.playerID(args[0])
		if id == "" {
			C.Warn.Fprintln(h.out, "Invalid player number.")
			return
		}
		target = h.game.GetPlayer(id)
	}
	RenderCards(h.out, target.Name+" has built", target.City)
}

func (h *Human) info(p *engine.Player, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(h.out, "Usage: info <card number or character name>")
		return
	}
	arg := strings.Join(args, " ")
	if _, err := strconv.Atoi(arg); err == nil {
		i, ok := parseIndex(arg, len(p.Hand))
		if !ok {
			C.Warn.Fprintln(h.out, "Invalid card number.")
			return
		}
		d := p.Hand[i]
		fmt.Fprintf(h.out, "Card: %s\nCost: %d\nColor: %s\n", colorize(d), d.Cost, d.Color)
		if d.Text != "" {
			fmt.Fprintf(h.out, "Text: %s\n", d.Text)
		}
		return
	}
	if r, ok := engine.ParseRole(arg); ok && h.game != nil {
		if a, err := h.game.Abilities.Get(r); err == nil {
			fmt.Fprintf(h.out, "Character: %s (%d)\n%s\n", r, r.Rank(), a.Describe())
			return
		}
	}
	C.Warn.Fprintf(h.out, "No card or character matches '%s'.\n", arg)
}

func (h *Human) save(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "Usage: save <name>")
		return
	}
	if h.repo == nil || h.game == nil {
		C.Warn.Fprintln(h.out, "Saving is not available.")
		return
	}
	if err := h.repo.Save(ctx, args[0], h.game.Snapshot()); err != nil {
		C.Bad.Fprintf(h.out, "Failed to save: %v\n", err)
		return
	}
	C.Good.Fprintf(h.out, "Game saved to %s\n", args[0])
}

func (h *Human) load(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "Usage: load <name>")
		return nil
	}
	if h.repo == nil || h.game == nil {
		C.Warn.Fprintln(h.out, "Loading is not available.")
		return nil
	}
	snap, err := h.repo.Load(ctx, args[0])
	if errors.Is(err, storage.ErrNotFound) {
		C.Warn.Fprintf(h.out, "No saved game named %s.\n", args[0])
		return nil
	}
	if err != nil {
		C.Bad.Fprintf(h.out, "Failed to load: %v\n", err)
		return nil
	}
	if err := h.game.Restore(snap); err != nil {
		C.Bad.Fprintf(h.out, "Failed to load: %v\n", err)
		return nil
	}
	C.Good.Fprintf(h.out, "Game loaded from %s. A new round starts with a fresh draft.\n", args[0])
	return engine.ErrRoundAbandoned
}

// self is the game's player driven by h.
func (h *Human) self() *engine.Player {
	if h.game == nil {
		return nil
	}
	for _, p := range h.game.Players {
		if a, ok := p.Agent.(*Human); ok && a == h {
			return p
		}
	}
	return nil
}

// WaitTurn blocks until the player types "t", answering look commands
// meanwhile.
func (h *Human) WaitTurn(ctx context.Context) error {
	me := h.self()
	for {
		fmt.Fprintln(h.out, "Press t to process turns")
		line, err := h.ask(ctx, "> ")
		if err != nil {
			return err
		}
		if strings.EqualFold(line, "t") {
			return nil
		}
		if me != nil {
			handled, err := h.lookCommand(ctx, line, me)
			if err != nil {
				return err
			}
			if handled {
				continue
			}
		}
		fmt.Fprintln(h.out, "It is not your turn. Press t to continue with other player turns.")
	}
}
