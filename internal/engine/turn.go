package engine

import (
	"context"
	"errors"
	"fmt"
)

// RunTurns calls ranks 1-8 in order. Each bound rank either is skipped
// (assassinated), has its gold taken (robbed) and then plays, or just plays.
// Marks are cleared before and after the pass.
func (g *Game) RunTurns(ctx context.Context) error {
	if err := g.checkBindings(); err != nil {
		return err
	}
	g.Phase = PhaseTurns
	g.Marks.Reset()
	defer func() {
		g.Marks.Reset()
		g.CurrentPlayer = ""
	}()

	for _, role := range AllRoles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.TurnState = TurnAwaitingRankPlayer
		g.CurrentRank = role

		p := g.GetPlayer(g.Assignment.OwnerOf(role))
		if p == nil {
			continue
		}
		g.emit(Event{Type: EventCharacterCall, Player: p.ID, Data: map[string]any{
			"role": role.String(), "rank": role.Rank(),
		}})

		if g.Marks.consumeAssassination(role) {
			g.emit(Event{Type: EventMurdered, Player: p.ID, Data: map[string]any{"role": role.String()}})
			continue
		}
		if robber, ok := g.Marks.consumeRobbery(role); ok {
			g.TurnState = TurnResolvingRobbery
			stolen := p.TakeAllGold()
			robber.AddGold(stolen)
			g.emit(Event{Type: EventRobbed, Player: p.ID, Data: map[string]any{
				"role": role.String(), "stolen": stolen, "thief": robber.Name,
			}})
		}

		if err := g.grantTurn(ctx, p, role); err != nil {
			return err
		}
	}

	g.TurnState = TurnRoundComplete
	return nil
}

func (g *Game) grantTurn(ctx context.Context, p *Player, role CharacterRole) error {
	g.TurnState = TurnActivePlayer
	g.CurrentPlayer = p.ID
	p.resetTurn()

	if role == RoleArchitect {
		drawn := g.Deck.Draw(2)
		p.Hand = append(p.Hand, drawn...)
		g.emit(Event{Type: EventArchitectDraw, Player: p.ID, Data: map[string]any{"count": len(drawn)}})
	}
	g.emit(Event{Type: EventTurnStart, Player: p.ID, Data: map[string]any{"role": role.String()}})

	t := &Turn{g: g, player: p, role: role}
	err := p.Agent.PlayTurn(ctx, t)
	if errors.Is(err, ErrRoundAbandoned) {
		// the deck was rebuilt by Restore
		t.pending = nil
	}
	t.finish()
	if err != nil {
		return fmt.Errorf("%s turn: %w", p.Name, err)
	}
	g.emit(Event{Type: EventTurnEnd, Player: p.ID, Data: map[string]any{"role": role.String()}})
	return nil
}

// checkBindings validates the draft result before any turn is granted.
func (g *Game) checkBindings() error {
	if err := g.Assignment.Validate(); err != nil {
		return err
	}
	for id := range g.Assignment {
		if g.GetPlayer(id) == nil {
			return fmt.Errorf("role bound to unknown player %s: %w", id, ErrInvariantViolation)
		}
	}
	if g.crown < 0 || g.crown >= len(g.Players) {
		return fmt.Errorf("crown index %d out of range: %w", g.crown, ErrInvariantViolation)
	}
	return nil
}

// Turn is the handle an Agent uses to act during its player's turn.
// It is only valid until PlayTurn returns.
type Turn struct {
	g       *Game
	player  *Player
	role    CharacterRole
	pending []District
	done    bool
}

func (t *Turn) Game() *Game             { return t.g }
func (t *Turn) Player() *Player         { return t.player }
func (t *Turn) Role() CharacterRole     { return t.role }
func (t *Turn) BuildLimit() int         { return t.role.BuildLimit() }
func (t *Turn) BuildsLeft() int         { return t.BuildLimit() - t.player.BuiltCount }
func (t *Turn) IncomeTaken() bool       { return t.player.TookIncome }
func (t *Turn) AbilityUsed() bool       { return t.player.UsedAbility }
func (t *Turn) PendingDraw() []District { return t.pending }

func (t *Turn) active() error {
	if t.done {
		return ErrNotYourTurn
	}
	return nil
}

// TakeGold is the gold income option: +2 gold.
func (t *Turn) TakeGold() error {
	if err := t.active(); err != nil {
		return err
	}
	if t.player.TookIncome {
		return ErrIncomeTaken
	}
	t.player.AddGold(2)
	t.player.TookIncome = true
	t.g.emit(Event{Type: EventGoldTaken, Player: t.player.ID, Data: map[string]any{"gold": 2}})
	return nil
}

// DrawCards is the card income option: draw two, keep one with KeepCard.
// With one card or less left in the deck the draw goes straight to hand.
func (t *Turn) DrawCards() ([]District, error) {
	if err := t.active(); err != nil {
		return nil, err
	}
	if t.player.TookIncome {
		return nil, ErrIncomeTaken
	}
	drawn := t.g.Deck.Draw(2)
	t.player.TookIncome = true
	t.g.emit(Event{Type: EventCardsDrawn, Player: t.player.ID, Data: map[string]any{"count": len(drawn)}})
	if len(drawn) <= 1 {
		t.player.Hand = append(t.player.Hand, drawn...)
		return drawn, nil
	}
	t.pending = drawn
	return drawn, nil
}

// KeepCard keeps pending[i]; the rest go to the bottom of the deck.
func (t *Turn) KeepCard(i int) error {
	if err := t.active(); err != nil {
		return err
	}
	if len(t.pending) == 0 {
		return fmt.Errorf("no cards to choose from: %w", ErrInvalidAction)
	}
	if i < 0 || i >= len(t.pending) {
		return fmt.Errorf("card %d: %w", i+1, ErrInvalidAction)
	}
	kept := t.pending[i]
	t.player.Hand = append(t.player.Hand, kept)
	for j, d := range t.pending {
		if j != i {
			t.g.Deck.Return([]District{d})
		}
	}
	t.pending = nil
	t.g.emit(Event{Type: EventCardKept, Player: t.player.ID, Data: map[string]any{"card": kept.Name}})
	return nil
}

// Build puts the hand card at handIndex into the city.
func (t *Turn) Build(handIndex int) (District, error) {
	if err := t.active(); err != nil {
		return District{}, err
	}
	p := t.player
	if p.BuiltCount >= t.BuildLimit() {
		return District{}, ErrBuildLimit
	}
	if handIndex < 0 || handIndex >= len(p.Hand) {
		return District{}, fmt.Errorf("hand card %d: %w", handIndex+1, ErrInvalidAction)
	}
	card := p.Hand[handIndex]
	if p.CityHas(card.Name) {
		return District{}, fmt.Errorf("%s: %w", card.Name, ErrAlreadyBuilt)
	}
	if card.Cost > p.Gold {
		return District{}, fmt.Errorf("%s costs %d, have %d: %w", card.Name, card.Cost, p.Gold, ErrNotEnoughGold)
	}

	p.RemoveFromHand(handIndex)
	p.AddGold(-card.Cost)
	p.City = append(p.City, card)
	p.BuiltCount++
	t.g.emit(Event{Type: EventDistrictBuilt, Player: p.ID, Data: map[string]any{
		"district": card.Name, "cost": card.Cost, "color": card.Color.String(),
	}})

	if len(p.City) >= t.g.Config.EndCitySize && t.g.FirstToComplete == "" {
		t.g.FirstToComplete = p.ID
		t.g.emit(Event{Type: EventCityComplete, Player: p.ID, Data: map[string]any{"size": len(p.City)}})
	}
	return card, nil
}

// UseAbility resolves the turn's role ability. Allowed once per turn.
func (t *Turn) UseAbility(ctx context.Context, req AbilityRequest) ([]Event, error) {
	if err := t.active(); err != nil {
		return nil, err
	}
	if t.player.UsedAbility {
		return nil, ErrAbilityUsed
	}
	ability, err := t.g.Abilities.Get(t.role)
	if err != nil {
		return nil, err
	}
	events, err := ability.Resolve(ctx, t.g, t.player, req)
	if err != nil {
		return nil, err
	}
	t.player.UsedAbility = true
	for _, ev := range events {
		t.g.emit(ev)
	}
	return events, nil
}

// finish closes the turn. An undecided card draw keeps the first card.
func (t *Turn) finish() {
	if len(t.pending) > 0 {
		_ = t.KeepCard(0)
	}
	t.done = true
}
