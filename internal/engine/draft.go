package engine

import (
	"context"
	"fmt"
)

// DraftState holds the public record of one round's draft.
type DraftState struct {
	Round        int             `json:"round"`
	HiddenCount  int             `json:"hidden_count"`  // face-down, never revealed
	FaceUp       []CharacterRole `json:"face_up"`       // revealed, not pickable
	PickOrder    []string        `json:"pick_order"`    // player IDs, crown holder first
	Picked       int             `json:"picked"`        // picks made so far
	FinalDiscard bool            `json:"final_discard"` // a last role was hidden after picks
}

// DraftConfig returns (faceDown, faceUp) for a given player count.
// faceDown counts the discard before the picks only.
func DraftConfig(numPlayers int) (faceDown int, faceUp int) {
	switch numPlayers {
	case 4:
		return 1, 2
	case 5:
		return 1, 1
	default:
		return 1, 0
	}
}

// FinalDiscard reports whether a face-down discard follows the picks.
func FinalDiscard(numPlayers int) bool {
	return numPlayers >= 5
}

// CurrentPickerID returns who should pick now.
func (ds *DraftState) CurrentPickerID() string {
	if ds.Picked >= len(ds.PickOrder) {
		return ""
	}
	return ds.PickOrder[ds.Picked]
}

// IsDone returns true when all picks are made.
func (ds *DraftState) IsDone() bool {
	return ds.Picked >= len(ds.PickOrder)
}

// Assignment binds each player to the role drafted this round.
type Assignment map[string]CharacterRole

// RoleOf returns the role bound to a player.
func (a Assignment) RoleOf(playerID string) (CharacterRole, bool) {
	r, ok := a[playerID]
	return r, ok
}

// OwnerOf returns the player bound to a role, or "".
func (a Assignment) OwnerOf(role CharacterRole) string {
	for id, r := range a {
		if r == role {
			return id
		}
	}
	return ""
}

// Validate checks that every role is valid and held by one player only.
func (a Assignment) Validate() error {
	seen := make(map[CharacterRole]string, len(a))
	for id, r := range a {
		if !r.Valid() {
			return fmt.Errorf("player %s holds invalid role %d: %w", id, r, ErrInvariantViolation)
		}
		if other, dup := seen[r]; dup {
			return fmt.Errorf("%s held by %s and %s: %w", r, other, id, ErrInvariantViolation)
		}
		seen[r] = id
	}
	return nil
}

// RunDraft deals the characters for one round: one hidden discard, the
// face-up discards, one pick per player starting with the crown holder,
// and for five or more players a last hidden discard.
func (g *Game) RunDraft(ctx context.Context) error {
	n := len(g.Players)
	faceDown, faceUp := DraftConfig(n)

	g.Phase = PhaseDraft
	g.Assignment = Assignment{}
	g.Pool.Initialize()
	g.Pool.Shuffle()

	ds := &DraftState{Round: g.Round}
	g.Draft = ds
	g.emit(Event{Type: EventDraftStart, Data: map[string]any{"round": g.Round}})

	for i := 0; i < faceDown; i++ {
		if _, err := g.Pool.DrawHidden(); err != nil {
			return fmt.Errorf("hidden discard: %w", err)
		}
		ds.HiddenCount++
	}
	g.emit(Event{Type: EventDraftHidden, Data: map[string]any{"count": ds.HiddenCount}})

	for i := 0; i < faceUp; i++ {
		r, err := g.Pool.DrawFaceUp()
		if err != nil {
			return err
		}
		ds.FaceUp = append(ds.FaceUp, r)
		g.emit(Event{Type: EventDraftFaceUp, Data: map[string]any{"role": r.String()}})
	}

	ds.PickOrder = g.pickOrder()
	for _, id := range ds.PickOrder {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Pool.Len() == 0 {
			return fmt.Errorf("no role left for %s: %w", id, ErrPoolExhausted)
		}
		p := g.GetPlayer(id)
		role, err := g.claim(ctx, p, ds)
		if err != nil {
			return err
		}
		if err := g.Pool.Assign(role); err != nil {
			return err
		}
		g.Assignment[p.ID] = role
		ds.Picked++
		g.log.WithField("player", p.Name).WithField("role", role.String()).Debug("character drafted")
		g.emit(Event{Type: EventDraftPick, Player: p.ID, Data: map[string]any{"pick": ds.Picked}})
		if role == RoleKing {
			g.setCrown(p.ID)
		}
	}

	if FinalDiscard(n) && g.Pool.Len() > 0 {
		if _, err := g.Pool.DrawHidden(); err != nil {
			return fmt.Errorf("final discard: %w", err)
		}
		ds.FinalDiscard = true
		g.emit(Event{Type: EventDraftDiscard})
	}

	if err := g.Pool.CheckAccounting(); err != nil {
		return err
	}
	g.emit(Event{Type: EventDraftDone, Data: map[string]any{"round": g.Round, "remaining": g.Pool.Len()}})
	return nil
}

// pickOrder lists player IDs starting at the crown holder and wrapping.
func (g *Game) pickOrder() []string {
	n := len(g.Players)
	order := make([]string, n)
	for i := 0; i < n; i++ {
		order[i] = g.Players[(g.crown+i)%n].ID
	}
	return order
}

// claim asks p's agent for a role name until it names an available role.
func (g *Game) claim(ctx context.Context, p *Player, ds *DraftState) (CharacterRole, error) {
	offer := DraftOffer{
		Round:       g.Round,
		Available:   g.Pool.Available(),
		FaceUp:      append([]CharacterRole(nil), ds.FaceUp...),
		HiddenCount: ds.HiddenCount,
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		name, err := p.Agent.ChooseCharacter(ctx, p, offer)
		if err != nil {
			return 0, fmt.Errorf("%s draft pick: %w", p.Name, err)
		}
		if r, ok := ParseRole(name); ok && g.Pool.Contains(r) {
			return r, nil
		}
		g.emit(Event{Type: EventInputRejected, Player: p.ID, Data: map[string]any{
			"choice": "character", "input": name, "available": roleStrings(offer.Available),
		}})
		if !p.IsHuman() && attempt >= maxBotAttempts {
			return offer.Available[g.rng.IntN(len(offer.Available))], nil
		}
	}
}
