package engine

import (
	"fmt"
	"strings"
)

const SnapshotVersion = 1

// Snapshot is the flat, persistable game state. Players are matched by
// seat index on restore.
type Snapshot struct {
	Version    int              `json:"version"`
	GameID     string           `json:"gameId,omitempty"`
	Round      int              `json:"round"`
	CrownIndex int              `json:"crownIndex"`
	Players    []PlayerSnapshot `json:"players"`
}

type PlayerSnapshot struct {
	Name      string   `json:"name"`
	Human     bool     `json:"human"`
	Gold      int      `json:"gold"`
	Character string   `json:"character,omitempty"` // ability tag, e.g. "KING"
	Hand      []string `json:"hand"`
	City      []string `json:"city"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		Version:    SnapshotVersion,
		GameID:     g.ID,
		Round:      g.Round,
		CrownIndex: g.crown,
	}
	for _, p := range g.Players {
		ps := PlayerSnapshot{
			Name:  p.Name,
			Human: p.IsHuman(),
			Gold:  p.Gold,
			Hand:  cardNames(p.Hand),
			City:  cardNames(p.City),
		}
		if r, ok := g.Assignment.RoleOf(p.ID); ok {
			ps.Character = r.Ability()
		}
		s.Players = append(s.Players, ps)
	}
	return s
}

// Restore replaces gold, hands, cities, roles and the crown with the
// snapshot's. Nothing changes if the snapshot does not fit this game.
// The deck is rebuilt from the configured cards minus every card in a
// hand or city.
func (g *Game) Restore(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("nil snapshot: %w", ErrInvalidAction)
	}
	if len(s.Players) != len(g.Players) {
		return fmt.Errorf("snapshot has %d players, game has %d: %w", len(s.Players), len(g.Players), ErrInvalidAction)
	}
	if s.CrownIndex < 0 || s.CrownIndex >= len(g.Players) {
		return fmt.Errorf("crown index %d out of range: %w", s.CrownIndex, ErrInvalidAction)
	}

	catalog := NewCatalog(g.Config.Districts)
	type restored struct {
		hand, city []District
		role       CharacterRole
	}
	rs := make([]restored, len(s.Players))
	assign := Assignment{}
	for i, ps := range s.Players {
		var err error
		if rs[i].hand, err = lookupCards(catalog, ps.Hand); err != nil {
			return fmt.Errorf("player %d hand: %w", i+1, err)
		}
		if rs[i].city, err = lookupCards(catalog, ps.City); err != nil {
			return fmt.Errorf("player %d city: %w", i+1, err)
		}
		if ps.Character != "" {
			r, ok := ParseRole(ps.Character)
			if !ok {
				return fmt.Errorf("player %d character %q: %w", i+1, ps.Character, ErrInvalidAction)
			}
			rs[i].role = r
			assign[g.Players[i].ID] = r
		}
		if ps.Gold < 0 {
			return fmt.Errorf("player %d gold %d: %w", i+1, ps.Gold, ErrInvalidAction)
		}
	}
	if err := assign.Validate(); err != nil {
		return err
	}

	deck := NewDeck(g.Config.Districts, g.rng)
	for i, p := range g.Players {
		ps := s.Players[i]
		if ps.Name != "" {
			p.Name = ps.Name
		}
		p.Gold = ps.Gold
		p.Hand = rs[i].hand
		p.City = rs[i].city
		for _, d := range p.Hand {
			deck.Remove(d.Name)
		}
		for _, d := range p.City {
			deck.Remove(d.Name)
		}
	}
	g.Deck = deck
	g.Assignment = assign
	g.crown = s.CrownIndex
	if s.Round > 0 {
		g.Round = s.Round
	}
	g.FirstToComplete = ""
	for _, p := range g.Players {
		if len(p.City) >= g.Config.EndCitySize {
			g.FirstToComplete = p.ID
			break
		}
	}
	g.emit(Event{Type: EventGameRestored, Data: map[string]any{
		"round": g.Round, "crown": g.Players[g.crown].Name,
	}})
	return nil
}

func lookupCards(c Catalog, names []string) ([]District, error) {
	out := make([]District, 0, len(names))
	for _, n := range names {
		d, ok := c.Lookup(strings.TrimSpace(n))
		if !ok {
			return nil, fmt.Errorf("unknown district %q: %w", n, ErrInvalidAction)
		}
		out = append(out, d)
	}
	return out, nil
}

func cardNames(ds []District) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}
