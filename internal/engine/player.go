package engine

import "strings"

// PlayerKind distinguishes the console human from automated players.
type PlayerKind int

const (
	KindBot   PlayerKind = 0
	KindHuman PlayerKind = 1
)

func (k PlayerKind) String() string {
	if k == KindHuman {
		return "human"
	}
	return "bot"
}

// Player holds one player's state.
type Player struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Kind PlayerKind `json:"kind"`
	Gold int        `json:"gold"`
	Hand []District `json:"hand"`
	City []District `json:"city"`

	// Agent makes this player's decisions.
	Agent Agent `json:"-"`

	// Per-turn state (reset when the turn is granted)
	BuiltCount  int  `json:"-"`
	TookIncome  bool `json:"-"`
	UsedAbility bool `json:"-"`
}

func NewPlayer(id, name string, kind PlayerKind, agent Agent) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Kind:  kind,
		Gold:  2,
		Agent: agent,
	}
}

func (p *Player) IsHuman() bool { return p.Kind == KindHuman }

// AddGold credits (or, with a negative amount, debits) gold. Gold never goes below zero.
func (p *Player) AddGold(n int) {
	p.Gold += n
	if p.Gold < 0 {
		p.Gold = 0
	}
}

// TakeAllGold empties the player's purse and returns what was in it.
func (p *Player) TakeAllGold() int {
	g := p.Gold
	p.Gold = 0
	return g
}

// CityHas returns true if the player has built a district with the given name.
func (p *Player) CityHas(name string) bool {
	for _, d := range p.City {
		if strings.EqualFold(d.Name, name) {
			return true
		}
	}
	return false
}

// CityColorCount counts districts earning income for a given color,
// including districts that count as any color.
func (p *Player) CityColorCount(color DistrictColor) int {
	n := 0
	for _, d := range p.City {
		if d.CountsAs(color) {
			n++
		}
	}
	return n
}

// RemoveFromHand removes the card at index i from hand.
func (p *Player) RemoveFromHand(i int) (District, bool) {
	if i < 0 || i >= len(p.Hand) {
		return District{}, false
	}
	d := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return d, true
}

// DestroyDistrict removes the district at index i from the city.
func (p *Player) DestroyDistrict(i int) (District, bool) {
	if i < 0 || i >= len(p.City) {
		return District{}, false
	}
	d := p.City[i]
	p.City = append(p.City[:i], p.City[i+1:]...)
	return d, true
}

// SwapHands exchanges the whole hands of two players.
func (p *Player) SwapHands(other *Player) {
	p.Hand, other.Hand = other.Hand, p.Hand
}

func (p *Player) resetTurn() {
	p.BuiltCount = 0
	p.TookIncome = false
	p.UsedAbility = false
}
