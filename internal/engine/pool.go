package engine

import (
	"fmt"
	"math/rand/v2"
)

// CharacterPool holds the roles still in play during one draft.
//
// At any point Len() == 8 - (hidden + face-up + assigned).
type CharacterPool struct {
	roles    []CharacterRole
	rng      *rand.Rand
	hidden   int
	faceUp   int
	assigned int
}

func NewCharacterPool(rng *rand.Rand) *CharacterPool {
	p := &CharacterPool{rng: rng}
	p.Initialize()
	return p
}

// Initialize refills the pool with the 8 roles and clears the counters.
func (p *CharacterPool) Initialize() {
	p.roles = AllRoles()
	p.hidden, p.faceUp, p.assigned = 0, 0, 0
}

func (p *CharacterPool) Shuffle() {
	p.rng.Shuffle(len(p.roles), func(i, j int) {
		p.roles[i], p.roles[j] = p.roles[j], p.roles[i]
	})
}

func (p *CharacterPool) Len() int { return len(p.roles) }

// DrawHidden removes one role at random. Its identity is never revealed.
func (p *CharacterPool) DrawHidden() (CharacterRole, error) {
	r, err := p.take()
	if err != nil {
		return 0, err
	}
	p.hidden++
	return r, nil
}

// DrawFaceUp removes one role at random, never the King. A drawn King goes
// back into the pool and the draw is retried.
func (p *CharacterPool) DrawFaceUp() (CharacterRole, error) {
	if len(p.roles) == 0 || (len(p.roles) == 1 && p.roles[0] == RoleKing) {
		return 0, fmt.Errorf("face-up discard: %w", ErrPoolExhausted)
	}
	for {
		r, err := p.take()
		if err != nil {
			return 0, err
		}
		if r == RoleKing {
			p.roles = append(p.roles, r)
			continue
		}
		p.faceUp++
		return r, nil
	}
}

// Assign removes a role chosen by a player.
func (p *CharacterPool) Assign(role CharacterRole) error {
	for i, r := range p.roles {
		if r == role {
			p.roles = append(p.roles[:i], p.roles[i+1:]...)
			p.assigned++
			return nil
		}
	}
	return fmt.Errorf("%s is not available: %w", role, ErrInvalidAction)
}

// Available returns a copy of the selectable roles in rank order.
func (p *CharacterPool) Available() []CharacterRole {
	out := make([]CharacterRole, 0, len(p.roles))
	for _, r := range AllRoles() {
		if p.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

func (p *CharacterPool) Contains(role CharacterRole) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Counts returns how many roles were drawn hidden, drawn face-up and assigned.
func (p *CharacterPool) Counts() (hidden, faceUp, assigned int) {
	return p.hidden, p.faceUp, p.assigned
}

// CheckAccounting verifies the pool-size invariant.
func (p *CharacterPool) CheckAccounting() error {
	if want := len(AllRoles()) - p.hidden - p.faceUp - p.assigned; want != len(p.roles) {
		return fmt.Errorf("pool holds %d roles, accounting expects %d: %w", len(p.roles), want, ErrInvariantViolation)
	}
	return nil
}

func (p *CharacterPool) take() (CharacterRole, error) {
	if len(p.roles) == 0 {
		return 0, ErrPoolExhausted
	}
	i := p.rng.IntN(len(p.roles))
	r := p.roles[i]
	p.roles = append(p.roles[:i], p.roles[i+1:]...)
	return r, nil
}
