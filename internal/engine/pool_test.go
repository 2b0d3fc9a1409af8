package engine_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"citadels-console/internal/engine"
)

func newPool(seed uint64) *engine.CharacterPool {
	p := engine.NewCharacterPool(rand.New(rand.NewPCG(seed, seed)))
	p.Shuffle()
	return p
}

func TestPoolInitialize(t *testing.T) {
	p := newPool(1)
	if p.Len() != 8 {
		t.Fatalf("pool: got %d roles, want 8", p.Len())
	}
	avail := p.Available()
	for i, r := range engine.AllRoles() {
		if avail[i] != r {
			t.Errorf("available[%d] = %s, want %s", i, avail[i], r)
		}
	}
}

func TestDrawFaceUpNeverKing(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		p := newPool(seed)
		for i := 0; i < 7; i++ {
			r, err := p.DrawFaceUp()
			if err != nil {
				t.Fatalf("seed %d draw %d: %v", seed, i, err)
			}
			if r == engine.RoleKing {
				t.Fatalf("seed %d: King drawn face-up", seed)
			}
		}
		if !p.Contains(engine.RoleKing) || p.Len() != 1 {
			t.Fatalf("seed %d: only the King should remain, pool %v", seed, p.Available())
		}
		if _, err := p.DrawFaceUp(); !errors.Is(err, engine.ErrPoolExhausted) {
			t.Fatalf("seed %d: expected ErrPoolExhausted, got %v", seed, err)
		}
		if err := p.CheckAccounting(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestDrawHiddenExhausts(t *testing.T) {
	p := newPool(3)
	seen := map[engine.CharacterRole]bool{}
	for i := 0; i < 8; i++ {
		r, err := p.DrawHidden()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		seen[r] = true
	}
	if len(seen) != 8 {
		t.Errorf("hidden draws: got %d distinct roles, want 8", len(seen))
	}
	if _, err := p.DrawHidden(); !errors.Is(err, engine.ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}
	if hidden, faceUp, assigned := p.Counts(); hidden != 8 || faceUp != 0 || assigned != 0 {
		t.Errorf("counts: got (%d,%d,%d)", hidden, faceUp, assigned)
	}
}

func TestAssign(t *testing.T) {
	p := newPool(1)
	if err := p.Assign(engine.RoleKing); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if p.Contains(engine.RoleKing) {
		t.Error("King should be gone from the pool")
	}
	if err := p.Assign(engine.RoleKing); !errors.Is(err, engine.ErrInvalidAction) {
		t.Errorf("second assign: expected ErrInvalidAction, got %v", err)
	}
	if err := p.CheckAccounting(); err != nil {
		t.Error(err)
	}
}

func TestPoolInitializeResetsCounts(t *testing.T) {
	p := newPool(1)
	_, _ = p.DrawHidden()
	_, _ = p.DrawFaceUp()
	p.Initialize()
	if hidden, faceUp, assigned := p.Counts(); hidden+faceUp+assigned != 0 || p.Len() != 8 {
		t.Errorf("after Initialize: len %d counts (%d,%d,%d)", p.Len(), hidden, faceUp, assigned)
	}
}
