package engine_test

import (
	"context"
	"errors"
	"testing"

	"citadels-console/internal/engine"
)

func TestDraftConfig(t *testing.T) {
	tests := []struct {
		n        int
		faceDown int
		faceUp   int
		final    bool
	}{
		{4, 1, 2, false},
		{5, 1, 1, true},
		{6, 1, 0, true},
		{7, 1, 0, true},
	}
	for _, tt := range tests {
		fd, fu := engine.DraftConfig(tt.n)
		if fd != tt.faceDown || fu != tt.faceUp || engine.FinalDiscard(tt.n) != tt.final {
			t.Errorf("DraftConfig(%d) = (%d,%d,%v), want (%d,%d,%v)",
				tt.n, fd, fu, engine.FinalDiscard(tt.n), tt.faceDown, tt.faceUp, tt.final)
		}
	}
}

func TestRunDraft(t *testing.T) {
	tests := []struct {
		n         int
		faceUp    int
		remaining int
		final     bool
	}{
		{4, 2, 1, false},
		{5, 1, 0, true},
		{6, 0, 0, true},
		{7, 0, 0, false}, // nothing left for the last discard
	}
	for _, tt := range tests {
		for seed := uint64(1); seed <= 20; seed++ {
			g, _ := newTestGame(tt.n, seed)
			if err := g.StartGame(); err != nil {
				t.Fatal(err)
			}
			if err := g.RunDraft(context.Background()); err != nil {
				t.Fatalf("n=%d seed=%d: %v", tt.n, seed, err)
			}
			if len(g.Assignment) != tt.n {
				t.Fatalf("n=%d seed=%d: %d players bound", tt.n, seed, len(g.Assignment))
			}
			if err := g.Assignment.Validate(); err != nil {
				t.Fatalf("n=%d seed=%d: %v", tt.n, seed, err)
			}
			if len(g.Draft.FaceUp) != tt.faceUp {
				t.Errorf("n=%d seed=%d: %d face-up, want %d", tt.n, seed, len(g.Draft.FaceUp), tt.faceUp)
			}
			for _, r := range g.Draft.FaceUp {
				if r == engine.RoleKing {
					t.Errorf("n=%d seed=%d: King face-up", tt.n, seed)
				}
			}
			if g.Draft.HiddenCount != 1 {
				t.Errorf("n=%d seed=%d: %d hidden before picks, want 1", tt.n, seed, g.Draft.HiddenCount)
			}
			if g.Pool.Len() != tt.remaining || g.Draft.FinalDiscard != tt.final {
				t.Errorf("n=%d seed=%d: pool %d final %v, want %d %v",
					tt.n, seed, g.Pool.Len(), g.Draft.FinalDiscard, tt.remaining, tt.final)
			}
		}
	}
}

func TestDraftPickOrderStartsAtCrown(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		g, _ := newTestGame(5, seed)
		events := record(g)
		if err := g.StartGame(); err != nil {
			t.Fatal(err)
		}
		crown := g.Crown()
		if err := g.RunDraft(context.Background()); err != nil {
			t.Fatal(err)
		}
		var picked []string
		for _, ev := range *events {
			if ev.Type == engine.EventDraftPick {
				picked = append(picked, ev.Player)
			}
		}
		for i, id := range picked {
			want := g.Players[(crown+i)%5].ID
			if id != want {
				t.Fatalf("seed %d pick %d: got %s, want %s", seed, i, id, want)
			}
		}
	}
}

func TestDraftKingPickTakesCrown(t *testing.T) {
	moved := 0
	for seed := uint64(1); seed <= 30; seed++ {
		g, agents := newTestGame(4, seed)
		if err := g.StartGame(); err != nil {
			t.Fatal(err)
		}
		before := g.Crown()
		next := (before + 1) % 4
		// the crown holder takes the highest rank on offer, never the King
		agents[next].wants = []engine.CharacterRole{engine.RoleKing}
		if err := g.RunDraft(context.Background()); err != nil {
			t.Fatal(err)
		}
		owner := g.Assignment.OwnerOf(engine.RoleKing)
		if owner == "" {
			if g.Crown() != before {
				t.Errorf("seed %d: crown moved without a King pick", seed)
			}
			continue
		}
		if owner != g.Players[next].ID {
			t.Fatalf("seed %d: King went to %s, want %s", seed, owner, g.Players[next].ID)
		}
		if g.Crown() != next {
			t.Errorf("seed %d: crown at %d, want %d", seed, g.Crown(), next)
		}
		moved++
	}
	if moved == 0 {
		t.Fatal("King was hidden for every seed")
	}
}

func TestDraftRejectsUnknownName(t *testing.T) {
	g, agents := newTestGame(4, 7)
	g.Players[0].Kind = engine.KindHuman
	agents[0].picks = []string{"Jester", "nobody"}
	events := record(g)
	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}
	if err := g.RunDraft(context.Background()); err != nil {
		t.Fatal(err)
	}
	if agents[0].asked != 3 {
		t.Errorf("human asked %d times, want 3", agents[0].asked)
	}
	if n := countEvents(*events, engine.EventInputRejected, "A"); n != 2 {
		t.Errorf("rejections: got %d, want 2", n)
	}
	if _, ok := g.RoleOf("A"); !ok {
		t.Error("human should hold a role after re-asking")
	}
}

func TestDraftBotFallsBackToRandom(t *testing.T) {
	g, agents := newTestGame(4, 7)
	agents[1].picks = []string{"Jester", "Jester", "Jester", "Jester"}
	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}
	if err := g.RunDraft(context.Background()); err != nil {
		t.Fatal(err)
	}
	if agents[1].asked != 3 {
		t.Errorf("bot asked %d times, want 3", agents[1].asked)
	}
	if _, ok := g.RoleOf("B"); !ok {
		t.Error("bot should hold a role after fallback")
	}
}

func TestDraftEventsHideRoles(t *testing.T) {
	g, _ := newTestGame(6, 3)
	events := record(g)
	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}
	if err := g.RunDraft(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, ev := range *events {
		switch ev.Type {
		case engine.EventDraftPick, engine.EventDraftHidden, engine.EventDraftDiscard:
			if _, ok := ev.Data["role"]; ok {
				t.Errorf("%s event reveals a role: %v", ev.Type, ev.Data)
			}
		}
	}
}

func TestDraftCancelled(t *testing.T) {
	g, _ := newTestGame(4, 1)
	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.RunDraft(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAssignmentValidate(t *testing.T) {
	a := engine.Assignment{"A": engine.RoleKing, "B": engine.RoleKing}
	if err := a.Validate(); !errors.Is(err, engine.ErrInvariantViolation) {
		t.Errorf("duplicate role: expected ErrInvariantViolation, got %v", err)
	}
	a = engine.Assignment{"A": engine.CharacterRole(9)}
	if err := a.Validate(); !errors.Is(err, engine.ErrInvariantViolation) {
		t.Errorf("invalid role: expected ErrInvariantViolation, got %v", err)
	}
	a = engine.Assignment{"A": engine.RoleKing, "B": engine.RoleThief}
	if a.OwnerOf(engine.RoleThief) != "B" || a.OwnerOf(engine.RoleWarlord) != "" {
		t.Error("OwnerOf returned the wrong player")
	}
}
