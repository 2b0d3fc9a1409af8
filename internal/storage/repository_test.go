package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"citadels-console/internal/engine"
)

func testSnapshot(gold int) *engine.Snapshot {
	return &engine.Snapshot{
		Version:    engine.SnapshotVersion,
		GameID:     "game-1",
		Round:      3,
		CrownIndex: 1,
		Players: []engine.PlayerSnapshot{
			{Name: "Player 1", Human: true, Gold: gold, Character: "KING", Hand: []string{"Manor", "Temple"}, City: []string{"Tavern"}},
			{Name: "CPU 2", Gold: 1, Character: "THIEF", Hand: []string{}, City: []string{"Keep", "Docks"}},
			{Name: "CPU 3", Gold: 0, Hand: []string{"Palace"}, City: []string{}},
			{Name: "CPU 4", Gold: 7, Character: "WARLORD", Hand: []string{}, City: []string{}},
		},
	}
}

type RepositorySuite struct {
	suite.Suite
	open func(t *testing.T) Repository
	repo Repository
	ctx  context.Context
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.open(s.T())
}

func (s *RepositorySuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func (s *RepositorySuite) TestSaveAndLoad() {
	want := testSnapshot(5)
	s.Require().NoError(s.repo.Save(s.ctx, "first", want))

	got, err := s.repo.Load(s.ctx, "first")
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *RepositorySuite) TestSaveOverwrites() {
	s.Require().NoError(s.repo.Save(s.ctx, "slot", testSnapshot(5)))
	s.Require().NoError(s.repo.Save(s.ctx, "slot", testSnapshot(12)))

	got, err := s.repo.Load(s.ctx, "slot")
	s.Require().NoError(err)
	s.Equal(12, got.Players[0].Gold)

	names, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"slot"}, names)
}

func (s *RepositorySuite) TestLoadMissing() {
	_, err := s.repo.Load(s.ctx, "nope")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositorySuite) TestJSONSuffixIsOptional() {
	s.Require().NoError(s.repo.Save(s.ctx, "game.json", testSnapshot(4)))
	got, err := s.repo.Load(s.ctx, "game")
	s.Require().NoError(err)
	s.Equal(4, got.Players[0].Gold)
}

func (s *RepositorySuite) TestList() {
	for _, n := range []string{"b", "c", "a"} {
		s.Require().NoError(s.repo.Save(s.ctx, n, testSnapshot(1)))
	}
	names, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, names)
}

func (s *RepositorySuite) TestRejectsBadInput() {
	for _, name := range []string{"", "  ", "../escape", `dir\file`, ".."} {
		s.Error(s.repo.Save(s.ctx, name, testSnapshot(1)), "name %q", name)
	}
	s.Error(s.repo.Save(s.ctx, "nil", nil))
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{open: func(t *testing.T) Repository { return NewMemory() }})
}

func TestFileRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{open: func(t *testing.T) Repository {
		r, err := NewFile(filepath.Join(t.TempDir(), "saves"))
		if err != nil {
			t.Fatal(err)
		}
		return r
	}})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{open: func(t *testing.T) Repository {
		r, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "citadels.db"))
		if err != nil {
			t.Fatal(err)
		}
		return r
	}})
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open(context.Background(), Options{Kind: "tape"}); err == nil {
		t.Fatal("expected error for unknown store")
	}
}

func TestOpenMemory(t *testing.T) {
	r, err := Open(context.Background(), Options{Kind: KindMemory})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*memoryRepo); !ok {
		t.Fatalf("got %T, want *memoryRepo", r)
	}
}
