package abilities_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"citadels-console/internal/engine"
	"citadels-console/internal/engine/abilities"
	mockengine "citadels-console/internal/engine/mock"
)

type fixture struct {
	g      *engine.Game
	agents []*mockengine.MockAgent
	deck   engine.Catalog
}

// newFixture seats four mock-driven players bound to the given roles.
func newFixture(t *testing.T, roles ...engine.CharacterRole) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{deck: engine.NewCatalog(engine.BaseDistricts())}
	var players []*engine.Player
	for _, id := range []string{"A", "B", "C", "D"} {
		m := mockengine.NewMockAgent(ctrl)
		f.agents = append(f.agents, m)
		players = append(players, engine.NewPlayer(id, "Player"+id, engine.KindHuman, m))
	}
	cfg := engine.DefaultConfig()
	cfg.Seed = 3
	f.g = engine.NewGame(players, cfg, abilities.Registry())
	require.NoError(t, f.g.StartGame())
	f.g.Assignment = engine.Assignment{}
	for i, r := range roles {
		f.g.Assignment[players[i].ID] = r
	}
	return f
}

func (f *fixture) cards(names ...string) []engine.District {
	out := make([]engine.District, 0, len(names))
	for _, n := range names {
		d, _ := f.deck.Lookup(n)
		out = append(out, d)
	}
	return out
}

func resolve(t *testing.T, f *fixture, a engine.Ability, actor int, req engine.AbilityRequest) []engine.Event {
	t.Helper()
	events, err := a.Resolve(context.Background(), f.g, f.g.Players[actor], req)
	require.NoError(t, err)
	return events
}

func TestRegistryHasAllRoles(t *testing.T) {
	reg := abilities.Registry()
	for _, r := range engine.AllRoles() {
		a, err := reg.Get(r)
		require.NoError(t, err, r.String())
		assert.Equal(t, r, a.Role())
		assert.NotEmpty(t, a.Describe())
	}
}

func TestAssassinMarksRank(t *testing.T) {
	f := newFixture(t, engine.RoleAssassin, engine.RoleKing)
	// rank 1 is out of range, so the player is asked
	f.agents[0].EXPECT().ChooseRank(gomock.Any(), f.g.Players[0], engine.RoleAssassin, 2, 8).Return(6, nil)

	resolve(t, f, abilities.Assassin{}, 0, engine.AbilityRequest{TargetRank: 1})
	r, ok := f.g.Marks.Assassinated()
	require.True(t, ok)
	assert.Equal(t, engine.RoleMerchant, r)
}

func TestThiefMarksRankAndRobber(t *testing.T) {
	f := newFixture(t, engine.RoleThief)
	f.agents[0].EXPECT().ChooseRank(gomock.Any(), gomock.Any(), engine.RoleThief, 3, 8).Return(3, nil)

	resolve(t, f, abilities.Thief{}, 0, engine.AbilityRequest{TargetRank: 2})
	r, robber, ok := f.g.Marks.Robbed()
	require.True(t, ok)
	assert.Equal(t, engine.RoleMagician, r)
	assert.Equal(t, f.g.Players[0], robber)
}

func TestMagicianSwap(t *testing.T) {
	f := newFixture(t, engine.RoleMagician)
	me, other := f.g.Players[0], f.g.Players[2]
	me.Hand = f.cards("Tavern")
	other.Hand = f.cards("Manor", "Castle", "Palace")

	resolve(t, f, abilities.Magician{}, 0, engine.AbilityRequest{
		Magic: &engine.MagicChoice{Mode: engine.MagicSwap, Target: other.ID},
	})
	assert.Len(t, me.Hand, 3)
	assert.Len(t, other.Hand, 1)
	assert.Equal(t, "Tavern", other.Hand[0].Name)
}

func TestMagicianRedrawKeepsHandSize(t *testing.T) {
	f := newFixture(t, engine.RoleMagician)
	me := f.g.Players[0]
	me.Hand = f.cards("Tavern", "Manor", "Temple")
	deck := f.g.Deck.Len()
	f.agents[0].EXPECT().ChooseMagic(gomock.Any(), me, gomock.Len(3)).
		Return(engine.MagicChoice{Mode: engine.MagicRedraw, Discard: []int{2, 0}}, nil)

	resolve(t, f, abilities.Magician{}, 0, engine.AbilityRequest{})
	require.Len(t, me.Hand, 3)
	assert.Equal(t, "Manor", me.Hand[0].Name)
	assert.Equal(t, deck, f.g.Deck.Len())
}

func TestKingIncomeAndCrown(t *testing.T) {
	f := newFixture(t, engine.RoleWarlord, engine.RoleKing)
	king := f.g.Players[1]
	king.Gold = 0
	king.City = f.cards("Manor", "Castle", "School of Magic", "Temple")
	if f.g.Crown() == 1 {
		require.NoError(t, f.g.PassCrown("A"))
	}

	resolve(t, f, abilities.King{}, 1, engine.AbilityRequest{})
	assert.Equal(t, 3, king.Gold)
	assert.Equal(t, 1, f.g.Crown())
}

func TestColorIncome(t *testing.T) {
	tests := []struct {
		name    string
		ability engine.Ability
		role    engine.CharacterRole
		city    []string
		want    int
	}{
		{"bishop", abilities.Bishop{}, engine.RoleBishop, []string{"Temple", "Church", "Manor"}, 2},
		{"bishop wildcard", abilities.Bishop{}, engine.RoleBishop, []string{"School of Magic"}, 1},
		{"merchant", abilities.Merchant{}, engine.RoleMerchant, []string{"Tavern", "Market"}, 3},
		{"merchant empty city", abilities.Merchant{}, engine.RoleMerchant, nil, 1},
		{"architect", abilities.Architect{}, engine.RoleArchitect, []string{"Tavern"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.role)
			p := f.g.Players[0]
			p.Gold = 0
			p.City = f.cards(tt.city...)
			resolve(t, f, tt.ability, 0, engine.AbilityRequest{})
			assert.Equal(t, tt.want, p.Gold)
		})
	}
}

func TestWarlordDestroys(t *testing.T) {
	f := newFixture(t, engine.RoleWarlord, engine.RoleKing)
	w, victim := f.g.Players[0], f.g.Players[1]
	w.Gold = 3
	w.City = f.cards("Watchtower")
	victim.City = f.cards("Manor", "Tavern")

	events := resolve(t, f, abilities.Warlord{}, 0, engine.AbilityRequest{
		Destroy: &engine.DestroyChoice{Target: victim.ID, District: 0},
	})
	// 3 + 1 red - (3 - 1)
	assert.Equal(t, 2, w.Gold)
	require.Len(t, victim.City, 1)
	assert.Equal(t, "Tavern", victim.City[0].Name)
	assert.Equal(t, engine.EventDestroyed, events[1].Type)
}

func TestWarlordRefusedWithoutGold(t *testing.T) {
	f := newFixture(t, engine.RoleWarlord, engine.RoleKing)
	w, victim := f.g.Players[0], f.g.Players[1]
	w.Gold = 1
	victim.City = f.cards("Palace")

	events := resolve(t, f, abilities.Warlord{}, 0, engine.AbilityRequest{
		Destroy: &engine.DestroyChoice{Target: victim.ID, District: 0},
	})
	assert.Equal(t, 1, w.Gold)
	assert.Len(t, victim.City, 1)
	assert.Equal(t, engine.EventDestroyRefused, events[0].Type)
}

func TestWarlordCannotDestroyKeep(t *testing.T) {
	f := newFixture(t, engine.RoleWarlord, engine.RoleKing)
	w, victim := f.g.Players[0], f.g.Players[1]
	w.Gold = 10
	victim.City = f.cards("Keep")

	resolve(t, f, abilities.Warlord{}, 0, engine.AbilityRequest{
		Destroy: &engine.DestroyChoice{Target: victim.ID, District: 0},
	})
	assert.Equal(t, 10, w.Gold)
	assert.Len(t, victim.City, 1)
}

func TestWarlordTargets(t *testing.T) {
	f := newFixture(t, engine.RoleWarlord, engine.RoleBishop, engine.RoleKing, engine.RoleMerchant)
	w := f.g.Players[0]
	w.City = f.cards("Watchtower")
	f.g.Players[1].City = f.cards("Temple")
	f.g.Players[2].City = f.cards("Manor")
	f.g.Players[3].City = nil

	targets := abilities.Warlord{}.Targets(f.g, w)
	require.Len(t, targets, 1)
	assert.Equal(t, "C", targets[0].ID)

	// a murdered Bishop loses the protection
	require.NoError(t, f.g.Marks.MarkAssassinated(engine.RoleBishop))
	targets = abilities.Warlord{}.Targets(f.g, w)
	assert.Len(t, targets, 2)
}

func TestWarlordBishopImmune(t *testing.T) {
	f := newFixture(t, engine.RoleWarlord, engine.RoleBishop)
	w, bishop := f.g.Players[0], f.g.Players[1]
	w.Gold = 10
	bishop.City = f.cards("Temple")

	// the only city with districts belongs to the Bishop, so nobody is asked
	resolve(t, f, abilities.Warlord{}, 0, engine.AbilityRequest{
		Destroy: &engine.DestroyChoice{Target: bishop.ID, District: 0},
	})
	assert.Len(t, bishop.City, 1)
	assert.Equal(t, 10, w.Gold)
}

func TestWarlordAsksAndMayDecline(t *testing.T) {
	f := newFixture(t, engine.RoleWarlord, engine.RoleKing)
	w, victim := f.g.Players[0], f.g.Players[1]
	w.Gold = 5
	victim.City = f.cards("Manor")
	f.agents[0].EXPECT().ChooseDestruction(gomock.Any(), w, []*engine.Player{victim}).
		Return(engine.DestroyChoice{}, false, nil)

	resolve(t, f, abilities.Warlord{}, 0, engine.AbilityRequest{})
	assert.Len(t, victim.City, 1)
	assert.Equal(t, 5, w.Gold)

	resolve(t, f, abilities.Warlord{}, 0, engine.AbilityRequest{NoDestroy: true})
	assert.Len(t, victim.City, 1)
}
