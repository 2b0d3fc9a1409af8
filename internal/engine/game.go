package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrInvalidAction      = errors.New("invalid action")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrWrongPhase         = errors.New("wrong phase for this action")
	ErrNotEnoughGold      = errors.New("not enough gold")
	ErrAlreadyBuilt       = errors.New("already built a district with that name")
	ErrBuildLimit         = errors.New("build limit reached for this turn")
	ErrIncomeTaken        = errors.New("income already taken this turn")
	ErrAbilityUsed        = errors.New("ability already used this turn")
	ErrPoolExhausted      = errors.New("character pool exhausted")
	ErrInvariantViolation = errors.New("game invariant violated")
	ErrRoundAbandoned     = errors.New("round abandoned")
)

// Game holds the entire game state.
type Game struct {
	ID        string           `json:"id"`
	Players   []*Player        `json:"players"`
	Deck      *Deck            `json:"-"`
	Pool      *CharacterPool   `json:"-"`
	Config    GameConfig       `json:"-"`
	Abilities *AbilityRegistry `json:"-"`

	Phase         GamePhase     `json:"phase"`
	TurnState     TurnState     `json:"turn_state"`
	Round         int           `json:"round"`
	CurrentRank   CharacterRole `json:"current_rank"`
	CurrentPlayer string        `json:"current_player"`

	Marks      RoundMarks  `json:"-"`
	Assignment Assignment  `json:"-"`
	Draft      *DraftState `json:"draft,omitempty"`

	// First player to reach EndCitySize districts.
	FirstToComplete string `json:"first_to_complete"`

	crown int
	rng   *rand.Rand
	log   logrus.FieldLogger
	sinks []func(Event)
}

// NewGame creates a new game with given players and config.
func NewGame(players []*Player, config GameConfig, abilities *AbilityRegistry) *Game {
	if config.EndCitySize <= 0 {
		config.EndCitySize = 8
	}
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))
	log := config.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	g := &Game{
		ID:        uuid.NewString(),
		Players:   players,
		Deck:      NewDeck(config.Districts, rng),
		Pool:      NewCharacterPool(rng),
		Config:    config,
		Abilities: abilities,
		Phase:     PhaseSetup,
		rng:       rng,
	}
	g.log = log.WithField("game", g.ID)
	return g
}

// Subscribe registers fn to receive every event the game emits, in order.
func (g *Game) Subscribe(fn func(Event)) {
	g.sinks = append(g.sinks, fn)
}

func (g *Game) emit(ev Event) {
	entry := g.log.WithField("round", g.Round).WithField("event", string(ev.Type))
	if ev.Player != "" {
		entry = entry.WithField("player", ev.Player)
	}
	entry.Debug("event")
	for _, fn := range g.sinks {
		fn(ev)
	}
}

// StartGame deals the starting hands and gives the crown to a random player.
func (g *Game) StartGame() error {
	if n := len(g.Players); n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%d players, need %d-%d: %w", n, MinPlayers, MaxPlayers, ErrInvalidAction)
	}
	for _, p := range g.Players {
		if p.Agent == nil {
			return fmt.Errorf("player %s has no agent: %w", p.Name, ErrInvalidAction)
		}
		p.Hand = g.Deck.Draw(g.Config.StartingHand)
		p.Gold = g.Config.StartingGold
	}
	g.crown = g.rng.IntN(len(g.Players))
	g.emit(Event{Type: EventGameStart, Data: map[string]any{
		"players": len(g.Players), "crown": g.Players[g.crown].Name,
	}})
	return nil
}

// PlayRound runs one draft and one turn pass.
func (g *Game) PlayRound(ctx context.Context) error {
	g.Round++
	g.TurnState = TurnIdle
	g.CurrentRank = 0
	if err := g.RunDraft(ctx); err != nil {
		return fmt.Errorf("round %d draft: %w", g.Round, err)
	}
	if err := g.RunTurns(ctx); err != nil {
		return fmt.Errorf("round %d turns: %w", g.Round, err)
	}
	g.emit(Event{Type: EventRoundEnd, Data: map[string]any{"round": g.Round}})
	if g.FirstToComplete != "" {
		g.Phase = PhaseGameOver
		first := g.GetPlayer(g.FirstToComplete)
		g.emit(Event{Type: EventGameOver, Player: g.FirstToComplete, Data: map[string]any{
			"round": g.Round, "first_to_complete": first.Name,
		}})
	}
	return nil
}

// Play runs rounds until a city is complete, the context is cancelled or
// a round fails. An abandoned round (after a load) starts over with a
// fresh draft.
func (g *Game) Play(ctx context.Context) error {
	for !g.Over() {
		err := g.PlayRound(ctx)
		if errors.Is(err, ErrRoundAbandoned) {
			g.log.WithField("round", g.Round).Info("round abandoned")
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Over() bool { return g.Phase == PhaseGameOver }

// Crown returns the index of the crown holder in Players.
func (g *Game) Crown() int { return g.crown }

// CrownHolder returns the player holding the crown.
func (g *Game) CrownHolder() *Player { return g.Players[g.crown] }

// PassCrown gives the crown to the player with the given ID.
func (g *Game) PassCrown(playerID string) error {
	if g.PlayerIndex(playerID) < 0 {
		return ErrPlayerNotFound
	}
	g.setCrown(playerID)
	return nil
}

func (g *Game) setCrown(playerID string) {
	i := g.PlayerIndex(playerID)
	if i < 0 || i == g.crown {
		return
	}
	g.crown = i
	g.emit(Event{Type: EventCrownPassed, Player: playerID, Data: map[string]any{"holder": g.Players[i].Name}})
}

// GetPlayer finds a player by ID.
func (g *Game) GetPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerIndex returns the seat of a player, or -1.
func (g *Game) PlayerIndex(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Others returns every player except p, in seat order.
func (g *Game) Others(p *Player) []*Player {
	out := make([]*Player, 0, len(g.Players)-1)
	for _, o := range g.Players {
		if o.ID != p.ID {
			out = append(out, o)
		}
	}
	return out
}

// RoleOf returns the role a player drafted this round.
func (g *Game) RoleOf(playerID string) (CharacterRole, bool) {
	return g.Assignment.RoleOf(playerID)
}

// HasActiveRole reports whether the player holds role this round and it
// has not been assassinated.
func (g *Game) HasActiveRole(playerID string, role CharacterRole) bool {
	r, ok := g.Assignment.RoleOf(playerID)
	return ok && r == role && !g.Marks.IsAssassinated(role)
}

// Rand is the game's seeded source, shared with abilities.
func (g *Game) Rand() *rand.Rand { return g.rng }

// Logger returns the game's logger.
func (g *Game) Logger() logrus.FieldLogger { return g.log }

// PublicViewData is the game state anyone may see.
type PublicViewData struct {
	ID              string             `json:"id"`
	Phase           string             `json:"phase"`
	TurnState       string             `json:"turn_state"`
	Round           int                `json:"round"`
	Players         []PublicPlayerData `json:"players"`
	CurrentRank     string             `json:"current_rank,omitempty"`
	CurrentTurn     string             `json:"current_turn,omitempty"`
	DraftFaceUp     []string           `json:"draft_face_up,omitempty"`
	DraftPicker     string             `json:"draft_picker,omitempty"`
	DraftAvailable  int                `json:"draft_available,omitempty"`
	FirstToComplete string             `json:"first_to_complete,omitempty"`
	DeckSize        int                `json:"deck_size"`
}

type PublicPlayerData struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Human    bool       `json:"human"`
	Gold     int        `json:"gold"`
	HandSize int        `json:"hand_size"`
	City     []District `json:"city"`
	HasCrown bool       `json:"has_crown"`
	// Role is shown once its rank has been called this round.
	RevealedRole string `json:"revealed_role,omitempty"`
}

func (g *Game) PublicView() PublicViewData {
	pv := PublicViewData{
		ID:        g.ID,
		Phase:     g.Phase.String(),
		TurnState: g.TurnState.String(),
		Round:     g.Round,
		DeckSize:  g.Deck.Len(),
	}
	if g.Phase == PhaseTurns && g.CurrentRank.Valid() {
		pv.CurrentRank = g.CurrentRank.String()
	}
	if p := g.GetPlayer(g.CurrentPlayer); p != nil {
		pv.CurrentTurn = p.Name
	}
	if p := g.GetPlayer(g.FirstToComplete); p != nil {
		pv.FirstToComplete = p.Name
	}
	if g.Draft != nil && g.Phase == PhaseDraft {
		pv.DraftFaceUp = roleStrings(g.Draft.FaceUp)
		pv.DraftAvailable = g.Pool.Len()
		if p := g.GetPlayer(g.Draft.CurrentPickerID()); p != nil {
			pv.DraftPicker = p.Name
		}
	}

	for i, p := range g.Players {
		ppd := PublicPlayerData{
			ID:       p.ID,
			Name:     p.Name,
			Human:    p.IsHuman(),
			Gold:     p.Gold,
			HandSize: len(p.Hand),
			City:     p.City,
			HasCrown: i == g.crown,
		}
		if r, ok := g.Assignment.RoleOf(p.ID); ok && g.Phase == PhaseTurns && r <= g.CurrentRank {
			ppd.RevealedRole = r.String()
		}
		pv.Players = append(pv.Players, ppd)
	}
	return pv
}
