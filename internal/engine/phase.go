package engine

// GamePhase represents the current phase of the game loop.
type GamePhase int

const (
	PhaseSetup    GamePhase = iota // players seated, nothing dealt
	PhaseDraft                     // roles being hidden, revealed and picked
	PhaseTurns                     // ranks 1-8 being called
	PhaseGameOver                  // a city was completed
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:    "Setup",
	PhaseDraft:    "Draft",
	PhaseTurns:    "Turns",
	PhaseGameOver: "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// TurnState is the state of the turn pass over ranks 1-8.
type TurnState int

const (
	TurnIdle               TurnState = iota
	TurnAwaitingRankPlayer           // looking up who holds CurrentRank
	TurnResolvingRobbery             // moving the victim's gold to the robber
	TurnActivePlayer                 // the rank's player is taking their turn
	TurnRoundComplete                // rank 8 processed
)

var turnStateNames = map[TurnState]string{
	TurnIdle:               "Idle",
	TurnAwaitingRankPlayer: "AwaitingRankPlayer",
	TurnResolvingRobbery:   "ResolvingRobbery",
	TurnActivePlayer:       "ActivePlayerTurn",
	TurnRoundComplete:      "RoundComplete",
}

func (s TurnState) String() string {
	if n, ok := turnStateNames[s]; ok {
		return n
	}
	return "Unknown"
}
