package engine

//go:generate mockgen -destination=mock/mock_agent.go -package=mockengine -source=agent.go

import "context"

// DraftOffer is what a picker may see during the draft.
type DraftOffer struct {
	Round       int             `json:"round"`
	Available   []CharacterRole `json:"available"`
	FaceUp      []CharacterRole `json:"face_up"`
	HiddenCount int             `json:"hidden_count"`
}

// MagicMode selects one of the Magician's two effects.
type MagicMode int

const (
	MagicSwap   MagicMode = 1 // exchange hands with another player
	MagicRedraw MagicMode = 2 // discard some cards and draw as many
)

// MagicChoice is the Magician's decision.
type MagicChoice struct {
	Mode    MagicMode
	Target  string // player ID for MagicSwap
	Discard []int  // hand indices for MagicRedraw
}

// DestroyChoice names a district in another player's city.
type DestroyChoice struct {
	Target   string // player ID
	District int    // index into the target's city
}

// Agent makes a player's decisions. Every method may block; the console
// human waits on input, bots answer immediately.
type Agent interface {
	// ChooseCharacter returns the name of one of offer.Available.
	ChooseCharacter(ctx context.Context, p *Player, offer DraftOffer) (string, error)
	// PlayTurn runs the player's whole turn and returns when the turn ends.
	PlayTurn(ctx context.Context, t *Turn) error
	// ChooseRank picks a target rank in [min, max] for the given role's ability.
	ChooseRank(ctx context.Context, p *Player, role CharacterRole, min, max int) (int, error)
	// ChooseMagic picks the Magician's effect. others excludes p.
	ChooseMagic(ctx context.Context, p *Player, others []*Player) (MagicChoice, error)
	// ChooseDestruction picks a district to destroy among targets, or
	// returns false to destroy nothing.
	ChooseDestruction(ctx context.Context, p *Player, targets []*Player) (DestroyChoice, bool, error)
}
