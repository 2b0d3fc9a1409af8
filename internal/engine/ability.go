package engine

import (
	"context"
	"fmt"
)

// AbilityRequest carries choices an agent made up front. Anything left
// empty is asked for through the player's Agent when the ability resolves.
type AbilityRequest struct {
	TargetRank int            // Assassin, Thief
	Magic      *MagicChoice   // Magician
	Destroy    *DestroyChoice // Warlord
	NoDestroy  bool           // Warlord: collect income only
}

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventGameStart      EventType = "game_start"
	EventDraftStart     EventType = "draft_start"
	EventDraftHidden    EventType = "draft_hidden"
	EventDraftFaceUp    EventType = "draft_face_up"
	EventDraftPick      EventType = "draft_pick"
	EventDraftDiscard   EventType = "draft_discard"
	EventDraftDone      EventType = "draft_done"
	EventInputRejected  EventType = "input_rejected"
	EventCharacterCall  EventType = "character_call"
	EventMurdered       EventType = "murdered"
	EventRobbed         EventType = "robbed"
	EventTurnStart      EventType = "turn_start"
	EventArchitectDraw  EventType = "architect_draw"
	EventGoldTaken      EventType = "gold_taken"
	EventCardsDrawn     EventType = "cards_drawn"
	EventCardKept       EventType = "card_kept"
	EventDistrictBuilt  EventType = "district_built"
	EventCityComplete   EventType = "city_complete"
	EventAbilityUsed    EventType = "ability_used"
	EventGoldCollected  EventType = "gold_collected"
	EventDestroyed      EventType = "district_destroyed"
	EventDestroyRefused EventType = "destroy_refused"
	EventTurnEnd        EventType = "turn_end"
	EventRoundEnd       EventType = "round_end"
	EventCrownPassed    EventType = "crown_passed"
	EventGameRestored   EventType = "game_restored"
	EventGameOver       EventType = "game_over"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType      `json:"type"`
	Player string         `json:"player,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// Ability defines a character's special ability.
type Ability interface {
	Role() CharacterRole
	// NeedsTarget returns true if the ability asks for a target.
	NeedsTarget() bool
	// Describe is the one-line help shown to a human player.
	Describe() string
	// Resolve executes the ability for actor. Missing choices in req are
	// asked for through actor.Agent.
	Resolve(ctx context.Context, g *Game, actor *Player, req AbilityRequest) ([]Event, error)
}

// AbilityRegistry maps roles to their abilities.
type AbilityRegistry struct {
	abilities map[CharacterRole]Ability
}

func NewAbilityRegistry() *AbilityRegistry {
	return &AbilityRegistry{abilities: make(map[CharacterRole]Ability)}
}

func (r *AbilityRegistry) Register(a Ability) {
	r.abilities[a.Role()] = a
}

func (r *AbilityRegistry) Get(role CharacterRole) (Ability, error) {
	a, ok := r.abilities[role]
	if !ok {
		return nil, fmt.Errorf("no ability registered for role %d: %w", role, ErrInvalidAction)
	}
	return a, nil
}

// CollectIncome credits actor one gold per city district counting as the
// role's color and returns the event, or nil when nothing was collected.
func CollectIncome(actor *Player, role CharacterRole) *Event {
	color := role.Color()
	if color == ColorNone {
		return nil
	}
	n := actor.CityColorCount(color)
	if n == 0 {
		return nil
	}
	actor.AddGold(n)
	return &Event{Type: EventGoldCollected, Player: actor.ID, Data: map[string]any{
		"role": role.String(), "color": color.String(), "count": n,
	}}
}

func roleStrings(roles []CharacterRole) []string {
	s := make([]string, len(roles))
	for i, r := range roles {
		s[i] = r.String()
	}
	return s
}
