package engine

import "fmt"

// RoundMarks records the deferred effects declared during a turn pass.
// Each field is written at most once per round and consumed when the
// marked rank is reached.
type RoundMarks struct {
	assassinated CharacterRole
	robbed       CharacterRole
	robber       *Player
	killed       CharacterRole // assassinated rank after it was reached

	assassinSet bool
	thiefSet    bool
}

// Reset empties the marks. Called at the start and end of every turn pass.
func (m *RoundMarks) Reset() {
	*m = RoundMarks{}
}

func (m *RoundMarks) MarkAssassinated(role CharacterRole) error {
	if m.assassinSet {
		return fmt.Errorf("assassination already marked this round: %w", ErrInvariantViolation)
	}
	m.assassinated = role
	m.assassinSet = true
	return nil
}

func (m *RoundMarks) MarkRobbed(role CharacterRole, robber *Player) error {
	if m.thiefSet {
		return fmt.Errorf("theft already marked this round: %w", ErrInvariantViolation)
	}
	if robber == nil {
		return fmt.Errorf("theft without a robber: %w", ErrInvariantViolation)
	}
	m.robbed = role
	m.robber = robber
	m.thiefSet = true
	return nil
}

// Assassinated returns the pending assassination mark.
func (m *RoundMarks) Assassinated() (CharacterRole, bool) {
	return m.assassinated, m.assassinated != 0
}

// IsAssassinated reports whether role was marked this round, whether or
// not its rank has been reached yet.
func (m *RoundMarks) IsAssassinated(role CharacterRole) bool {
	return role != 0 && (m.assassinated == role || m.killed == role)
}

// Robbed returns the pending theft mark.
func (m *RoundMarks) Robbed() (CharacterRole, *Player, bool) {
	return m.robbed, m.robber, m.robbed != 0
}

func (m *RoundMarks) consumeAssassination(role CharacterRole) bool {
	if m.assassinated == 0 || m.assassinated != role {
		return false
	}
	m.assassinated = 0
	m.killed = role
	return true
}

func (m *RoundMarks) consumeRobbery(role CharacterRole) (*Player, bool) {
	if m.robbed == 0 || m.robbed != role {
		return nil, false
	}
	robber := m.robber
	m.robbed, m.robber = 0, nil
	return robber, true
}
