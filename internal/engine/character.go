package engine

import "strings"

// CharacterRole identifies the 8 base-game characters. The value is the rank,
// which fixes turn order and the ranges Assassin and Thief may target.
type CharacterRole int

const (
	RoleAssassin  CharacterRole = 1
	RoleThief     CharacterRole = 2
	RoleMagician  CharacterRole = 3
	RoleKing      CharacterRole = 4
	RoleBishop    CharacterRole = 5
	RoleMerchant  CharacterRole = 6
	RoleArchitect CharacterRole = 7
	RoleWarlord   CharacterRole = 8
)

const (
	MinRank = int(RoleAssassin)
	MaxRank = int(RoleWarlord)
)

var roleNames = map[CharacterRole]string{
	RoleAssassin:  "Assassin",
	RoleThief:     "Thief",
	RoleMagician:  "Magician",
	RoleKing:      "King",
	RoleBishop:    "Bishop",
	RoleMerchant:  "Merchant",
	RoleArchitect: "Architect",
	RoleWarlord:   "Warlord",
}

func (r CharacterRole) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "Unknown"
}

// Rank is the role's fixed position 1-8.
func (r CharacterRole) Rank() int { return int(r) }

// Ability returns the upper-case ability tag used in snapshots (e.g. "KING").
func (r CharacterRole) Ability() string {
	if !r.Valid() {
		return ""
	}
	return strings.ToUpper(r.String())
}

func (r CharacterRole) Valid() bool {
	return r >= RoleAssassin && r <= RoleWarlord
}

// Color is the district color the role collects income for.
func (r CharacterRole) Color() DistrictColor {
	switch r {
	case RoleKing:
		return ColorYellow
	case RoleBishop:
		return ColorBlue
	case RoleMerchant:
		return ColorGreen
	case RoleWarlord:
		return ColorRed
	default:
		return ColorNone
	}
}

// BuildLimit is the number of districts the role may build in one turn.
func (r CharacterRole) BuildLimit() int {
	if r == RoleArchitect {
		return 3
	}
	return 1
}

// ParseRole matches a role by name or ability tag, ignoring case.
func ParseRole(s string) (CharacterRole, bool) {
	s = strings.TrimSpace(s)
	for _, r := range AllRoles() {
		if strings.EqualFold(r.String(), s) {
			return r, true
		}
	}
	return 0, false
}

// RoleByRank returns the role with the given rank.
func RoleByRank(rank int) (CharacterRole, bool) {
	r := CharacterRole(rank)
	return r, r.Valid()
}

// AllRoles returns the 8 base-game roles in order.
func AllRoles() []CharacterRole {
	return []CharacterRole{
		RoleAssassin, RoleThief, RoleMagician, RoleKing,
		RoleBishop, RoleMerchant, RoleArchitect, RoleWarlord,
	}
}
