package engine

import "github.com/sirupsen/logrus"

const (
	MinPlayers = 4
	MaxPlayers = 7
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	Districts    []District         // card pool
	EndCitySize  int                // districts that end the game (default 8)
	StartingHand int                // cards dealt to each player (default 4)
	StartingGold int                // gold each player starts with (default 2)
	Seed         uint64             // seeds every random choice the engine makes
	Logger       logrus.FieldLogger // nil discards engine logs
}

func DefaultConfig() GameConfig {
	return GameConfig{
		Districts:    BaseDistricts(),
		EndCitySize:  8,
		StartingHand: 4,
		StartingGold: 2,
	}
}
