// Package lobby seats the players of a console game before it starts.
package lobby

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

const (
	MinPlayers = 4
	MaxPlayers = 7
)

var (
	ErrStarted          = errors.New("game already started")
	ErrFull             = errors.New("lobby is full")
	ErrHumanSeated      = errors.New("a human player is already seated")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrNoHuman          = errors.New("no human player seated")
)

// Seat is one chair at the table.
type Seat struct {
	ID    string
	Name  string
	Human bool
}

// Lobby collects seats until Start.
type Lobby struct {
	mu      sync.Mutex
	seats   []*Seat
	started bool
}

func New() *Lobby {
	return &Lobby{}
}

// Join adds a seat and returns its ID. At most one seat is human.
func (l *Lobby) Join(name string, human bool) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return "", ErrStarted
	}
	if len(l.seats) >= MaxPlayers {
		return "", ErrFull
	}
	if human {
		for _, s := range l.seats {
			if s.Human {
				return "", ErrHumanSeated
			}
		}
	}
	id := uuid.NewString()
	l.seats = append(l.seats, &Seat{ID: id, Name: name, Human: human})
	return id, nil
}

// Leave removes a seat.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.seats {
		if s.ID == id {
			l.seats = append(l.seats[:i], l.seats[i+1:]...)
			return
		}
	}
}

// Start closes the lobby. It needs 4-7 seats, one of them human.
func (l *Lobby) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return ErrStarted
	}
	if len(l.seats) < MinPlayers {
		return fmt.Errorf("%d seated, need %d: %w", len(l.seats), MinPlayers, ErrNotEnoughPlayers)
	}
	human := false
	for _, s := range l.seats {
		human = human || s.Human
	}
	if !human {
		return ErrNoHuman
	}
	l.started = true
	return nil
}

func (l *Lobby) Started() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started
}

// Seats returns a copy of the seats in join order.
func (l *Lobby) Seats() []Seat {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Seat, len(l.seats))
	for i, s := range l.seats {
		out[i] = *s
	}
	return out
}

// Table seats humanName first and fills the remaining n-1 chairs with
// computer players named "CPU 1", "CPU 2", and so on, then starts.
func Table(n int, humanName string) (*Lobby, error) {
	if n > MaxPlayers {
		return nil, fmt.Errorf("%d players, want at most %d: %w", n, MaxPlayers, ErrFull)
	}
	l := New()
	if _, err := l.Join(humanName, true); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if _, err := l.Join(fmt.Sprintf("CPU %d", i), false); err != nil {
			return nil, err
		}
	}
	if err := l.Start(); err != nil {
		return nil, err
	}
	return l, nil
}
