package console

import (
	"fmt"
	"io"

	"citadels-console/internal/engine"
)

// Narrator prints engine events as they happen.
type Narrator struct {
	out   io.Writer
	g     *engine.Game
	human string
}

// NewNarrator narrates g. Rejected input is only reported for humanID.
func NewNarrator(out io.Writer, g *engine.Game, humanID string) *Narrator {
	return &Narrator{out: out, g: g, human: humanID}
}

func (n *Narrator) name(id string) string {
	if id == n.human {
		return "You"
	}
	if p := n.g.GetPlayer(id); p != nil {
		return p.Name
	}
	return id
}

// Handle is registered with Game.Subscribe.
func (n *Narrator) Handle(ev engine.Event) {
	d := ev.Data
	switch ev.Type {
	case engine.EventGameStart:
		C.Header.Fprintf(n.out, "A game of Citadels with %v players begins. %v holds the crown.\n", d["players"], d["crown"])
	case engine.EventDraftStart:
		C.Header.Fprintf(n.out, "\n================ ROUND %v ================\n", d["round"])
		fmt.Fprintln(n.out, "Selection phase")
	case engine.EventDraftHidden:
		fmt.Fprintln(n.out, "A mystery character was removed.")
	case engine.EventDraftFaceUp:
		fmt.Fprintf(n.out, "%v was removed and placed face-up.\n", d["role"])
	case engine.EventDraftPick:
		if ev.Player != n.human {
			fmt.Fprintf(n.out, "%s chose a character.\n", n.name(ev.Player))
		}
	case engine.EventDraftDiscard:
		fmt.Fprintln(n.out, "One final character was discarded face-down.")
	case engine.EventDraftDone:
		fmt.Fprintln(n.out, "\nTurn phase")
	case engine.EventInputRejected:
		if ev.Player == n.human {
			C.Warn.Fprintf(n.out, "'%v' is not a valid %v.\n", d["input"], d["choice"])
		}
	case engine.EventCharacterCall:
		fmt.Fprintf(n.out, "%v. %v is %s.\n", d["rank"], d["role"], n.name(ev.Player))
	case engine.EventMurdered:
		C.Bad.Fprintf(n.out, "%s was assassinated. Skipping turn.\n", n.name(ev.Player))
	case engine.EventRobbed:
		C.Bad.Fprintf(n.out, "%s has been robbed. %v took %v gold.\n", n.name(ev.Player), d["thief"], d["stolen"])
	case engine.EventArchitectDraw:
		fmt.Fprintf(n.out, "%s draws %v extra cards and may build up to 3 districts.\n", n.name(ev.Player), d["count"])
	case engine.EventGoldTaken:
		fmt.Fprintf(n.out, "%s took %v gold.\n", n.name(ev.Player), d["gold"])
	case engine.EventCardsDrawn:
		fmt.Fprintf(n.out, "%s drew %v card(s).\n", n.name(ev.Player), d["count"])
	case engine.EventCardKept:
		if ev.Player == n.human {
			fmt.Fprintf(n.out, "You kept %v.\n", d["card"])
		}
	case engine.EventDistrictBuilt:
		C.Good.Fprintf(n.out, "%s built %v [%v, %v].\n", n.name(ev.Player), d["district"], d["color"], d["cost"])
	case engine.EventCityComplete:
		C.Header.Fprintf(n.out, "%s completed a city of %v districts. This is the final round.\n", n.name(ev.Player), d["size"])
	case engine.EventGoldCollected:
		fmt.Fprintf(n.out, "%s collected %v gold for %v districts.\n", n.name(ev.Player), d["count"], d["color"])
	case engine.EventAbilityUsed:
		n.ability(ev)
	case engine.EventDestroyed:
		C.Bad.Fprintf(n.out, "%s destroyed %v's %v for %v gold.\n", n.name(ev.Player), d["target"], d["district"], d["cost"])
	case engine.EventDestroyRefused:
		C.Warn.Fprintf(n.out, "%v cannot be destroyed: %v.\n", d["district"], d["reason"])
	case engine.EventTurnEnd:
		if ev.Player != n.human {
			fmt.Fprintf(n.out, "%s ended their turn.\n", n.name(ev.Player))
		}
	case engine.EventCrownPassed:
		fmt.Fprintf(n.out, "%v now holds the crown.\n", d["holder"])
	case engine.EventGameRestored:
		C.Info.Fprintf(n.out, "Game restored at round %v. %v holds the crown.\n", d["round"], d["crown"])
	case engine.EventGameOver:
		C.Header.Fprintln(n.out, "\n================ GAME OVER ================")
		fmt.Fprintf(n.out, "%v was the first to complete a city, in round %v.\n", d["first_to_complete"], d["round"])
		RenderAll(n.out, n.g)
	}
}

func (n *Narrator) ability(ev engine.Event) {
	d := ev.Data
	who := n.name(ev.Player)
	switch d["ability"] {
	case "assassin":
		fmt.Fprintf(n.out, "%s chose to assassinate the %v.\n", who, d["target_role"])
	case "thief":
		fmt.Fprintf(n.out, "%s chose to rob the %v.\n", who, d["target_role"])
	case "magician":
		if d["mode"] == "swap_hand" {
			fmt.Fprintf(n.out, "%s swapped hands with %v.\n", who, d["target"])
		} else {
			fmt.Fprintf(n.out, "%s discarded and redrew %v card(s).\n", who, d["count"])
		}
	case "merchant":
		if bonus, ok := d["bonus"]; ok {
			fmt.Fprintf(n.out, "%s receives %v bonus gold.\n", who, bonus)
		}
	}
}
