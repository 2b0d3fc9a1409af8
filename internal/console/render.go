package console

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"citadels-console/internal/engine"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if title != "" {
		t.SetTitle(title)
	}
	t.SetStyle(table.StyleLight)
	return t
}

// RenderCards prints cards numbered from 1.
func RenderCards(w io.Writer, title string, cards []engine.District) {
	if len(cards) == 0 {
		fmt.Fprintf(w, "%s: none\n", title)
		return
	}
	t := newTable(w, title)
	t.AppendHeader(table.Row{"#", "District", "Color", "Cost"})
	for i, d := range cards {
		t.AppendRow(table.Row{i + 1, colorize(d), d.Color, d.Cost})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

// RenderAll prints every player's public state. Roles show once called.
func RenderAll(w io.Writer, g *engine.Game) {
	view := g.PublicView()
	t := newTable(w, fmt.Sprintf("Round %d", view.Round))
	t.AppendHeader(table.Row{"#", "Player", "Gold", "Hand", "City", "Character", ""})
	for i, p := range view.Players {
		crown := ""
		if p.HasCrown {
			crown = "crown"
		}
		t.AppendRow(table.Row{i + 1, p.Name, p.Gold, p.HandSize, len(p.City), p.RevealedRole, crown})
	}
	t.Render()
}

// RenderHelp prints the command list.
func RenderHelp(w io.Writer) {
	t := newTable(w, "Commands")
	t.AppendHeader(table.Row{"Command", "Description"})
	t.AppendRows([]table.Row{
		{"t", "process the next computer turn"},
		{"hand", "show your hand"},
		{"gold", "show your gold"},
		{"build <n>", "build district n from your hand"},
		{"city [p]", "show your city, or player p's"},
		{"info <n|character>", "describe hand card n or a character"},
		{"action [args]", "use your character's ability (bare 'action' explains it)"},
		{"all", "show every player"},
		{"save <name>", "save the game"},
		{"load <name>", "load a saved game; the round restarts with a new draft"},
		{"debug", "toggle showing computer hands"},
		{"end", "end your turn"},
		{"quit", "leave the game"},
	})
	t.Render()
}
