// Package console is the terminal front end: the human Agent reading
// commands from a line editor, and a Narrator printing engine events.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"citadels-console/internal/engine"
)

// ErrQuit is returned when the player quits or input is closed.
var ErrQuit = errors.New("player quit")

// LineReader is the input side of the console. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// C is the console palette.
var C = struct {
	Header, Info, Warn, Prompt, Good, Bad, Debug *color.Color
}{
	Header: color.New(color.FgWhite, color.Bold),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Prompt: color.New(color.FgHiWhite),
	Good:   color.New(color.FgGreen),
	Bad:    color.New(color.FgRed),
	Debug:  color.New(color.FgMagenta),
}

var districtColors = map[engine.DistrictColor]*color.Color{
	engine.ColorYellow: color.New(color.FgYellow),
	engine.ColorBlue:   color.New(color.FgBlue),
	engine.ColorGreen:  color.New(color.FgGreen),
	engine.ColorRed:    color.New(color.FgRed),
	engine.ColorPurple: color.New(color.FgMagenta),
}

func colorize(d engine.District) string {
	if c, ok := districtColors[d.Color]; ok {
		return c.Sprint(d.Name)
	}
	return d.Name
}

func readLine(in LineReader, prompt string) (string, error) {
	line, err := in.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrQuit
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line != "" {
		in.AppendHistory(line)
	}
	return line, nil
}

// parseIndex turns a 1-based number typed by the player into an index
// below n.
func parseIndex(s string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

// parseIndexList reads "1,3" or "1 3" as 0-based indices below n.
func parseIndexList(s string, n int) ([]int, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, false
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		i, ok := parseIndex(f, n)
		if !ok {
			return nil, false
		}
		out = append(out, i)
	}
	return out, true
}
