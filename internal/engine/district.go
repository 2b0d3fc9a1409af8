package engine

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DistrictColor represents the five district categories.
type DistrictColor int

const (
	ColorNone   DistrictColor = 0
	ColorYellow DistrictColor = 1 // noble
	ColorBlue   DistrictColor = 2 // religious
	ColorGreen  DistrictColor = 3 // trade
	ColorRed    DistrictColor = 4 // military
	ColorPurple DistrictColor = 5 // special
)

var colorNames = map[DistrictColor]string{
	ColorNone:   "none",
	ColorYellow: "yellow",
	ColorBlue:   "blue",
	ColorGreen:  "green",
	ColorRed:    "red",
	ColorPurple: "purple",
}

func (c DistrictColor) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseColor accepts the color name or its category name (noble, religious, ...).
func ParseColor(s string) (DistrictColor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yellow", "noble":
		return ColorYellow, nil
	case "blue", "religious":
		return ColorBlue, nil
	case "green", "trade":
		return ColorGreen, nil
	case "red", "military":
		return ColorRed, nil
	case "purple", "special":
		return ColorPurple, nil
	}
	return ColorNone, fmt.Errorf("unknown district color %q", s)
}

// wildcardDistricts count as every income color in addition to their own.
var wildcardDistricts = map[string]bool{
	"School of Magic": true,
}

// District represents a district card.
type District struct {
	Name  string        `json:"name"`
	Color DistrictColor `json:"color"`
	Cost  int           `json:"cost"`
	Text  string        `json:"text,omitempty"`
}

// CountsAs reports whether the district earns income for the given color.
func (d District) CountsAs(color DistrictColor) bool {
	if color == ColorNone {
		return false
	}
	if d.Color == color {
		return true
	}
	return wildcardDistricts[d.Name] && color != ColorPurple
}

func (d District) String() string {
	return fmt.Sprintf("%s [%s%d]", d.Name, d.Color, d.Cost)
}

//go:embed districts.tsv
var baseDistrictsTSV string

// BaseDistricts returns the standard district deck.
func BaseDistricts() []District {
	cards, err := LoadDistricts(strings.NewReader(baseDistrictsTSV))
	if err != nil {
		panic(fmt.Sprintf("embedded districts: %v", err))
	}
	return cards
}

// LoadDistricts reads a tab-separated card list with a header row and the
// columns name, quantity, color, cost and an optional text. Rows with fewer
// than four columns are skipped.
func LoadDistricts(r io.Reader) ([]District, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var cards []District
	header := true
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read districts: %w", err)
		}
		line++
		if header {
			header = false
			continue
		}
		if len(rec) < 4 {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: quantity: %w", line, err)
		}
		color, err := ParseColor(rec[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cost, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d: cost: %w", line, err)
		}
		var text string
		if len(rec) > 4 {
			text = strings.TrimSpace(rec[4])
		}
		for i := 0; i < qty; i++ {
			cards = append(cards, District{
				Name:  strings.TrimSpace(rec[0]),
				Color: color,
				Cost:  cost,
				Text:  text,
			})
		}
	}
	if len(cards) == 0 {
		return nil, errors.New("read districts: no cards")
	}
	return cards, nil
}

// Catalog indexes a card list by name for snapshot restore.
type Catalog map[string]District

func NewCatalog(cards []District) Catalog {
	c := make(Catalog, len(cards))
	for _, d := range cards {
		c[strings.ToLower(d.Name)] = d
	}
	return c
}

func (c Catalog) Lookup(name string) (District, bool) {
	d, ok := c[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}
