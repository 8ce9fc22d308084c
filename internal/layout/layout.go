// Package layout holds the pre-declared screen layouts shipped inside the
// binary. The shell presents one of them before anything else happens.
package layout

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var files embed.FS

const MainName = "activity_main"

type Element struct {
	ID    string `yaml:"id"`
	Text  string `yaml:"text,omitempty"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color,omitempty"`
}

type Layout struct {
	Name       string    `yaml:"name"`
	Title      string    `yaml:"title"`
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background string    `yaml:"background"`
	Elements   []Element `yaml:"elements"`
}

// Main returns the layout the shell shows on activation.
func Main() (Layout, error) { return Load(MainName) }

func Load(name string) (Layout, error) {
	data, err := files.ReadFile(name + ".yaml")
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", name, err)
	}
	return Decode(data)
}

func Decode(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: decode: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (l Layout) Validate() error {
	if l.Name == "" {
		return errors.New("layout: missing name")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout %s: bad size %dx%d", l.Name, l.Width, l.Height)
	}
	if _, err := ParseColor(l.Background); err != nil {
		return fmt.Errorf("layout %s: background: %w", l.Name, err)
	}
	seen := map[string]bool{}
	for _, e := range l.Elements {
		if e.ID == "" {
			return fmt.Errorf("layout %s: element without id", l.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("layout %s: duplicate element %q", l.Name, e.ID)
		}
		seen[e.ID] = true
		if e.Color != "" {
			if _, err := ParseColor(e.Color); err != nil {
				return fmt.Errorf("layout %s: element %q: %w", l.Name, e.ID, err)
			}
		}
	}
	return nil
}

func (l Layout) Element(id string) (Element, bool) {
	for _, e := range l.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// ParseColor accepts "#rrggbb".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
