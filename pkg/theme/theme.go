// Package theme resolves a Void program's `using style "Name";` directive
// into header/footer decoration and an ANSI color, loaded from an embedded
// YAML catalog. Styling is purely cosmetic: cmd/void applies it only to the
// header/footer/error lines it prints itself, never to echo/write output.
package theme

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var catalogFile embed.FS

// Theme is one named entry of the style catalog.
type Theme struct {
	Name   string `yaml:"-"`
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
	Color  string `yaml:"color"`
}

type catalog struct {
	Default string            `yaml:"default"`
	Styles  map[string]*Theme `yaml:"styles"`
}

var ansiCodes = map[string]string{
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"reset":   "",
}

const ansiReset = "\x1b[0m"

// errorColor is fixed regardless of style: spec.md §7 requires the fatal
// diagnostic line to always be red-tinted, style-independent.
const errorColor = "red"

var loaded *catalog

func load() *catalog {
	if loaded != nil {
		return loaded
	}
	raw, err := catalogFile.ReadFile("styles.yaml")
	if err != nil {
		// The catalog is embedded at build time; a read failure here means
		// the binary itself is broken, not a user error. Fall back to a
		// single built-in default rather than panicking mid-run.
		loaded = &catalog{Default: "Classic", Styles: map[string]*Theme{
			"Classic": {Header: "=== %s ===", Footer: "=== end ===", Color: "cyan"},
		}}
		return loaded
	}
	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		loaded = &catalog{Default: "Classic", Styles: map[string]*Theme{
			"Classic": {Header: "=== %s ===", Footer: "=== end ===", Color: "cyan"},
		}}
		return loaded
	}
	loaded = &c
	return loaded
}

// Resolve looks up name in the embedded catalog. An unknown or empty name
// falls back to the catalog's documented default theme rather than
// failing the run, per SPEC_FULL.md's "style is cosmetic" framing.
func Resolve(name string) Theme {
	c := load()
	if name != "" {
		if t, ok := c.Styles[name]; ok {
			cp := *t
			cp.Name = name
			return cp
		}
	}
	if t, ok := c.Styles[c.Default]; ok {
		cp := *t
		cp.Name = c.Default
		return cp
	}
	return Theme{Name: "Classic", Header: "=== %s ===", Footer: "=== end ===", Color: "cyan"}
}

func colorize(colorName, s string) string {
	code, ok := ansiCodes[colorName]
	if !ok || code == "" {
		return s
	}
	return code + s + ansiReset
}

// HeaderLine renders the decorated, colorized header line for appName.
func (t Theme) HeaderLine(appName string) string {
	return colorize(t.Color, fmt.Sprintf(t.Header, appName))
}

// FooterLine renders the decorated, colorized footer line.
func (t Theme) FooterLine() string {
	return colorize(t.Color, t.Footer)
}

// ErrorLine renders a fatal diagnostic line, always red regardless of the
// active theme.
func ErrorLine(message string) string {
	return colorize(errorColor, message)
}
