// Package termcap classifies terminal-graphics capability from an
// injectable environment provider. Detection is a pure function of its
// inputs: side-effect free, non-blocking, and safe to call repeatedly.
package termcap

import (
	"os"
	"strings"
)

// EnvFunc looks up an environment variable, returning (value, present).
type EnvFunc func(name string) (string, bool)

// OSEnv reads from the real process environment via os.LookupEnv. It is a
// convenience for call sites; detection logic itself always takes an
// explicit EnvFunc so it stays testable.
func OSEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func get(env EnvFunc, name string) string {
	v, _ := env(name)
	return v
}

func has(env EnvFunc, name string) bool {
	_, ok := env(name)
	return ok
}

// DetectKitty reports Kitty graphics-protocol support:
// TERM == "xterm-kitty", or TERM_PROGRAM == "kitty", or KITTY_WINDOW_ID set.
func DetectKitty(env EnvFunc) bool {
	if get(env, "TERM") == "xterm-kitty" {
		return true
	}
	if get(env, "TERM_PROGRAM") == "kitty" {
		return true
	}
	return has(env, "KITTY_WINDOW_ID")
}

// DetectITerm2 reports iTerm2-protocol support: TERM_PROGRAM or LC_TERMINAL
// is one of iTerm.app, WezTerm, mintty.
func DetectITerm2(env EnvFunc) bool {
	switch get(env, "TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "mintty":
		return true
	}
	switch get(env, "LC_TERMINAL") {
	case "iTerm.app", "WezTerm", "mintty":
		return true
	}
	return false
}

// DetectSixel reports Sixel support per the ordered rules in spec.md §4.4.
func DetectSixel(env EnvFunc) bool {
	if get(env, "TERM_PROGRAM") == "xterm" && has(env, "XTERM_VERSION") {
		return true
	}
	switch get(env, "TERM_PROGRAM") {
	case "mlterm", "foot", "contour", "WezTerm":
		return true
	}
	term := strings.ToLower(get(env, "TERM"))
	if strings.Contains(term, "sixel") || term == "mlterm" {
		return true
	}
	return false
}

// DetectANSI256 reports 256-color ANSI support.
func DetectANSI256(env EnvFunc) bool {
	if has(env, "NO_COLOR") {
		return false
	}
	term := get(env, "TERM")
	lowerTerm := strings.ToLower(term)
	if strings.Contains(lowerTerm, "256color") || strings.Contains(lowerTerm, "256-color") {
		return true
	}
	switch get(env, "TERM_PROGRAM") {
	case "iTerm.app", "kitty", "WezTerm", "Alacritty", "vscode":
		return true
	}
	return strings.HasPrefix(term, "xterm") || strings.HasPrefix(term, "screen")
}

// DetectBraille reports UTF-8/braille-rendering support. It defaults true
// when no signal indicates otherwise, since braille is the universal
// Unicode fallback.
func DetectBraille(env EnvFunc) bool {
	for _, name := range []string{"LANG", "LC_ALL"} {
		v := strings.ToUpper(get(env, name))
		if strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8") {
			return true
		}
	}
	if DetectKitty(env) || DetectITerm2(env) || DetectSixel(env) || DetectANSI256(env) {
		return true
	}
	term := strings.ToLower(get(env, "TERM"))
	if strings.Contains(term, "utf") || strings.Contains(term, "unicode") {
		return true
	}
	return true
}

// DetectAll runs every backend's detection rule and returns the results
// keyed by backend name.
func DetectAll(env EnvFunc) map[string]bool {
	return map[string]bool{
		"kitty":   DetectKitty(env),
		"iterm2":  DetectITerm2(env),
		"sixel":   DetectSixel(env),
		"ansi":    DetectANSI256(env),
		"braille": DetectBraille(env),
	}
}
