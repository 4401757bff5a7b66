package domain

import (
	"fmt"
	"strings"
	"time"
)

type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
	ThemeColorful
	ThemeBlackWhite
	ThemeModern
)

// Themes lists every theme in shortcut/cycle order.
var Themes = []Theme{ThemeDark, ThemeLight, ThemeColorful, ThemeBlackWhite, ThemeModern}

const DefaultTheme = ThemeDark

var themeNames = [...]string{"dark", "light", "colorful", "blackwhite", "modern"}

func (t Theme) Valid() bool { return t >= ThemeDark && t <= ThemeModern }

func (t Theme) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Theme(%d)", int(t))
	}
	return themeNames[t]
}

func ParseTheme(s string) (Theme, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range themeNames {
		if n == s {
			return Theme(i), nil
		}
	}
	return DefaultTheme, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// ThemeByShortcut maps the 1-based Ctrl+N shortcut to a theme.
func ThemeByShortcut(n int) (Theme, bool) {
	if n < 1 || n > len(Themes) {
		return DefaultTheme, false
	}
	return Themes[n-1], true
}

// Next returns the following theme, wrapping after the last one.
func (t Theme) Next() Theme {
	if !t.Valid() {
		return DefaultTheme
	}
	return Themes[(int(t)+1)%len(Themes)]
}

func (t Theme) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Theme) UnmarshalText(b []byte) error {
	v, err := ParseTheme(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Transition describes how the UI animates into a theme.
type Transition struct {
	Theme        Theme         `json:"theme"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	PrimaryColor string        `json:"primaryColor"`
	Filter       string        `json:"filter,omitempty"`
	Transform    string        `json:"transform,omitempty"`
	CardEffect   string        `json:"cardEffect,omitempty"`
	CardStagger  time.Duration `json:"cardStagger"`
	Duration     time.Duration `json:"duration"`
	ToneHz       []int         `json:"toneHz"`
	ToneStagger  time.Duration `json:"toneStagger"`
}

var transitions = [...]Transition{
	ThemeDark: {
		Theme: ThemeDark, Name: "Dark", Description: "Dark look with glowing accents", PrimaryColor: "#a1cca5",
		Filter: "brightness(0.3) blur(2px)", CardEffect: "rotateY(180deg) scale(0.8)",
		CardStagger: 50 * time.Millisecond, Duration: 300 * time.Millisecond,
		ToneHz: []int{200, 300, 400}, ToneStagger: 50 * time.Millisecond,
	},
	ThemeLight: {
		Theme: ThemeLight, Name: "Light", Description: "Clean light look", PrimaryColor: "#93b7be",
		Filter: "brightness(1.5) blur(1px)", Transform: "scale(0.95)",
		Duration: 300 * time.Millisecond,
		ToneHz:   []int{400, 600, 800}, ToneStagger: 50 * time.Millisecond,
	},
	ThemeColorful: {
		Theme: ThemeColorful, Name: "Colorful", Description: "Vibrant, saturated colors", PrimaryColor: "#3f84e5",
		Filter: "hue-rotate(180deg) saturate(2)", CardEffect: "rotate(jitter) scale(0.9) hue-rotate(90deg)",
		CardStagger: 30 * time.Millisecond, Duration: 400 * time.Millisecond,
		ToneHz: []int{300, 500, 700, 900}, ToneStagger: 50 * time.Millisecond,
	},
	ThemeBlackWhite: {
		Theme: ThemeBlackWhite, Name: "Black & White", Description: "Classic monochrome", PrimaryColor: "#000000",
		Filter: "grayscale(1) contrast(2)", Transform: "scaleX(0.1)",
		Duration: 300 * time.Millisecond,
		ToneHz:   []int{220, 440}, ToneStagger: 50 * time.Millisecond,
	},
	ThemeModern: {
		Theme: ThemeModern, Name: "Modern", Description: "Sleek modern look", PrimaryColor: "#fe5f55",
		Filter: "blur(3px)", Transform: "perspective(1000px) rotateX(-20deg)",
		Duration: 300 * time.Millisecond,
		ToneHz:   []int{350, 550, 750}, ToneStagger: 50 * time.Millisecond,
	},
}

// Transition returns the theme's transition record; invalid themes get the default's.
func (t Theme) Transition() Transition {
	if !t.Valid() {
		t = DefaultTheme
	}
	tr := transitions[t]
	tr.ToneHz = append([]int(nil), tr.ToneHz...)
	return tr
}
