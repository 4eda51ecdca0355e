package pages

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// DefaultTheme is used when the visitor has no stored preference.
	DefaultTheme = ThemeDark

	themeName    = "socialsync"
	themeVersion = "1.0.0"

	SectionPhotography       = "photography"
	SectionPhotographyFilter = "projects.photography"
)

//go:embed theme.json
var themeManifestJSON []byte

// forceLightSections are the sections that switch the page to light mode
// while visible.
var forceLightSections = map[string]struct{}{
	SectionPhotography:       {},
	SectionPhotographyFilter: {},
}

// ParseTheme normalises a theme mode. Anything but light or dark is rejected.
func ParseTheme(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

// ThemeState tracks one visitor's theme preference and the force-light
// sections currently in view. It is not safe for concurrent use.
type ThemeState struct {
	preference string
	visible    map[string]struct{}
}

// NewThemeState starts from preference, falling back to DefaultTheme.
func NewThemeState(preference string) *ThemeState {
	mode, ok := ParseTheme(preference)
	if !ok {
		mode = DefaultTheme
	}
	return &ThemeState{preference: mode, visible: map[string]struct{}{}}
}

// Preference returns the stored user preference.
func (s *ThemeState) Preference() string { return s.preference }

// Enter marks section as visible. Sections that do not force light mode are ignored.
func (s *ThemeState) Enter(section string) {
	if _, ok := forceLightSections[section]; ok {
		s.visible[section] = struct{}{}
	}
}

// Leave marks section as no longer visible.
func (s *ThemeState) Leave(section string) {
	delete(s.visible, section)
}

// Forced reports whether a force-light section is visible.
func (s *ThemeState) Forced() bool { return len(s.visible) > 0 }

// Mode is light while any force-light section is visible, otherwise the preference.
func (s *ThemeState) Mode() string {
	if s.Forced() {
		return ThemeLight
	}
	return s.preference
}

// ThemeView is the theme data echoed into a page.
type ThemeView struct {
	Name       string
	Mode       string
	Preference string
	Forced     bool
	CSSVars    map[string]string
}

// Themes resolves the site theme manifest through go-theme.
type Themes struct {
	selector gotheme.Selector
	once     sync.Once
	err      error
	registry *gotheme.MemoryRegistry
}

// NewThemes returns a selector over the embedded manifest.
func NewThemes() *Themes {
	registry := gotheme.NewRegistry()
	return &Themes{
		registry: registry,
		selector: gotheme.Selector{
			Registry:       registry,
			DefaultTheme:   themeName,
			DefaultVariant: DefaultTheme,
		},
	}
}

func (t *Themes) register() error {
	t.once.Do(func() {
		var manifest gotheme.Manifest
		if err := json.Unmarshal(themeManifestJSON, &manifest); err != nil {
			t.err = fmt.Errorf("pages: decode theme manifest: %w", err)
			return
		}
		manifest.Name = themeName
		manifest.Version = themeVersion
		if err := t.registry.Register(&manifest); err != nil {
			t.err = fmt.Errorf("pages: register theme manifest: %w", err)
		}
	})
	return t.err
}

// View builds the theme view for state. When go-theme cannot resolve the
// variant the page still renders with the state's mode.
func (t *Themes) View(state *ThemeState) ThemeView {
	view := ThemeView{
		Name:       themeName,
		Mode:       state.Mode(),
		Preference: state.Preference(),
		Forced:     state.Forced(),
		CSSVars:    map[string]string{},
	}
	if t == nil || t.register() != nil {
		return view
	}
	selection, err := t.selector.Select(themeName, view.Mode)
	if err != nil || selection == nil {
		return view
	}
	if selection.Theme != "" {
		view.Name = selection.Theme
	}
	if vars := selection.CSSVariables("--"); len(vars) > 0 {
		view.CSSVars = vars
	}
	return view
}
