package pages

import "testing"

func TestThemeStateForceLightOverride(t *testing.T) {
	state := NewThemeState("")
	if state.Mode() != ThemeDark {
		t.Fatalf("expected dark default, got %q", state.Mode())
	}

	state.Enter("hero")
	if state.Forced() {
		t.Fatal("expected ordinary sections to be ignored")
	}

	state.Enter(SectionPhotography)
	state.Enter(SectionPhotographyFilter)
	if state.Mode() != ThemeLight {
		t.Fatalf("expected light while photography visible, got %q", state.Mode())
	}
	state.Leave(SectionPhotography)
	if state.Mode() != ThemeLight {
		t.Fatal("expected light while another force-light section is visible")
	}
	state.Leave(SectionPhotographyFilter)
	if state.Mode() != ThemeDark {
		t.Fatalf("expected preference restored, got %q", state.Mode())
	}
}

func TestThemeStateOffscreenLeaveBeforeEnter(t *testing.T) {
	state := NewThemeState(ThemeDark)

	// The first observer callback reports every section, visible or not.
	state.Leave(SectionPhotography)
	if state.Mode() != ThemeDark {
		t.Fatalf("expected preference while off-screen, got %q", state.Mode())
	}
	state.Enter(SectionPhotography)
	if state.Mode() != ThemeLight {
		t.Fatalf("expected light once scrolled into view, got %q", state.Mode())
	}
	state.Enter(SectionPhotography)
	state.Leave(SectionPhotography)
	if state.Mode() != ThemeDark {
		t.Fatalf("expected preference once scrolled out, got %q", state.Mode())
	}
}

func TestThemeStateKeepsLightPreference(t *testing.T) {
	state := NewThemeState("LIGHT")
	if state.Preference() != ThemeLight || state.Mode() != ThemeLight {
		t.Fatalf("expected light preference, got %q/%q", state.Preference(), state.Mode())
	}
	if _, ok := ParseTheme("sepia"); ok {
		t.Fatal("expected unknown theme to be rejected")
	}
}

func TestThemesViewEchoesMode(t *testing.T) {
	state := NewThemeState(ThemeDark)
	state.Enter(SectionPhotography)
	view := NewThemes().View(state)
	if view.Mode != ThemeLight || !view.Forced || view.Preference != ThemeDark {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.Name == "" {
		t.Fatal("expected theme name")
	}
}
