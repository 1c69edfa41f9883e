package tui

import (
	"strings"
	"testing"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/maildomain"
)

func TestSettingsViewShowsItems(t *testing.T) {
	m := newSettingsModel(defaultPreferences())
	view := m.View()

	for _, item := range settingsItems {
		if !strings.Contains(view, item) {
			t.Errorf("settings should contain %q", item)
		}
	}
}

func TestSettingsViewShowsValues(t *testing.T) {
	prefs := Preferences{CountryCode: "DE", DomainChoice: "zburn.id", AutoDetect: false}
	m := newSettingsModel(prefs)
	view := m.View()

	if !strings.Contains(view, "DE") {
		t.Error("should show configured country")
	}
	if !strings.Contains(view, "zburn.id") {
		t.Error("should show pinned domain")
	}
	if !strings.Contains(view, "off") {
		t.Error("should show autodetect state")
	}
}

func TestSettingsNavigation(t *testing.T) {
	m := newSettingsModel(defaultPreferences())

	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestSettingsCountryOpensPicker(t *testing.T) {
	m := newSettingsModel(defaultPreferences())
	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce command")
	}
	open, ok := cmd().(openCountryPickerMsg)
	if !ok {
		t.Fatal("should emit openCountryPickerMsg")
	}
	if open.returnTo != viewSettings {
		t.Errorf("returnTo = %d, want viewSettings", open.returnTo)
	}
}

func TestSettingsCycleDomainSavesPrefs(t *testing.T) {
	m := newSettingsModel(defaultPreferences())
	m.cursor = int(settingsDomain)

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce command")
	}
	save, ok := cmd().(savePrefsMsg)
	if !ok {
		t.Fatal("should emit savePrefsMsg")
	}
	if save.prefs.DomainChoice != maildomain.All()[0] {
		t.Errorf("DomainChoice = %q, want %q", save.prefs.DomainChoice, maildomain.All()[0])
	}
}

func TestSettingsToggleAutoDetect(t *testing.T) {
	m := newSettingsModel(defaultPreferences())
	m.cursor = int(settingsAutoDetect)

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce command")
	}
	save, ok := cmd().(savePrefsMsg)
	if !ok {
		t.Fatal("should emit savePrefsMsg")
	}
	if save.prefs.AutoDetect {
		t.Error("toggle should flip AutoDetect off")
	}
}

func TestSettingsBack(t *testing.T) {
	m := newSettingsModel(defaultPreferences())
	m.cursor = int(settingsBack)

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok {
		t.Fatal("should emit navigateMsg")
	}
	if nav.view != viewMenu {
		t.Errorf("view = %d, want viewMenu", nav.view)
	}
}

func TestNextDomainChoiceWrapsThroughPool(t *testing.T) {
	all := maildomain.All()

	choice := maildomain.Random
	for i := 0; i < len(all); i++ {
		choice = nextDomainChoice(choice)
		if choice != all[i] {
			t.Fatalf("step %d: choice = %q, want %q", i, choice, all[i])
		}
	}

	choice = nextDomainChoice(choice)
	if !maildomain.IsRandom(choice) {
		t.Errorf("after last pool entry choice = %q, want sentinel", choice)
	}
}

func TestNextDomainChoiceUnknownResets(t *testing.T) {
	if got := nextDomainChoice("not-in-pool.example"); !maildomain.IsRandom(got) {
		t.Errorf("unknown choice should reset to sentinel, got %q", got)
	}
}

// countries picker tests

func TestCountriesPickerShowsAll(t *testing.T) {
	m := newCountriesModel(locale.All())
	view := m.View()

	for _, c := range locale.All() {
		if !strings.Contains(view, c.Code) {
			t.Errorf("picker should list %s", c.Code)
		}
	}
}

func TestCountriesPickerFilter(t *testing.T) {
	m := newCountriesModel(locale.All())

	m, _ = m.Update(keyMsg('g'))
	m, _ = m.Update(keyMsg('e'))
	m, _ = m.Update(keyMsg('r'))

	if len(m.filtered) != 1 {
		t.Fatalf("filtered = %d entries, want 1", len(m.filtered))
	}
	if m.filtered[0].Code != "DE" {
		t.Errorf("match = %q, want DE", m.filtered[0].Code)
	}
}

func TestCountriesPickerFilterByCode(t *testing.T) {
	m := newCountriesModel(locale.All())

	m, _ = m.Update(keyMsg('u'))
	m, _ = m.Update(keyMsg('a'))

	found := false
	for _, c := range m.filtered {
		if c.Code == "UA" {
			found = true
		}
	}
	if !found {
		t.Error("filtering by code should match UA")
	}
}

func TestCountriesPickerChoose(t *testing.T) {
	m := newCountriesModel(locale.All())
	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce command")
	}
	chosen, ok := cmd().(countryChosenMsg)
	if !ok {
		t.Fatal("should emit countryChosenMsg")
	}
	if chosen.code != locale.All()[0].Code {
		t.Errorf("code = %q, want %q", chosen.code, locale.All()[0].Code)
	}
}

func TestCountriesPickerNoMatches(t *testing.T) {
	m := newCountriesModel(locale.All())

	for _, r := range "zzzz" {
		m, _ = m.Update(keyMsg(r))
	}

	if len(m.filtered) != 0 {
		t.Fatalf("filtered = %d entries, want 0", len(m.filtered))
	}
	if !strings.Contains(m.View(), "no matches") {
		t.Error("should show empty state")
	}

	// enter with no matches is a no-op
	if _, cmd := m.Update(enterKey()); cmd != nil {
		t.Error("enter with no matches should not emit")
	}
}

func TestCountriesPickerCancel(t *testing.T) {
	m := newCountriesModel(locale.All())
	_, cmd := m.Update(escKey())
	if cmd == nil {
		t.Fatal("esc should produce command")
	}
	if _, ok := cmd().(countryPickerCancelMsg); !ok {
		t.Error("should emit countryPickerCancelMsg")
	}
}
