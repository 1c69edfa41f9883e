package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zpersona/internal/maildomain"
)

type settingsChoice int

const (
	settingsCountry settingsChoice = iota
	settingsDomain
	settingsAutoDetect
	settingsBack
)

var settingsItems = []string{
	"default country",
	"email domain",
	"detect country on start",
	"back",
}

// savePrefsMsg asks the root to persist updated preferences.
type savePrefsMsg struct {
	prefs Preferences
}

// settingsModel edits generation preferences.
type settingsModel struct {
	cursor int
	prefs  Preferences
	flash  string
}

func newSettingsModel(prefs Preferences) settingsModel {
	return settingsModel{prefs: prefs}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case flashMsg:
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(settingsItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) || msg.String() == " " {
			return m.selectItem()
		}
	}

	return m, nil
}

func (m settingsModel) selectItem() (settingsModel, tea.Cmd) {
	switch settingsChoice(m.cursor) {
	case settingsCountry:
		return m, func() tea.Msg { return openCountryPickerMsg{returnTo: viewSettings} }

	case settingsDomain:
		m.prefs.DomainChoice = nextDomainChoice(m.prefs.DomainChoice)
		prefs := m.prefs
		return m, func() tea.Msg { return savePrefsMsg{prefs: prefs} }

	case settingsAutoDetect:
		m.prefs.AutoDetect = !m.prefs.AutoDetect
		prefs := m.prefs
		return m, func() tea.Msg { return savePrefsMsg{prefs: prefs} }

	case settingsBack:
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}
	return m, nil
}

// nextDomainChoice advances through the sentinel followed by the pool,
// wrapping back to the sentinel after the last pool entry.
func nextDomainChoice(current string) string {
	all := maildomain.All()
	if maildomain.IsRandom(current) {
		return all[0]
	}
	for i, d := range all {
		if d == current {
			if i == len(all)-1 {
				return maildomain.Random
			}
			return all[i+1]
		}
	}
	return maildomain.Random
}

func (m settingsModel) valueFor(choice settingsChoice) string {
	switch choice {
	case settingsCountry:
		return m.prefs.CountryCode
	case settingsDomain:
		if maildomain.IsRandom(m.prefs.DomainChoice) {
			return maildomain.Random
		}
		return m.prefs.DomainChoice
	case settingsAutoDetect:
		if m.prefs.AutoDetect {
			return "on"
		}
		return "off"
	}
	return ""
}

func (m settingsModel) View() string {
	s := "\n"

	for i, item := range settingsItems {
		choice := settingsChoice(i)

		mi := zstyle.MenuItem{
			Label:  item,
			Active: m.cursor == i,
		}
		line := zstyle.RenderMenuItem(mi, accentColor)
		if v := m.valueFor(choice); v != "" {
			line += " " + zstyle.Highlight.Render(v)
		}
		s += line + "\n"
	}

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	help := "j/k navigate  enter change  esc back  q quit"
	s += "  " + zstyle.MutedText.Render(help) + "\n"

	return s
}
