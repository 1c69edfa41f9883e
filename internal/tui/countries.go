package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zpersona/internal/locale"
)

// openCountryPickerMsg asks the root to show the country picker and
// remember where the chosen code should be delivered.
type openCountryPickerMsg struct {
	returnTo viewID
}

// countryChosenMsg carries the picked country code back to the root.
type countryChosenMsg struct {
	code string
}

// countryPickerCancelMsg returns to the view that opened the picker.
type countryPickerCancelMsg struct{}

// countriesModel is a filterable country picker. The registry listing
// is stable, so typing narrows the same ordered set every time.
type countriesModel struct {
	all      []locale.Country
	filtered []locale.Country
	filter   textinput.Model
	cursor   int
}

func newCountriesModel(all []locale.Country) countriesModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 24

	return countriesModel{
		all:      all,
		filtered: all,
		filter:   ti,
	}
}

func (m countriesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m countriesModel) Update(msg tea.Msg) (countriesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		return m, func() tea.Msg { return countryPickerCancelMsg{} }

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(keyMsg, zstyle.KeyEnter) {
		if len(m.filtered) == 0 {
			return m, nil
		}
		code := m.filtered[m.cursor].Code
		return m, func() tea.Msg { return countryChosenMsg{code: code} }
	}

	// everything else edits the filter
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *countriesModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		m.filtered = m.all
	} else {
		var out []locale.Country
		for _, c := range m.all {
			if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Code), q) {
				out = append(out, c)
			}
		}
		m.filtered = out
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m countriesModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("select country") + "\n\n"
	s += "  " + m.filter.View() + "\n\n"

	if len(m.filtered) == 0 {
		s += "  " + zstyle.MutedText.Render("no matches") + "\n"
		return s
	}

	for i, c := range m.filtered {
		line := fmt.Sprintf("%s  %s", c.Code, c.Name)
		if i == m.cursor {
			s += "  " + accentStyle().Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	return s
}
