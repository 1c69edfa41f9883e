package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zpersona/internal/identity"
)

// forgetConfirmedMsg requests deletion of a saved identity by its email.
type forgetConfirmedMsg struct {
	email string
}

// forgetModel is the delete confirmation dialog.
type forgetModel struct {
	identity identity.Record
}

func newForgetModel(id identity.Record) forgetModel {
	return forgetModel{identity: id}
}

func (m forgetModel) Init() tea.Cmd {
	return nil
}

func (m forgetModel) Update(msg tea.Msg) (forgetModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	switch keyMsg.String() {
	case "y":
		email := m.identity.Email
		return m, func() tea.Msg { return forgetConfirmedMsg{email: email} }
	default:
		// any other key cancels
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}
}

func (m forgetModel) View() string {
	name := m.identity.FirstName + " " + m.identity.LastName

	s := "\n  " + zstyle.Subtitle.Render("forget "+name+"?") + "\n\n"
	s += "  " + zstyle.MutedText.Render(m.identity.Email) + "\n\n"
	s += "  " + zstyle.StatusWarn.Render("this cannot be undone.") + " (y/n)\n"

	return s
}
