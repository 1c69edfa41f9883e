// Package tui implements the root Bubble Tea model for zpersona.
package tui

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zpersona/internal/identity"
	"github.com/zarlcorp/zpersona/internal/locale"
)

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewGenerate
	viewList
	viewDetail
	viewCountries
	viewSettings
	viewForget
)

// accentColor is the zpersona brand color used for cursors and the logo.
var accentColor = lipgloss.Color("141")

func accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(accentColor).Bold(true)
}

// Model is the root TUI model.
type Model struct {
	version    string
	dataDir    string
	gen        *identity.Generator
	store      *zstore.Store
	identities *zstore.Collection[identity.Record]
	configs    *zstore.Collection[configEnvelope]
	firstRun   bool

	// detected is the country code from IP geolocation, or "" when
	// detection failed or was skipped.
	detected string

	prefs        Preferences
	country      locale.Country
	domainChoice string

	active       viewID
	pickerReturn viewID
	password     passwordModel
	menu         menuModel
	generate     generateModel
	list         listModel
	detail       detailModel
	countries    countriesModel
	settings     settingsModel
	forget       forgetModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. detected may be empty.
func New(version, dataDir string, gen *identity.Generator, firstRun bool, detected string) Model {
	return Model{
		version:  version,
		dataDir:  dataDir,
		gen:      gen,
		firstRun: firstRun,
		detected: detected,
		country:  locale.Default(),
		active:   viewPassword,
		password: newPasswordModel(firstRun),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case saveIdentityMsg:
		return m.handleSave(msg.identity)

	case viewIdentityMsg:
		m.detail = newDetailModel(msg.identity)
		m.active = viewDetail
		return m, nil

	case forgetStartMsg:
		m.forget = newForgetModel(msg.identity)
		m.active = viewForget
		return m, tea.ClearScreen

	case forgetConfirmedMsg:
		return m.handleForget(msg.email)

	case quickEmailMsg:
		return m.handleQuickEmail()

	case cycleDomainMsg:
		return m.handleCycleDomain()

	case openCountryPickerMsg:
		m.pickerReturn = msg.returnTo
		m.countries = newCountriesModel(m.gen.Countries())
		m.active = viewCountries
		return m, tea.Batch(m.countries.Init(), tea.ClearScreen)

	case countryChosenMsg:
		return m.handleCountryChosen(msg.code)

	case countryPickerCancelMsg:
		return m.navigate(m.pickerReturn)

	case savePrefsMsg:
		return m.handleSavePrefs(msg.prefs)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu include the logo, render directly
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	case viewCountries:
		content = m.countries.View()
	case viewSettings:
		content = m.settings.View()
	case viewForget:
		content = m.forget.View()
	}

	header := zstyle.RenderHeader("zpersona", viewTitle(m.active), accentColor)
	sep := zstyle.RenderSeparator(m.width)

	return "\n" + header + "\n" + sep + "\n" + content + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generate Identity"
	case viewList:
		return "Saved Identities"
	case viewDetail:
		return "Identity Details"
	case viewCountries:
		return "Country"
	case viewSettings:
		return "Settings"
	case viewForget:
		return "Forget"
	}
	return ""
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case viewCountries:
		m.countries, cmd = m.countries.Update(msg)
	case viewSettings:
		m.settings, cmd = m.settings.Update(msg)
	case viewForget:
		m.forget, cmd = m.forget.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	if err := os.MkdirAll(m.dataDir, 0o700); err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{
			err: fmt.Errorf("create data dir: %w", err),
		})
		return m, nil
	}

	fsys := zfilesystem.NewOSFileSystem(m.dataDir)
	s, err := zstore.Open(fsys, []byte(password))
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	idCol, err := zstore.NewCollection[identity.Record](s, "identities")
	if err != nil {
		s.Close()
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	cfgCol, err := zstore.NewCollection[configEnvelope](s, "config")
	if err != nil {
		s.Close()
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	m.identities = idCol
	m.configs = cfgCol
	m.loadPrefs()
	return m.navigate(viewMenu)
}

// loadPrefs reads stored preferences and resolves the active country:
// the configured default wins, then the detected country, then US.
func (m *Model) loadPrefs() {
	prefs := loadConfig[Preferences](m.configs, "preferences")
	if prefs == (Preferences{}) {
		prefs = defaultPreferences()
	}
	m.prefs = prefs
	m.domainChoice = prefs.DomainChoice

	if c, err := locale.Lookup(prefs.CountryCode); err == nil {
		m.country = c
		return
	}
	if prefs.AutoDetect {
		if c, err := locale.Lookup(m.detected); err == nil {
			m.country = c
			return
		}
	}
	m.country = locale.Default()
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version, m.country.Code)
		if m.identities != nil {
			if ids, err := m.identities.List(); err == nil {
				mm.identityCount = len(ids)
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		id, err := m.gen.Generate(m.country, m.domainChoice)
		if err != nil {
			m.menu.flash = "generate: " + err.Error()
			m.active = viewMenu
			return m, clearFlashAfter()
		}
		m.generate = newGenerateModel(id, m.domainChoice)
		m.active = viewGenerate
		return m, tea.ClearScreen

	case viewList:
		m, cmd := m.loadList()
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen

	case viewSettings:
		m.settings = newSettingsModel(m.prefs)
		m.active = viewSettings
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) loadList() (tea.Model, tea.Cmd) {
	ids, err := m.identities.List()
	if err != nil {
		// show empty list with error flash
		m.list = newListModel(nil)
		m.list.flash = "load: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	// sort by CreatedAt descending, zstore.List does not guarantee order
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].CreatedAt.After(ids[j].CreatedAt)
	})

	m.list = newListModel(ids)
	m.active = viewList
	return m, nil
}

func (m Model) handleSave(id identity.Record) (tea.Model, tea.Cmd) {
	if err := m.identities.Put(id.Email, id); err != nil {
		m.generate.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.generate, _ = m.generate.Update(identitySavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleForget(email string) (tea.Model, tea.Cmd) {
	if err := m.identities.Delete(email); err != nil {
		m.list.flash = "forget: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	return m.loadList()
}

// handleQuickEmail generates a throwaway address for the active country
// and puts it on the clipboard without leaving the menu.
func (m Model) handleQuickEmail() (tea.Model, tea.Cmd) {
	first, last, err := m.gen.Name(m.country)
	if err != nil {
		m.menu.flash = "email: " + err.Error()
		return m, clearFlashAfter()
	}

	email, err := m.gen.Email(first, last, m.domainChoice)
	if err != nil {
		m.menu.flash = "email: " + err.Error()
		return m, clearFlashAfter()
	}

	if err := copyToClipboard(email); err != nil {
		m.menu.flash = email
		return m, clearFlashAfter()
	}

	m.menu.flash = "copied " + email
	return m, clearFlashAfter()
}

// handleCycleDomain advances the domain choice and recomposes the
// current identity's email without regenerating the rest.
func (m Model) handleCycleDomain() (tea.Model, tea.Cmd) {
	m.domainChoice = nextDomainChoice(m.domainChoice)

	id := m.generate.identity
	email, err := m.gen.Email(id.FirstName, id.LastName, m.domainChoice)
	if err != nil {
		m.generate.flash = "email: " + err.Error()
		return m, clearFlashAfter()
	}
	id.Email = email

	m.generate = newGenerateModel(id, m.domainChoice)
	return m, nil
}

func (m Model) handleCountryChosen(code string) (tea.Model, tea.Cmd) {
	c, err := locale.Lookup(code)
	if err != nil {
		return m.navigate(m.pickerReturn)
	}
	m.country = c

	if m.pickerReturn == viewSettings {
		prefs := m.prefs
		prefs.CountryCode = c.Code
		return m.handleSavePrefs(prefs)
	}

	return m.navigate(m.pickerReturn)
}

func (m Model) handleSavePrefs(prefs Preferences) (tea.Model, tea.Cmd) {
	if err := saveConfig(m.configs, "preferences", prefs); err != nil {
		m.settings.flash = "save: " + err.Error()
		m.active = viewSettings
		return m, clearFlashAfter()
	}

	m.prefs = prefs
	m.domainChoice = prefs.DomainChoice
	if c, err := locale.Lookup(prefs.CountryCode); err == nil {
		m.country = c
	}

	cursor := m.settings.cursor
	m.settings = newSettingsModel(prefs)
	m.settings.cursor = cursor
	m.settings.flash = "saved"
	m.active = viewSettings
	return m, tea.Batch(clearFlashAfter(), tea.ClearScreen)
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
