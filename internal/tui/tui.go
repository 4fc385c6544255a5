// Package tui provides a Bubble Tea terminal user interface for bookshelf.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/bookshelf/internal/attach"
	"github.com/handiism/bookshelf/internal/config"
	"github.com/handiism/bookshelf/internal/model"
	"github.com/handiism/bookshelf/internal/store"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	bookStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateForm
	StateResults
)

// Action identifies a menu entry.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
	ActionSearch
	ActionUpdate
	ActionList
	ActionStats
)

var menuEntries = []string{
	"Add a New Book",
	"Remove a Book",
	"Search for Books",
	"Update Book Details",
	"View All Books",
	"View Reading Progress",
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state  State
	action Action
	cursor int

	// Form fields for the current action.
	labels []string
	inputs []textinput.Model
	focus  int

	// The update action runs in two stages: find the book by title,
	// then edit its fields prefilled with the current values.
	editing    bool
	editTarget string

	store *store.Store

	// Results view
	message   string
	messageOK bool
	books     []model.Book
	stats     *store.Stats

	width  int
	height int
}

// NewModel creates a new TUI model over an opened store.
func NewModel(st *store.Store) Model {
	return Model{
		state: StateMenu,
		store: st,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateForm:
			return m.updateForm(msg)
		case StateResults:
			return m.updateResults(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case "enter":
		m.action = Action(m.cursor)
		switch m.action {
		case ActionList:
			m.showAll()
		case ActionStats:
			m.showStats()
		default:
			m.openForm()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.resetToMenu()
		return m, nil

	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil

	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submit()
	}

	// Forward everything else to the focused field.
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter", "m":
		m.resetToMenu()
	}
	return m, nil
}

// openForm builds the input fields for the selected action.
func (m *Model) openForm() {
	switch m.action {
	case ActionAdd:
		m.buildForm(
			[]string{"Title", "Author", "Publication Year", "Genre", "Read? (y/n)", "PDF file path (optional)"},
			nil)
	case ActionRemove:
		m.buildForm([]string{"Title of the book to remove"}, nil)
	case ActionSearch:
		m.buildForm([]string{"Search term", "Search by (title/author/any)"}, []string{"", "any"})
	case ActionUpdate:
		m.editing = false
		m.buildForm([]string{"Title of the book to edit"}, nil)
	}
	m.state = StateForm
}

// buildForm creates one textinput per label, optionally prefilled.
func (m *Model) buildForm(labels, values []string) {
	m.labels = labels
	m.inputs = make([]textinput.Model, len(labels))
	for i := range labels {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		if values != nil && values[i] != "" {
			ti.SetValue(values[i])
		}
		m.inputs[i] = ti
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) resetToMenu() {
	m.state = StateMenu
	m.inputs = nil
	m.labels = nil
	m.editing = false
	m.message = ""
	m.books = nil
	m.stats = nil
}

// submit runs the store operation for the current form.
func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.action {
	case ActionAdd:
		m.submitAdd()
	case ActionRemove:
		m.submitRemove()
	case ActionSearch:
		m.submitSearch()
	case ActionUpdate:
		if !m.editing {
			return m.beginEdit()
		}
		m.submitEdit()
	}
	return m, nil
}

func (m *Model) submitAdd() {
	book := model.Book{
		Title:  m.inputs[0].Value(),
		Author: m.inputs[1].Value(),
		Year:   m.inputs[2].Value(),
		Genre:  m.inputs[3].Value(),
		Read:   parseYes(m.inputs[4].Value()),
	}

	upload, err := readUpload(m.inputs[5].Value())
	if err != nil {
		m.fail(fmt.Sprintf("Could not read PDF: %v", err))
		return
	}

	if _, err := m.store.Add(book, upload); err != nil {
		m.fail(fmt.Sprintf("Could not add book: %v", err))
		return
	}
	m.succeed("Book added successfully!")
}

func (m *Model) submitRemove() {
	if _, err := m.store.Remove(m.inputs[0].Value()); err != nil {
		m.fail("Book not found!")
		return
	}
	m.succeed("Book removed successfully!")
}

func (m *Model) submitSearch() {
	field, err := store.ParseSearchField(m.inputs[1].Value())
	if err != nil {
		m.fail(err.Error())
		return
	}

	found := m.store.Find(m.inputs[0].Value(), field)
	if len(found) == 0 {
		m.fail("No matching books found!")
		return
	}
	m.books = found
	m.succeed("Matching Books:")
}

// beginEdit resolves the title typed in stage one and opens the edit
// form prefilled with the book's current values.
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	title := m.inputs[0].Value()

	var book model.Book
	found := false
	for _, b := range m.store.ListAll() {
		if b.TitleMatches(title) {
			book = b
			found = true
			break
		}
	}
	if !found {
		m.fail("Book not found!")
		return m, nil
	}

	read := "n"
	if book.Read {
		read = "y"
	}

	m.editing = true
	m.editTarget = title
	m.buildForm(
		[]string{"New title", "New author", "New year", "New genre", "Read? (y/n)", "New PDF file path (blank to keep)"},
		[]string{book.Title, book.Author, book.Year, book.Genre, read, ""})
	return m, textinput.Blink
}

func (m *Model) submitEdit() {
	title := m.inputs[0].Value()
	author := m.inputs[1].Value()
	year := m.inputs[2].Value()
	genre := m.inputs[3].Value()
	read := parseYes(m.inputs[4].Value())

	changes := store.Changes{
		Title:  &title,
		Author: &author,
		Year:   &year,
		Genre:  &genre,
		Read:   &read,
	}

	upload, err := readUpload(m.inputs[5].Value())
	if err != nil {
		m.fail(fmt.Sprintf("Could not read PDF: %v", err))
		return
	}
	changes.Attachment = upload

	if _, err := m.store.Update(m.editTarget, changes); err != nil {
		m.fail("Book not found!")
		return
	}
	m.succeed("Book updated successfully!")
}

func (m *Model) showAll() {
	books := m.store.ListAll()
	if len(books) == 0 {
		m.fail("Your collection is empty!")
		return
	}
	m.books = books
	m.succeed("Your Book Collection")
}

func (m *Model) showStats() {
	stats := m.store.Stats()
	m.stats = &stats
	m.succeed("Reading Progress")
}

func (m *Model) succeed(msg string) {
	m.message = msg
	m.messageOK = true
	m.state = StateResults
}

func (m *Model) fail(msg string) {
	m.message = msg
	m.messageOK = false
	m.state = StateResults
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📚 Bookshelf"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Track your personal book collection"))
	b.WriteString("\n\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateForm:
		b.WriteString(m.viewForm())
	case StateResults:
		b.WriteString(m.viewResults())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Menu:"))
	b.WriteString("\n\n")
	for i, entry := range menuEntries {
		if i == m.cursor {
			b.WriteString(subtitleStyle.Render("> " + entry))
		} else {
			b.WriteString("  " + entry)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(menuEntries[m.action]))
	b.WriteString("\n\n")
	for i, label := range m.labels {
		b.WriteString(dimStyle.Render(label + ":"))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	if m.messageOK {
		b.WriteString(successStyle.Render("✓ " + m.message))
	} else {
		b.WriteString(errorStyle.Render("✗ " + m.message))
	}
	b.WriteString("\n\n")

	if m.stats != nil {
		box := boxStyle.Render(fmt.Sprintf(
			"Total books in collection: %d\nBooks read: %d\nReading Progress: %.2f%%",
			m.stats.Total, m.stats.Read, m.stats.CompletionRate))
		b.WriteString(box)
		b.WriteString("\n")
	}

	for i, book := range m.books {
		b.WriteString(fmt.Sprintf("%d. %s by %s (%s) - %s\n",
			i+1,
			bookStyle.Render(book.Title),
			book.Author,
			book.Year,
			book.ReadingStatus()))
		if book.HasAttachment() {
			b.WriteString(infoStyle.Render(fmt.Sprintf("   attachment: %s", book.AttachmentPath())))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateMenu:
		return "↑/↓: move • enter: select • q: quit"
	case StateForm:
		return "tab/enter: next field • enter on last field: submit • esc: back"
	case StateResults:
		return "enter: menu • q: quit"
	}
	return ""
}

// parseYes interprets a y/n form answer.
func parseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true":
		return true
	}
	return false
}

// readUpload turns a user-supplied file path into an upload payload.
// An empty path means no attachment.
func readUpload(path string) (*store.Upload, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &store.Upload{Name: filepath.Base(path), Data: data}, nil
}

// Run starts the TUI application with settings from the default config
// file location.
func Run() error {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	persistence := &store.FilePersistence{Path: settings.DataFile}
	st, err := store.New(persistence, attach.NewManager(settings.UploadsDir))
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(st), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
