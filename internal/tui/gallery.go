package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/minecraft1024a/mofox-market/internal/i18n"
	"github.com/minecraft1024a/mofox-market/internal/view"
)

// ViewMode represents the current view mode
type ViewMode int

const (
	ModeList ViewMode = iota
	ModeDetail
)

// Model is the bubbletea model for the plugin gallery
type Model struct {
	browser     *view.Browser
	total       int
	featured    []catalog.Plugin
	cursor      int
	width       int
	height      int
	searchInput textinput.Model
	mode        ViewMode
	quitting    bool
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	noRepoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	featuredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// NewModel creates a new gallery model
func NewModel(browser *view.Browser, total int, featured []catalog.Plugin) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 50
	ti.Width = 30

	return Model{
		browser:     browser,
		total:       total,
		featured:    featured,
		searchInput: ti,
		mode:        ModeList,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeDetail {
		return m.handleDetailKey(msg)
	}

	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// If search has text, clear it; otherwise quit
		if m.searchInput.Value() != "" {
			m.setQuery("")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down":
		if m.cursor < len(m.browser.Page())-1 {
			m.cursor++
		}

	case "left", "pgup":
		if m.browser.PrevPage() {
			m.cursor = 0
		}

	case "right", "pgdown":
		if m.browser.NextPage() {
			m.cursor = 0
		}

	case "tab":
		m.browser.ToggleSortOrder()
		m.clampCursor()

	case "enter":
		if _, ok := m.current(); ok {
			m.mode = ModeDetail
		}

	case "backspace":
		// Handle backspace for search
		val := []rune(m.searchInput.Value())
		if len(val) > 0 {
			m.setQuery(string(val[:len(val)-1]))
		}

	default:
		// Any other printable text goes to search
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.setQuery(m.searchInput.Value() + string(msg.Runes))
		}
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "enter", "q":
		m.mode = ModeList
	}
	return m, nil
}

func (m *Model) setQuery(query string) {
	m.searchInput.SetValue(query)
	m.browser.SetSearchQuery(query)
	m.browser.GoToPage(1)
	m.cursor = 0
}

func (m *Model) clampCursor() {
	n := len(m.browser.Page())
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func (m Model) current() (catalog.Plugin, bool) {
	page := m.browser.Page()
	if m.cursor < 0 || m.cursor >= len(page) {
		return catalog.Plugin{}, false
	}
	return page[m.cursor], true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == ModeDetail {
		return m.renderDetailModal()
	}

	return m.renderListView()
}

func (m Model) renderListView() string {
	var b strings.Builder

	// Header
	header := titleStyle.Render(i18n.T("TUIHeader", map[string]any{"Count": m.total}))
	b.WriteString(header)
	b.WriteString("\n")

	if len(m.featured) > 0 {
		names := make([]string, 0, len(m.featured))
		for _, p := range m.featured {
			names = append(names, displayName(p))
		}
		b.WriteString(featuredStyle.Render(i18n.T("TUIFeatured", map[string]any{"Names": strings.Join(names, ", ")})))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Calculate layout
	listWidth := 44
	previewWidth := max(30, m.width-listWidth-6)
	listHeight := max(view.PageSize, m.height-10)

	page := m.browser.Page()
	var listLines []string
	for i, p := range page {
		listLines = append(listLines, m.renderItem(i, p, listWidth))
	}

	listBox := lipgloss.NewStyle().Width(listWidth).Render(strings.Join(listLines, "\n"))
	previewBox := previewStyle.Width(previewWidth).Height(listHeight).Render(m.renderPreview(previewWidth))

	content := lipgloss.JoinHorizontal(lipgloss.Top, listBox, "  ", previewBox)
	b.WriteString(content)
	b.WriteString("\n\n")

	// Search bar (always visible)
	searchQuery := m.searchInput.Value()
	if searchQuery != "" {
		b.WriteString("> " + searchQuery + "_")
	} else {
		b.WriteString(helpStyle.Render("> type to filter..."))
	}
	b.WriteString("\n")

	pages := m.browser.TotalPages()
	current := m.browser.CurrentPage()
	if pages == 0 {
		current = 0
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s | sort: %s",
		i18n.T("PageFooter", map[string]any{"Page": current, "Total": pages}),
		m.browser.SortOrder(),
	)))
	b.WriteString("\n")

	help := helpStyle.Render("↑/↓: move | ←/→: page | Tab: sort | Enter: details | Esc: clear/quit")
	b.WriteString(help)

	return b.String()
}

func (m Model) renderItem(idx int, p catalog.Plugin, width int) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = "> "
	}

	version := p.Version
	if version == "" {
		version = "latest"
	}

	text := fmt.Sprintf("%s%s (v%s)", cursor, displayName(p), version)
	text = runewidth.Truncate(text, width, "…")

	switch {
	case idx == m.cursor:
		return selectedStyle.Render(text)
	case !p.HasRepository():
		return noRepoStyle.Render(text)
	default:
		return normalStyle.Render(text)
	}
}

func (m Model) renderPreview(width int) string {
	p, ok := m.current()
	if !ok {
		return i18n.T("TUIPreviewEmpty", nil)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Name: %s\n", displayName(p)))
	b.WriteString(fmt.Sprintf("Author: %s\n", p.Author))

	version := p.Version
	if version == "" {
		version = "latest"
	}
	b.WriteString(fmt.Sprintf("Version: %s\n", version))
	b.WriteString("\n")

	if p.Description != "" {
		desc := runewidth.Wrap(p.Description, max(10, width-4))
		b.WriteString(fmt.Sprintf("Description:\n%s\n\n", desc))
	}

	if len(p.Tags) > 0 {
		b.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(p.Tags, ", ")))
	}

	b.WriteString(fmt.Sprintf("License: %s\n", p.License))

	return b.String()
}

func (m Model) renderDetailModal() string {
	p, ok := m.current()
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(displayName(p)))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"ID", p.ID},
		{"Version", p.Version},
		{"Author", p.Author},
		{"License", p.License},
		{"Icon", p.Icon},
		{"Created", p.CreatedAt},
		{"Downloads", fmt.Sprintf("%d", p.Downloads)},
		{"Categories", strings.Join(p.Categories, ", ")},
		{"Keywords", strings.Join(p.Keywords, ", ")},
		{"Homepage", p.HomepageURL},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%-11s %s\n", row[0]+":", row[1]))
	}

	link, err := catalog.RepositoryLink(p.RepositoryURL)
	switch {
	case err == nil:
		b.WriteString(fmt.Sprintf("%-11s %s\n", "Repository:", link))
	case errors.Is(err, catalog.ErrInvalidRepository):
		b.WriteString(noRepoStyle.Render(i18n.T("InvalidRepository", nil)) + "\n")
	default:
		b.WriteString(noRepoStyle.Render(i18n.T("NoRepository", nil)) + "\n")
	}

	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(runewidth.Wrap(p.Description, max(30, m.width-12)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc/Enter: back"))

	return modalStyle.Render(b.String())
}

func displayName(p catalog.Plugin) string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// RunGallery launches the interactive plugin gallery over a loaded store
func RunGallery(store *catalog.Store, featured []catalog.Plugin) error {
	if store.Len() == 0 {
		return fmt.Errorf("%s", i18n.T("NoPlugins", nil))
	}

	model := NewModel(view.NewBrowser(store), store.Len(), featured)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
