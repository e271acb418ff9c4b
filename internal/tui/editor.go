// Package tui is the interactive record editor: a Bubble Tea list
// over the loaded store, persisted on quit when anything changed.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lungarella-raffaele/marc/internal/model"
	"github.com/lungarella-raffaele/marc/internal/store/jsonstore"
	"github.com/lungarella-raffaele/marc/internal/tags"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// listItem adapts a record to bubbles/list.Item.
type listItem struct {
	Rec model.Record
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.Rec.Content }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Rec.Content + " " + i.Rec.Tag }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	content := it.Rec.Content
	if it.Rec.Done {
		box = successStyle.Render(boxChecked)
		content = doneStyle.Render(content)
	}
	line := fmt.Sprintf("%s %s", box, content)
	if it.Rec.Tag != "" {
		line += " " + tagStyle.Render("#"+it.Rec.Tag)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// input modes for the shared text input
type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputEdit
	inputTag
)

type editor struct {
	list    list.Model
	changed bool

	width  int
	height int

	mode      inputMode
	ti        textinput.Model
	editIndex int
	inputErr  string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  *listItem
}

// Run starts the editor over f and writes changes back through st on quit.
func Run(st *jsonstore.Store, f *jsonstore.File) error {
	p := tea.NewProgram(newEditor(f), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, okModel := finalModel.(editor)
	if !okModel || !fm.changed {
		return nil
	}

	// Write back list state to the store file and persist.
	f.Records = fm.records()
	for _, r := range f.Records {
		f.Tags = tags.Merge(f.Tags, r.Tag)
	}
	return st.Save(f)
}

func newEditor(f *jsonstore.File) editor {
	li := make([]list.Item, 0, len(f.Records))
	for _, r := range f.Records {
		li = append(li, listItem{Rec: r})
	}

	l := list.New(li, itemDelegate{}, 0, 0)

	// Header title with live counts
	dn, pn := stats(f.Records)
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Marc"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), len(f.Records),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("record", "records")

	// Extend help with Add / Edit / Tag / Undo bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	tagBind := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tag"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, tagBind, undoBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := editor{list: l, width: 80, height: 24}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200
	return m
}

// records extracts the current list state in order.
func (m editor) records() []model.Record {
	out := make([]model.Record, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Rec)
		}
	}
	return out
}

func (m editor) Init() tea.Cmd { return nil }

func (m editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if m.mode != inputNone {
		return m.updateInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			// position in the full item slice, not the filtered view
			i := m.list.GlobalIndex()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					li.Rec.Done = !li.Rec.Done
					m.list.SetItem(i, li)
					m.changed = true
				}
			}
			return m, nil
		case "d":
			i := m.list.GlobalIndex()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					tmp := li
					m.undoItem = &tmp
					m.undoIndex = i
					m.canUndo = true
				}
				m.list.RemoveItem(i)
				m.changed = true
			}
			return m, nil
		case "a":
			m.mode = inputAdd
			m.ti.SetValue("")
			m.ti.Placeholder = "New record..."
			m.ti.Focus()
			return m, nil
		case "e":
			i := m.list.GlobalIndex()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					m.mode = inputEdit
					m.editIndex = i
					m.ti.SetValue(li.Rec.Content)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit record..."
					m.ti.Focus()
				}
			}
			return m, nil
		case "t":
			i := m.list.GlobalIndex()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					m.mode = inputTag
					m.editIndex = i
					m.ti.SetValue(li.Rec.Tag)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Tag (empty clears)..."
					m.ti.Focus()
				}
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				m.list.InsertItem(idx, *m.undoItem)
				m.changed = true
				m.canUndo = false
				m.undoItem = nil
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m editor) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			value := strings.TrimSpace(m.ti.Value())
			switch m.mode {
			case inputAdd:
				if value == "" {
					m.inputErr = "Content cannot be empty"
					return m, nil
				}
				m.list.InsertItem(m.list.GlobalIndex()+1, listItem{Rec: model.New(value, "")})
			case inputEdit:
				if value == "" {
					m.inputErr = "Content cannot be empty"
					return m, nil
				}
				if li, ok := m.item(m.editIndex); ok {
					li.Rec.Content = value
					m.list.SetItem(m.editIndex, li)
				}
			case inputTag:
				// empty value clears the tag
				if li, ok := m.item(m.editIndex); ok {
					li.Rec.Tag = value
					m.list.SetItem(m.editIndex, li)
				}
			}
			m.changed = true
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *editor) item(i int) (listItem, bool) {
	if i < 0 || i >= len(m.list.Items()) {
		return listItem{}, false
	}
	li, ok := m.list.Items()[i].(listItem)
	return li, ok
}

func (m *editor) closeInput() {
	m.mode = inputNone
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m editor) View() string {
	listHeight := m.height - 4
	if m.mode != inputNone {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.mode != inputNone {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := map[inputMode]string{
			inputAdd:  "Add record",
			inputEdit: "Edit record",
			inputTag:  "Set tag",
		}[m.mode]
		if m.inputErr != "" {
			title += " — " + errorStyle.Render(m.inputErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(content)
}

// small list stats used for the header
func stats(records []model.Record) (done, pending int) {
	for _, r := range records {
		if r.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
