// Package tui is the interactive terminal form.
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

	"github.com/idilsaglam/linkform/internal/form"
	"github.com/idilsaglam/linkform/internal/model"
	"github.com/idilsaglam/linkform/internal/ui"
	"github.com/idilsaglam/linkform/internal/validate"
)

// rowItem adapts one form row to bubbles/list.Item
type rowItem struct {
	item model.Item
	errs []validate.FieldError
}

func (r rowItem) FilterValue() string { return r.item.Title }

// Custom delegate: the row on the first line, its visible errors on the second.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 2 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, _ := item.(rowItem)
	t := ui.Current()

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+ui.RowLine(index, r.item))

	msgs := make([]string, 0, len(r.errs))
	for _, e := range r.errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	if len(msgs) == 0 {
		return
	}
	fmt.Fprint(w, "      "+t.Error.Render(t.SymInvalid+" "+strings.Join(msgs, "  ")))
}

type keyMap struct {
	Append, Prepend, Insert, Remove key.Binding
	Swap, MoveUp, MoveDown          key.Binding
	EditTitle, EditURL, Clear       key.Binding
	Submit, Quit                    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Append:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
		Prepend:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prepend")),
		Insert:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert below")),
		Remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Swap:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap with next")),
		MoveUp:    key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		EditTitle: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		EditURL:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "edit url")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "replace with empty")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Append, k.Prepend, k.Remove, k.EditTitle, k.EditURL, k.Submit}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{
		k.Append, k.Prepend, k.Insert, k.Remove, k.Swap, k.MoveUp, k.MoveDown,
		k.EditTitle, k.EditURL, k.Clear, k.Submit,
	}
}

type modelTUI struct {
	form *form.Form
	list list.Model
	keys keyMap

	// Inline edit
	editing   bool
	editIndex int
	editField validate.Field
	ti        textinput.Model

	status    string
	statusErr bool
	submitted []model.Link
	didSubmit bool

	width, height int
}

func newModel(f *form.Form) modelTUI {
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.SetStatusBarItemName("link", "links")

	keys := newKeyMap()
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	m := modelTUI{
		form:   f,
		list:   l,
		keys:   keys,
		width:  80,
		height: 24,
	}
	// shared text input for title and url edits
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 2048

	m.resize()
	m.sync(0)
	return m
}

// Run starts the form and returns the links of the last successful submit,
// or nil if the user never submitted a valid list.
func Run(f *form.Form) ([]model.Link, error) {
	p := tea.NewProgram(newModel(f), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(modelTUI)
	if !ok || !fm.didSubmit {
		return nil, nil
	}
	return fm.submitted, nil
}

// sync rebuilds the list rows from the form and selects sel (clamped).
func (m *modelTUI) sync(sel int) {
	items := m.form.List()
	shown := m.form.Visible()
	rows := make([]list.Item, 0, len(items))
	for i, it := range items {
		rows = append(rows, rowItem{item: it, errs: shown.Rows[i].Errors})
	}
	m.list.SetItems(rows)
	m.list.Title = ui.Header(len(items), shown)
	if sel >= len(rows) {
		sel = len(rows) - 1
	}
	if sel < 0 {
		sel = 0
	}
	m.list.Select(sel)
}

func (m *modelTUI) resize() {
	h := m.height - 4
	if m.editing {
		h -= 4
	}
	if h < 4 {
		h = 4
	}
	m.list.SetSize(m.width-4, h)
}

func (m *modelTUI) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

func (m *modelTUI) startEdit(field validate.Field) {
	i := m.list.Index()
	items := m.form.List()
	if i < 0 || i >= len(items) {
		return
	}
	m.editing = true
	m.editIndex = i
	m.editField = field
	if field == validate.FieldTitle {
		m.ti.SetValue(items[i].Title)
		m.ti.Placeholder = "Title"
	} else {
		m.ti.SetValue(items[i].URL)
		m.ti.Placeholder = "URL"
	}
	m.ti.CursorEnd()
	m.ti.Focus()
	m.resize()
}

func (m *modelTUI) stopEdit() {
	m.editing = false
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *modelTUI) commitEdit() {
	v := m.ti.Value()
	if m.editField == validate.FieldTitle {
		m.form.SetTitle(m.editIndex, v)
	} else {
		m.form.SetURL(m.editIndex, v)
	}
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				m.commitEdit()
				m.stopEdit()
				m.sync(m.editIndex)
				return m, nil
			case "tab":
				m.commitEdit()
				next := validate.FieldURL
				if m.editField == validate.FieldURL {
					next = validate.FieldTitle
				}
				m.sync(m.editIndex)
				m.startEdit(next)
				return m, nil
			case "esc":
				// leaving a field counts as touching it
				m.form.Touch(m.editIndex, m.editField)
				m.stopEdit()
				m.sync(m.editIndex)
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		i := m.list.Index()
		switch {
		case key.Matches(x, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(x, m.keys.Append):
			m.form.Append(model.Link{})
			m.sync(m.form.Len() - 1)
			return m, nil
		case key.Matches(x, m.keys.Prepend):
			m.form.Prepend(model.Link{})
			m.sync(0)
			return m, nil
		case key.Matches(x, m.keys.Insert):
			pos := i + 1
			if m.form.Len() == 0 {
				pos = 0
			}
			m.form.Insert(pos, model.Link{})
			m.sync(pos)
			return m, nil
		case key.Matches(x, m.keys.Remove):
			m.form.Remove(i)
			m.sync(i)
			return m, nil
		case key.Matches(x, m.keys.Swap):
			if m.form.Swap(i, i+1) {
				m.sync(i + 1)
			}
			return m, nil
		case key.Matches(x, m.keys.MoveUp):
			if m.form.Move(i, i-1) {
				m.sync(i - 1)
			}
			return m, nil
		case key.Matches(x, m.keys.MoveDown):
			if m.form.Move(i, i+1) {
				m.sync(i + 1)
			}
			return m, nil
		case key.Matches(x, m.keys.EditTitle):
			m.startEdit(validate.FieldTitle)
			return m, nil
		case key.Matches(x, m.keys.EditURL):
			m.startEdit(validate.FieldURL)
			return m, nil
		case key.Matches(x, m.keys.Clear):
			m.form.Replace(nil)
			m.sync(0)
			return m, nil
		case key.Matches(x, m.keys.Submit):
			links, err := m.form.Submit()
			if err != nil {
				m.setStatus("Cannot submit: "+err.Error(), true)
			} else {
				m.submitted, m.didSubmit = links, true
				m.setStatus(fmt.Sprintf("Submitted %d links", len(links)), false)
			}
			m.sync(i)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	t := ui.Current()
	content := m.list.View()
	if m.form.Len() == 0 {
		content += "\n" + t.Muted.Render("No links found. Add one to get started.")
	}
	if m.editing {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderColor).Padding(0, 1)
		title := fmt.Sprintf("Edit %s of link %d", m.editField, m.editIndex+1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	if m.status != "" {
		st := t.Success
		if m.statusErr {
			st = t.Error
		}
		content += "\n" + st.Render(m.status)
	}
	return ui.Panel([]string{content})
}
