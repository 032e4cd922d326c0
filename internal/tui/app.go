package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/thelist/internal/listing"
)

// Backend is the list API the view reads from and writes to.
type Backend interface {
	List(ctx context.Context) ([]listing.Item, error)
	Create(ctx context.Context, it listing.Item) (listing.Item, error)
}

// App is the list view: it loads the list on mount, shows it sorted by title
// and routes to the creation form and item details.
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	backend Backend
	log     zerolog.Logger
	title   string

	state    listing.State
	loading  bool // a list request is in flight
	history  history
	editor   *ItemEditor
	snackbar *ErrorSnackbar

	cursor    int
	filter    textinput.Model
	filtering bool

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// Options configures New.
type Options struct {
	Title  string
	Logger *zerolog.Logger
}

func New(ctx context.Context, backend Backend, opts Options) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	if opts.Title == "" {
		opts.Title = "The List"
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &App{
		ctx:     ctx,
		cancel:  cancel,
		backend: backend,
		log:     log,
		title:   opts.Title,
		state:   listing.Initial(),
		filter:  newTextInput("/", ""),
		keys:    newKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Close ends the view's lifetime. In-flight requests are cancelled and their
// results are dropped.
func (a *App) Close() {
	a.cancel()
}

func (a *App) closed() bool {
	return a.ctx.Err() != nil
}

// State returns a copy of the current list state.
func (a *App) State() listing.State { return a.state }

// Route returns the current path.
func (a *App) Route() string { return a.history.Current().String() }

func (a *App) Init() tea.Cmd {
	return a.loadList()
}

// messages
type listLoadedMsg struct{ items []listing.Item }

type fetchFailedMsg struct{ err error }

type itemCreatedMsg struct {
	editor  *ItemEditor // form that submitted the item
	created listing.Item
	err     error
}

// captureErr logs a failed backend call. Update turns the matching message
// into state.
func (a *App) captureErr(op listing.Op, err error) {
	if err == nil {
		return
	}
	a.log.Error().Err(err).Str("op", string(op)).Msg("backend request failed")
}

func (a *App) loadList() tea.Cmd {
	if a.closed() {
		return nil
	}
	a.loading = true
	ctx := a.ctx
	return func() tea.Msg {
		items, err := a.backend.List(ctx)
		if err != nil {
			a.captureErr(listing.OpList, err)
			return fetchFailedMsg{err: err}
		}
		return listLoadedMsg{items: items}
	}
}

func (a *App) addItem(ed *ItemEditor, it listing.Item) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		created, err := a.backend.Create(ctx, it)
		a.captureErr(listing.OpCreate, err)
		return itemCreatedMsg{editor: ed, created: created, err: err}
	}
}

func (a *App) apply(ev listing.Event) {
	a.state = listing.Transition(a.state, ev)
	a.syncSnackbar()
	a.clampCursor()
}

func (a *App) syncSnackbar() {
	if a.state.Err == nil {
		a.snackbar = nil
		a.keys.Dismiss.SetEnabled(false)
		return
	}
	msg := a.state.Err.Error()
	if a.snackbar == nil || a.snackbar.Message() != msg {
		a.snackbar = NewErrorSnackbar(msg, func() { a.apply(listing.Dismissed{}) })
	}
	a.keys.Dismiss.SetEnabled(true)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case listLoadedMsg:
		if a.closed() {
			return a, nil
		}
		a.loading = false
		a.apply(listing.Loaded{Items: m.items})
		return a, nil
	case fetchFailedMsg:
		if a.closed() {
			return a, nil
		}
		a.loading = false
		a.apply(listing.Failed{Op: listing.OpList, Err: m.err})
		return a, nil
	case itemCreatedMsg:
		if a.closed() {
			return a, nil
		}
		if m.err != nil {
			a.apply(listing.Failed{Op: listing.OpCreate, Err: m.err})
		} else {
			a.log.Info().Str("id", m.created.ID).Msg("item created")
		}
		// the form may have been closed, or replaced by a new one, while saving
		if a.editor != nil && a.editor == m.editor && a.history.Current().kind == routeNew {
			a.goBack()
		}
		return a, a.loadList()
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			a.Close()
			return a, tea.Quit
		}
		switch a.history.Current().kind {
		case routeNew:
			return a, a.updateEditor(msg)
		case routeDetail:
			return a, a.handleDetailKey(m)
		default:
			return a, a.handleListKey(m)
		}
	}
	if a.editor != nil && a.history.Current().kind == routeNew {
		return a, a.updateEditor(msg)
	}
	return a, nil
}

func (a *App) navigate(r route) {
	a.history.Push(r)
	if r.kind == routeNew {
		var ed *ItemEditor
		ed = NewItemEditor(listing.Item{}, func(it listing.Item) tea.Cmd { return a.addItem(ed, it) })
		a.editor = ed
	}
}

func (a *App) goBack() {
	if a.history.Current().kind == routeNew {
		a.editor = nil
	}
	a.history.Back()
}

func (a *App) updateEditor(msg tea.Msg) tea.Cmd {
	if a.editor == nil {
		a.goBack()
		return nil
	}
	cmd, closeForm := a.editor.Update(msg)
	if closeForm {
		a.goBack()
	}
	return cmd
}

func (a *App) handleListKey(m tea.KeyMsg) tea.Cmd {
	if a.filtering {
		return a.handleFilterKey(m)
	}
	switch {
	case key.Matches(m, a.keys.Dismiss):
		if a.snackbar != nil {
			a.snackbar.Close()
		}
	case key.Matches(m, a.keys.Quit):
		a.Close()
		return tea.Quit
	case key.Matches(m, a.keys.New):
		a.navigate(route{kind: routeNew})
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.visible())-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Open):
		rows := a.visible()
		if len(rows) == 0 {
			return nil
		}
		a.navigate(route{kind: routeDetail, id: rows[a.cursor].ID})
	case key.Matches(m, a.keys.Refresh):
		if a.loading {
			return nil
		}
		return a.loadList()
	case key.Matches(m, a.keys.Filter):
		a.filtering = true
		a.filter.Focus()
	}
	return nil
}

func (a *App) handleFilterKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyEsc:
		a.filtering = false
		a.filter.Blur()
		a.filter.SetValue("")
		a.clampCursor()
		return nil
	case tea.KeyEnter:
		a.filtering = false
		a.filter.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(m)
	a.cursor = 0
	return cmd
}

func (a *App) handleDetailKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Back):
		a.goBack()
	case key.Matches(m, a.keys.Quit):
		a.Close()
		return tea.Quit
	}
	return nil
}

// visible returns the rows in display order after filtering.
func (a *App) visible() []listing.Item {
	return listing.Filter(a.state.Visible(), a.filter.Value())
}

func (a *App) clampCursor() {
	n := len(a.visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.title))
	b.WriteString("\n")
	b.WriteString(a.renderList())
	b.WriteString("\n")
	b.WriteString(fabStyle.Render("+ New item"))

	switch cur := a.history.Current(); cur.kind {
	case routeNew:
		if a.editor != nil {
			b.WriteString("\n\n")
			b.WriteString(a.editor.View())
		}
	case routeDetail:
		b.WriteString("\n\n")
		b.WriteString(a.renderDetail(cur.id))
	}

	if a.snackbar != nil {
		b.WriteString("\n")
		b.WriteString(a.snackbar.View(a.width))
	}

	b.WriteString("\n")
	if a.history.Current().kind == routeDetail {
		b.WriteString(a.help.View(detailKeyMap{a.keys}))
	} else {
		b.WriteString(a.help.View(a.keys))
	}
	return b.String()
}

func (a *App) renderList() string {
	if len(a.state.Items) == 0 {
		if a.state.ShowEmpty() {
			return mutedStyle.Render("No items to display")
		}
		return ""
	}
	var lines []string
	if a.filtering || a.filter.Value() != "" {
		lines = append(lines, a.filter.View())
	}
	rows := a.visible()
	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("No items match %q", a.filter.Value())))
	}
	for i, it := range rows {
		if i == a.cursor {
			lines = append(lines, selectedStyle.Render("▶ "+it.Name))
			continue
		}
		lines = append(lines, rowStyle.Render("  "+it.Name))
	}
	box := listBoxStyle
	if a.width > 4 {
		box = box.Width(a.width - 2)
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (a *App) renderDetail(id string) string {
	for _, it := range a.state.Items {
		if it.ID != id {
			continue
		}
		title := it.Title
		if title == "" {
			title = "(none)"
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(it.Name),
			fmt.Sprintf("ID:    %s", it.ID),
			fmt.Sprintf("Title: %s", title),
		)
		return modalStyle.Render(body)
	}
	return modalStyle.Render(mutedStyle.Render("Item not found"))
}
