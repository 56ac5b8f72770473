// Package tui renders the review widget in a terminal: the rating
// page with review form and the admin moderation page.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"appreview/internal/models"
	"appreview/internal/view"
)

const refreshInterval = time.Second

type refreshMsg struct{}

// Model is bubbletea model over review store. Pages are rebuilt from
// the store on every change and on each refresh tick, so auto-approvals
// show up without user input.
type Model struct {
	ctx   context.Context
	store view.Store
	keys  KeyMap

	state   view.State
	rating  view.Rating
	admin   view.Admin
	editor  textarea.Model
	editing bool
	notice  string
	err     error
}

func NewModel(ctx context.Context, store view.Store) Model {
	editor := textarea.New()
	editor.Placeholder = "Tell us what you think (optional)"
	editor.CharLimit = models.MaxTextLength
	editor.ShowLineNumbers = false
	editor.SetWidth(60)
	editor.SetHeight(4)

	m := Model{
		ctx:    ctx,
		store:  store,
		keys:   DefaultKeyMap,
		state:  view.NewState(),
		editor: editor,
	}
	m.refresh()

	return m
}

func (m Model) Init() tea.Cmd {
	return scheduleRefresh()
}

func scheduleRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.refresh()
		return m, scheduleRefresh()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.TogglePage) {
			m.blur()
			m.state.TogglePage()
			m.refresh()
			return m, nil
		}
		if m.state.Page == view.AdminPage {
			return m.updateAdmin(msg)
		}
		return m.updateRating(msg)
	}

	return m, nil
}

func (m Model) updateRating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.state.SetText(m.editor.Value())
		created, err := m.state.Submit(m.ctx, m.store)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		if !created {
			m.notice = "choose a rating first"
			return m, nil
		}
		m.notice = "thank you, your review is awaiting moderation"
		m.editor.Reset()
		m.blur()
		m.refresh()
		return m, nil

	case m.editing:
		if key.Matches(msg, m.keys.Done) {
			m.blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.state.SetText(m.editor.Value())
		return m, cmd

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stars):
		m.state.SelectRating(int(msg.Runes[0] - '0'))
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		return m, m.editor.Focus()
	}

	return m, nil
}

func (m Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.admin.Reviews)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.state.MoveCursor(-1, rows)

	case key.Matches(msg, m.keys.Down):
		m.state.MoveCursor(1, rows)

	case key.Matches(msg, m.keys.Filter):
		m.state.CycleFilter()
		m.refresh()

	case key.Matches(msg, m.keys.Approve), key.Matches(msg, m.keys.Reject):
		card, ok := m.selected()
		if !ok || !card.Actionable {
			return m, nil
		}
		var err error
		if key.Matches(msg, m.keys.Approve) {
			_, err = m.store.Approve(m.ctx, card.Id)
		} else {
			_, err = m.store.Reject(m.ctx, card.Id)
		}
		m.err = err
		m.refresh()
	}

	return m, nil
}

func (m *Model) blur() {
	m.editing = false
	m.editor.Blur()
}

func (m Model) selected() (view.Card, bool) {
	if m.state.Cursor < 0 || m.state.Cursor >= len(m.admin.Reviews) {
		return view.Card{}, false
	}
	return m.admin.Reviews[m.state.Cursor], true
}

// refresh rebuilds current page from the store.
func (m *Model) refresh() {
	var err error
	if m.state.Page == view.AdminPage {
		m.admin, err = view.BuildAdmin(m.ctx, m.store, m.state.Filter)
		m.state.MoveCursor(0, len(m.admin.Reviews))
	} else {
		m.rating, err = view.BuildRating(m.ctx, m.store)
	}
	if err != nil {
		m.err = err
	}
}

func (m Model) View() string {
	var b strings.Builder
	if m.state.Page == view.AdminPage {
		m.viewAdmin(&b)
	} else {
		m.viewRating(&b)
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	return b.String()
}

func (m Model) viewRating(b *strings.Builder) {
	b.WriteString(titleStyle.Render("App rating") + "\n\n")
	fmt.Fprintf(b, "%s  %s\n\n",
		averageStyle.Render(m.rating.Average),
		faintStyle.Render(fmt.Sprintf("%d reviews", m.rating.Total)))

	b.WriteString(titleStyle.Render("Leave a review") + "\n")
	b.WriteString(starsStyle.Render(view.Stars(m.state.Draft.Rating)) + "\n")
	b.WriteString(m.editor.View() + "\n")
	if m.notice != "" {
		b.WriteString(faintStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n")

	for _, card := range m.rating.Reviews {
		body := starsStyle.Render(card.Stars)
		if card.Text != "" {
			body += "\n" + card.Text
		}
		b.WriteString(cardStyle.Render(body) + "\n")
	}

	b.WriteString("\n" + help(m.keys.RatingHelp(m.editing)))
}

func (m Model) viewAdmin(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Moderation") + "  ")
	b.WriteString(faintStyle.Render("filter: "+string(m.admin.Filter)) + "\n\n")

	if len(m.admin.Reviews) == 0 {
		b.WriteString(faintStyle.Render("no reviews") + "\n")
	}
	for i, card := range m.admin.Reviews {
		line := fmt.Sprintf("%s  %-8s  %s",
			starsStyle.Render(card.Stars), statusLabel(card.Status), card.Text)
		if i == m.state.Cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + help(m.keys.AdminHelp()))
}

func help(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return faintStyle.Render(strings.Join(parts, " • "))
}
