// Package tui drives the render loop: navigate, resolve, paint, then attach
// the view's deferred handlers on the following tick. Every screen change
// goes through the same cycle, and every cycle carries a sequence number so
// a paint that was overtaken by newer navigation is discarded instead of
// clobbering the newer screen.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ChouguleParas07/RentAThing/internal/log"
	"github.com/ChouguleParas07/RentAThing/internal/router"
	"github.com/ChouguleParas07/RentAThing/internal/view"
)

// phase is where the current render cycle stands.
type phase int

const (
	phaseLoading phase = iota
	phasePainted
)

// NavigateMsg requests navigation to a location fragment.
type NavigateMsg struct {
	Fragment string
}

// resolvedMsg carries a finished resolve. Stale sequence numbers are dropped.
type resolvedMsg struct {
	seq    int
	result view.Result
	err    error
}

// handlersAttachedMsg arms the painted view's handlers one tick after paint.
type handlersAttachedMsg struct {
	seq int
}

// actionDoneMsg carries a finished handler side effect.
type actionDoneMsg struct {
	seq    int
	notice string
	err    error
}

// submitDoneMsg carries a finished form submission.
type submitDoneMsg struct {
	seq       int
	submitted view.Submitted
	err       error
}

// Model is the Bubble Tea model for the whole client.
type Model struct {
	ctx    context.Context
	env    view.Env
	logger *log.Logger

	// Render cycle state. seq increments on every navigation; async results
	// tagged with an older seq are ignored.
	seq      int
	fragment string
	route    router.Route
	phase    phase
	armed    bool

	result     view.Result
	resolveErr error
	form       *huh.Form
	formErr    string
	submitting bool
	cursor     int

	// notice is a one-shot confirmation surviving exactly one navigation.
	notice        string
	pendingNotice string

	spinner  spinner.Model
	styles   Styles
	width    int
	height   int
	quitting bool
}

// New creates the program model, starting at the given location fragment.
func New(ctx context.Context, env view.Env, fragment string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		env:      env,
		logger:   log.DefaultLogger().With("component", "tui"),
		fragment: fragment,
		spinner:  sp,
		styles:   DefaultStyles(),
	}
}

// Init starts the first render cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return NavigateMsg{Fragment: m.fragment} },
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		return m.navigate(msg.Fragment)

	case resolvedMsg:
		return m.handleResolved(msg)

	case handlersAttachedMsg:
		if msg.seq == m.seq {
			m.armed = true
		}
		return m, nil

	case actionDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.pendingNotice = m.styles.Error.Render(msg.err.Error())
		} else {
			m.pendingNotice = msg.notice
		}
		// Re-render either way so the screen shows confirmed server state.
		return m.navigate(m.fragment)

	case submitDoneMsg:
		return m.handleSubmitted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateForm(msg)
}

// navigate starts a fresh render cycle. The previous cycle's handlers go
// dead immediately; its in-flight results will arrive with a stale seq.
func (m Model) navigate(fragment string) (tea.Model, tea.Cmd) {
	m.seq++
	m.fragment = fragment
	m.route = router.Resolve(fragment)
	m.phase = phaseLoading
	m.armed = false
	m.form = nil
	m.formErr = ""
	m.submitting = false
	m.resolveErr = nil
	m.cursor = 0

	m.notice = m.pendingNotice
	m.pendingNotice = ""

	seq := m.seq
	route := m.route
	m.logger.Debug("navigate", "fragment", fragment, "route", route.Path, "seq", seq)

	resolve := func() tea.Msg {
		result, err := view.For(route)(m.ctx, m.env, route)
		return resolvedMsg{seq: seq, result: result, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, resolve)
}

// handleResolved paints a finished resolve, or discards it when overtaken.
func (m Model) handleResolved(msg resolvedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		m.logger.Debug("discarding stale render", "stale_seq", msg.seq, "current_seq", m.seq)
		return m, nil
	}

	if msg.err != nil {
		m.resolveErr = msg.err
		m.phase = phasePainted
		return m, nil
	}

	if msg.result.Redirect != "" {
		return m.navigate(msg.result.Redirect)
	}

	m.result = msg.result
	m.phase = phasePainted

	var cmds []tea.Cmd
	if msg.result.Form != nil {
		m.form = msg.result.Form.Build()
		cmds = append(cmds, m.form.Init())
	}

	// Handlers attach on the next tick, after the paint is on screen.
	seq := m.seq
	cmds = append(cmds, func() tea.Msg { return handlersAttachedMsg{seq: seq} })

	return m, tea.Batch(cmds...)
}

// handleSubmitted applies a form submission outcome.
func (m Model) handleSubmitted(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}

	if msg.err != nil {
		// The value pointers survive in the resolver's closure, so the
		// rebuilt form keeps what the user typed.
		m.formErr = msg.err.Error()
		m.form = m.result.Form.Build()
		m.submitting = false
		return m, m.form.Init()
	}

	m.pendingNotice = msg.submitted.Notice
	if msg.submitted.Navigate != "" {
		return m.navigate(msg.submitted.Navigate)
	}
	return m.navigate(m.fragment)
}

// handleKey routes key presses: quit keys first, then the focused form, then
// the armed view handlers, then chrome navigation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase != phasePainted {
		return m, nil
	}

	if m.form != nil {
		if key == "esc" {
			if h, ok := m.findHandler("esc"); ok && h.Navigate != "" {
				return m.navigate(h.Navigate)
			}
		}
		return m.updateForm(msg)
	}

	if key == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.result.Entries)-1 {
			m.cursor++
		}
		return m, nil
	}

	if m.armed {
		if h, ok := m.findHandler(key); ok {
			return m.runHandler(h)
		}
	}

	return m.handleChromeKey(key)
}

// findHandler matches a key against the view's handlers, scoped to the
// current cursor entry or view-global.
func (m Model) findHandler(key string) (view.Handler, bool) {
	for _, h := range m.result.Handlers {
		if h.Key != key {
			continue
		}
		if h.Entry == view.GlobalEntry || h.Entry == m.cursor {
			return h, true
		}
	}
	return view.Handler{}, false
}

// runHandler fires a matched handler.
func (m Model) runHandler(h view.Handler) (tea.Model, tea.Cmd) {
	if h.Navigate != "" {
		return m.navigate(h.Navigate)
	}

	if h.Do != nil {
		seq := m.seq
		do := h.Do
		return m, func() tea.Msg {
			notice, err := do(m.ctx)
			return actionDoneMsg{seq: seq, notice: notice, err: err}
		}
	}

	return m, nil
}

// handleChromeKey handles the persistent navigation shortcuts. The set is
// role-aware: owner destinations only bind for item-managing roles, the
// auth shortcuts only while logged out.
func (m Model) handleChromeKey(key string) (tea.Model, tea.Cmd) {
	user := m.env.Sessions.User()

	switch key {
	case "1":
		return m.navigate(router.PathHome)
	case "2":
		if user != nil {
			return m.navigate(router.PathBookings)
		}
	case "3":
		if user != nil && user.Role.CanManageItems() {
			return m.navigate(router.PathMyItems)
		}
	case "4":
		if user != nil && user.Role.CanManageItems() {
			return m.navigate(router.PathOwnerBookings)
		}
	case "5":
		if user != nil {
			return m.navigate(router.PathMessages)
		}
	case "l":
		if user == nil {
			return m.navigate(router.PathLogin)
		}
	case "r":
		if user == nil {
			return m.navigate(router.PathRegister)
		}
	case "x":
		if user != nil {
			if err := m.env.Sessions.Clear(); err != nil {
				m.pendingNotice = m.styles.Error.Render(err.Error())
			} else {
				m.pendingNotice = "Logged out."
			}
			return m.navigate(router.PathHome)
		}
	}

	return m, nil
}

// updateForm forwards a message to the focused form and submits on
// completion. While a submission is in flight the form is frozen: input
// arriving before submitDoneMsg would otherwise see the completed state
// again and dispatch the same submission twice.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil || m.submitting {
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitting = true
		seq := m.seq
		submit := m.result.Form.Submit
		return m, func() tea.Msg {
			submitted, err := submit(m.ctx)
			return submitDoneMsg{seq: seq, submitted: submitted, err: err}
		}
	}

	return m, cmd
}

// View renders the chrome plus the current cycle's content.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.navBar())
	b.WriteString("\n")

	if m.phase == phaseLoading {
		b.WriteString(m.spinner.View() + " Loading...\n")
		return b.String()
	}

	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice) + "\n\n")
	}

	if m.resolveErr != nil {
		b.WriteString(m.errorBoundary())
		return b.String()
	}

	if m.result.Title != "" {
		b.WriteString(m.styles.Title.Render(m.result.Title) + "\n")
	}
	if m.result.Header != "" {
		b.WriteString(m.result.Header + "\n")
	}

	for i, entry := range m.result.Entries {
		if i == m.cursor && len(m.result.Entries) > 1 {
			b.WriteString(m.styles.Cursor.Render(entry.Text) + "\n")
		} else {
			b.WriteString(entry.Text + "\n")
		}
	}

	if m.result.Footer != "" {
		b.WriteString(m.result.Footer + "\n")
	}

	if m.form != nil {
		if m.formErr != "" {
			b.WriteString(m.styles.Error.Render(m.formErr) + "\n")
		}
		b.WriteString(m.form.View())
	}

	if hints := m.handlerHints(); hints != "" {
		b.WriteString(m.styles.Help.Render(hints))
	}

	return b.String()
}

// errorBoundary renders the single top-level failure panel. Any resolver
// error lands here; the chrome stays usable so the user can navigate away.
func (m Model) errorBoundary() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(0, 1).
		Render(m.styles.Error.Render("Something went wrong") + "\n" + m.resolveErr.Error())
}

// navBar renders the persistent navigation line.
func (m Model) navBar() string {
	user := m.env.Sessions.User()

	var parts []string
	add := func(key, label string) {
		parts = append(parts, m.styles.NavKey.Render(key)+" "+label)
	}

	add("1", "Browse")
	if user != nil {
		add("2", "My bookings")
		if user.Role.CanManageItems() {
			add("3", "My Items")
			add("4", "Owner Bookings")
		}
		add("5", "Messages")
		add("x", "Log out ("+user.DisplayName()+")")
	} else {
		add("l", "Log in")
		add("r", "Register")
	}
	add("q", "Quit")

	return m.styles.Nav.Render(strings.Join(parts, "  ·  "))
}

// handlerHints renders the key hints for the handlers reachable right now.
func (m Model) handlerHints() string {
	if !m.armed {
		return ""
	}

	var parts []string
	for _, h := range m.result.Handlers {
		if h.Entry != view.GlobalEntry && h.Entry != m.cursor {
			continue
		}
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+m.styles.HelpDesc.Render(h.Label))
	}
	return strings.Join(parts, "  ")
}
