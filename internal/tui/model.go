package tui

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abdalmoniem/pidcat/internal/palette"
	"github.com/abdalmoniem/pidcat/internal/stream"
)

const defaultBufferLimit = 5000

// doneMsg reports that the stream loop returned.
type doneMsg struct {
	err error
}

// Options configures the viewer.
type Options struct {
	Title       string
	Stats       *stream.Stats
	Sink        *Sink
	BufferLimit int
	// Paused starts the viewer with follow off.
	Paused bool
	// OnExit receives the follow state the viewer was left in.
	OnExit func(following bool)
}

type searchState struct {
	active  bool
	input   textinput.Model
	query   string
	regex   *regexp.Regexp
	matches []int
	index   int
}

// Model is the Bubble Tea model of the viewer.
type Model struct {
	keys   keyMap
	styles styles
	title  string
	stats  *stream.Stats
	sink   *Sink
	limit  int

	width    int
	height   int
	ready    bool
	viewport viewport.Model

	lines  []string
	plain  []string
	follow bool
	search searchState

	done    bool
	doneErr error
}

// New creates the viewer model.
func New(opts Options) Model {
	limit := opts.BufferLimit
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	ti := textinput.New()
	ti.Placeholder = "Search logs..."
	ti.CharLimit = 100

	return Model{
		keys:   defaultKeyMap(),
		styles: newStyles(),
		title:  opts.Title,
		stats:  opts.Stats,
		sink:   opts.Sink,
		limit:  limit,
		follow: !opts.Paused,
		search: searchState{input: ti},
	}
}

// Following reports whether the viewport sticks to the newest line.
func (m Model) Following() bool {
	return m.follow
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case linesMsg:
		m.appendLines(msg)
		return m, nil

	case doneMsg:
		m.done = true
		m.doneErr = msg.err
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}
	title := m.styles.Title.Width(m.width).Render(" " + m.title)
	return title + "\n" + m.viewport.View() + "\n" + m.renderStatus()
}

func (m *Model) resize() {
	height := max(m.height-2, 1)
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	if m.sink != nil {
		m.sink.setWidth(m.width)
	}
	m.refresh()
}

func (m *Model) appendLines(lines []string) {
	for _, line := range lines {
		m.lines = append(m.lines, line)
		m.plain = append(m.plain, palette.Strip(line))
	}
	if overflow := len(m.lines) - m.limit; overflow > 0 {
		m.lines = append([]string(nil), m.lines[overflow:]...)
		m.plain = append([]string(nil), m.plain[overflow:]...)
	}
	if m.search.regex != nil {
		m.findMatches()
	}
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent())
	if m.follow {
		m.viewport.GotoBottom()
	}
}

func (m *Model) renderContent() string {
	active := -1
	if len(m.search.matches) > 0 {
		active = m.search.matches[m.search.index]
	}
	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == active {
			b.WriteString(m.styles.Match.Render(m.plain[i]))
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m Model) renderStatus() string {
	if m.search.active {
		return m.styles.Accent.Render("/") + m.search.input.View()
	}
	if m.search.regex != nil {
		if len(m.search.matches) == 0 {
			return m.styles.Danger.Render("Pattern not found: " + m.search.query)
		}
		return m.styles.Accent.Render("/"+m.search.query) +
			m.styles.Faint.Render(" - ") +
			m.styles.Warning.Render(fmt.Sprintf("%d/%d", m.search.index+1, len(m.search.matches))) +
			m.styles.Faint.Render(" - n next, N previous, esc to clear")
	}

	snap := m.stats.Snapshot()
	follow := "off"
	if m.follow {
		follow = "on"
	}
	parts := []string{
		m.styles.Faint.Render(fmt.Sprintf("%d lines", len(m.lines))),
		m.styles.Faint.Render(fmt.Sprintf("shown %d filtered %d", snap.Shown, snap.Filtered)),
		m.styles.Faint.Render(fmt.Sprintf("tracking %d", snap.Tracked)),
		m.styles.Accent.Render("follow " + follow),
	}
	if m.done {
		if m.doneErr != nil && !errors.Is(m.doneErr, context.Canceled) {
			parts = append(parts, m.styles.Danger.Render("stream failed: "+m.doneErr.Error()))
		} else {
			parts = append(parts, m.styles.Warning.Render("stream ended"))
		}
	}
	return strings.Join(parts, m.styles.Faint.Render(" • "))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.active {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}

	case key.Matches(msg, m.keys.Search):
		m.search.active = true
		m.search.input.SetValue("")
		return m, m.search.input.Focus()

	case key.Matches(msg, m.keys.NextMatch):
		m.moveMatch(1)

	case key.Matches(msg, m.keys.PrevMatch):
		m.moveMatch(-1)

	case key.Matches(msg, m.keys.Escape):
		if m.search.regex != nil {
			m.clearSearch()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow = false

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = true

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		m.follow = false

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		m.follow = m.viewport.AtBottom()

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		m.follow = false

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		m.follow = m.viewport.AtBottom()
	}
	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := m.search.input.Value()
		if query == "" {
			m.search.active = false
			m.search.input.Blur()
			return m, nil
		}
		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			// Stay in search mode until the pattern compiles.
			return m, nil
		}
		m.search.regex = re
		m.search.query = query
		m.search.active = false
		m.search.input.Blur()
		m.findMatches()
		if len(m.search.matches) > 0 {
			m.search.index = 0
			m.scrollToMatch()
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.search.active = false
		m.search.input.Blur()
		m.search.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

func (m *Model) findMatches() {
	m.search.matches = nil
	for i, line := range m.plain {
		if m.search.regex.MatchString(line) {
			m.search.matches = append(m.search.matches, i)
		}
	}
	if m.search.index >= len(m.search.matches) {
		m.search.index = max(len(m.search.matches)-1, 0)
	}
}

func (m *Model) moveMatch(delta int) {
	n := len(m.search.matches)
	if n == 0 {
		return
	}
	m.search.index = (m.search.index + delta + n) % n
	m.scrollToMatch()
	m.refresh()
}

func (m *Model) scrollToMatch() {
	if len(m.search.matches) == 0 {
		return
	}
	m.follow = false
	target := m.search.matches[m.search.index]
	m.viewport.SetYOffset(max(target-m.viewport.Height/2, 0))
}

func (m *Model) clearSearch() {
	m.search.regex = nil
	m.search.query = ""
	m.search.matches = nil
	m.search.index = 0
}
