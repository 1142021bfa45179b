package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benjamonnguyen/daytrack"
	"github.com/benjamonnguyen/daytrack/store"
)

const logo = `
	█▀▄ ▄▀█ █▄█ ▀█▀ █▀█ ▄▀█ █▀▀ █▄▀
	█▄▀ █▀█  █   █  █▀▄ █▀█ █▄▄ █ █`

const programUsage = `Usage:
  daytrack: open the dashboard
  daytrack <command>: run one command and exit`

const commandHelp = `COMMANDS:
  /t <title> [!priority] [#category]: add task
  /c <#>: complete or reopen task
  /h <name> [~frequency]: add habit
  /k <#>: track habit
  /g <title> <current>/<target>: add goal
  /p <#> <current>: update goal progress
  /m <mood>: set mood
  /x <t|h|g> <#>: delete task, habit or goal
  /x all: delete every task, habit and goal

  /q: quit
`

type model struct {
	// children
	vp        viewport.Model
	userinput textinput.Model

	// supplied
	l     daytrack.Logger
	store *store.Store

	// state
	data     RefreshMsg
	alerts   []string
	quitting bool
	h        int

	// configuration
	cmdTimeout time.Duration
	timeFormat string
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.refresh, textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var tiCmd, vpCmd, cmd tea.Cmd

	m, cmd = m.updateParent(msg)

	m.userinput, tiCmd = m.userinput.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg:
	default:
		m.vp, vpCmd = m.vp.Update(msg)
	}

	return m, tea.Batch(tiCmd, vpCmd, cmd)
}

func (m model) updateParent(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		m.l.Error("command failed", "error", msg.err)
		m.addAlert(msg.err.Error(), colorRed)
		m.resizeViewport()
		return m, nil
	case ResultMsg:
		m.addAlert(msg.text, colorCyan)
		return m, m.refresh
	case RefreshMsg:
		m.data = msg
		m.vp.SetContent(renderDashboard(msg, m.vp.Width, m.timeFormat))
		m.resizeViewport()
		return m, nil
	case tea.WindowSizeMsg:
		m.h = msg.Height
		m.userinput.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.SetContent(renderDashboard(m.data, m.vp.Width, m.timeFormat))
		m.resizeViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			input := m.userinput.Value()
			m.userinput.Reset()
			if input == "" {
				return m, nil
			}
			m.alerts = nil
			return m.handleInput(input)
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) handleInput(input string) (model, tea.Cmd) {
	act, err := parseCommand(input)
	switch {
	case errors.Is(err, errQuit):
		m.quitting = true
		return m, tea.Quit
	case errors.Is(err, errHelp):
		m.addAlert(commandHelp, colorYellow)
		m.resizeViewport()
		return m, nil
	case err != nil:
		m.addAlert(err.Error(), colorRed)
		m.resizeViewport()
		return m, nil
	}

	m.l.Debug("running command", "input", input)
	return m, func() tea.Msg {
		timeout, cancel := m.newTimeout()
		defer cancel()
		text, err := act(timeout, m.store)
		if err != nil {
			return ErrorMsg{err: err}
		}
		return ResultMsg{text: text}
	}
}

func (m model) refresh() tea.Msg {
	timeout, cancel := m.newTimeout()
	defer cancel()

	snap, err := m.store.Snapshot(timeout)
	if err != nil {
		return ErrorMsg{err: err}
	}

	return RefreshMsg{
		dashboard: snap.Dashboard(),
		tasks:     snap.Tasks,
		habits:    snap.Habits,
		goals:     snap.Goals,
	}
}

func (m model) renderFooter() string {
	if m.quitting {
		return ""
	}

	var footer strings.Builder
	footer.WriteRune('\n')
	footer.WriteString(m.userinput.View())
	footer.WriteString("\n\n")

	if len(m.alerts) > 0 {
		footer.WriteString(strings.Join(m.alerts, "\n"))
		footer.WriteString("\n\n")
	} else {
		footer.WriteString(faintStyle.Render(`("/?" for help, ctrl+c to quit)`))
		footer.WriteRune('\n')
	}

	return footer.String()
}

func (m model) View() string {
	return lipgloss.JoinVertical(0, m.vp.View(), m.renderFooter())
}

func (m model) newTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cmdTimeout)
}

func (m *model) addAlert(alert string, color string) {
	m.alerts = append(m.alerts, colorize(color, alert))
}

func (m *model) resizeViewport() {
	contentHeight := lipgloss.Height(renderDashboard(m.data, m.vp.Width, m.timeFormat))
	footerHeight := lipgloss.Height(m.renderFooter())
	m.vp.Height = max(min(contentHeight, m.h-footerHeight), 0)
}
