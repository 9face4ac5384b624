package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Erawpalassalg/GDTools/internal/dice"
	"github.com/Erawpalassalg/GDTools/internal/library"
	"github.com/Erawpalassalg/GDTools/internal/rules"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	poolBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)
)

type replModel struct {
	lib        *library.Library
	registry   *rules.Registry
	textInput  textinput.Model
	viewport   viewport.Model
	history    []string
	historyIdx int
	logContent string
	lastPool   *dice.Pool
	width      int
	height     int
}

func newREPLModel(lib *library.Library, registry *rules.Registry) replModel {
	ti := textinput.New()
	ti.Placeholder = "Enter an expression (e.g., 2d6+3, show 2d6, check avg(\"2d6\") > 6.5)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)
	welcome := "Welcome to the GDTools dice workbench!\nType 'exit' to quit."
	vp.SetContent(welcome)

	return replModel{
		lib:        lib,
		registry:   registry,
		textInput:  ti,
		viewport:   vp,
		history:    []string{},
		historyIdx: -1,
		logContent: welcome,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

// eval runs one REPL line and returns what should be appended to the log.
func (m *replModel) eval(val string) string {
	switch {
	case strings.HasPrefix(val, "check "):
		out, err := m.registry.Eval(strings.TrimPrefix(val, "check "), nil)
		if err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
		return fmt.Sprintf("%v", out)

	case strings.HasPrefix(val, "show "):
		pool, err := m.lib.Resolve(strings.TrimSpace(strings.TrimPrefix(val, "show ")))
		if err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
		m.lastPool = &pool
		var sb strings.Builder
		pool.Show(&sb)
		return strings.TrimRight(sb.String(), "\n")

	default:
		pool, err := m.lib.Resolve(val)
		if err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
		m.lastPool = &pool
		return fmt.Sprintf("%s -> %d", pool, pool.Roll())
	}
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
			}

		case tea.KeyDown:
			if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}

			if val != "" {
				// Prevent duplicate history entries
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				m.logContent += m.eval(val)

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}
		default:
			// Normal typing
			m.textInput, tiCmd = m.textInput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	// Calculate accurate heights for dynamic components
	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	poolH := lipgloss.Height(m.renderPool())
	inputH := 1
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	paddingH := 7

	overhead := titleH + poolH + inputH + infoH + paddingH + 4

	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *replModel) renderPool() string {
	poolView := "=== Current Pool ===\n\n"
	if m.lastPool == nil {
		poolView += "No pool yet. Enter an expression to roll it."
	} else {
		p := *m.lastPool
		poolView += fmt.Sprintf("%s\n", p)
		poolView += fmt.Sprintf("range: %d..%d  average: %.2f  outcomes: %d", p.Min(), p.Max(), p.Average(), p.Dist().Mass())
	}
	return poolBoxStyle.Width(m.width - 4).Render(poolView)
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(" GDTools Dice Workbench ")
	poolBox := m.renderPool()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		title,
		poolBox,
		logBox,
		"\n",
		m.textInput.View(),
		infoStyle.Render("(esc to quit, up/down history)"),
	)

	return mainView + strings.Repeat("\n", 7)
}

// RunTUI starts the interactive workbench over the given library and rules.
func RunTUI(lib *library.Library, registry *rules.Registry) error {
	m := newREPLModel(lib, registry)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
