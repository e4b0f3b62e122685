package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	"github.com/matzehuels/mondrian/pkg/mondrian"
	"github.com/matzehuels/mondrian/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	promptErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

type promptStep int

const (
	stepMode promptStep = iota
	stepWidth
	stepHeight
	stepDone
)

// maxInputDigits bounds the dimension text field.
const maxInputDigits = 5

var modeDescriptions = map[mondrian.Mode]string{
	mondrian.ModeBasic:   "flat primary colours",
	mondrian.ModeComplex: "purple/blue wave bands",
}

// PromptModel is the bubbletea model that asks for a mode, a width and a
// height before painting. An empty dimension keeps the shown default.
type PromptModel struct {
	Step      promptStep
	Cursor    int
	Mode      mondrian.Mode
	Width     int
	Height    int
	Cancelled bool

	input string
	err   string
}

// NewPromptModel creates a prompt preset to the given defaults.
func NewPromptModel(mode mondrian.Mode, width, height int) PromptModel {
	m := PromptModel{Mode: mode, Width: width, Height: height}
	for i, mm := range mondrian.Modes {
		if mm == mode {
			m.Cursor = i
		}
	}
	return m
}

// Done reports whether every answer was collected.
func (m PromptModel) Done() bool {
	return m.Step == stepDone && !m.Cancelled
}

func (m PromptModel) Init() tea.Cmd {
	return nil
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	}

	switch m.Step {
	case stepMode:
		return m.updateMode(key)
	case stepWidth, stepHeight:
		return m.updateDimension(key)
	}
	return m, nil
}

func (m PromptModel) updateMode(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := key.String(); s {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(mondrian.Modes)-1 {
			m.Cursor++
		}
	case "1", "2":
		mode, _ := mondrian.ParseMode(s)
		m.Mode = mode
		m.Step = stepWidth
	case "enter":
		m.Mode = mondrian.Modes[m.Cursor]
		m.Step = stepWidth
	}
	return m, nil
}

func (m PromptModel) updateDimension(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := key.String(); {
	case s == "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		m.err = ""
	case len(s) == 1 && s[0] >= '0' && s[0] <= '9':
		if len(m.input) < maxInputDigits {
			m.input += s
		}
		m.err = ""
	case s == "enter":
		n := m.current()
		if m.input != "" {
			n, _ = strconv.Atoi(m.input)
		}
		if n < apperrors.MinDimension || n > apperrors.MaxDimension {
			m.err = fmt.Sprintf("enter a value between %d and %d", apperrors.MinDimension, apperrors.MaxDimension)
			return m, nil
		}
		m.input = ""
		m.err = ""
		if m.Step == stepWidth {
			m.Width = n
			m.Step = stepHeight
			return m, nil
		}
		m.Height = n
		m.Step = stepDone
		return m, tea.Quit
	}
	return m, nil
}

func (m PromptModel) current() int {
	if m.Step == stepWidth {
		return m.Width
	}
	return m.Height
}

func (m PromptModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Mondrian"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ confirm  esc quit"))
	b.WriteString("\n\n")

	if m.Step == stepMode {
		b.WriteString("Mode\n")
		for i, mode := range mondrian.Modes {
			cursor := "  "
			style := listNormalStyle
			if i == m.Cursor {
				cursor = "▸ "
				style = listSelectedStyle
			}
			line := fmt.Sprintf("%s%d. %-8s %s", cursor, i+1, mode, listDimStyle.Render(modeDescriptions[mode]))
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Mode    %s\n", StyleHighlight.Render(string(m.Mode))))
	if m.Step > stepWidth {
		b.WriteString(fmt.Sprintf("Width   %s\n", StyleHighlight.Render(strconv.Itoa(m.Width))))
	}
	if m.Step == stepDone {
		b.WriteString(fmt.Sprintf("Height  %s\n", StyleHighlight.Render(strconv.Itoa(m.Height))))
		return b.String()
	}

	label := "Width "
	if m.Step == stepHeight {
		label = "Height"
	}
	b.WriteString(fmt.Sprintf("%s  %s%s %s\n", label, m.input, listSelectedStyle.Render("█"),
		listDimStyle.Render(fmt.Sprintf("(default %d)", m.current()))))
	if m.err != "" {
		b.WriteString(promptErrorStyle.Render(m.err))
		b.WriteString("\n")
	}
	return b.String()
}

// options converts the answers into pipeline options layered over base.
func (m PromptModel) options(base pipeline.Options) pipeline.Options {
	base.Mode = string(m.Mode)
	base.Width = m.Width
	base.Height = m.Height
	return base
}
