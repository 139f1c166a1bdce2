package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// colorSpacePrompt is a single-question inline prompt. It blocks until the
// user answers; there is no timeout.
type colorSpacePrompt struct {
	input   string
	done    bool
	aborted bool
}

// Init implements the Bubble Tea init method
func (m colorSpacePrompt) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m colorSpacePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit

	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.input += string(key.Runes)
		return m, nil
	}

	return m, nil
}

// View implements the Bubble Tea view method
func (m colorSpacePrompt) View() string {
	if m.done || m.aborted {
		return ""
	}

	question := "Which color space should your app use?"
	hint := dimStyle.Render(fmt.Sprintf("[%s/%s] (default %s)",
		domain.ColorSpaceDisplayP3, domain.ColorSpaceSRGB, domain.DefaultColorSpace))

	return fmt.Sprintf("%s %s\n> %s", question, hint, m.input)
}

// Choice resolves the typed answer once the prompt has completed.
func (m colorSpacePrompt) Choice() domain.ColorSpace {
	return resolvePromptAnswer(m.input)
}

// resolvePromptAnswer maps a raw answer to a color space. Empty or
// unrecognized input falls back to the default; recognition is
// case-insensitive, unlike the --colorSpace flag.
func resolvePromptAnswer(answer string) domain.ColorSpace {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "srgb":
		return domain.ColorSpaceSRGB
	case "displayp3", "p3":
		return domain.ColorSpaceDisplayP3
	default:
		return domain.DefaultColorSpace
	}
}

// promptColorSpace runs the blocking prompt on the invoking terminal.
func promptColorSpace() (domain.ColorSpace, error) {
	program := tea.NewProgram(colorSpacePrompt{})

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(colorSpacePrompt)
	if !ok || m.aborted {
		return "", fmt.Errorf("color space selection canceled")
	}

	return m.Choice(), nil
}
