package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errPromptCanceled = errors.New("prompt canceled")

// prompter asks for values on the command's input. Terminals get a
// bubbletea text input (masked for secrets); pipes are read line by line.
type prompter struct {
	in       io.Reader
	out      io.Writer
	reader   *bufio.Reader
	terminal bool
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	terminal := false
	if f, ok := in.(*os.File); ok {
		terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &prompter{in: in, out: cmd.OutOrStdout(), reader: bufio.NewReader(in), terminal: terminal}
}

func (p *prompter) Ask(label string) (string, error) {
	return p.ask(label, false)
}

func (p *prompter) AskSecret(label string) (string, error) {
	return p.ask(label, true)
}

func (p *prompter) ask(label string, secret bool) (string, error) {
	if p.terminal {
		return p.askTerminal(label, secret)
	}

	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errPromptCanceled
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type inputModel struct {
	input    textinput.Model
	done     bool
	canceled bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return m.input.View()
}

func (p *prompter) askTerminal(label string, secret bool) (string, error) {
	input := textinput.New()
	input.Prompt = label + ": "
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}
	input.Focus()

	program := tea.NewProgram(inputModel{input: input}, tea.WithInput(p.in), tea.WithOutput(p.out))
	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected final prompt model type %T", finalModel)
	}
	if result.canceled {
		return "", errPromptCanceled
	}

	value := result.input.Value()
	if secret {
		_, _ = fmt.Fprintf(p.out, "%s: %s\n", label, strings.Repeat("•", len([]rune(value))))
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: %s\n", label, value)
	}

	return value, nil
}
