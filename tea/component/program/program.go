package program

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/term"

	"github.com/tecskill/rtx-cli/common/printer"
)

// An interface describing the parts of BubbleTea's Program that we actually use.
type Program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
	Quit()
}

// StatusMsg updates the line shown next to the spinner.
type StatusMsg string

// A dumb text implementation of BubbleTea's Program that allows
// for output to be piped to another program.
type fakeProgram struct {
	model tea.Model
}

type statusModel struct {
	cancel context.CancelFunc

	spinner spinner.Model
	status  string
	width   int
}

func NewProgram(model tea.Model, opts ...tea.ProgramOption) Program {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return tea.NewProgram(model, opts...)
	}
	return &fakeProgram{model: model}
}

func (p *fakeProgram) Run() (tea.Model, error) {
	initCmd := p.model.Init()
	if initCmd != nil {
		if message := initCmd(); message != nil {
			p.model.Update(message)
		}
	}
	return p.model, nil
}

func (p *fakeProgram) Send(msg tea.Msg) {
	if status, ok := msg.(StatusMsg); ok {
		printer.Infoln(string(status))
	}

	_, cmd := p.model.Update(msg)
	if cmd != nil {
		cmd()
	}
}

func (p *fakeProgram) Quit() {
	p.Send(tea.Quit())
}

// RunProgram shows a spinner with a status line while f runs. Ctrl+C cancels
// the context handed to f.
func RunProgram(ctx context.Context, f func(p Program, ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	p := NewProgram(statusModel{
		cancel: cancel,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("36"))),
		),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- f(p, ctx)
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return <-errCh
}

func (m statusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		spinnerModel, cmd := m.spinner.Update(msg)
		m.spinner = spinnerModel
		return m, cmd
	case StatusMsg:
		m.status = string(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m statusModel) View() string {
	return wrap.String(m.spinner.View()+m.status, m.width)
}
