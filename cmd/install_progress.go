package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	packsrender "github.com/bnema/serverpacks/internal/adapters/render/packs"
	"github.com/bnema/serverpacks/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// installOutcome is where a single install ended up once its download settled.
type installOutcome struct {
	state   domain.PackState
	size    int64
	elapsed time.Duration
	err     error
}

func (o installOutcome) String() string {
	switch o.state {
	case domain.PackStateRegistered:
		return fmt.Sprintf("registered, %s in %s", packsrender.FormatSize(o.size), o.elapsed.Round(time.Millisecond))
	case domain.PackStatePresent:
		return fmt.Sprintf("present but not activated, %s in %s", packsrender.FormatSize(o.size), o.elapsed.Round(time.Millisecond))
	default:
		return string(o.state)
	}
}

type installSettledMsg installOutcome

type elapsedTickMsg time.Time

// installProgressModel shows one pack in the downloading state until the
// downloader settles.
type installProgressModel struct {
	spinner spinner.Model
	id      domain.PackID
	started time.Time
	now     time.Time
	settle  tea.Cmd
	outcome *installOutcome
}

func newInstallProgressModel(id domain.PackID, started time.Time, settle tea.Cmd) installProgressModel {
	return installProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		id:      id,
		started: started,
		now:     started,
		settle:  settle,
	}
}

func (m installProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.settle, tickElapsed())
}

func (m installProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case elapsedTickMsg:
		m.now = time.Time(msg)
		return m, tickElapsed()
	case installSettledMsg:
		outcome := installOutcome(msg)
		m.outcome = &outcome
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m installProgressModel) View() string {
	if m.outcome != nil {
		return ""
	}

	return fmt.Sprintf("%s %s %s (%s)", m.spinner.View(), m.id, domain.PackStateDownloading, m.now.Sub(m.started).Truncate(time.Second))
}

func tickElapsed() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return elapsedTickMsg(t)
	})
}

// runInstallProgress animates id while settle runs and returns its outcome.
func runInstallProgress(ctx context.Context, output io.Writer, id domain.PackID, started time.Time, settle func(context.Context) installOutcome) (installOutcome, error) {
	settleCmd := func() tea.Msg {
		return installSettledMsg(settle(ctx))
	}

	p := tea.NewProgram(
		newInstallProgressModel(id, started, settleCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return installOutcome{}, err
	}

	result, ok := finalModel.(installProgressModel)
	if !ok || result.outcome == nil {
		return installOutcome{}, fmt.Errorf("install progress ended without an outcome for %s", id)
	}

	return *result.outcome, nil
}
