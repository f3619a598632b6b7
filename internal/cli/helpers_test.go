package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/hpicker/internal/cli"
	"github.com/rshade/hpicker/internal/config"
)

// setupCLITest isolates the config file and environment overrides.
func setupCLITest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvPaddingScale, "")
	t.Setenv("TMPDIR", t.TempDir())
	return path
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, runner cli.ProgramRunner, stdin string, args ...string) cliResult {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmdWithRunner("test", runner)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

// scripted returns a runner that sizes the terminal, lets deferred work settle and
// then feeds msgs to the model in order.
func scripted(msgs ...tea.Msg) cli.ProgramRunner {
	return func(_ context.Context, model tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		settle(model, model.Init())

		var cmd tea.Cmd
		model, cmd = model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		settle(model, cmd)

		for _, msg := range msgs {
			model, _ = model.Update(msg)
		}
		return model, nil
	}
}

// capture wraps a runner and records the final model.
func capture(runner cli.ProgramRunner, final *tea.Model) cli.ProgramRunner {
	return func(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		m, err := runner(ctx, model, opts...)
		*final = m
		return m, err
	}
}

// settle executes cmd and the commands it produces, feeding messages back to the
// model, the way the program loop would between frames.
func settle(model tea.Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0 && i < 50; i++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, next := model.Update(msg)
			queue = append(queue, next)
		}
	}
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnd   = tea.KeyMsg{Type: tea.KeyEnd}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)
