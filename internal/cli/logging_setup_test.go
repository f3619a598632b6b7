package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/hpicker/internal/logging"
)

func TestCloseLogOnError(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name       string
		runErr     error
		wantClosed bool
	}{
		{name: "failed command closes the log", runErr: errBoom, wantClosed: true},
		{name: "cancelled command closes the log", runErr: &CancelledError{Command: "pick"}, wantClosed: true},
		{name: "successful command leaves it to post-run", runErr: nil, wantClosed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hpicker.log")
			result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile, File: path})
			require.True(t, result.UsingFile)
			t.Cleanup(func() { _ = result.Close() })
			state := &rootState{logResult: &result}

			root := &cobra.Command{Use: "root", SilenceUsage: true, SilenceErrors: true}
			root.AddCommand(&cobra.Command{
				Use:  "sub",
				RunE: func(*cobra.Command, []string) error { return tt.runErr },
			})
			closeLogOnError(root, state)
			root.SetArgs([]string{"sub"})

			err := root.Execute()
			if tt.runErr != nil {
				require.ErrorIs(t, err, tt.runErr)
			} else {
				require.NoError(t, err)
			}

			// Writes after close are dropped.
			result.Logger.Info().Msg("after run")
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.wantClosed {
				assert.NotContains(t, string(data), "after run")
			} else {
				assert.Contains(t, string(data), "after run")
			}
		})
	}
}
