package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/responsive-link/internal/patcher"
)

func TestStylesFor(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tests := []struct {
		name     string
		tty      func(io.Writer) bool
		wantOK   bool
		wantSkip bool
		wantErr  bool
	}{
		{
			name: "neither stream is a terminal",
			tty:  func(io.Writer) bool { return false },
		},
		{
			name:     "stdout terminal, stderr redirected",
			tty:      func(w io.Writer) bool { return w == stdout },
			wantOK:   true,
			wantSkip: true,
		},
		{
			name:    "stderr terminal, stdout redirected",
			tty:     func(w io.Writer) bool { return w == stderr },
			wantErr: true,
		},
		{
			name:     "both terminals",
			tty:      func(io.Writer) bool { return true },
			wantOK:   true,
			wantSkip: true,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := stylesFor(stdout, stderr, tt.tty)
			assert.Equal(t, tt.wantOK, st.ok.GetBold(), "ok style")
			assert.Equal(t, tt.wantErr, st.err.GetBold(), "error style")
			_, skipPlain := st.skip.GetForeground().(lipgloss.NoColor)
			assert.Equal(t, tt.wantSkip, !skipPlain, "skip style")
		})
	}
}

func TestWriterIsTerminal(t *testing.T) {
	assert.False(t, writerIsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.False(t, writerIsTerminal(f))
}

func TestConsoleReporter_PlainLines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newConsoleReporter(&out, &errOut, plainStyles())

	r.Found(2)
	r.FileDone(patcher.Result{Path: "a.html", Outcome: patcher.OutcomeUpdated})
	r.FileDone(patcher.Result{Path: "b.html", Outcome: patcher.OutcomeFailed, Err: errors.New("boom")})
	r.Done()

	assert.Equal(t, "Found 2 HTML files to update\n"+
		"Updated a.html with responsive CSS link\n"+
		"All HTML files updated successfully!\n", out.String())
	assert.Equal(t, "Error updating b.html: boom\n", errOut.String())
}
