// Package patcher inserts the responsive stylesheet link into the HTML
// fragments under parts_of_const.
//
// Matching is literal: a file is patched only when it contains the exact
// Google Fonts <link> tag in Anchor and does not already mention Marker.
// Anything else is left byte-for-byte untouched, so a run can be repeated
// safely.
package patcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rshade/responsive-link/internal/logging"
)

const (
	// TargetDirName is the directory, next to the binary, holding the fragments.
	TargetDirName = "parts_of_const"

	// CandidateExt is the literal name suffix a directory entry needs to be patched.
	CandidateExt = ".html"

	// Marker is present in every file that already links the responsive stylesheet.
	Marker = "responsive-styles.css"

	// Anchor is the font stylesheet tag the new link is inserted after.
	Anchor = `<link href="https://fonts.googleapis.com/css2?family=Noto+Serif:wght@700;900&family=Hind:wght@700&display=swap" rel="stylesheet">`

	// ResponsiveLink is the tag inserted on its own line below Anchor.
	ResponsiveLink = `<link rel="stylesheet" href="../responsive-styles.css">`

	insertIndent = "  "
)

// replacement is what the first Anchor occurrence becomes.
const replacement = Anchor + "\n" + insertIndent + ResponsiveLink

// Outcome describes what happened to a single candidate file.
type Outcome int

// Possible per-file outcomes.
const (
	OutcomeUpdated Outcome = iota
	OutcomeAlreadyLinked
	OutcomeAnchorMissing
	OutcomeFailed
)

// String returns the outcome name used in structured logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeAlreadyLinked:
		return "already_linked"
	case OutcomeAnchorMissing:
		return "anchor_missing"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of patching one file. Err is set only for OutcomeFailed.
type Result struct {
	Path    string
	Outcome Outcome
	Err     error
}

// Reporter receives progress events from Run.
type Reporter interface {
	// DirMissing is called instead of everything else when the target directory does not exist.
	DirMissing(dir string)
	// Found is called once with the number of candidates before any file is touched.
	Found(n int)
	// FileDone is called after each candidate, in enumeration order.
	FileDone(res Result)
	// Done is called after the last candidate.
	Done()
}

// Patcher patches every candidate in a single directory.
type Patcher struct {
	dir      string
	reporter Reporter
}

// New returns a Patcher for dir. A nil reporter discards all events.
func New(dir string, reporter Reporter) *Patcher {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Patcher{dir: dir, reporter: reporter}
}

// Apply decides what to do with content and returns the text to write.
// The marker check runs first so a patched file is never touched again.
func Apply(content string) (string, Outcome) {
	if strings.Contains(content, Marker) {
		return content, OutcomeAlreadyLinked
	}
	if !strings.Contains(content, Anchor) {
		return content, OutcomeAnchorMissing
	}
	return strings.Replace(content, Anchor, replacement, 1), OutcomeUpdated
}

// Candidates lists the entries of dir whose names end in CandidateExt, in
// the order os.ReadDir returns them. Entries are selected by name only.
func Candidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, dirMissingError(dir)
		}
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), CandidateExt) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// PatchFile reads path, applies the link insertion and writes the whole file
// back when something changed. Read and write failures are reported in the
// Result with OutcomeFailed.
func PatchFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: fmt.Errorf("%w: %w", ErrReadFailed, err)}
	}

	patched, outcome := Apply(string(data))
	if outcome != OutcomeUpdated {
		return Result{Path: path, Outcome: outcome}
	}

	// Perm only applies on create; an existing file keeps its mode.
	//nolint:gosec // fragments are served as static files and must stay world-readable.
	if err = os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: fmt.Errorf("%w: %w", ErrWriteFailed, err)}
	}
	return Result{Path: path, Outcome: OutcomeUpdated}
}

// Run patches every candidate sequentially. A missing directory is reported
// and is not an error; any other listing failure is returned. Per-file
// failures are reported and never stop the run.
func (p *Patcher) Run(ctx context.Context) error {
	log := logging.ComponentLogger(logging.FromContext(ctx), "patcher")

	names, err := Candidates(p.dir)
	if err != nil {
		if errors.Is(err, ErrTargetDirMissing) {
			log.Info().Ctx(ctx).Str("dir", p.dir).Msg("target directory missing, nothing to do")
			p.reporter.DirMissing(p.dir)
			return nil
		}
		return err
	}

	log.Debug().Ctx(ctx).Str("dir", p.dir).Int("candidates", len(names)).Msg("candidates enumerated")
	p.reporter.Found(len(names))

	for _, name := range names {
		res := PatchFile(filepath.Join(p.dir, name))

		evt := log.Debug()
		if res.Outcome == OutcomeFailed {
			evt = log.Warn().Err(res.Err)
		}
		evt.Ctx(ctx).Str("path", res.Path).Stringer("outcome", res.Outcome).Msg("file processed")

		p.reporter.FileDone(res)
	}

	p.reporter.Done()
	return nil
}

type nopReporter struct{}

func (nopReporter) DirMissing(string) {}
func (nopReporter) Found(int)         {}
func (nopReporter) FileDone(Result)   {}
func (nopReporter) Done()             {}
