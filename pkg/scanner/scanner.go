// Package scanner drives line-by-line reading of input sources, matching
// each line against a pattern and emitting formatted output.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/pverhoeven/grepline/pkg/config"
	"github.com/pverhoeven/grepline/pkg/format"
	"github.com/pverhoeven/grepline/pkg/logging"
	"github.com/pverhoeven/grepline/pkg/matcher"
	"github.com/pverhoeven/grepline/pkg/types"
)

// StdinName is the source identifier used when reading standard input.
const StdinName = "-"

// Scanner streams lines from input sources through the pattern matcher and
// writes formatted output for every line with at least one match. It holds
// no per-source state; each source is opened, scanned and closed in turn.
type Scanner struct {
	config    *config.Config
	pattern   *matcher.Pattern
	formatter format.Formatter
	out       io.Writer
	stdin     io.Reader
	logger    zerolog.Logger
}

// New creates a scanner writing formatted matches to out.
func New(cfg *config.Config, pattern *matcher.Pattern, formatter format.Formatter, out io.Writer) *Scanner {
	return &Scanner{
		config:    cfg,
		pattern:   pattern,
		formatter: formatter,
		out:       out,
		stdin:     os.Stdin,
		logger:    logging.GetLogger("scanner"),
	}
}

// SetStdin overrides the reader used when no sources are given.
func (s *Scanner) SetStdin(r io.Reader) {
	s.stdin = r
}

// Scan processes each source fully and in order. With no sources it reads
// standard input, labeled StdinName. A source that cannot be opened or read
// aborts the whole run.
func (s *Scanner) Scan(sources []string) error {
	if len(sources) == 0 {
		return s.scanReader(StdinName, s.stdin)
	}

	for _, name := range sources {
		if err := s.scanFile(name); err != nil {
			return err
		}
	}
	return nil
}

// scanFile opens a named file and scans it, guaranteeing the handle is
// closed on every exit path.
func (s *Scanner) scanFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	return s.scanReader(name, f)
}

// scanReader runs the line loop over one source. Lines are numbered from 1,
// trailing line terminators are stripped by the line splitter, and matching
// lines are printed as soon as they are found.
func (s *Scanner) scanReader(name string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	bufSize := 64 * 1024
	if s.config.MaxLineBytes < bufSize {
		bufSize = s.config.MaxLineBytes
	}
	sc.Buffer(make([]byte, 0, bufSize), s.config.MaxLineBytes)

	lineNumber := 0
	matched := 0
	for sc.Scan() {
		lineNumber++
		line := sc.Text()

		intervals := s.pattern.FindMatches(line)
		if len(intervals) == 0 {
			continue
		}
		matched++

		rec := types.LineRecord{
			Source:  name,
			Number:  lineNumber,
			Text:    line,
			Matches: intervals,
		}
		if _, err := fmt.Fprintln(s.out, s.formatter.Format(rec)); err != nil {
			return fmt.Errorf("failed to write output for %s: %w", name, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	s.logger.Debug().
		Str("source", name).
		Int("lines", lineNumber).
		Int("matched", matched).
		Msg("source scanned")
	return nil
}
