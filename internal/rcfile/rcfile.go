// package rcfile persists the column layout into the user rc file
package rcfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/callx/internal/models"
)

const (
	// EnvPath overrides the rc file location with a full path.
	EnvPath = "CALLXRC"
	// EnvHome locates the default rc file.
	EnvHome = "HOME"
	// FileName is the rc file name inside the home directory.
	FileName = ".callxrc"
	// BackupSuffix is appended to the rc path to build the backup path.
	BackupSuffix = ".old"

	directivePrefix = "set cl.column"
)

var (
	// ErrPathUnresolved means no rc location could be determined. Callers treat it as a silent no-op.
	ErrPathUnresolved = errors.New("rc file path unresolved")
	// ErrFileOpen means the rc file could not be created or truncated.
	ErrFileOpen = errors.New("unable to open rc file")
	// ErrBackup means the existing rc file could not be moved to its backup path.
	ErrBackup = errors.New("unable to back up rc file")
)

// SaveError reports a failure to write the rc file at Path.
type SaveError struct {
	Path   string
	Err    error
	Backup bool // Failed while moving Path aside rather than opening it
}

// Action names the failed step, "back up" or "open".
func (e *SaveError) Action() string {
	if e.Backup {
		return "back up"
	}
	return "open"
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Action(), e.Path, e.Err)
}

func (e *SaveError) Unwrap() []error {
	if e.Backup {
		return []error{ErrBackup, e.Err}
	}
	return []error{ErrFileOpen, e.Err}
}

// Merger rewrites the column directives of the rc file and keeps every other line.
type Merger struct {
	lookupEnv func(string) (string, bool)
	override  string
	logger    *log.Logger
}

// MergerOpts configures a [Merger].
type MergerOpts struct {
	// Path takes precedence over the environment when set.
	Path string
	// LookupEnv defaults to [os.LookupEnv].
	LookupEnv func(string) (string, bool)
	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// NewMerger creates a Merger with the given options.
func NewMerger(opts MergerOpts) *Merger {
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Merger{lookupEnv: opts.LookupEnv, override: opts.Path, logger: opts.Logger}
}

// Path resolves the rc file location.
//
// Precedence: explicit path, $CALLXRC, $HOME/.callxrc.
func (m *Merger) Path() (string, error) {
	if m.override != "" {
		return m.override, nil
	}
	if p, ok := m.lookupEnv(EnvPath); ok && p != "" {
		return p, nil
	}
	if home, ok := m.lookupEnv(EnvHome); ok && home != "" {
		return filepath.Join(home, FileName), nil
	}
	return "", ErrPathUnresolved
}

// IsDirective reports whether line is a column directive.
func IsDirective(line string) bool {
	return len(line) >= len(directivePrefix) && strings.EqualFold(line[:len(directivePrefix)], directivePrefix)
}

// Directive formats the rc line for the column at index.
func Directive(index int, token string) string {
	return fmt.Sprintf("%s%d %s", directivePrefix, index, token)
}

// Save writes selection into the rc file and returns the path written.
//
// The previous file is moved to <path>.old and every non-directive line is copied back before the new
// directives. If the new file cannot be opened the backup is left in place.
func (m *Merger) Save(selection []models.Attribute) (string, error) {
	path, err := m.Path()
	if err != nil {
		return "", err
	}
	backup := path + BackupSuffix

	if fileExists(backup) {
		if err := os.Remove(backup); err != nil {
			m.logger.Warn("failed to remove rc backup", "path", backup, "error", err)
		}
	}

	hasBackup := false
	if fileExists(path) {
		if err := os.Rename(path, backup); err != nil {
			return "", &SaveError{Path: path, Err: unwrapPathError(err), Backup: true}
		}
		hasBackup = true
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &SaveError{Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if hasBackup {
		for _, line := range m.passthrough(backup) {
			fmt.Fprintln(w, line)
		}
	}
	for i, a := range selection {
		fmt.Fprintln(w, Directive(i, a.Name))
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write rc file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close rc file %s: %w", path, err)
	}

	m.logger.Debug("rc file written", "path", path, "columns", len(selection))
	return path, nil
}

// passthrough returns the backup lines that are not column directives.
//
// An unreadable backup yields no lines.
func (m *Merger) passthrough(backup string) []string {
	data, err := os.ReadFile(backup)
	if err != nil {
		m.logger.Warn("rc backup unreadable, previous settings dropped", "path", backup, "error", err)
		return nil
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	kept := lines[:0]
	for _, line := range lines {
		if !IsDirective(line) {
			kept = append(kept, line)
		}
	}
	return kept
}

// Load returns the column tokens named by the rc file directives, ordered by column index.
//
// A missing file or unresolved path yields no tokens. Malformed directives are skipped.
func (m *Merger) Load() ([]string, error) {
	path, err := m.Path()
	if err != nil {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open rc file: %w", err)
	}
	defer f.Close()

	return ParseDirectives(f)
}

// ParseDirectives extracts column tokens from rc content, ordered by column index.
//
// Lines are matched exactly as [Merger.Save] matches them, so indented directives are not columns.
func ParseDirectives(r io.Reader) ([]string, error) {
	type column struct {
		index int
		token string
	}

	var cols []column
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !IsDirective(line) {
			continue
		}
		fields := strings.Fields(line[len(directivePrefix):])
		if len(fields) != 2 {
			continue
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil || idx < 0 {
			continue
		}
		cols = append(cols, column{index: idx, token: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rc file: %w", err)
	}

	sort.SliceStable(cols, func(i, j int) bool { return cols[i].index < cols[j].index })

	tokens := make([]string, len(cols))
	for i, c := range cols {
		tokens[i] = c.token
	}
	return tokens, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
