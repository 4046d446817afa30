package core

import (
	"os"
	"strings"
	"sync"
)

const (
	// EntryMarker opens a nested block; the next line is indented
	EntryMarker = "> "
	// ExitMarker closes a nested block; this line is dedented
	ExitMarker = "< "

	// DefaultIndentStep is the width of one nesting level
	DefaultIndentStep = 2
	// DefaultIndentCap is the widest indent ever produced
	DefaultIndentCap = 80
)

// IndentConfig configures an IndentTracker
type IndentConfig struct {
	// Step is the number of spaces per nesting level (default: 2)
	Step int
	// Cap is the maximum indent width in spaces (default: 80)
	Cap int
	// PID reports the current process id (default: os.Getpid)
	PID func() int
}

// IndentTracker holds the indentation shared by every logger of a
// process together with the id of the process allowed to use it.
//
// Only the owning process may emit or mutate the indent. Ownership is
// taken by the first EnterScope and released when the matching number
// of ExitScope calls brings the reference count back to zero.
type IndentTracker struct {
	mu        sync.Mutex
	indent    string
	unit      string
	cap       int
	owner     int
	refs      int
	overflows uint64
	pid       func() int
}

// NewIndentTracker creates a tracker with no owner and no indent
func NewIndentTracker(cfg IndentConfig) *IndentTracker {
	if cfg.Step <= 0 {
		cfg.Step = DefaultIndentStep
	}
	if cfg.Cap <= 0 {
		cfg.Cap = DefaultIndentCap
	}
	// keep the cap on a step boundary
	cfg.Cap -= cfg.Cap % cfg.Step
	if cfg.PID == nil {
		cfg.PID = os.Getpid
	}
	return &IndentTracker{
		unit: strings.Repeat(" ", cfg.Step),
		cap:  cfg.Cap,
		pid:  cfg.PID,
	}
}

// EnterScope binds the calling process as owner if there is none and
// counts the scope. It reports whether this is the outermost scope.
func (t *IndentTracker) EnterScope() (first bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	first = t.refs == 0
	t.refs++
	if t.owner == 0 {
		t.owner = t.pid()
	}
	return first
}

// ExitScope releases one scope. Releasing the last one clears the owner.
func (t *IndentTracker) ExitScope() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.refs == 0 {
		return
	}
	t.refs--
	if t.refs == 0 {
		t.owner = 0
	}
}

// IsOwner reports whether the calling process owns the tracker
func (t *IndentTracker) IsOwner() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.owner != 0 && t.owner == t.pid()
}

// Owner returns the owning process id, 0 when unowned
func (t *IndentTracker) Owner() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.owner
}

// Refs returns the number of active scopes
func (t *IndentTracker) Refs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refs
}

// Indent returns the current indentation prefix
func (t *IndentTracker) Indent() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.indent
}

// Overflows counts growth steps skipped because the cap was reached
func (t *IndentTracker) Overflows() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.overflows
}

// Apply prepares msg for emission. An exit marker dedents before the
// line is prefixed, so exit lines align with their entry lines. When
// there is nothing to dedent the marker is stripped from msg instead.
// grow reports whether Advance must be called once the line is written.
func (t *IndentTracker) Apply(msg string) (line, prefix string, grow bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if strings.HasPrefix(msg, ExitMarker) {
		if len(t.indent) >= len(t.unit) {
			t.indent = t.indent[:len(t.indent)-len(t.unit)]
		} else {
			msg = msg[len(ExitMarker):]
		}
	}
	return t.indent + msg, t.indent, strings.HasPrefix(msg, EntryMarker)
}

// Advance grows the indent by one step unless it reached the cap
func (t *IndentTracker) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.indent) >= t.cap {
		t.overflows++
		return
	}
	t.indent += t.unit
}

// Reset drops indent and ownership. Meant for tests and for
// processes that must start over after losing track of their scopes.
func (t *IndentTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.indent = ""
	t.owner = 0
	t.refs = 0
	t.overflows = 0
}
