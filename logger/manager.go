package logger

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/handler"
)

// DefaultNamespace is the namespace loggers live under until a scope
// sets another one
const DefaultNamespace = "ilog"

// identity is the per-name state shared by every Logger view of one
// dotted name.
type identity struct {
	name     string
	parent   *identity
	local    atomic.Int64
	disabled atomic.Bool

	mu       sync.RWMutex
	handlers []handler.Handler
}

func (id *identity) addHandler(h handler.Handler) {
	id.mu.Lock()
	defer id.mu.Unlock()
	id.handlers = append(id.handlers, h)
}

func (id *identity) removeHandler(h handler.Handler) bool {
	id.mu.Lock()
	defer id.mu.Unlock()
	for i, cur := range id.handlers {
		if cur == h {
			id.handlers = append(id.handlers[:i:i], id.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Manager owns the loggers of one process: their identities, the
// global threshold, the root handlers and the shared IndentTracker.
// The package-level functions use a default Manager.
type Manager struct {
	tracker       *core.IndentTracker
	global        atomic.Int64
	baseline      atomic.Int64
	includeCaller atomic.Bool
	onError       atomic.Pointer[func(error)]

	mu        sync.Mutex
	namespace string
	root      *identity
	loggers   map[string]*identity
}

// NewManager creates a manager around tracker. A nil tracker gets a
// default one bound to the real process id.
func NewManager(tracker *core.IndentTracker) *Manager {
	if tracker == nil {
		tracker = core.NewIndentTracker(core.IndentConfig{})
	}
	m := &Manager{
		tracker:   tracker,
		namespace: DefaultNamespace,
		root:      &identity{},
		loggers:   make(map[string]*identity),
	}
	m.global.Store(int64(core.InfoLevel))
	return m
}

// Tracker returns the indentation tracker shared by all loggers
func (m *Manager) Tracker() *core.IndentTracker {
	return m.tracker
}

// GlobalLevel returns the process-wide threshold
func (m *Manager) GlobalLevel() core.Level {
	return core.Level(m.global.Load())
}

// SetGlobalLevel sets the process-wide threshold
func (m *Manager) SetGlobalLevel(level core.Level) {
	m.global.Store(int64(level))
}

// BaselineLevel returns the local level given to loggers created by GetLogger
func (m *Manager) BaselineLevel() core.Level {
	return core.Level(m.baseline.Load())
}

// SetBaselineLevel changes the local level given to new loggers
func (m *Manager) SetBaselineLevel(level core.Level) {
	m.baseline.Store(int64(level))
}

// Namespace returns the namespace module loggers are created under
func (m *Manager) Namespace() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.namespace
}

// SetNamespace changes the namespace for loggers looked up afterwards
func (m *Manager) SetNamespace(ns string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.namespace = ns
}

// SetErrorHandler installs a callback for handler write errors.
// Without one, write errors are only counted by the handlers.
func (m *Manager) SetErrorHandler(fn func(error)) {
	if fn == nil {
		m.onError.Store(nil)
		return
	}
	m.onError.Store(&fn)
}

// Root returns the root logger. Its handlers receive records from
// every logger of the manager.
func (m *Manager) Root() *Logger {
	return m.view(m.root)
}

// Logger returns the logger for an exact dotted name, creating it and
// its missing ancestors with an unset local level.
func (m *Manager) Logger(name string) *Logger {
	if name == "" {
		return m.Root()
	}
	m.mu.Lock()
	id, _ := m.lookup(name)
	m.mu.Unlock()
	return m.view(id)
}

// GetLogger returns the logger of a module inside the namespace. Dots
// in module are replaced by slashes so that every module logger is a
// direct child of the namespace logger. An empty module returns the
// namespace logger. New module loggers start at the baseline level.
func (m *Manager) GetLogger(module string) *Logger {
	m.mu.Lock()
	name := m.moduleName(module)
	var id *identity
	created := false
	if name == "" {
		id = m.root
	} else {
		id, created = m.lookup(name)
	}
	m.mu.Unlock()

	if created && module != "" {
		id.local.Store(m.baseline.Load())
	}
	return m.view(id)
}

func (m *Manager) moduleName(module string) string {
	if module == "" {
		return m.namespace
	}
	module = strings.ReplaceAll(module, ".", "/")
	if m.namespace == "" {
		return module
	}
	return m.namespace + "." + module
}

// lookup returns the identity for name, creating ancestors on the way.
// m.mu must be held.
func (m *Manager) lookup(name string) (*identity, bool) {
	if id, ok := m.loggers[name]; ok {
		return id, false
	}
	parent := m.root
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		parent, _ = m.lookup(name[:i])
	}
	id := &identity{name: name, parent: parent}
	m.loggers[name] = id
	return id, true
}

func (m *Manager) view(id *identity) *Logger {
	return &Logger{id: id, manager: m, callerSkip: 3}
}

// dispatch hands the entry to the handlers of id and of each ancestor
// up to the root, in that order.
func (m *Manager) dispatch(id *identity, entry *core.Entry) {
	for cur := id; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		handlers := cur.handlers
		cur.mu.RUnlock()
		for _, h := range handlers {
			if err := h.Handle(entry); err != nil {
				if fn := m.onError.Load(); fn != nil {
					(*fn)(err)
				}
			}
		}
	}
}
