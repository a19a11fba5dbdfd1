package playback

import (
	"log/slog"
	"sync"
)

// Manager is the registry of live playback sessions, keyed by user.
// Registration, lookup and removal are all safe for concurrent use;
// every request handler of a user may Broadcast into it while that
// user's connections run their own inbound loops.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64][]*Session
	logger   *slog.Logger
}

func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[int64][]*Session),
		logger:   logger.With("component", "playback"),
	}
}

// NewSession registers a session for the user. The caller owns it and
// must Close it when the underlying connection ends.
func (m *Manager) NewSession(userID int64) *Session {
	session := &Session{
		manager:   m,
		userID:    userID,
		playPause: make(chan struct{}, 1),
		skip:      make(chan struct{}, 1),
		watch:     make(chan struct{}, 1),
	}

	m.mu.Lock()
	m.sessions[userID] = append(m.sessions[userID], session)
	count := len(m.sessions[userID])
	m.mu.Unlock()

	m.logger.Debug("session registered", "user", userID, "open", count)
	return session
}

// Broadcast fans the command out to every open session of the user.
// Delivery per session is one-shot best-effort; the return value is how
// many sessions accepted the signal.
func (m *Manager) Broadcast(userID int64, cmd Command) int {
	m.mu.RLock()
	targets := make([]*Session, len(m.sessions[userID]))
	copy(targets, m.sessions[userID])
	m.mu.RUnlock()

	delivered := 0
	for _, session := range targets {
		if session.signal(cmd) {
			delivered++
		}
	}

	m.logger.Debug("broadcast",
		"user", userID,
		"command", cmd.String(),
		"sessions", len(targets),
		"delivered", delivered,
	)
	return delivered
}

// SessionCount reports how many sessions the user has open.
func (m *Manager) SessionCount(userID int64) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions[userID])
}

func (m *Manager) remove(session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	open := m.sessions[session.userID]
	for i, candidate := range open {
		if candidate == session {
			m.sessions[session.userID] = append(open[:i], open[i+1:]...)
			break
		}
	}
	if len(m.sessions[session.userID]) == 0 {
		delete(m.sessions, session.userID)
	}
}
