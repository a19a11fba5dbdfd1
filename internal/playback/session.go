package playback

import (
	"sync"
	"time"

	"mediafeed/internal/domain"
)

// Command is a remote-control signal relayed to a session's client.
type Command int

const (
	CommandPlayPause Command = iota
	CommandSkip
	CommandWatch
)

func (c Command) String() string {
	switch c {
	case CommandPlayPause:
		return "play_pause"
	case CommandSkip:
		return "skip"
	case CommandWatch:
		return "watch"
	default:
		return "unknown"
	}
}

// State is the live playback state reported by one connected client.
type State struct {
	Position *time.Duration
	Loaded   float64
	Provider *domain.ProviderKind
	Quality  string
	Rate     float64
	PlayState string
	Video    *domain.Video
	Volume   float64
}

// StateUpdate carries a partial update from a client frame. Nil pointers
// mean "unchanged"; the Clear flags distinguish "set to nothing" from
// "not mentioned".
type StateUpdate struct {
	Position      *time.Duration
	ClearPosition bool
	Loaded        *float64
	Provider      *domain.ProviderKind
	ClearProvider bool
	Quality       *string
	Rate          *float64
	PlayState     *string
	Video         *domain.Video
	ClearVideo    bool
	Volume        *float64
}

// Session is the live playback state of one connected client. It exists
// only for the lifetime of its connection; the owning handler must call
// Close when the connection ends.
type Session struct {
	manager *Manager
	userID  int64

	// One-shot outbound signals. Buffered by one: delivery is attempted
	// once and dropped when the client's writer is still busy with the
	// previous signal.
	playPause chan struct{}
	skip      chan struct{}
	watch     chan struct{}

	mu     sync.Mutex
	state  State
	closed bool
}

func (s *Session) UserID() int64 { return s.userID }

// PlayPause is the outbound play/pause signal channel.
func (s *Session) PlayPause() <-chan struct{} { return s.playPause }

// Skip is the outbound skip signal channel.
func (s *Session) Skip() <-chan struct{} { return s.skip }

// Watch is the outbound mark-watched signal channel.
func (s *Session) Watch() <-chan struct{} { return s.watch }

// Apply merges a partial update into the session state.
func (s *Session) Apply(update StateUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.ClearPosition {
		s.state.Position = nil
	} else if update.Position != nil {
		s.state.Position = update.Position
	}

	if update.Loaded != nil {
		s.state.Loaded = *update.Loaded
	}

	if update.ClearProvider {
		s.state.Provider = nil
	} else if update.Provider != nil {
		s.state.Provider = update.Provider
	}

	if update.Quality != nil {
		s.state.Quality = *update.Quality
	}
	if update.Rate != nil {
		s.state.Rate = *update.Rate
	}
	if update.PlayState != nil {
		s.state.PlayState = *update.PlayState
	}

	if update.ClearVideo {
		s.state.Video = nil
	} else if update.Video != nil {
		s.state.Video = update.Video
	}

	if update.Volume != nil {
		s.state.Volume = *update.Volume
	}
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close unregisters the session. Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.manager.remove(s)
}

func (s *Session) signal(cmd Command) bool {
	var ch chan struct{}
	switch cmd {
	case CommandPlayPause:
		ch = s.playPause
	case CommandSkip:
		ch = s.skip
	case CommandWatch:
		ch = s.watch
	default:
		return false
	}

	select {
	case ch <- struct{}{}:
		return true
	default:
		// Best effort: the client is still draining the previous signal.
		return false
	}
}
