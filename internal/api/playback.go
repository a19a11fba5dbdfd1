package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mediafeed/internal/domain"
	"mediafeed/internal/playback"
)

// playbackFrame is one client → server update. Every field is optional;
// absent fields leave the session state unchanged. The Clear flags
// distinguish "set to nothing" from "not mentioned".
type playbackFrame struct {
	Position      *float64 `json:"position,omitempty"` // seconds
	ClearPosition bool     `json:"clearPosition,omitempty"`
	Loaded        *float64 `json:"loaded,omitempty"`
	Provider      *string  `json:"provider,omitempty"`
	ClearProvider bool     `json:"clearProvider,omitempty"`
	Quality       *string  `json:"quality,omitempty"`
	Rate          *float64 `json:"rate,omitempty"`
	State         *string  `json:"state,omitempty"`
	VideoID       *int64   `json:"videoId,omitempty"`
	ClearVideo    bool     `json:"clearVideo,omitempty"`
	Volume        *float64 `json:"volume,omitempty"`
	EndSession    bool     `json:"endSession,omitempty"`
}

// sessionSignal is one server → client one-shot command.
type sessionSignal struct {
	ShouldPlayPause bool `json:"shouldPlayPause,omitempty"`
	ShouldSkip      bool `json:"shouldSkip,omitempty"`
	ShouldWatch     bool `json:"shouldWatch,omitempty"`
}

type controlRequest struct {
	Command string `json:"command"`
}

// handlePlaybackControl relays a remote-control command to every open
// session of the user.
func (s *Server) handlePlaybackControl(w http.ResponseWriter, r *http.Request, userID int64) {
	var req controlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var cmd playback.Command
	switch req.Command {
	case "play_pause":
		cmd = playback.CommandPlayPause
	case "skip":
		cmd = playback.CommandSkip
	case "watch":
		cmd = playback.CommandWatch
	default:
		http.Error(w, "unknown command", http.StatusBadRequest)
		return
	}

	delivered := s.sessions.Broadcast(userID, cmd)
	s.writeJSON(w, http.StatusOK, map[string]int{"delivered": delivered})
}

// handlePlaybackSession runs one live playback session over a
// WebSocket. The session lives exactly as long as the connection: it is
// unregistered on an endSession frame, on connection failure, and on
// request cancellation.
func (s *Server) handlePlaybackSession(w http.ResponseWriter, r *http.Request, userID int64) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := s.sessions.NewSession(userID)
	defer session.Close()

	ctx := r.Context()
	done := make(chan struct{})
	defer close(done)

	// Single writer: gorilla connections do not allow concurrent writes.
	go func() {
		for {
			select {
			case <-session.PlayPause():
				_ = conn.WriteJSON(sessionSignal{ShouldPlayPause: true})
			case <-session.Skip():
				_ = conn.WriteJSON(sessionSignal{ShouldSkip: true})
			case <-session.Watch():
				_ = conn.WriteJSON(sessionSignal{ShouldWatch: true})
			case <-done:
				return
			}
		}
	}()

	frames := make(chan playbackFrame)
	go func() {
		defer close(frames)
		for {
			var frame playbackFrame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			select {
			case frames <- frame:
			case <-done:
				return
			}
		}
	}()

	// The read happens in its own goroutine, so this loop stays
	// responsive to cancellation even while no client frame arrives;
	// the timeout keeps it a cooperative poll rather than a busy spin.
	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return
			}
			if frame.EndSession {
				return
			}
			s.applyFrame(ctx, session, frame)
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

func (s *Server) applyFrame(ctx context.Context, session *playback.Session, frame playbackFrame) {
	update := playback.StateUpdate{
		ClearPosition: frame.ClearPosition,
		Loaded:        frame.Loaded,
		ClearProvider: frame.ClearProvider,
		Quality:       frame.Quality,
		Rate:          frame.Rate,
		PlayState:     frame.State,
		ClearVideo:    frame.ClearVideo,
		Volume:        frame.Volume,
	}

	if frame.Position != nil {
		position := time.Duration(*frame.Position * float64(time.Second))
		update.Position = &position
	}

	if frame.Provider != nil {
		kind, err := domain.ParseProvider(*frame.Provider)
		if err != nil {
			// Unknown capability tags clear the current one.
			update.ClearProvider = true
		} else {
			update.Provider = &kind
		}
	}

	if frame.VideoID != nil {
		video, err := s.videos.GetByID(ctx, *frame.VideoID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.logger.Warn("session referenced unknown video", "video", *frame.VideoID)
		case err != nil:
			s.logger.Warn("session video lookup failed", "video", *frame.VideoID, "error", err)
		default:
			update.Video = video
		}
	}

	session.Apply(update)
}
