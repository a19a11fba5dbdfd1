package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mediafeed/internal/domain"
	"mediafeed/internal/service"
)

type videoReply struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Downloaded  bool   `json:"downloaded"`
	Duration    *int64 `json:"duration,omitempty"`
	New         bool   `json:"new"`
	Published   *int64 `json:"published,omitempty"` // unix seconds
	VideoID     string `json:"videoId"`
	Views       *int64 `json:"views,omitempty"`
	Watched     bool   `json:"watched"`
}

func newVideoReply(video *domain.Video) videoReply {
	reply := videoReply{
		ID:          video.ID,
		Title:       video.Name,
		Description: video.Description,
		Downloaded:  video.Downloaded(),
		Duration:    video.Duration,
		New:         video.New,
		VideoID:     video.VideoID,
		Views:       video.Views,
		Watched:     video.Watched,
	}
	if !video.PublishDate.IsZero() {
		published := video.PublishDate.Unix()
		reply.Published = &published
	}
	return reply
}

func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	video, err := s.videos.GetOwnedByID(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newVideoReply(video))
}

type watchedRequest struct {
	Watched bool `json:"watched"`
}

func (s *Server) handleSetWatched(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	var req watchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	video, err := s.videos.GetOwnedByID(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.videos.SetWatched(r.Context(), video.ID, req.Watched); err != nil {
		s.writeError(w, err)
		return
	}

	if s.counts != nil {
		s.counts.Invalidate(r.Context(), video.SubscriptionID)
	}

	s.writeJSON(w, http.StatusOK, struct{}{})
}

type downloadReply struct {
	Status string `json:"status"`
}

func (s *Server) handleStartDownload(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	video, err := s.videos.GetOwnedByID(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sub, err := s.subscriptions.GetByID(r.Context(), video.SubscriptionID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.publisher.PublishDownloadVideo(r.Context(), video.ID, sub.Provider); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, downloadReply{Status: "in_progress"})
}

type searchReply struct {
	VideoID *int64 `json:"videoId,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request, userID int64) {
	provider, err := domain.ParseProvider(r.URL.Query().Get("provider"))
	if err != nil {
		http.Error(w, "bad provider", http.StatusBadRequest)
		return
	}
	providerVideoID := r.URL.Query().Get("providerVideoId")
	if providerVideoID == "" {
		http.Error(w, "missing providerVideoId", http.StatusBadRequest)
		return
	}

	video, err := s.videos.FindByProviderVideoID(r.Context(), userID, provider, providerVideoID)
	if errors.Is(err, domain.ErrNotFound) {
		// No match is an empty reply, not an error.
		s.writeJSON(w, http.StatusOK, searchReply{})
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, searchReply{VideoID: &video.ID})
}

type shuffleRequest struct {
	DurationMinutes *int64 `json:"durationMinutes,omitempty"`
	FolderID        *int64 `json:"folderId,omitempty"`
	SubscriptionID  *int64 `json:"subscriptionId,omitempty"`
}

type shuffleReply struct {
	VideoIDs []int64 `json:"videoIds"`
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request, userID int64) {
	var req shuffleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var budget time.Duration
	if req.DurationMinutes != nil {
		budget = time.Duration(*req.DurationMinutes) * time.Minute
	}

	scope := service.ShuffleScope{FolderID: req.FolderID, SubscriptionID: req.SubscriptionID}
	queue, err := s.shuffler.BuildQueue(r.Context(), userID, scope, budget)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, shuffleReply{VideoIDs: queue})
}
