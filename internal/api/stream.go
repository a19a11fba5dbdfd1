package api

import (
	"io"
	"net/http"
	"os"
	"strings"

	"mediafeed/internal/domain"
)

const streamChunkSize = 8 * 1024

// streamFile copies the asset to the client in 8 KiB chunks, flushing
// between chunks so playback can start before the copy finishes. An
// error is returned only when the file cannot be opened; once the body
// has started, copy failures are just logged.
func (s *Server) streamFile(w http.ResponseWriter, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, streamChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				s.logger.Debug("client went away mid-stream", "path", path, "error", werr)
				return nil
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			s.logger.Warn("read failed mid-stream", "path", path, "error", err)
			return nil
		}
	}
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func (s *Server) handleSubscriptionThumbnail(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	sub, err := s.subscriptions.GetOwnedByID(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if sub.Thumbnail == nil || *sub.Thumbnail == "" {
		s.writeError(w, domain.ErrUnavailable)
		return
	}
	if isRemote(*sub.Thumbnail) {
		http.Redirect(w, r, *sub.Thumbnail, http.StatusFound)
		return
	}

	if err := s.streamFile(w, *sub.Thumbnail); err != nil {
		s.writeError(w, domain.ErrUnavailable)
	}
}

func (s *Server) handleVideoThumbnail(w http.ResponseWriter, r *http.Request, userID int64) {
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

	if video.Thumb == nil || *video.Thumb == "" {
		s.writeError(w, domain.ErrUnavailable)
		return
	}
	if isRemote(*video.Thumb) {
		http.Redirect(w, r, *video.Thumb, http.StatusFound)
		return
	}

	if err := s.streamFile(w, *video.Thumb); err != nil {
		// The recorded path no longer resolves; clear it so future
		// requests short-circuit to unavailable instead of retrying a
		// broken path.
		if clearErr := s.videos.ClearThumb(r.Context(), video.ID); clearErr != nil {
			s.logger.Warn("clear stale thumb failed", "video", video.ID, "error", clearErr)
		} else {
			s.logger.Info("cleared stale thumb path", "video", video.ID, "path", *video.Thumb)
		}
		s.writeError(w, domain.ErrUnavailable)
	}
}

func (s *Server) handleVideoFile(w http.ResponseWriter, r *http.Request, userID int64) {
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

	if !video.Downloaded() {
		s.writeError(w, domain.ErrUnavailable)
		return
	}
	if isRemote(*video.DownloadedPath) {
		http.Redirect(w, r, *video.DownloadedPath, http.StatusFound)
		return
	}

	if err := s.streamFile(w, *video.DownloadedPath); err != nil {
		s.writeError(w, domain.ErrUnavailable)
	}
}
