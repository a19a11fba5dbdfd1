package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"mediafeed/internal/cache"
	"mediafeed/internal/domain"
	"mediafeed/internal/playback"
	"mediafeed/internal/service"
)

// CurrentUserFunc resolves the authenticated user for a request. All
// identity handling happens at this boundary; every handler below it
// works with an explicit user id.
type CurrentUserFunc func(r *http.Request) (int64, error)

// TrustedHeaderUser reads the user id from a header set by an
// authenticating reverse proxy.
func TrustedHeaderUser(header string) CurrentUserFunc {
	return func(r *http.Request) (int64, error) {
		raw := r.Header.Get(header)
		if raw == "" {
			return 0, errors.New("missing user header")
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, errors.New("malformed user header")
		}
		return id, nil
	}
}

// Server is the query/command surface over the catalog plus the
// playback-session endpoint.
type Server struct {
	videos        service.VideoStore
	subscriptions service.SubscriptionStore
	folders       service.FolderStore
	shuffler      *service.ShuffleService
	publisher     service.Publisher
	sessions      *playback.Manager
	counts        *cache.UnwatchedCache
	currentUser   CurrentUserFunc
	upgrader      websocket.Upgrader
	logger        *slog.Logger
}

func NewServer(
	videos service.VideoStore,
	subscriptions service.SubscriptionStore,
	folders service.FolderStore,
	shuffler *service.ShuffleService,
	publisher service.Publisher,
	sessions *playback.Manager,
	counts *cache.UnwatchedCache,
	currentUser CurrentUserFunc,
	logger *slog.Logger,
) *Server {
	return &Server{
		videos:        videos,
		subscriptions: subscriptions,
		folders:       folders,
		shuffler:      shuffler,
		publisher:     publisher,
		sessions:      sessions,
		counts:        counts,
		currentUser:   currentUser,
		upgrader:      websocket.Upgrader{},
		logger:        logger.With("component", "api"),
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/folders", s.withUser(s.handleListFolders))
	mux.HandleFunc("GET /api/folders/{id}", s.withUser(s.handleGetFolder))
	mux.HandleFunc("GET /api/subscriptions", s.withUser(s.handleListSubscriptions))
	mux.HandleFunc("GET /api/subscriptions/{id}", s.withUser(s.handleGetSubscription))
	mux.HandleFunc("GET /api/subscriptions/{id}/thumbnail", s.withUser(s.handleSubscriptionThumbnail))
	mux.HandleFunc("GET /api/videos/{id}", s.withUser(s.handleGetVideo))
	mux.HandleFunc("PUT /api/videos/{id}/watched", s.withUser(s.handleSetWatched))
	mux.HandleFunc("POST /api/videos/{id}/download", s.withUser(s.handleStartDownload))
	mux.HandleFunc("GET /api/videos/{id}/thumbnail", s.withUser(s.handleVideoThumbnail))
	mux.HandleFunc("GET /api/videos/{id}/file", s.withUser(s.handleVideoFile))
	mux.HandleFunc("GET /api/search", s.withUser(s.handleSearch))
	mux.HandleFunc("POST /api/shuffle", s.withUser(s.handleShuffle))
	mux.HandleFunc("POST /api/playback/control", s.withUser(s.handlePlaybackControl))
	mux.HandleFunc("GET /api/playback/session", s.withUser(s.handlePlaybackSession))
}

type userHandler func(w http.ResponseWriter, r *http.Request, userID int64)

func (s *Server) withUser(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.currentUser(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r, userID)
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrNoCandidate):
		http.Error(w, "no candidate video", http.StatusNotFound)
	case errors.Is(err, domain.ErrUnavailable):
		http.Error(w, "not downloaded", http.StatusPreconditionFailed)
	default:
		s.logger.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
