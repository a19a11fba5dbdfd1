package api

import (
	"context"
	"net/http"

	"mediafeed/internal/domain"
)

type folderReply struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	ChildFolders       []int64                `json:"childFolders"`
	ChildSubscriptions []int64                `json:"childSubscriptions"`
	Unwatched          *domain.UnwatchedStats `json:"unwatched,omitempty"`
}

type subscriptionReply struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	Unwatched *domain.UnwatchedStats `json:"unwatched,omitempty"`
}

func includeCounts(r *http.Request) bool {
	v := r.URL.Query().Get("includeUnwatchedCounts")
	return v == "1" || v == "true"
}

func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request, userID int64) {
	folders, err := s.folders.ListByUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	replies := make([]folderReply, 0, len(folders))
	for _, folder := range folders {
		reply, err := s.folderReply(r.Context(), folder, includeCounts(r))
		if err != nil {
			s.writeError(w, err)
			return
		}
		replies = append(replies, *reply)
	}

	s.writeJSON(w, http.StatusOK, replies)
}

func (s *Server) handleGetFolder(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	folder, err := s.folders.GetOwnedByID(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	reply, err := s.folderReply(r.Context(), *folder, includeCounts(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, reply)
}

func (s *Server) folderReply(ctx context.Context, folder domain.Folder, withCounts bool) (*folderReply, error) {
	childFolders, err := s.folders.ChildFolderIDs(ctx, folder.ID)
	if err != nil {
		return nil, err
	}
	childSubs, err := s.folders.ChildSubscriptionIDs(ctx, folder.ID)
	if err != nil {
		return nil, err
	}

	reply := &folderReply{
		ID:                 folder.ID,
		Name:               folder.Name,
		ChildFolders:       childFolders,
		ChildSubscriptions: childSubs,
	}
	if childFolders == nil {
		reply.ChildFolders = []int64{}
	}
	if childSubs == nil {
		reply.ChildSubscriptions = []int64{}
	}

	if withCounts {
		stats, err := s.videos.UnwatchedStats(ctx, reply.ChildSubscriptions)
		if err != nil {
			return nil, err
		}
		reply.Unwatched = stats
	}

	return reply, nil
}

func (s *Server) handleListSubscriptions(w http.ResponseWriter, r *http.Request, userID int64) {
	subs, err := s.subscriptions.ListByUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	replies := make([]subscriptionReply, 0, len(subs))
	for _, sub := range subs {
		reply := subscriptionReply{ID: sub.ID, Name: sub.Name}
		if includeCounts(r) {
			stats, err := s.subscriptionStats(r.Context(), sub.ID)
			if err != nil {
				s.writeError(w, err)
				return
			}
			reply.Unwatched = stats
		}
		replies = append(replies, reply)
	}

	s.writeJSON(w, http.StatusOK, replies)
}

func (s *Server) handleGetSubscription(w http.ResponseWriter, r *http.Request, userID int64) {
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

	reply := subscriptionReply{ID: sub.ID, Name: sub.Name}
	if includeCounts(r) {
		stats, err := s.subscriptionStats(r.Context(), sub.ID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		reply.Unwatched = stats
	}

	s.writeJSON(w, http.StatusOK, reply)
}

// subscriptionStats consults the redis cache before recomputing from
// the store; redis being down just means every call recomputes.
func (s *Server) subscriptionStats(ctx context.Context, subscriptionID int64) (*domain.UnwatchedStats, error) {
	if s.counts != nil {
		if stats, ok := s.counts.Get(ctx, subscriptionID); ok {
			return stats, nil
		}
	}

	stats, err := s.videos.UnwatchedStats(ctx, []int64{subscriptionID})
	if err != nil {
		return nil, err
	}

	if s.counts != nil {
		s.counts.Set(ctx, subscriptionID, stats)
	}
	return stats, nil
}
