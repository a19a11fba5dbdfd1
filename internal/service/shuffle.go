package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"mediafeed/internal/domain"
)

// DefaultShuffleBudget applies when the caller gives no time budget.
const DefaultShuffleBudget = time.Hour

// ShuffleScope selects which subscriptions feed the build. Both fields
// nil means every subscription of the user.
type ShuffleScope struct {
	FolderID       *int64
	SubscriptionID *int64
}

// ShuffleService builds time-budgeted playlists of unwatched videos.
type ShuffleService struct {
	subscriptions SubscriptionStore
	videos        VideoStore
	logger        *slog.Logger

	// shuffle is swappable for deterministic tests.
	shuffle func(subs []domain.Subscription)
}

func NewShuffleService(subscriptions SubscriptionStore, videos VideoStore, logger *slog.Logger) *ShuffleService {
	return &ShuffleService{
		subscriptions: subscriptions,
		videos:        videos,
		logger:        logger.With("component", "shuffle"),
		shuffle: func(subs []domain.Subscription) {
			rand.Shuffle(len(subs), func(i, j int) {
				subs[i], subs[j] = subs[j], subs[i]
			})
		},
	}
}

// BuildQueue selects an ordered, deduplicated run of unwatched videos
// fitting the budget. The build reads the catalog without isolation
// beyond read-committed; a video watched mid-build is a benign race.
func (s *ShuffleService) BuildQueue(ctx context.Context, userID int64, scope ShuffleScope, budget time.Duration) ([]int64, error) {
	if budget <= 0 {
		budget = DefaultShuffleBudget
	}

	subs, err := s.resolveScope(ctx, userID, scope)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, domain.ErrNoCandidate
	}

	subIDs := make([]int64, len(subs))
	for i, sub := range subs {
		subIDs[i] = sub.ID
	}

	// Short requests pre-filter the seed by duration; an hour or more
	// picks the seed unrestricted.
	var maxDuration *int64
	if budget < DefaultShuffleBudget {
		limit := int64(budget / time.Second)
		maxDuration = &limit
	}

	seed, err := s.videos.EarliestUnwatched(ctx, subIDs, maxDuration)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoCandidate
	}
	if err != nil {
		return nil, fmt.Errorf("pick seed video: %w", err)
	}

	queue := []int64{seed.ID}
	remaining := budget - seed.DurationSpan()

	idleRounds := 0
	for idleRounds <= 2 {
		added := false

		for _, sub := range subs {
			video, err := s.videos.FirstUnwatched(ctx, sub.ID, queue)
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("pick from subscription %d: %w", sub.ID, err)
			}
			if video.Duration != nil && video.DurationSpan() > remaining {
				continue
			}

			queue = append(queue, video.ID)
			remaining -= video.DurationSpan()
			added = true
		}

		if added {
			idleRounds = 0
		} else {
			idleRounds++
		}
	}

	s.logger.Debug("queue built",
		"user", userID,
		"videos", len(queue),
		"consumed", budget-remaining,
	)
	return queue, nil
}

func (s *ShuffleService) resolveScope(ctx context.Context, userID int64, scope ShuffleScope) ([]domain.Subscription, error) {
	switch {
	case scope.SubscriptionID != nil:
		sub, err := s.subscriptions.GetOwnedByID(ctx, *scope.SubscriptionID, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve subscription scope: %w", err)
		}
		return []domain.Subscription{*sub}, nil

	case scope.FolderID != nil:
		subs, err := s.subscriptions.ListByFolder(ctx, *scope.FolderID, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve folder scope: %w", err)
		}
		s.shuffle(subs)
		return subs, nil

	default:
		subs, err := s.subscriptions.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve user scope: %w", err)
		}
		s.shuffle(subs)
		return subs, nil
	}
}
