package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"mediafeed/internal/domain"
)

const videoColumns = `
	id, subscription_id, video_id, name, description, uploader_name,
	publish_date, duration, views, rating, playlist_index, watched,
	"new", downloaded_path, thumb, created_at, updated_at`

const videoColumnsPrefixed = `
	v.id, v.subscription_id, v.video_id, v.name, v.description, v.uploader_name,
	v.publish_date, v.duration, v.views, v.rating, v.playlist_index, v.watched,
	v."new", v.downloaded_path, v.thumb, v.created_at, v.updated_at`

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

func (s *VideoStore) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	var video domain.Video
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &video, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoStore) GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Video, error) {
	var video domain.Video
	query := `
		SELECT ` + videoColumnsPrefixed + `
		FROM videos v
		INNER JOIN subscriptions s ON s.id = v.subscription_id
		WHERE v.id = $1 AND s.user_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &video, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoStore) GetByExternalID(ctx context.Context, subscriptionID int64, videoID string) (*domain.Video, error) {
	var video domain.Video
	query := `SELECT ` + videoColumns + ` FROM videos WHERE subscription_id = $1 AND video_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &video, query, subscriptionID, videoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoStore) FindByProviderVideoID(ctx context.Context, userID int64, provider domain.ProviderKind, videoID string) (*domain.Video, error) {
	var video domain.Video
	query := `
		SELECT ` + videoColumnsPrefixed + `
		FROM videos v
		INNER JOIN subscriptions s ON s.id = v.subscription_id
		WHERE s.user_id = $1 AND s.provider = $2 AND v.video_id = $3`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &video, query, userID, provider, videoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Upsert writes the video keyed by (subscription_id, video_id). The
// unique constraint makes concurrent create-then-create races collapse
// into an update; last write wins on every column.
func (s *VideoStore) Upsert(ctx context.Context, video *domain.Video) (int64, error) {
	query := `
		INSERT INTO videos (
			subscription_id, video_id, name, description, uploader_name,
			publish_date, duration, views, rating, playlist_index,
			watched, "new", downloaded_path, thumb
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (subscription_id, video_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			uploader_name = EXCLUDED.uploader_name,
			publish_date = EXCLUDED.publish_date,
			duration = EXCLUDED.duration,
			views = EXCLUDED.views,
			rating = EXCLUDED.rating,
			playlist_index = EXCLUDED.playlist_index,
			watched = EXCLUDED.watched,
			"new" = EXCLUDED."new",
			downloaded_path = EXCLUDED.downloaded_path,
			thumb = EXCLUDED.thumb,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		video.SubscriptionID,
		video.VideoID,
		video.Name,
		video.Description,
		video.UploaderName,
		video.PublishDate,
		video.Duration,
		video.Views,
		video.Rating,
		video.PlaylistIndex,
		video.Watched,
		video.New,
		video.DownloadedPath,
		video.Thumb,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ClearExpiredNew drops the New flag on the subscription's videos whose
// publish date lies before the cutoff. Runs outside any sync
// transaction so the decay commits even when the later fetch fails.
func (s *VideoStore) ClearExpiredNew(ctx context.Context, subscriptionID int64, publishedBefore time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE videos SET "new" = FALSE, updated_at = now()
		 WHERE subscription_id = $1 AND "new" = TRUE AND publish_date < $2`,
		subscriptionID, publishedBefore,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *VideoStore) SetWatched(ctx context.Context, id int64, watched bool) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE videos SET watched = $2, updated_at = now() WHERE id = $1`,
		id, watched,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *VideoStore) ClearThumb(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE videos SET thumb = NULL, updated_at = now() WHERE id = $1`,
		id,
	)
	return err
}

// EarliestUnwatched picks the oldest unwatched video across the given
// subscriptions. A non-nil maxDuration restricts the pick to videos
// with a known duration within the limit.
func (s *VideoStore) EarliestUnwatched(ctx context.Context, subscriptionIDs []int64, maxDuration *int64) (*domain.Video, error) {
	if len(subscriptionIDs) == 0 {
		return nil, domain.ErrNotFound
	}

	query := `SELECT ` + videoColumns + `
		FROM videos
		WHERE watched = FALSE AND subscription_id = ANY($1)`
	args := []interface{}{pq.Array(subscriptionIDs)}

	if maxDuration != nil {
		query += ` AND duration <= $2`
		args = append(args, *maxDuration)
	}
	query += ` ORDER BY publish_date ASC LIMIT 1`

	var video domain.Video
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &video, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// FirstUnwatched picks the subscription's oldest unwatched video not
// already selected.
func (s *VideoStore) FirstUnwatched(ctx context.Context, subscriptionID int64, exclude []int64) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + `
		FROM videos
		WHERE subscription_id = $1 AND watched = FALSE AND NOT (id = ANY($2))
		ORDER BY publish_date ASC
		LIMIT 1`

	var video domain.Video
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &video, query, subscriptionID, pq.Array(exclude))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoStore) UnwatchedStats(ctx context.Context, subscriptionIDs []int64) (*domain.UnwatchedStats, error) {
	stats := &domain.UnwatchedStats{}
	if len(subscriptionIDs) == 0 {
		return stats, nil
	}

	query := `
		SELECT COUNT(*) AS count, COALESCE(SUM(duration), 0) AS duration
		FROM videos
		WHERE watched = FALSE AND subscription_id = ANY($1)`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), stats, query, pq.Array(subscriptionIDs))
	if err != nil {
		return nil, err
	}
	return stats, nil
}
