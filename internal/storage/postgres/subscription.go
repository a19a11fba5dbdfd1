package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"mediafeed/internal/domain"
)

const subscriptionColumns = `
	id, user_id, provider, channel_id, name, channel_name, thumbnail, parent_folder_id`

type SubscriptionStore struct {
	db *sqlx.DB
}

func NewSubscriptionStore(db *sqlx.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

func (s *SubscriptionStore) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sub, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionStore) GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1 AND user_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sub, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionStore) ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE user_id = $1 ORDER BY id`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subs, query, userID)
	return subs, err
}

func (s *SubscriptionStore) ListByFolder(ctx context.Context, folderID, userID int64) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	query := `SELECT ` + subscriptionColumns + `
		FROM subscriptions WHERE parent_folder_id = $1 AND user_id = $2 ORDER BY id`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subs, query, folderID, userID)
	return subs, err
}

func (s *SubscriptionStore) ListAll(ctx context.Context) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions ORDER BY id`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subs, query)
	return subs, err
}

// Save persists the mutable metadata of an existing subscription.
func (s *SubscriptionStore) Save(ctx context.Context, sub *domain.Subscription) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE subscriptions
		 SET name = $2, channel_name = $3, thumbnail = $4, parent_folder_id = $5
		 WHERE id = $1`,
		sub.ID, sub.Name, sub.ChannelName, sub.Thumbnail, sub.ParentFolderID,
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

// Create inserts a subscription; used by fixtures and operator tooling.
func (s *SubscriptionStore) Create(ctx context.Context, sub *domain.Subscription) (int64, error) {
	query := `
		INSERT INTO subscriptions (user_id, provider, channel_id, name, channel_name, thumbnail, parent_folder_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		sub.UserID, sub.Provider, sub.ChannelID, sub.Name, sub.ChannelName, sub.Thumbnail, sub.ParentFolderID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	sub.ID = id
	return id, nil
}
