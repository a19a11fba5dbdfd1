package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"mediafeed/internal/domain"
)

type FolderStore struct {
	db *sqlx.DB
}

func NewFolderStore(db *sqlx.DB) *FolderStore {
	return &FolderStore{db: db}
}

func (s *FolderStore) GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Folder, error) {
	var folder domain.Folder
	query := `SELECT id, user_id, name, parent_id FROM folders WHERE id = $1 AND user_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &folder, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// ListByUser returns the user's root folders.
func (s *FolderStore) ListByUser(ctx context.Context, userID int64) ([]domain.Folder, error) {
	var folders []domain.Folder
	query := `SELECT id, user_id, name, parent_id FROM folders
		WHERE user_id = $1 AND parent_id IS NULL ORDER BY id`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &folders, query, userID)
	return folders, err
}

func (s *FolderStore) ChildFolderIDs(ctx context.Context, folderID int64) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		`SELECT id FROM folders WHERE parent_id = $1 ORDER BY id`, folderID)
	return ids, err
}

func (s *FolderStore) ChildSubscriptionIDs(ctx context.Context, folderID int64) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		`SELECT id FROM subscriptions WHERE parent_folder_id = $1 ORDER BY id`, folderID)
	return ids, err
}

// Create inserts a folder; used by fixtures and operator tooling.
func (s *FolderStore) Create(ctx context.Context, folder *domain.Folder) (int64, error) {
	query := `INSERT INTO folders (user_id, name, parent_id) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		folder.UserID, folder.Name, folder.ParentID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	folder.ID = id
	return id, nil
}
