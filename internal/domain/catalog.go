package domain

import "time"

// Video is one feed item tracked under a subscription. Uniqueness is
// per (SubscriptionID, VideoID); an item rediscovered under a different
// external id becomes a new row.
type Video struct {
	ID             int64      `db:"id"`
	SubscriptionID int64      `db:"subscription_id"`
	VideoID        string     `db:"video_id"` // provider-side identifier
	Name           string     `db:"name"`
	Description    string     `db:"description"`
	UploaderName   string     `db:"uploader_name"`
	PublishDate    time.Time  `db:"publish_date"`
	Duration       *int64     `db:"duration"` // seconds
	Views          *int64     `db:"views"`
	Rating         *float64   `db:"rating"`
	PlaylistIndex  *int64     `db:"playlist_index"`
	Watched        bool       `db:"watched"`
	New            bool       `db:"new"`
	DownloadedPath *string    `db:"downloaded_path"` // local path or remote URI
	Thumb          *string    `db:"thumb"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// DurationSpan returns the duration as a time.Duration, zero when absent.
func (v *Video) DurationSpan() time.Duration {
	if v.Duration == nil {
		return 0
	}
	return time.Duration(*v.Duration) * time.Second
}

// Downloaded reports whether a playable asset path is recorded.
func (v *Video) Downloaded() bool {
	return v.DownloadedPath != nil && *v.DownloadedPath != ""
}

type Subscription struct {
	ID             int64        `db:"id"`
	UserID         int64        `db:"user_id"`
	Provider       ProviderKind `db:"provider"`
	ChannelID      string       `db:"channel_id"` // feed locator
	Name           string       `db:"name"`       // display name, user-renamable
	ChannelName    string       `db:"channel_name"`
	Thumbnail      *string      `db:"thumbnail"`
	ParentFolderID *int64       `db:"parent_folder_id"`
}

// Folder groups subscriptions and sub-folders for one user. Parent links
// form a tree; there is no cycle.
type Folder struct {
	ID       int64  `db:"id"`
	UserID   int64  `db:"user_id"`
	Name     string `db:"name"`
	ParentID *int64 `db:"parent_id"`
}

// UnwatchedStats aggregates the unwatched videos of a subscription set.
type UnwatchedStats struct {
	Count    int64 `db:"count" json:"count"`
	Duration int64 `db:"duration" json:"duration"` // summed seconds
}

// FreshnessWindow is how long after publish a video counts as New.
const FreshnessWindow = 7 * 24 * time.Hour

// FreshnessDecay is the age past which the New flag is cleared at the
// start of every sync pass.
const FreshnessDecay = 24 * time.Hour
