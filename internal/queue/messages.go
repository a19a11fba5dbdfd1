package queue

import (
	"encoding/json"
	"time"

	"mediafeed/internal/domain"
)

// Kind tags the job type carried by an envelope.
type Kind string

const (
	KindSynchroniseSubscription Kind = "synchronise_subscription"
	KindEnrichVideo             Kind = "enrich_video"
	KindDownloadVideo           Kind = "download_video"
)

// Envelope is the wire frame for every job message.
type Envelope struct {
	MessageID string          `json:"message_id"`
	Kind      Kind            `json:"kind"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SynchroniseSubscription asks for one sync pass of a subscription.
// Delivered at least once; the handler must be idempotent.
type SynchroniseSubscription struct {
	SubscriptionID int64               `json:"subscription_id"`
	Provider       domain.ProviderKind `json:"provider"`
}

// EnrichVideo asks the provider integration to resolve duration,
// thumbnail or download information for a video.
type EnrichVideo struct {
	VideoID  int64               `json:"video_id"`
	Provider domain.ProviderKind `json:"provider"`
}

// DownloadVideo asks the provider integration to fetch the video asset.
type DownloadVideo struct {
	VideoID  int64               `json:"video_id"`
	Provider domain.ProviderKind `json:"provider"`
}
