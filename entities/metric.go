package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MetricSnapshot is append-only.
type MetricSnapshot struct {
	SnapshotID        uint              `gorm:"primaryKey" json:"snapshot_id"`
	YouTubeVideoID    string            `gorm:"column:youtube_video_id" json:"youtube_video_id,omitempty"`
	IdeaID            *uint             `gorm:"index" json:"idea_id"`
	SnapshotDate      time.Time         `gorm:"index" json:"snapshot_date"`
	Impressions       *int64            `json:"impressions"`
	CTR               *float64          `gorm:"column:ctr" json:"ctr"`
	Views             int64             `json:"views"`
	AvgViewDuration   *float64          `json:"avg_view_duration"`
	AvgViewPercentage *float64          `json:"avg_view_percentage"`
	SubsGained        *int              `json:"subs_gained"`
	Notes             datatypes.JSONMap `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
