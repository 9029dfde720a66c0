package entities

import "time"

// VideoAsset is written once per packaging run and never updated.
type VideoAsset struct {
	AssetID           uint     `gorm:"primaryKey" json:"asset_id"`
	IdeaID            uint     `gorm:"index;not null" json:"idea_id"`
	Titles            []string `gorm:"serializer:json" json:"titles"`
	ThumbnailConcepts []string `gorm:"serializer:json" json:"thumbnail_concepts"`
	OutlineMD         string   `gorm:"type:text" json:"outline_md"`
	ScriptMD          string   `gorm:"type:text" json:"script_md"`
	DescriptionMD     string   `gorm:"type:text" json:"description_md"`
	Chapters          []string `gorm:"serializer:json" json:"chapters"`
	EndscreenPlanMD   string   `gorm:"type:text" json:"endscreen_plan_md"`
	PinnedCommentMD   string   `gorm:"type:text" json:"pinned_comment_md"`
	CommunityPostMD   string   `gorm:"type:text" json:"community_post_md"`
	ShortsPlanMD      string   `gorm:"type:text" json:"shorts_plan_md"`

	CreatedAt time.Time `json:"created_at"`
}
