package entities

import (
	"time"

	"tubeplan/pkg/scoring"
)

const (
	IdeaStatusNew    = "new"
	IdeaStatusQueued = "queued"
)

const (
	DiscoverySearch = "search"
	DiscoveryTrend  = "trend"
	DiscoveryHybrid = "hybrid"
)

type VideoIdea struct {
	IdeaID         uint              `gorm:"primaryKey" json:"idea_id"`
	Pillar         string            `gorm:"index" json:"pillar"`
	OneLiner       string            `json:"idea_one_liner"`
	ViewerProblem  string            `json:"viewer_problem"`
	Angle          string            `json:"angle"`
	Discovery      string            `json:"search_or_trend"` // search|trend|hybrid
	Complexity     int               `json:"complexity"`
	ClickPotential int               `json:"click_potential"`
	ScoreTotal     float64           `json:"score_total"`
	ScoreBreakdown scoring.Breakdown `gorm:"serializer:json" json:"score_breakdown"`
	Status         string            `json:"status"` // new|queued

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
