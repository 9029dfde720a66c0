package types

type TopicCluster struct {
	Pillar   string   `json:"pillar"`
	Keywords []string `json:"keywords"`
	Angle    string   `json:"angle"`
}

type ResearchOutput struct {
	CompetitorNotes []string       `json:"competitor_notes"`
	TrendNotes      []string       `json:"trend_notes"`
	TopicClusters   []TopicCluster `json:"topic_clusters"`
}

type PackagingOutput struct {
	Titles            []string `json:"titles"`
	ThumbnailConcepts []string `json:"thumbnail_concepts"`
	Rationale         string   `json:"rationale"`
}

type ScriptingOutput struct {
	HookOptions   []string `json:"hook_options"`
	OutlineMD     string   `json:"outline_md"`
	ScriptMD      string   `json:"script_md"`
	PatternBreaks []string `json:"pattern_breaks"`
}

type PublishingOutput struct {
	DescriptionMD   string   `json:"description_md"`
	Chapters        []string `json:"chapters"`
	EndscreenPlanMD string   `json:"endscreen_plan_md"`
	PinnedCommentMD string   `json:"pinned_comment_md"`
	CommunityPostMD string   `json:"community_post_md"`
	ShortsPlanMD    string   `json:"shorts_plan_md"`
}

type VideoDiagnosis struct {
	SnapshotID     uint   `json:"snapshot_id"`
	YouTubeVideoID string `json:"youtube_video_id,omitempty"`
	IdeaID         *uint  `json:"idea_id"`
	Issue          string `json:"issue"`
	Reasoning      string `json:"reasoning"`
	Experiment     string `json:"experiment"`
}

type AnalyticsOutput struct {
	Diagnoses   []VideoDiagnosis `json:"diagnoses"`
	TopIssues   []string         `json:"top_issues"`
	Experiments []string         `json:"experiments"`
}
