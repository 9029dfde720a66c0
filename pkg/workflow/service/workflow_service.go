package service

import (
	"context"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
	chsvc "tubeplan/pkg/channel/service"
	"tubeplan/pkg/workflow/types"
)

const (
	DefaultCount = 30
	DefaultTop   = 3
	DefaultDays  = 14

	// IngestIdeas and DiagnoseSnapshots bound the recency windows.
	IngestIdeas       = 10
	DiagnoseSnapshots = 20
)

const (
	GoalBootstrap = "bootstrap_channel"
	GoalRefresh   = "refresh_backlog"
	GoalPackage   = "build_video_package"
	GoalIngest    = "ingest_metrics"
	GoalDiagnose  = "diagnose"
	GoalWeekly    = "weekly_run"
)

var ErrNotConfigured = apierr.ErrNotConfigured

type RefreshResult struct {
	RunID    string               `json:"run_id"`
	Created  int                  `json:"created"`
	Ideas    []entities.VideoIdea `json:"ideas"`
	Research types.ResearchOutput `json:"research"`
}

type PackageResult struct {
	RunID   string                `json:"run_id"`
	Created int                   `json:"created"`
	Assets  []entities.VideoAsset `json:"assets"`
}

type IngestResult struct {
	RunID     string                    `json:"run_id"`
	Created   int                       `json:"created"`
	Source    string                    `json:"source"`
	Snapshots []entities.MetricSnapshot `json:"snapshots"`
}

type DiagnoseResult struct {
	RunID string `json:"run_id"`
	types.AnalyticsOutput
	Created []entities.Experiment `json:"experiments_created"`
}

type WeeklyResult struct {
	RunID     string          `json:"run_id"`
	Backlog   *RefreshResult  `json:"backlog"`
	Packages  *PackageResult  `json:"packages"`
	Diagnosis *DiagnoseResult `json:"diagnosis"`
}

// RunArgs carries the optional parameters of Run. Zero values pick the defaults.
type RunArgs struct {
	Count   int
	Top     int
	Days    int
	// Channel is the profile patch for GoalBootstrap.
	Channel chsvc.ChannelPatch
}

type WorkflowService interface {
	Refresh(ctx context.Context, count int) (*RefreshResult, error)
	Package(ctx context.Context, top int) (*PackageResult, error)
	Ingest(ctx context.Context, days int) (*IngestResult, error)
	Diagnose(ctx context.Context) (*DiagnoseResult, error)
	Weekly(ctx context.Context, count, top int) (*WeeklyResult, error)
	// Run dispatches by goal name.
	Run(ctx context.Context, goal string, args RunArgs) (any, error)
}
