package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
	assetrepo "tubeplan/pkg/asset/repository"
	assetRepoImp "tubeplan/pkg/asset/repositoryImp"
	chrepo "tubeplan/pkg/channel/repository"
	chRepoImp "tubeplan/pkg/channel/repositoryImp"
	chsvc "tubeplan/pkg/channel/service"
	chServiceImp "tubeplan/pkg/channel/serviceImp"
	exprepo "tubeplan/pkg/experiment/repository"
	expRepoImp "tubeplan/pkg/experiment/repositoryImp"
	idearepo "tubeplan/pkg/idea/repository"
	ideaRepoImp "tubeplan/pkg/idea/repositoryImp"
	"tubeplan/pkg/logger"
	metricrepo "tubeplan/pkg/metric/repository"
	metricRepoImp "tubeplan/pkg/metric/repositoryImp"
	"tubeplan/pkg/metrics"
	refRepoImp "tubeplan/pkg/reference/repositoryImp"
	refsvc "tubeplan/pkg/reference/service"
	refServiceImp "tubeplan/pkg/reference/serviceImp"
	"tubeplan/pkg/scoring"
	"tubeplan/pkg/workflow/service"
	"tubeplan/pkg/youtube"
)

type WorkflowSvc struct {
	db      *gorm.DB
	search  youtube.Searcher
	weights scoring.Weights
	log     *logger.Logger
	m       *metrics.Metrics
	now     func() time.Time
	channel chsvc.ChannelService
}

type Option func(*WorkflowSvc)

// WithClock overrides time.Now for snapshot and experiment dates.
func WithClock(now func() time.Time) Option {
	return func(s *WorkflowSvc) { s.now = now }
}

func New(db *gorm.DB, search youtube.Searcher, w scoring.Weights, log *logger.Logger, m *metrics.Metrics, opts ...Option) *WorkflowSvc {
	if search == nil {
		search = youtube.NewStub()
	}
	s := &WorkflowSvc{db: db, search: search, weights: w, log: log, m: m, now: time.Now,
		channel: chServiceImp.New(db, log)}
	for _, o := range opts {
		o(s)
	}
	return s
}

var _ service.WorkflowService = (*WorkflowSvc)(nil)

// repos are bound to one transaction.
type repos struct {
	channel     chrepo.ChannelRepository
	ideas       idearepo.IdeaRepository
	assets      assetrepo.AssetRepository
	snapshots   metricrepo.MetricRepository
	experiments exprepo.ExperimentRepository
	refs        refsvc.ReferenceService
}

func bind(tx *gorm.DB) repos {
	return repos{
		channel:     chRepoImp.New(tx),
		ideas:       ideaRepoImp.New(tx),
		assets:      assetRepoImp.New(tx),
		snapshots:   metricRepoImp.New(tx),
		experiments: expRepoImp.New(tx),
		refs:        refServiceImp.New(refRepoImp.New(tx), nil, 0),
	}
}

func (r repos) requireChannel() (*entities.ChannelConfig, error) {
	ch, err := r.channel.Latest()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("load channel: %w", err)
	}
	return ch, nil
}

// run executes fn in one transaction and records the outcome.
func (s *WorkflowSvc) run(ctx context.Context, name string, fn func(r repos, log *logger.Logger) error) (string, error) {
	runID := uuid.NewString()
	log := s.log.With("workflow", name, "run_id", runID)
	start := time.Now()
	log.Info("workflow started")

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bind(tx), log)
	})
	s.m.ObserveWorkflow(name, start, err)
	if err != nil {
		log.Warn("workflow failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return runID, err
	}
	log.Info("workflow finished", "duration_ms", time.Since(start).Milliseconds())
	return runID, nil
}

func orDefault(v, def, max int, name string) (int, error) {
	switch {
	case v == 0:
		return def, nil
	case v < 0 || v > max:
		return 0, apierr.Validation("%s must be 1..%d, got %d", name, max, v)
	}
	return v, nil
}

func (s *WorkflowSvc) Refresh(ctx context.Context, count int) (*service.RefreshResult, error) {
	count, err := orDefault(count, service.DefaultCount, 500, "count")
	if err != nil {
		return nil, err
	}
	research := s.research(ctx, s.log)
	var res *service.RefreshResult
	runID, err := s.run(ctx, "refresh", func(r repos, log *logger.Logger) error {
		var err error
		res, err = s.refresh(r, log, count, research)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.RunID = runID
	s.m.AddIdeas(res.Created)
	return res, nil
}

func (s *WorkflowSvc) Package(ctx context.Context, top int) (*service.PackageResult, error) {
	top, err := orDefault(top, service.DefaultTop, 50, "top")
	if err != nil {
		return nil, err
	}
	var res *service.PackageResult
	runID, err := s.run(ctx, "package", func(r repos, log *logger.Logger) error {
		var err error
		res, err = s.pkg(r, log, top)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.RunID = runID
	s.m.AddAssets(res.Created)
	return res, nil
}

func (s *WorkflowSvc) Ingest(ctx context.Context, days int) (*service.IngestResult, error) {
	days, err := orDefault(days, service.DefaultDays, 365, "days")
	if err != nil {
		return nil, err
	}
	var res *service.IngestResult
	runID, err := s.run(ctx, "ingest", func(r repos, log *logger.Logger) error {
		var err error
		res, err = s.ingest(r, log, days)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.RunID = runID
	s.m.AddSnapshots(res.Created)
	return res, nil
}

func (s *WorkflowSvc) Diagnose(ctx context.Context) (*service.DiagnoseResult, error) {
	var res *service.DiagnoseResult
	runID, err := s.run(ctx, "diagnose", func(r repos, log *logger.Logger) error {
		var err error
		res, err = s.diagnose(r, log)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.RunID = runID
	s.m.AddExperiments(len(res.Created))
	return res, nil
}

// Weekly runs refresh, package and diagnose in one transaction.
func (s *WorkflowSvc) Weekly(ctx context.Context, count, top int) (*service.WeeklyResult, error) {
	count, err := orDefault(count, service.DefaultCount, 500, "count")
	if err != nil {
		return nil, err
	}
	top, err = orDefault(top, service.DefaultTop, 50, "top")
	if err != nil {
		return nil, err
	}
	research := s.research(ctx, s.log)
	res := &service.WeeklyResult{}
	runID, err := s.run(ctx, "weekly", func(r repos, log *logger.Logger) error {
		var err error
		if res.Backlog, err = s.refresh(r, log, count, research); err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		if res.Packages, err = s.pkg(r, log, top); err != nil {
			return fmt.Errorf("package: %w", err)
		}
		if res.Diagnosis, err = s.diagnose(r, log); err != nil {
			return fmt.Errorf("diagnose: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.RunID = runID
	res.Backlog.RunID, res.Packages.RunID, res.Diagnosis.RunID = runID, runID, runID
	s.m.AddIdeas(res.Backlog.Created)
	s.m.AddAssets(res.Packages.Created)
	s.m.AddExperiments(len(res.Diagnosis.Created))
	return res, nil
}

func (s *WorkflowSvc) Run(ctx context.Context, goal string, args service.RunArgs) (any, error) {
	switch strings.ToLower(strings.TrimSpace(goal)) {
	case service.GoalBootstrap:
		return s.channel.Configure(ctx, args.Channel)
	case service.GoalRefresh:
		return s.Refresh(ctx, args.Count)
	case service.GoalPackage:
		return s.Package(ctx, args.Top)
	case service.GoalIngest:
		return s.Ingest(ctx, args.Days)
	case service.GoalDiagnose:
		return s.Diagnose(ctx)
	case service.GoalWeekly:
		return s.Weekly(ctx, args.Count, args.Top)
	}
	return nil, apierr.Validation("unknown goal %q", goal)
}

func (s *WorkflowSvc) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
