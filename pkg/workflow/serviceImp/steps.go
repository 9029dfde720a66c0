package serviceImp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"tubeplan/entities"
	"tubeplan/pkg/diagnosis"
	"tubeplan/pkg/generator"
	"tubeplan/pkg/logger"
	"tubeplan/pkg/workflow/service"
	"tubeplan/pkg/workflow/types"
	"tubeplan/pkg/youtube"
)

const researchRefs = 3

// research reads the profile and references on the plain connection so the
// search call never runs inside a write transaction. It never fails.
func (s *WorkflowSvc) research(ctx context.Context, log *logger.Logger) types.ResearchOutput {
	r := bind(s.db.WithContext(ctx))
	ch, err := r.requireChannel()
	if err != nil {
		return types.ResearchOutput{}
	}
	query := strings.TrimSpace(ch.Niche + " " + strings.Join(ch.Pillars, " "))
	refs, err := r.refs.Related(query, researchRefs)
	if err != nil {
		log.Warn("reference lookup failed", "error", err)
		refs = nil
	}
	return generator.Research(ctx, ch, youtube.Safe(s.search, log), refs)
}

func (s *WorkflowSvc) refresh(r repos, log *logger.Logger, count int, research types.ResearchOutput) (*service.RefreshResult, error) {
	ch, err := r.requireChannel()
	if err != nil {
		return nil, err
	}

	ideas, err := generator.Ideas(ch, count, s.weights)
	if err != nil {
		return nil, err
	}
	if err := r.ideas.BulkCreate(ideas); err != nil {
		return nil, fmt.Errorf("store ideas: %w", err)
	}
	log.Info("ideas created", "channel_name", ch.ChannelName, "count", len(ideas))
	return &service.RefreshResult{Created: len(ideas), Ideas: ideas, Research: research}, nil
}

func (s *WorkflowSvc) pkg(r repos, log *logger.Logger, top int) (*service.PackageResult, error) {
	ch, err := r.requireChannel()
	if err != nil {
		return nil, err
	}
	ideas, err := r.ideas.TopNew(top)
	if err != nil {
		return nil, fmt.Errorf("select ideas: %w", err)
	}

	assets := make([]entities.VideoAsset, 0, len(ideas))
	ids := make([]uint, 0, len(ideas))
	for i := range ideas {
		idea := &ideas[i]
		pk := generator.Package(ch, idea)
		sc := generator.Script(ch, idea, pk.Titles[0])
		pub := generator.Publish(ch, idea, pk, sc)

		a := assetFrom(idea.IdeaID, pk, sc, pub)
		if err := r.assets.Create(&a); err != nil {
			return nil, fmt.Errorf("store asset for idea %d: %w", idea.IdeaID, err)
		}
		assets = append(assets, a)
		ids = append(ids, idea.IdeaID)
		log.Debug("idea packaged", "idea_id", idea.IdeaID, "asset_id", a.AssetID)
	}
	if err := r.ideas.MarkQueued(ids); err != nil {
		return nil, fmt.Errorf("queue ideas: %w", err)
	}
	log.Info("packages built", "count", len(assets))
	return &service.PackageResult{Created: len(assets), Assets: assets}, nil
}

func assetFrom(ideaID uint, pk types.PackagingOutput, sc types.ScriptingOutput, pub types.PublishingOutput) entities.VideoAsset {
	return entities.VideoAsset{
		IdeaID:            ideaID,
		Titles:            pk.Titles,
		ThumbnailConcepts: pk.ThumbnailConcepts,
		OutlineMD:         sc.OutlineMD,
		ScriptMD:          sc.ScriptMD,
		DescriptionMD:     pub.DescriptionMD,
		Chapters:          pub.Chapters,
		EndscreenPlanMD:   pub.EndscreenPlanMD,
		PinnedCommentMD:   pub.PinnedCommentMD,
		CommunityPostMD:   pub.CommunityPostMD,
		ShortsPlanMD:      pub.ShortsPlanMD,
	}
}

// StubSnapshot synthesizes metrics for one idea from its id.
func StubSnapshot(ideaID uint, days int) entities.MetricSnapshot {
	seed := int64(ideaID)
	if seed == 0 {
		seed = 1
	}
	impressions := 500 + seed*120
	ctr := round(0.03+float64(seed%5)*0.01, 3)
	avd := float64(90 + (seed%4)*20)
	avp := round(0.35+float64(seed%3)*0.08, 2)
	subs := int(seed % 7)
	id := ideaID
	return entities.MetricSnapshot{
		IdeaID:            &id,
		Impressions:       &impressions,
		CTR:               &ctr,
		Views:             int64(float64(impressions) * ctr),
		AvgViewDuration:   &avd,
		AvgViewPercentage: &avp,
		SubsGained:        &subs,
		Notes:             map[string]any{"source": "stub", "days": days},
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func (s *WorkflowSvc) ingest(r repos, log *logger.Logger, days int) (*service.IngestResult, error) {
	if _, err := r.requireChannel(); err != nil {
		return nil, err
	}
	ideas, err := r.ideas.Recent(service.IngestIdeas)
	if err != nil {
		return nil, fmt.Errorf("recent ideas: %w", err)
	}
	day := s.today()
	snaps := make([]entities.MetricSnapshot, 0, len(ideas))
	for _, idea := range ideas {
		snap := StubSnapshot(idea.IdeaID, days)
		snap.SnapshotDate = day
		snaps = append(snaps, snap)
	}
	if err := r.snapshots.BulkCreate(snaps); err != nil {
		return nil, fmt.Errorf("store snapshots: %w", err)
	}
	log.Info("metric snapshots stored", "count", len(snaps), "days", days)
	return &service.IngestResult{Created: len(snaps), Source: "stub", Snapshots: snaps}, nil
}

func (s *WorkflowSvc) diagnose(r repos, log *logger.Logger) (*service.DiagnoseResult, error) {
	if _, err := r.requireChannel(); err != nil {
		return nil, err
	}
	snaps, err := r.snapshots.Recent(service.DiagnoseSnapshots)
	if err != nil {
		return nil, fmt.Errorf("recent snapshots: %w", err)
	}

	day := s.today()
	out := types.AnalyticsOutput{Diagnoses: make([]types.VideoDiagnosis, 0, len(snaps))}
	results := make([]diagnosis.Result, 0, len(snaps))
	exps := make([]entities.Experiment, 0, len(snaps))
	for _, snap := range snaps {
		res := diagnosis.Classify(diagnosis.FromSnapshot(snap))
		results = append(results, res)
		out.Diagnoses = append(out.Diagnoses, types.VideoDiagnosis{
			SnapshotID:     snap.SnapshotID,
			YouTubeVideoID: snap.YouTubeVideoID,
			IdeaID:         snap.IdeaID,
			Issue:          res.Issue,
			Reasoning:      res.Reasoning,
			Experiment:     res.Experiment,
		})
		exps = append(exps, entities.Experiment{
			IdeaID:     snap.IdeaID,
			Name:       experimentName(snap.IdeaID),
			Hypothesis: res.Reasoning,
			Change:     res.Experiment,
			StartDate:  day,
			Status:     entities.ExperimentStatusPlanned,
		})
	}
	out.TopIssues, out.Experiments = diagnosis.Aggregate(results)

	if err := r.experiments.BulkCreate(exps); err != nil {
		return nil, fmt.Errorf("store experiments: %w", err)
	}
	log.Info("experiments suggested", "count", len(exps), "top_issues", out.TopIssues)
	return &service.DiagnoseResult{AnalyticsOutput: out, Created: exps}, nil
}

func experimentName(ideaID *uint) string {
	if ideaID == nil || *ideaID == 0 {
		return "Experiment for idea unknown"
	}
	return fmt.Sprintf("Experiment for idea %d", *ideaID)
}
