package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
	"tubeplan/pkg/scoring"
	"tubeplan/pkg/youtube"
)

func channel() *entities.ChannelConfig {
	return &entities.ChannelConfig{
		ChannelName:    "Bean Lab",
		Niche:          "Home espresso",
		TargetViewer:   "new home baristas",
		ChannelPromise: "cafe drinks at home without guesswork",
		ToneVoice:      "calm",
		Pillars:        []string{"Dialing in", "Milk", "Gear"},
	}
}

func TestIdeasCountAndStatus(t *testing.T) {
	ideas, err := Ideas(channel(), 7, scoring.DefaultWeights())
	require.NoError(t, err)
	require.Len(t, ideas, 7)
	for _, idea := range ideas {
		assert.Equal(t, entities.IdeaStatusNew, idea.Status)
		assert.NotEmpty(t, idea.OneLiner)
	}
}

func TestIdeasCyclePillarsAndDiscovery(t *testing.T) {
	ideas, err := Ideas(channel(), 6, scoring.DefaultWeights())
	require.NoError(t, err)

	wantPillars := []string{"Dialing in", "Milk", "Gear", "Dialing in", "Milk", "Gear"}
	wantDiscovery := []string{"search", "trend", "hybrid", "search", "trend", "hybrid"}
	for i, idea := range ideas {
		assert.Equal(t, wantPillars[i], idea.Pillar)
		assert.Equal(t, wantDiscovery[i], idea.Discovery)
		wantFit := 4
		if i%3 == 0 {
			wantFit = 5
		}
		assert.Equal(t, wantFit, idea.ScoreBreakdown.Ratings.ChannelFit)
	}
}

func TestIdeasScoreMatchesBreakdown(t *testing.T) {
	ideas, err := Ideas(channel(), 10, scoring.DefaultWeights())
	require.NoError(t, err)

	first := ideas[0]
	assert.Equal(t, scoring.Ratings{
		PainIntensity: 4, SearchIntent: 2, TrendLeverage: 3,
		ClickPotential: 2, ProductionComplexity: 1, ChannelFit: 5,
	}, first.ScoreBreakdown.Ratings)
	assert.InDelta(t, 21.4, first.ScoreTotal, 1e-9)

	for i, idea := range ideas {
		want, err := scoring.Score(idea.ScoreBreakdown.Ratings, scoring.DefaultWeights())
		require.NoError(t, err)
		assert.InDelta(t, want.Total, idea.ScoreTotal, 1e-9, "idea %d", i)
		assert.Equal(t, idea.ScoreBreakdown.Ratings.ProductionComplexity, idea.Complexity)
		assert.Equal(t, idea.ScoreBreakdown.Ratings.ClickPotential, idea.ClickPotential)
	}
}

func TestIdeasAreDeterministic(t *testing.T) {
	a, err := Ideas(channel(), 12, scoring.DefaultWeights())
	require.NoError(t, err)
	b, err := Ideas(channel(), 12, scoring.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIdeasWithoutPillarsUseNiche(t *testing.T) {
	ch := channel()
	ch.Pillars = nil
	ideas, err := Ideas(ch, 3, scoring.DefaultWeights())
	require.NoError(t, err)
	for _, idea := range ideas {
		assert.Equal(t, "Home espresso", idea.Pillar)
		assert.Equal(t, 5, idea.ScoreBreakdown.Ratings.ChannelFit)
	}

	ch.Niche = ""
	ideas, err = Ideas(ch, 1, scoring.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, "General", ideas[0].Pillar)
}

func TestIdeasRejectsBadInput(t *testing.T) {
	_, err := Ideas(channel(), 0, scoring.DefaultWeights())
	assert.True(t, errors.Is(err, apierr.ErrValidation))

	w := scoring.DefaultWeights()
	w.ChannelFit = 0
	_, err = Ideas(channel(), 1, w)
	assert.True(t, errors.Is(err, scoring.ErrInvalidWeight))
}

func TestRatingsStayInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		require.NoError(t, RatingsFor(i, i%4).Validate(), "index %d", i)
	}
}

type fixedSearcher struct {
	out []youtube.Video
	err error
}

func (f fixedSearcher) Search(ctx context.Context, q string, n int) ([]youtube.Video, error) {
	return f.out, f.err
}

func TestResearchFallsBackWhenSearchFails(t *testing.T) {
	out := Research(context.Background(), channel(), fixedSearcher{err: errors.New("timeout")}, nil)
	require.Len(t, out.CompetitorNotes, 1)
	assert.Contains(t, out.CompetitorNotes[0], "Home espresso")
	assert.Len(t, out.TrendNotes, 3)
	require.Len(t, out.TopicClusters, 3)
	assert.Equal(t, "Milk", out.TopicClusters[1].Pillar)
	assert.Contains(t, out.TopicClusters[1].Keywords, "milk for beginners")
}

func TestResearchUsesHitsAndReferences(t *testing.T) {
	hits := make([]youtube.Video, 7)
	for i := range hits {
		hits[i] = youtube.Video{ID: "v", Title: "Video", Channel: "Rival", PublishedAt: "2024-01-01"}
	}
	refs := []entities.ReferenceDoc{
		{Title: "Grind guide", SourceURL: "https://example.com/grind"},
		{Title: "Notes"},
		{Title: "Three"},
		{Title: "Four"},
	}
	out := Research(context.Background(), channel(), fixedSearcher{out: hits}, refs)
	require.Len(t, out.CompetitorNotes, 8)
	assert.Equal(t, "Video - Rival (2024-01-01)", out.CompetitorNotes[0])
	assert.Equal(t, "Reference: Grind guide (https://example.com/grind)", out.CompetitorNotes[5])
	assert.Equal(t, "Reference: Notes", out.CompetitorNotes[6])
}

func TestAssetTemplates(t *testing.T) {
	ch := channel()
	ideas, err := Ideas(ch, 1, scoring.DefaultWeights())
	require.NoError(t, err)
	idea := &ideas[0]

	pkg := Package(ch, idea)
	assert.Len(t, pkg.Titles, 5)
	assert.Equal(t, idea.OneLiner, pkg.Titles[0])
	assert.Len(t, pkg.ThumbnailConcepts, 3)
	assert.NotEmpty(t, pkg.Rationale)

	script := Script(ch, idea, pkg.Titles[0])
	assert.Len(t, script.HookOptions, 3)
	assert.Contains(t, script.OutlineMD, "# "+pkg.Titles[0])
	assert.Contains(t, script.ScriptMD, "## Hook")
	assert.NotEmpty(t, script.PatternBreaks)

	pub := Publish(ch, idea, pkg, script)
	assert.Equal(t, "0:00 Hook", pub.Chapters[0])
	assert.Contains(t, pub.DescriptionMD, "0:00 Hook")
	assert.Contains(t, pub.DescriptionMD, "Bean Lab")
	assert.Contains(t, pub.ShortsPlanMD, script.HookOptions[0])
	assert.NotEmpty(t, pub.CommunityPostMD)
	assert.NotEmpty(t, pub.PinnedCommentMD)
	assert.NotEmpty(t, pub.EndscreenPlanMD)

	assert.Equal(t, pub, Publish(ch, idea, pkg, script))
}
