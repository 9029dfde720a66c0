package generator

import (
	"fmt"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
	"tubeplan/pkg/scoring"
)

var oneLinerTemplates = []string{
	"The %[1]s mistake most %[2]s make, and the 10-minute fix",
	"I tested every %[1]s shortcut so %[2]s don't have to",
	"%[1]s explained for %[2]s in one sitting",
	"What nobody tells %[2]s about %[1]s",
	"A 7-day %[1]s challenge for %[2]s",
}

var problemTemplates = []string{
	"%[2]s put time into %[1]s but cannot tell which step is holding them back.",
	"%[2]s get conflicting advice about %[1]s and stall before starting.",
	"%[2]s tried %[1]s once, saw no result, and gave up too early.",
}

var angleTemplates = []string{
	"Step-by-step walkthrough",
	"Myth versus fact breakdown",
	"Before and after case study",
	"Beginner to confident roadmap",
}

var discoveryCycle = []string{
	entities.DiscoverySearch,
	entities.DiscoveryTrend,
	entities.DiscoveryHybrid,
}

// RatingsFor derives the deterministic ratings for the i-th idea.
func RatingsFor(i, pillarSlot int) scoring.Ratings {
	fit := 4
	if pillarSlot == 0 {
		fit = 5
	}
	return scoring.Ratings{
		PainIntensity:        1 + (2*i+3)%5,
		SearchIntent:         1 + (3*i+1)%5,
		TrendLeverage:        1 + (i+2)%5,
		ClickPotential:       1 + (4*i+1)%5,
		ProductionComplexity: 1 + (2*i)%5,
		ChannelFit:           fit,
	}
}

// Ideas returns exactly count scored ideas, all with status new.
func Ideas(ch *entities.ChannelConfig, count int, w scoring.Weights) ([]entities.VideoIdea, error) {
	if count <= 0 {
		return nil, apierr.Validation("count must be positive, got %d", count)
	}
	pillars := pillarsOf(ch)
	viewer := viewerOf(ch)
	tone := toneOf(ch)

	out := make([]entities.VideoIdea, 0, count)
	for i := 0; i < count; i++ {
		slot := i % len(pillars)
		pillar := pillars[slot]
		r := RatingsFor(i, slot)
		bd, err := scoring.Score(r, w)
		if err != nil {
			return nil, fmt.Errorf("score idea %d: %w", i, err)
		}
		out = append(out, entities.VideoIdea{
			Pillar:         pillar,
			OneLiner:       fmt.Sprintf(oneLinerTemplates[i%len(oneLinerTemplates)], pillar, viewer),
			ViewerProblem:  fmt.Sprintf(problemTemplates[i%len(problemTemplates)], pillar, capitalize(viewer)),
			Angle:          fmt.Sprintf("%s, %s tone", angleTemplates[i%len(angleTemplates)], tone),
			Discovery:      discoveryCycle[i%len(discoveryCycle)],
			Complexity:     r.ProductionComplexity,
			ClickPotential: r.ClickPotential,
			ScoreTotal:     bd.Total,
			ScoreBreakdown: bd,
			Status:         entities.IdeaStatusNew,
		})
	}
	return out, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []rune(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
