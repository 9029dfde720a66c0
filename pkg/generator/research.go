package generator

import (
	"context"
	"fmt"
	"strings"

	"tubeplan/entities"
	"tubeplan/pkg/workflow/types"
	"tubeplan/pkg/youtube"
)

const (
	maxCompetitorHits = 5
	maxReferenceNotes = 3
)

// Research builds competitor notes, trend notes and one topic cluster per pillar.
// Search errors are ignored; the output falls back to templated notes.
func Research(ctx context.Context, ch *entities.ChannelConfig, s youtube.Searcher, refs []entities.ReferenceDoc) types.ResearchOutput {
	niche := nicheOf(ch)
	pillars := pillarsOf(ch)

	var notes []string
	if s != nil {
		hits, err := s.Search(ctx, niche, maxCompetitorHits)
		if err == nil {
			for i, v := range hits {
				if i == maxCompetitorHits {
					break
				}
				notes = append(notes, fmt.Sprintf("%s - %s (%s)", v.Title, v.Channel, v.PublishedAt))
			}
		}
	}
	for i, d := range refs {
		if i == maxReferenceNotes {
			break
		}
		note := "Reference: " + d.Title
		if d.SourceURL != "" {
			note += " (" + d.SourceURL + ")"
		}
		notes = append(notes, note)
	}
	if len(notes) == 0 {
		notes = append(notes, fmt.Sprintf(
			"No competitor data yet. Review the five most viewed %s videos from the last 90 days and note their title patterns.", niche))
	}

	trends := []string{
		fmt.Sprintf("Check search suggestions for \"%s\" weekly and log new phrasing.", strings.ToLower(niche)),
		fmt.Sprintf("Seasonal spikes: plan %s uploads two weeks ahead of the peak.", pillars[0]),
		fmt.Sprintf("Pair one evergreen search video with one timely video per week for %s.", viewerOf(ch)),
	}

	clusters := make([]types.TopicCluster, 0, len(pillars))
	for _, p := range pillars {
		lp := strings.ToLower(p)
		kw := []string{lp, lp + " for beginners", lp + " mistakes"}
		if ln := strings.ToLower(niche); ln != lp {
			kw = append(kw, lp+" "+ln)
		}
		clusters = append(clusters, types.TopicCluster{
			Pillar:   p,
			Keywords: kw,
			Angle:    fmt.Sprintf("Own the %s questions %s search for first.", p, viewerOf(ch)),
		})
	}

	return types.ResearchOutput{
		CompetitorNotes: notes,
		TrendNotes:      trends,
		TopicClusters:   clusters,
	}
}
