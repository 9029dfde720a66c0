// Package diagnosis maps one metric snapshot to the single most likely growth bottleneck.
package diagnosis

import (
	"sort"

	"tubeplan/entities"
)

const (
	IssueTopic        = "Topic/targeting problem"
	IssuePackaging    = "Packaging problem"
	IssueIntro        = "Intro/content problem"
	IssuePromise      = "Channel promise/CTA problem"
	IssueInsufficient = "Insufficient signal"
)

// Thresholds. CTR and view percentage are fractions (0.04 == 4%).
const (
	MinImpressions       = 1000
	MinCTR               = 0.04
	MinAvgViewPercentage = 0.4
	StrongAvgViewPercent = 0.5
	MinSubsGained        = 5
)

// Metrics is the classifier input; nil means the value was not measured.
type Metrics struct {
	Impressions       *int64
	CTR               *float64
	AvgViewPercentage *float64
	SubsGained        *int
}

type Result struct {
	Issue      string `json:"issue"`
	Reasoning  string `json:"reasoning"`
	Experiment string `json:"experiment"`
}

var catalog = map[string]Result{
	IssueTopic: {
		Issue:      IssueTopic,
		Reasoning:  "Impressions are low, so the topic or its targeting is not reaching enough viewers.",
		Experiment: "Retarget the next upload at a higher-demand search phrase and name it in the first five words of the title.",
	},
	IssuePackaging: {
		Issue:      IssuePackaging,
		Reasoning:  "The video is being shown but not clicked, so the title and thumbnail are not earning the click.",
		Experiment: "Swap in a new thumbnail and title pair with a sharper curiosity gap and compare CTR over the next 48 hours.",
	},
	IssueIntro: {
		Issue:      IssueIntro,
		Reasoning:  "Viewers click but leave early, so the intro or pacing does not pay off the packaging.",
		Experiment: "Rewrite the first 30 seconds to deliver the promised outcome sooner and add a pattern break before 0:45.",
	},
	IssuePromise: {
		Issue:      IssuePromise,
		Reasoning:  "Viewers watch most of the video but few subscribe, so the channel promise or call to action is unclear.",
		Experiment: "State the channel promise mid-video and close with a subscribe CTA tied to a specific next video.",
	},
	IssueInsufficient: {
		Issue:      IssueInsufficient,
		Reasoning:  "The available metrics do not isolate a single bottleneck.",
		Experiment: "Collect another week of impressions, CTR and retention before changing packaging or content.",
	},
}

// Classify applies the rules in priority order and returns the first match.
func Classify(m Metrics) Result {
	switch {
	case m.Impressions != nil && *m.Impressions < MinImpressions:
		return catalog[IssueTopic]
	case m.Impressions != nil && m.CTR != nil && *m.Impressions >= MinImpressions && *m.CTR < MinCTR:
		return catalog[IssuePackaging]
	case m.CTR != nil && m.AvgViewPercentage != nil && *m.CTR >= MinCTR && *m.AvgViewPercentage < MinAvgViewPercentage:
		return catalog[IssueIntro]
	case m.AvgViewPercentage != nil && m.SubsGained != nil && *m.AvgViewPercentage >= StrongAvgViewPercent && *m.SubsGained < MinSubsGained:
		return catalog[IssuePromise]
	default:
		return catalog[IssueInsufficient]
	}
}

func FromSnapshot(s entities.MetricSnapshot) Metrics {
	return Metrics{
		Impressions:       s.Impressions,
		CTR:               s.CTR,
		AvgViewPercentage: s.AvgViewPercentage,
		SubsGained:        s.SubsGained,
	}
}

// Aggregate ranks issues by frequency (ties keep first-seen order) and returns the top three,
// plus every experiment suggestion in input order.
func Aggregate(results []Result) (topIssues []string, experiments []string) {
	counts := map[string]int{}
	order := []string{}
	experiments = make([]string, 0, len(results))
	for _, r := range results {
		if _, seen := counts[r.Issue]; !seen {
			order = append(order, r.Issue)
		}
		counts[r.Issue]++
		experiments = append(experiments, r.Experiment)
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 3 {
		order = order[:3]
	}
	return order, experiments
}
