// Package generator expands a channel profile into ideas and text assets.
// Every function is a pure template expansion over its inputs.
package generator

import (
	"strings"

	"tubeplan/entities"
)

func viewerOf(ch *entities.ChannelConfig) string {
	if v := strings.TrimSpace(ch.TargetViewer); v != "" {
		return v
	}
	return "viewers"
}

func nicheOf(ch *entities.ChannelConfig) string {
	if v := strings.TrimSpace(ch.Niche); v != "" {
		return v
	}
	return "General"
}

func toneOf(ch *entities.ChannelConfig) string {
	if v := strings.TrimSpace(ch.ToneVoice); v != "" {
		return v
	}
	return "friendly and direct"
}

func promiseOf(ch *entities.ChannelConfig) string {
	if v := strings.TrimSpace(ch.ChannelPromise); v != "" {
		return v
	}
	return "practical videos you can act on the same day"
}

func nameOf(ch *entities.ChannelConfig) string {
	if v := strings.TrimSpace(ch.ChannelName); v != "" {
		return v
	}
	return "the channel"
}

// pillarsOf returns the configured pillars, or the niche alone when none are set.
func pillarsOf(ch *entities.ChannelConfig) []string {
	out := make([]string, 0, len(ch.Pillars))
	for _, p := range ch.Pillars {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, nicheOf(ch))
	}
	return out
}

func topicOf(idea *entities.VideoIdea) string {
	if idea.Pillar != "" {
		return idea.Pillar
	}
	return "this topic"
}
