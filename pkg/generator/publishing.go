package generator

import (
	"fmt"
	"strings"

	"tubeplan/entities"
	"tubeplan/pkg/workflow/types"
)

func Publish(ch *entities.ChannelConfig, idea *entities.VideoIdea, pkg types.PackagingOutput, script types.ScriptingOutput) types.PublishingOutput {
	topic := topicOf(idea)
	title := idea.OneLiner
	if len(pkg.Titles) > 0 {
		title = pkg.Titles[0]
	}
	hook := ""
	if len(script.HookOptions) > 0 {
		hook = script.HookOptions[0]
	}

	chapters := []string{
		"0:00 Hook",
		"0:30 Why this goes wrong",
		"1:30 The method",
		"4:00 Worked example",
		"6:00 Common mistakes",
		"7:30 Recap",
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "%s\n\n%s\n\n", title, hook)
	fmt.Fprintf(&desc, "%s\n\n", idea.ViewerProblem)
	desc.WriteString("Chapters\n")
	for _, c := range chapters {
		desc.WriteString(c + "\n")
	}
	fmt.Fprintf(&desc, "\nSubscribe to %s for %s.\n", nameOf(ch), promiseOf(ch))

	return types.PublishingOutput{
		DescriptionMD:   desc.String(),
		Chapters:        chapters,
		EndscreenPlanMD: fmt.Sprintf("- Left: next %s video in the series\n- Right: best-performing video for %s\n- Subscribe button centered for the last 10 seconds\n", topic, viewerOf(ch)),
		PinnedCommentMD: fmt.Sprintf("Which part of %s is the hardest for you right now? I'll answer the top replies in the next video.", strings.ToLower(topic)),
		CommunityPostMD: fmt.Sprintf("New video: %s\n\nQuick poll: where are you stuck with %s?\n- Getting started\n- Staying consistent\n- Getting results", title, strings.ToLower(topic)),
		ShortsPlanMD:    fmt.Sprintf("1. 30s cut of the hook: \"%s\"\n2. 45s cut of the worked example\n3. 20s mistake callout linking back to the full video\n", hook),
	}
}
