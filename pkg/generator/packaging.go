package generator

import (
	"fmt"

	"tubeplan/entities"
	"tubeplan/pkg/workflow/types"
)

func Package(ch *entities.ChannelConfig, idea *entities.VideoIdea) types.PackagingOutput {
	topic := topicOf(idea)
	viewer := viewerOf(ch)

	titles := []string{
		idea.OneLiner,
		fmt.Sprintf("Stop Doing This With %s", topic),
		fmt.Sprintf("%s: The Only Guide %s Need", topic, capitalize(viewer)),
		fmt.Sprintf("I Fixed My %s In 7 Days (Here's How)", topic),
		fmt.Sprintf("%s For %s, Without The Fluff", topic, capitalize(viewer)),
	}
	thumbs := []string{
		fmt.Sprintf("Split screen: wrong vs right %s, big red X on the left, 2-word text \"STOP THIS\".", topic),
		fmt.Sprintf("Close-up reaction face next to the %s result, 3-word text naming the outcome.", topic),
		fmt.Sprintf("Bold number (\"7 DAYS\") over a clean %s shot, high contrast background.", topic),
	}
	return types.PackagingOutput{
		Titles:            titles,
		ThumbnailConcepts: thumbs,
		Rationale: fmt.Sprintf(
			"Titles lead with the %s problem %s already feel and promise a concrete fix; thumbnails show one clear contrast so the click is earned in under a second. Discovery: %s.",
			topic, viewer, idea.Discovery),
	}
}
