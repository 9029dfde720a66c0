package generator

import (
	"fmt"
	"strings"

	"tubeplan/entities"
	"tubeplan/pkg/workflow/types"
)

func Script(ch *entities.ChannelConfig, idea *entities.VideoIdea, title string) types.ScriptingOutput {
	topic := topicOf(idea)
	viewer := viewerOf(ch)
	if title == "" {
		title = idea.OneLiner
	}

	hooks := []string{
		fmt.Sprintf("If %s is not working for you, it is probably one step, and I'll show you which.", topic),
		fmt.Sprintf("Most %s get %s wrong in the first five minutes. Here's the fix.", viewer, topic),
		fmt.Sprintf("By the end of this video you'll have a %s plan you can start today.", topic),
	}
	sections := []string{
		"Hook and promise",
		"Why this goes wrong: " + idea.ViewerProblem,
		"The method: " + idea.Angle,
		"Worked example",
		"Common mistakes",
		"Recap and next step",
	}

	var outline strings.Builder
	fmt.Fprintf(&outline, "# %s\n\n", title)
	for i, s := range sections {
		fmt.Fprintf(&outline, "%d. %s\n", i+1, s)
	}

	var script strings.Builder
	fmt.Fprintf(&script, "# %s\n\n", title)
	fmt.Fprintf(&script, "## Hook\n%s\n\n", hooks[0])
	fmt.Fprintf(&script, "## Setup\nThis is %s, where %s. Today: %s.\n\n", nameOf(ch), promiseOf(ch), strings.ToLower(topic))
	fmt.Fprintf(&script, "## Problem\n%s\n\n", idea.ViewerProblem)
	fmt.Fprintf(&script, "## Method\nWe'll use a %s. Walk through each step on screen and show the result after each one.\n\n", strings.ToLower(idea.Angle))
	script.WriteString("## Example\nShow one real attempt from start to finish, including what went wrong.\n\n")
	script.WriteString("## Mistakes\nList the top three mistakes and the quick check for each.\n\n")
	fmt.Fprintf(&script, "## Close\nRecap in one sentence, then point to the next %s video.\n", topic)

	return types.ScriptingOutput{
		HookOptions: hooks,
		OutlineMD:   outline.String(),
		ScriptMD:    script.String(),
		PatternBreaks: []string{
			"0:45 cut to b-roll with on-screen text of the key step",
			"2:30 quick zoom and sound cue before the worked example",
			"5:00 on-screen checklist recap",
		},
	}
}
