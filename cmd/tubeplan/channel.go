package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tubeplan/database"
	"tubeplan/pkg/apierr"
	chsvc "tubeplan/pkg/channel/service"
	"tubeplan/pkg/middleware"
)

func (c *cli) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the schema and a default channel profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, created, err := database.SeedChannel(c.app.DB)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"created": created, "channel": ch})
		},
	}
}

func (c *cli) channelCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "channel", Short: "Show or edit the channel profile"}

	show := &cobra.Command{
		Use:  "show",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := c.app.Channel.Get(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ch)
		},
	}

	var (
		name, niche, viewer, promise, tone string
		pillars                            []string
		constraints                        map[string]string
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Update the profile; only flags given are changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var p chsvc.ChannelPatch
			if f.Changed("name") {
				p.ChannelName = &name
			}
			if f.Changed("niche") {
				p.Niche = &niche
			}
			if f.Changed("viewer") {
				p.TargetViewer = &viewer
			}
			if f.Changed("promise") {
				p.ChannelPromise = &promise
			}
			if f.Changed("tone") {
				p.ToneVoice = &tone
			}
			if f.Changed("pillars") {
				p.Pillars = pillars
			}
			if f.Changed("constraint") {
				m, err := parseConstraints(constraints)
				if err != nil {
					return err
				}
				p.Constraints = m
			}
			if err := middleware.NewValidator().Validate(p); err != nil {
				return apierr.Validation("%v", err)
			}
			ch, err := c.app.Channel.Configure(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ch)
		},
	}
	set.Flags().StringVar(&name, "name", "", "channel name")
	set.Flags().StringVar(&niche, "niche", "", "niche")
	set.Flags().StringVar(&viewer, "viewer", "", "target viewer")
	set.Flags().StringVar(&promise, "promise", "", "channel promise")
	set.Flags().StringVar(&tone, "tone", "", "tone of voice")
	set.Flags().StringSliceVar(&pillars, "pillars", nil, "content pillars, comma separated")
	set.Flags().StringToStringVar(&constraints, "constraint", nil, "constraint key=value, repeatable")

	cmd.AddCommand(show, set)
	return cmd
}

// parseConstraints reads each value as a YAML scalar so numbers and booleans keep their type.
func parseConstraints(in map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for k, raw := range in {
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return nil, apierr.Validation("constraint %s: %v", k, err)
		}
		out[k] = v
	}
	return out, nil
}
