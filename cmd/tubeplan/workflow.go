package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tubeplan/pkg/apierr"
	"tubeplan/pkg/middleware"
	"tubeplan/pkg/workflow/service"
)

func (c *cli) backlogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "backlog", Short: "Manage the idea backlog"}
	var count int
	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Research and add scored ideas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Workflow.Refresh(cmd.Context(), count)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	refresh.Flags().IntVar(&count, "count", service.DefaultCount, "ideas to generate")
	cmd.AddCommand(refresh)
	return cmd
}

func (c *cli) packageCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "package", Short: "Turn top ideas into video packages"}
	var top int
	build := &cobra.Command{
		Use:  "build",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Workflow.Package(cmd.Context(), top)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	build.Flags().IntVar(&top, "top", service.DefaultTop, "ideas to package")
	cmd.AddCommand(build)
	return cmd
}

func (c *cli) metricsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "metrics", Short: "Performance snapshots"}
	var days int
	ingest := &cobra.Command{
		Use:   "ingest",
		Short: "Record snapshots for the most recent ideas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Workflow.Ingest(cmd.Context(), days)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	ingest.Flags().IntVar(&days, "days", service.DefaultDays, "window the snapshot covers")
	cmd.AddCommand(ingest)
	return cmd
}

func (c *cli) diagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Diagnose recent snapshots and plan experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Workflow.Diagnose(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func (c *cli) weeklyCmd() *cobra.Command {
	var count, top int
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Refresh, package and diagnose in one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Workflow.Weekly(cmd.Context(), count, top)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&count, "count", service.DefaultCount, "ideas to generate")
	cmd.Flags().IntVar(&top, "top", service.DefaultTop, "ideas to package")
	return cmd
}

func (c *cli) runCmd() *cobra.Command {
	var (
		args    service.RunArgs
		channel string
	)
	cmd := &cobra.Command{
		Use:   "run <goal>",
		Short: "Run a workflow by goal name",
		ValidArgs: []string{service.GoalBootstrap, service.GoalRefresh, service.GoalPackage,
			service.GoalIngest, service.GoalDiagnose, service.GoalWeekly},
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, pos []string) error {
			if channel != "" {
				if err := json.Unmarshal([]byte(channel), &args.Channel); err != nil {
					return apierr.Validation("--channel: %v", err)
				}
				if err := middleware.NewValidator().Validate(args.Channel); err != nil {
					return apierr.Validation("%v", err)
				}
			}
			res, err := c.app.Workflow.Run(cmd.Context(), pos[0], args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&args.Count, "count", 0, "ideas to generate (0 = default)")
	cmd.Flags().IntVar(&args.Top, "top", 0, "ideas to package (0 = default)")
	cmd.Flags().IntVar(&args.Days, "days", 0, "snapshot window (0 = default)")
	cmd.Flags().StringVar(&channel, "channel", "", `profile fields as JSON for bootstrap_channel, e.g. {"channel_name":"My Channel"}`)
	return cmd
}
