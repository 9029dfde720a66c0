package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"tubeplan/app"
)

type opener func(ctx context.Context) (*app.App, error)

// cli holds the app opened for the running command.
type cli struct {
	open opener
	app  *app.App
}

// execute runs one command line and releases the app whether or not the command failed.
func execute(ctx context.Context, open opener, args []string, out, errOut io.Writer) error {
	c := &cli{open: open}
	defer c.close()
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
		c.app = nil
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tubeplan",
		Short:        "Plan, package and review YouTube videos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}
	root.AddCommand(
		c.initCmd(),
		c.channelCmd(),
		c.backlogCmd(),
		c.packageCmd(),
		c.metricsCmd(),
		c.diagnoseCmd(),
		c.weeklyCmd(),
		c.runCmd(),
		c.exportCmd(),
		c.referenceCmd(),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
