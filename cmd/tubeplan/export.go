package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tubeplan/pkg/export"
	ideaRepoImp "tubeplan/pkg/idea/repositoryImp"
	refsvc "tubeplan/pkg/reference/service"
)

func (c *cli) exportCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "export", Short: "Export data to files"}
	var (
		out    string
		status string
		limit  int
	)
	ideas := &cobra.Command{
		Use:   "ideas",
		Short: "Write the backlog to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ideaRepoImp.New(c.app.DB).List(status, limit)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export.IdeasXLSX(f, list); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"file": out, "rows": len(list)})
		},
	}
	ideas.Flags().StringVar(&out, "out", "backlog.xlsx", "output file")
	ideas.Flags().StringVar(&status, "status", "", "only ideas with this status (new|queued)")
	ideas.Flags().IntVar(&limit, "limit", 500, "max rows")
	cmd.AddCommand(ideas)
	return cmd
}

func (c *cli) referenceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "reference", Short: "Reference notes used during research"}

	var title, tags, file string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a text file as a reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			doc, n, err := c.app.References.Ingest(title, tags, string(b), "")
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"doc": doc, "chunks": n})
		},
	}
	add.Flags().StringVar(&title, "title", "", "document title")
	add.Flags().StringVar(&tags, "tags", "", "comma separated tags")
	add.Flags().StringVar(&file, "file", "", "text file to ingest")
	_ = add.MarkFlagRequired("file")

	var k int
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Keyword search over reference chunks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hits, err := c.app.References.Search(args[0], k)
			if err != nil {
				return err
			}
			if hits == nil {
				hits = []refsvc.Hit{}
			}
			return printJSON(cmd.OutOrStdout(), hits)
		},
	}
	search.Flags().IntVar(&k, "k", 5, "max hits")

	cmd.AddCommand(add, search)
	return cmd
}
