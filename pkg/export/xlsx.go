// Package export renders the idea backlog as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tubeplan/entities"
)

const BacklogSheet = "Backlog"

var backlogHeader = []interface{}{
	"idea_id", "pillar", "idea_one_liner", "search_or_trend",
	"complexity", "click_potential", "score_total", "status", "created_at",
}

// IdeasXLSX writes one header row plus one row per idea.
func IdeasXLSX(w io.Writer, ideas []entities.VideoIdea) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", BacklogSheet); err != nil {
		return err
	}
	if err := x.SetSheetRow(BacklogSheet, "A1", &backlogHeader); err != nil {
		return err
	}
	for i, idea := range ideas {
		row := []interface{}{
			idea.IdeaID, idea.Pillar, idea.OneLiner, idea.Discovery,
			idea.Complexity, idea.ClickPotential, idea.ScoreTotal, idea.Status,
			idea.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(BacklogSheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := x.SetPanes(BacklogSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return err
	}
	_, err := x.WriteTo(w)
	return err
}
