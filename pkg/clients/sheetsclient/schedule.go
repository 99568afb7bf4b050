package sheetsclient

import (
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/sailclub/crewboard/pkg/core/services"
)

// scheduleHeader is the column layout of a published schedule tab
var scheduleHeader = []interface{}{"Date", "Boat", "Activity", "Instructor", "Helper", "Remarks"}

// PublishSchedule writes a crew board to Google Sheets.
// Each date range gets its own tab, titled "Sat Jun 01 2024 - Sun Jun 09 2024".
// Publishing the same range again overwrites the tab's contents in place.
func (c *Client) PublishSchedule(spreadsheetID string, board *services.PublishedSchedule) error {
	tabTitle, err := scheduleTabTitle(board.From, board.To)
	if err != nil {
		return fmt.Errorf("failed to generate tab title: %w", err)
	}

	// Check if tab exists
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	tabExists := false
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == tabTitle {
			tabExists = true
			break
		}
	}

	if !tabExists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	} else {
		// Drop stale rows from a previous publish of the same range
		_, err := c.service.Spreadsheets.Values.Clear(
			spreadsheetID,
			fmt.Sprintf("%s!A:F", tabTitle),
			&sheets.ClearValuesRequest{},
		).Do()
		if err != nil {
			return fmt.Errorf("failed to clear tab: %w", err)
		}
	}

	rows := [][]interface{}{scheduleHeader}
	for _, row := range board.Rows {
		rows = append(rows, []interface{}{
			row.Date,
			row.BoatName,
			row.ActivityName,
			row.InstructorName,
			row.HelperName,
			row.Remarks,
		})
	}

	valueRange := &sheets.ValueRange{
		Values: rows,
	}

	_, err = c.service.Spreadsheets.Values.Update(
		spreadsheetID,
		fmt.Sprintf("%s!A1", tabTitle),
		valueRange,
	).ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("failed to write schedule to tab: %w", err)
	}

	return nil
}

// scheduleTabTitle creates a tab title in the format "Sat Jun 01 2024 - Sun Jun 09 2024"
func scheduleTabTitle(from, to string) (string, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return "", fmt.Errorf("invalid from date: %w", err)
	}

	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return "", fmt.Errorf("invalid to date: %w", err)
	}

	return fmt.Sprintf("%s - %s",
		start.Format("Mon Jan 02 2006"),
		end.Format("Mon Jan 02 2006"),
	), nil
}
