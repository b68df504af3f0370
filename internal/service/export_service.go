package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
)

// ── export errors ──

var ErrExportGenerateFail = errors.New("failed to generate Excel file")

const (
	leaderboardSheet = "Leaderboard"
	submissionsSheet = "Submissions"
)

// ExportService admin spreadsheet exports
//
// The workbook is returned as a buffer; the handler sets download headers.
//   - sheet "Leaderboard": every ambassador ranked by points
//   - sheet "Submissions": one row per (ambassador, task)
type ExportService interface {
	ExportOverview(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	submissions SubmissionService
	logger      *zap.Logger
	now         func() time.Time
}

// NewExportService creates an ExportService
func NewExportService(submissions SubmissionService, logger *zap.Logger) ExportService {
	return &exportService{submissions: submissions, logger: logger, now: time.Now}
}

func (s *exportService) ExportOverview(ctx context.Context) (*bytes.Buffer, string, error) {
	overview, err := s.submissions.Overview(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(leaderboardSheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")
	f.NewSheet(submissionsSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ── leaderboard ──
	ranked := make([]dto.OverviewEntry, len(overview))
	copy(ranked, overview)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPoints > ranked[j].TotalPoints
	})

	writeHeader(f, leaderboardSheet, headerStyle, "Rank", "Name", "Email", "College", "Points", "Completed tasks")
	for i, e := range ranked {
		row := i + 2
		f.SetCellValue(leaderboardSheet, cell("A", row), i+1)
		f.SetCellValue(leaderboardSheet, cell("B", row), e.UserName)
		f.SetCellValue(leaderboardSheet, cell("C", row), e.Email)
		f.SetCellValue(leaderboardSheet, cell("D", row), e.CollegeName)
		f.SetCellValue(leaderboardSheet, cell("E", row), e.TotalPoints)
		f.SetCellValue(leaderboardSheet, cell("F", row), e.CompletedTasksCount)
	}
	f.SetColWidth(leaderboardSheet, "B", "D", 28)

	// ── submissions ──
	writeHeader(f, submissionsSheet, headerStyle, "Ambassador", "Email", "Task ID", "Task", "Task points", "Status", "Submission")
	row := 2
	for _, e := range overview {
		for _, t := range e.Tasks {
			payload := ""
			if t.Submission != nil {
				payload = *t.Submission
			}
			f.SetCellValue(submissionsSheet, cell("A", row), e.UserName)
			f.SetCellValue(submissionsSheet, cell("B", row), e.Email)
			f.SetCellValue(submissionsSheet, cell("C", row), t.TaskID)
			f.SetCellValue(submissionsSheet, cell("D", row), t.TaskTitle)
			f.SetCellValue(submissionsSheet, cell("E", row), t.TaskPoints)
			f.SetCellValue(submissionsSheet, cell("F", row), t.Status)
			f.SetCellValue(submissionsSheet, cell("G", row), payload)
			row++
		}
	}
	f.SetColWidth(submissionsSheet, "A", "B", 28)
	f.SetColWidth(submissionsSheet, "D", "D", 32)
	f.SetColWidth(submissionsSheet, "G", "G", 48)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("ambassador_overview_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

// ── helpers ──

func writeHeader(f *excelize.File, sheet string, style int, titles ...string) {
	for i, title := range titles {
		ref := cell(colName(i), 1)
		f.SetCellValue(sheet, ref, title)
		f.SetCellStyle(sheet, ref, ref, style)
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
