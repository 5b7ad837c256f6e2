package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

var scheduleHeaders = []struct {
	label string
	width float64
}{
	{"Course", 28},
	{"Sec", 12},
	{"Type", 22},
	{"Days", 38},
	{"Time", 34},
	{"Location", 26},
	{"Instructor", 30},
}

// PDFExporter renders a chosen schedule into a printable PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a one-page PDF listing each section of the schedule.
func (e *PDFExporter) Render(termLabel string, schedule []models.RenderedSection) ([]byte, error) {
	if len(schedule) == 0 {
		return nil, fmt.Errorf("pdf requires at least one section")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, strings.ToUpper(termLabel+" schedule"), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	for _, header := range scheduleHeaders {
		pdf.CellFormat(header.width, 8, header.label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, section := range schedule {
		cells := []string{
			section.CourseCode,
			section.SectionID,
			string(section.MeetingType),
			abbreviateDays(section.Days),
			section.Times,
			section.Location,
			section.Instructor,
		}
		for i, value := range cells {
			pdf.CellFormat(scheduleHeaders[i].width, 7, value, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func abbreviateDays(days []string) string {
	if len(days) == 0 {
		return "-"
	}
	short := make([]string, 0, len(days))
	for _, day := range days {
		if len(day) > 3 {
			day = day[:3]
		}
		short = append(short, day)
	}
	return strings.Join(short, " ")
}
