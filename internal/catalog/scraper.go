package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// Scraper fetches and parses the published subject pages of the class
// schedule site.
type Scraper struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewScraper constructs a Scraper against the given base URL.
func NewScraper(baseURL string, timeout time.Duration, logger *zap.Logger) *Scraper {
	return &Scraper{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FetchSubject downloads and parses one subject page for a term. A page that
// does not exist (any non-200 status) yields an empty slice, since not every
// subject is offered every term. Transport failures are returned as errors.
func (s *Scraper) FetchSubject(ctx context.Context, term, subject string) ([]models.Section, error) {
	url := fmt.Sprintf("%s/%s/By_Subject/%s.html", s.baseURL, term, subject)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", subject, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch subject %s: %w", subject, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("subject page unavailable",
			zap.String("subject", subject),
			zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse subject %s: %w", subject, err)
	}

	return parseSubjectPage(doc), nil
}

func parseSubjectPage(doc *html.Node) []models.Section {
	var sections []models.Section
	for _, block := range findAll(doc, elemWithClass("div", "courseBlock")) {
		sections = append(sections, parseCourseBlock(block)...)
	}
	return sections
}

func parseCourseBlock(block *html.Node) []models.Section {
	header := findFirst(block, elemWithClass("div", "courseHeader"))
	if header == nil {
		return nil
	}
	code := nodeText(findFirst(header, elemWithClass("span", "courseCode")))
	title := nodeText(findFirst(header, elemWithClass("span", "courseTitle")))
	units := nodeText(findFirst(header, elemWithClass("span", "units")))
	if code == "" || title == "" {
		return nil
	}

	var sections []models.Section
	for _, table := range findAll(block, elemWithClass("table", "sectionTable")) {
		rows := findAll(table, elem("tr"))
		if len(rows) < 2 {
			continue
		}
		for _, row := range rows[1:] {
			if section, ok := parseSectionRow(row, code, title, units); ok {
				sections = append(sections, section)
			}
		}
	}
	return sections
}

func parseSectionRow(row *html.Node, code, title, units string) (models.Section, bool) {
	cells := findAll(row, elem("td"))
	if len(cells) < 10 {
		return models.Section{}, false
	}

	sectionID := nodeText(cells[0])
	if sectionID == "" {
		return models.Section{}, false
	}

	notes := ""
	if len(cells) > 10 {
		notes = nodeText(cells[10])
	}

	return models.Section{
		CourseCode:   code,
		CourseTitle:  title,
		Units:        units,
		SectionID:    sectionID,
		MeetingType:  meetingTypeFromNotes(nodeText(cells[4])),
		Days:         parseDayLetters(nodeText(cells[5])),
		Times:        normalizeTimeRange(nodeText(cells[6])),
		Location:     nodeText(cells[8]),
		Instructor:   nodeText(cells[9]),
		Availability: parseSeatIndicator(row),
		Notes:        notes,
	}, true
}

func meetingTypeFromNotes(notes string) models.MeetingType {
	switch {
	case strings.Contains(notes, "SEM"):
		return models.MeetingSeminar
	case strings.Contains(notes, "LAB"):
		return models.MeetingLab
	case strings.Contains(notes, "LEC"):
		return models.MeetingLecture
	case strings.Contains(notes, "ACT"):
		return models.MeetingActivity
	case strings.Contains(notes, "SUP"):
		return models.MeetingSupplemental
	default:
		return models.MeetingUnspecified
	}
}

// dayLetters maps the schedule's day abbreviations in display order. "Tu",
// "Th", "Sa" and "Su" must be matched as two-letter tokens, the rest as
// single letters.
var dayLetters = []struct {
	letter string
	day    string
}{
	{"M", "Monday"},
	{"Tu", "Tuesday"},
	{"W", "Wednesday"},
	{"Th", "Thursday"},
	{"F", "Friday"},
	{"Sa", "Saturday"},
	{"Su", "Sunday"},
}

func parseDayLetters(raw string) []string {
	var days []string
	for _, entry := range dayLetters {
		if strings.Contains(raw, entry.letter) {
			days = append(days, entry.day)
		}
	}
	return days
}

// normalizeTimeRange rewrites a raw "9-9:50AM" style range as
// "09:00AM-09:50AM". Only the end time carries a meridiem on the published
// pages; the start's is inferred from it. Values that are not a two-part
// range (e.g. "NA") pass through unchanged.
func normalizeTimeRange(raw string) string {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return raw
	}

	start := padClock(strings.TrimSpace(parts[0]))
	end := padClock(strings.TrimSpace(parts[1]))

	if !strings.HasSuffix(start, "AM") && !strings.HasSuffix(start, "PM") {
		start += inferStartMeridiem(start, end)
	}
	return start + "-" + end
}

// padClock turns "9" into "09:00" and "9:5" into "09:05", leaving any
// trailing meridiem in place.
func padClock(value string) string {
	meridiem := ""
	if strings.HasSuffix(value, "AM") || strings.HasSuffix(value, "PM") {
		meridiem = value[len(value)-2:]
		value = value[:len(value)-2]
	}

	parts := strings.Split(value, ":")
	switch len(parts) {
	case 1:
		value = pad2(parts[0]) + ":00"
	case 2:
		value = pad2(parts[0]) + ":" + pad2(parts[1])
	}
	return value + meridiem
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func inferStartMeridiem(start, end string) string {
	endClock := strings.TrimSuffix(strings.TrimSuffix(end, "AM"), "PM")

	if strings.HasSuffix(end, "AM") {
		return "AM"
	}
	if !strings.HasSuffix(end, "PM") {
		return ""
	}

	startHour, okStart := clockHour(start)
	endHour, okEnd := clockHour(endClock)
	if !okStart || !okEnd {
		return ""
	}

	switch {
	case endHour == 12 && startHour < 12:
		return "AM"
	case startHour > endHour && startHour != 12:
		return "AM"
	case startHour > endHour:
		return "PM"
	case endHour-startHour <= 5:
		return "PM"
	default:
		return ""
	}
}

func clockHour(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return hour, true
}

func parseSeatIndicator(row *html.Node) models.Availability {
	for _, img := range findAll(row, elem("img")) {
		switch attr(img, "alt") {
		case "Seats available":
			return models.SeatsAvailable
		case "Reserve Capacity":
			return models.ReserveCapacity
		}
	}
	return models.NoSeats
}

// --- minimal node helpers over golang.org/x/net/html ---

func elem(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func elemWithClass(tag, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if pred(node) {
			out = append(out, node)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return out
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if matches := findAll(n, pred); len(matches) > 0 {
		return matches[0]
	}
	return nil
}

func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
