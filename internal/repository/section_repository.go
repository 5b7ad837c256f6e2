package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// sectionRow mirrors the sections table. Days are stored as a comma-joined
// string; the model keeps them as a slice.
type sectionRow struct {
	Term         string              `db:"term"`
	Subject      string              `db:"subject"`
	CourseCode   string              `db:"course_code"`
	CourseTitle  string              `db:"course_title"`
	Units        string              `db:"units"`
	SectionID    string              `db:"section_id"`
	MeetingType  models.MeetingType  `db:"meeting_type"`
	Days         string              `db:"days"`
	Times        string              `db:"times"`
	Location     string              `db:"location"`
	Instructor   string              `db:"instructor"`
	Availability models.Availability `db:"availability"`
	Notes        string              `db:"notes"`
}

func (row sectionRow) toModel() models.Section {
	var days []string
	if row.Days != "" {
		days = strings.Split(row.Days, ",")
	}
	return models.Section{
		CourseCode:   row.CourseCode,
		CourseTitle:  row.CourseTitle,
		Units:        row.Units,
		SectionID:    row.SectionID,
		MeetingType:  row.MeetingType,
		Days:         days,
		Times:        row.Times,
		Location:     row.Location,
		Instructor:   row.Instructor,
		Availability: row.Availability,
		Notes:        row.Notes,
	}
}

func newSectionRow(term, subject string, section models.Section) sectionRow {
	return sectionRow{
		Term:         term,
		Subject:      subject,
		CourseCode:   section.CourseCode,
		CourseTitle:  section.CourseTitle,
		Units:        section.Units,
		SectionID:    section.SectionID,
		MeetingType:  section.MeetingType,
		Days:         strings.Join(section.Days, ","),
		Times:        section.Times,
		Location:     section.Location,
		Instructor:   section.Instructor,
		Availability: section.Availability,
		Notes:        section.Notes,
	}
}

const sectionColumns = "course_code, course_title, units, section_id, meeting_type, days, times, location, instructor, availability, notes"

// SectionRepository manages persistence for catalog sections.
type SectionRepository struct {
	db *sqlx.DB
}

// NewSectionRepository constructs a SectionRepository.
func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// ListByTerm returns sections for a term, optionally restricted to course codes.
func (r *SectionRepository) ListByTerm(ctx context.Context, filter models.SectionFilter) ([]models.Section, error) {
	query := fmt.Sprintf("SELECT %s FROM sections WHERE term = $1", sectionColumns)
	args := []interface{}{filter.Term}

	if len(filter.CourseCodes) > 0 {
		placeholders := make([]string, len(filter.CourseCodes))
		for i, code := range filter.CourseCodes {
			placeholders[i] = fmt.Sprintf("$%d", len(args)+1)
			args = append(args, code)
		}
		query += " AND course_code IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY course_code, meeting_type, section_id"

	var rows []sectionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	sections := make([]models.Section, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, row.toModel())
	}
	return sections, nil
}

// ReplaceSubject swaps out every stored section for one term and subject in a
// single transaction, so readers never observe a half-refreshed subject.
func (r *SectionRepository) ReplaceSubject(ctx context.Context, term, subject string, sections []models.Section) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace subject: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE term = $1 AND subject = $2", term, subject); err != nil {
		return fmt.Errorf("clear subject %s: %w", subject, err)
	}

	const insert = `INSERT INTO sections (term, subject, course_code, course_title, units, section_id, meeting_type, days, times, location, instructor, availability, notes)
		VALUES (:term, :subject, :course_code, :course_title, :units, :section_id, :meeting_type, :days, :times, :location, :instructor, :availability, :notes)`
	for _, section := range sections {
		if _, err := tx.NamedExecContext(ctx, insert, newSectionRow(term, subject, section)); err != nil {
			return fmt.Errorf("insert section %s %s: %w", section.CourseCode, section.SectionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace subject: %w", err)
	}
	return nil
}

// ListCourses returns the distinct courses stored for a term.
func (r *SectionRepository) ListCourses(ctx context.Context, term string) ([]models.CourseOption, error) {
	const query = `SELECT DISTINCT course_code, course_title FROM sections WHERE term = $1 ORDER BY course_code`
	var courses []models.CourseOption
	if err := r.db.SelectContext(ctx, &courses, query, term); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListInstructors returns the distinct non-empty instructor names for a term.
func (r *SectionRepository) ListInstructors(ctx context.Context, term string) ([]string, error) {
	const query = `SELECT DISTINCT instructor FROM sections WHERE term = $1 AND instructor <> '' ORDER BY instructor`
	var instructors []string
	if err := r.db.SelectContext(ctx, &instructors, query, term); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

// CountByTerm reports how many sections a term currently holds.
func (r *SectionRepository) CountByTerm(ctx context.Context, term string) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sections WHERE term = $1", term); err != nil {
		return 0, fmt.Errorf("count sections: %w", err)
	}
	return total, nil
}
