package models

// CourseOption is one selectable course in a term's catalog.
type CourseOption struct {
	Code  string `db:"course_code" json:"code"`
	Title string `db:"course_title" json:"title"`
}
