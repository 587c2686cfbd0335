package model

// TeachingAssignment 任教科目表 — 对应 teaching_assignments
// 来自教职员名册；自然键 (teacher_id, semester_id, grade, class_seq, subject)
type TeachingAssignment struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	TeacherID  uint   `gorm:"column:teacher_id;not null;uniqueIndex:uq_assignments_key" json:"-"`
	SemesterID uint   `gorm:"column:semester_id;not null;uniqueIndex:uq_assignments_key" json:"-"`
	Grade      int    `gorm:"not null;uniqueIndex:uq_assignments_key" json:"grade"`
	ClassSeq   int    `gorm:"column:class_seq;not null;uniqueIndex:uq_assignments_key" json:"class_seq"`
	Subject    string `gorm:"not null;uniqueIndex:uq_assignments_key" json:"subject"`
	Hours      int    `json:"hours"`
}

// TableName 指定表名
func (TeachingAssignment) TableName() string { return "teaching_assignments" }
