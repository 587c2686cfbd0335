package model

// Enrollment 学期编班表 — 对应 enrollments
// 自然键 (semester_id, class_id, student_id)；
// 同一班级/学期内座号唯一，重复座号会触发约束冲突并中止同步事务
type Enrollment struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"-"`
	SemesterID uint `gorm:"column:semester_id;not null;uniqueIndex:uq_enrollments_key;uniqueIndex:uq_enrollments_seat" json:"-"`
	ClassID    uint `gorm:"column:class_id;not null;uniqueIndex:uq_enrollments_key;uniqueIndex:uq_enrollments_seat" json:"-"`
	StudentID  uint `gorm:"column:student_id;not null;uniqueIndex:uq_enrollments_key" json:"-"`
	SeatNo     int  `gorm:"column:seat_no;uniqueIndex:uq_enrollments_seat" json:"seat_no"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }
