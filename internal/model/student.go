package model

// Student 学生表 — 对应 students
// 自然键 student_no（学号）
type Student struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	StudentNo string  `gorm:"column:student_no;not null;uniqueIndex:uq_students_student_no" json:"student_no"`
	Name      string  `gorm:"not null" json:"name"`
	EngName   string  `gorm:"column:eng_name" json:"eng_name"`
	Gender    string  `json:"gender"`
	IDHash    *string `gorm:"column:id_hash" json:"id_hash"`
	UID       int     `gorm:"column:uid" json:"uid"`
	UID2      string  `gorm:"column:uid2" json:"uid2"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
