package model

// Class 班级表 — 对应 classes
// 自然键 (semester_id, grade, class_seq)
// 插入后不更新：同一学期内班名/年级视为不可变（冲突时忽略）
type Class struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	SemesterID uint   `gorm:"column:semester_id;not null;uniqueIndex:uq_classes_sem_grade_seq" json:"-"`
	Grade      int    `gorm:"not null;uniqueIndex:uq_classes_sem_grade_seq" json:"grade"`
	ClassName  string `gorm:"column:class_name;not null" json:"class_name"`
	ClassSeq   int    `gorm:"column:class_seq;not null;uniqueIndex:uq_classes_sem_grade_seq" json:"class_seq"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }

// ClassTeacher 班级导师关联表 — 对应 class_teachers
// 集合语义：唯一键对，插入冲突时忽略，不带任何附加字段
type ClassTeacher struct {
	ClassID   uint `gorm:"column:class_id;primaryKey" json:"class_id"`
	TeacherID uint `gorm:"column:teacher_id;primaryKey" json:"teacher_id"`
}

// TableName 指定表名
func (ClassTeacher) TableName() string { return "class_teachers" }
