package model

// Semester 学期表 — 对应 semesters
// 自然键 (year, term)；日期字段保留校务 API 的原始字符串格式
type Semester struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Year      int    `gorm:"not null;uniqueIndex:uq_semesters_year_term" json:"year"`
	Term      int    `gorm:"not null;uniqueIndex:uq_semesters_year_term" json:"term"`
	StartDate string `gorm:"type:text" json:"start_date"`
	EndDate   string `gorm:"type:text" json:"end_date"`
	OpenDate  string `gorm:"type:text" json:"open_date"`
	CloseDate string `gorm:"type:text" json:"close_date"`
	UpdatedAt string `gorm:"type:text" json:"updated_at"`
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }
