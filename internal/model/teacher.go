package model

// Teacher 教师表 — 对应 teachers
// 自然键 (uid, uid2)；id_hash（身分证编码）缺失时存 NULL 而非空字符串
// office/title 来自教职员名册，仅由名册同步写入
type Teacher struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	UID    int     `gorm:"column:uid;uniqueIndex:uq_teachers_uid_uid2" json:"uid"`
	UID2   string  `gorm:"column:uid2;uniqueIndex:uq_teachers_uid_uid2" json:"uid2"`
	Name   string  `gorm:"not null" json:"name"`
	IDHash *string `gorm:"column:id_hash" json:"id_hash"`
	Office *string `gorm:"column:office" json:"office"`
	Title  *string `gorm:"column:title" json:"title"`
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }
