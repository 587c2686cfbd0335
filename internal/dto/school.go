package dto

// ── 学生查询 ──

// StudentRow 编班学生行（GET /api/students）
type StudentRow struct {
	StudentNo string `json:"student_no"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Grade     int    `json:"grade"`
	ClassName string `json:"class_name"`
	ClassSeq  int    `json:"class_seq"`
	SeatNo    int    `json:"seat_no"`
}

// ── 班级查询 ──

// ClassBrief 班级摘要
type ClassBrief struct {
	ClassSeq  int    `json:"class_seq"`
	ClassName string `json:"class_name"`
}

// ClassesResponse 班级总览（GET /api/classes）
type ClassesResponse struct {
	Grades  []int              `json:"grades"`
	Classes map[int][]ClassBrief `json:"classes"`
}

// ── 教师查询 ──

// SubjectEntry 任课条目
type SubjectEntry struct {
	Subject string `json:"subject"`
	Hours   int    `json:"hours"`
}

// TeacherClass 教师在某个班级的任课情况
// 导师班未必有任课条目，此时 Subjects 为空列表
type TeacherClass struct {
	Grade    int            `json:"grade"`
	ClassSeq int            `json:"class_seq"`
	Subjects []SubjectEntry `json:"subjects"`
}

// TeacherRecord 合并导师与任课两个来源后的教师记录（GET /api/teachers）
type TeacherRecord struct {
	Name       string         `json:"name"`
	UID        int            `json:"uid"`
	UID2       string         `json:"uid2"`
	Office     string         `json:"office"`
	Title      string         `json:"title"`
	IsHomeroom bool           `json:"isHomeroom"`
	Classes    []TeacherClass `json:"classes"`
}

// ── 同步 ──

// SyncStatusResponse 同步状态（GET /api/sync-school/status）
type SyncStatusResponse struct {
	Synced       bool   `json:"synced"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
}
