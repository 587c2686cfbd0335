package dto

// SemesterScoreRequest 学期成绩查询请求（POST /api/scores/semester）
// 四个字段皆必填；用指针区分「未传」与零值，缺漏字段在 400 响应中逐一列出
type SemesterScoreRequest struct {
	Year     *int `json:"year"`
	Semester *int `json:"semester"`
	Grade    *int `json:"grade"`
	ClassNo  *int `json:"class_no"`
}

// MissingFields 列出未提供的必填字段名
func (r *SemesterScoreRequest) MissingFields() []string {
	var missing []string
	if r.Year == nil {
		missing = append(missing, "year")
	}
	if r.Semester == nil {
		missing = append(missing, "semester")
	}
	if r.Grade == nil {
		missing = append(missing, "grade")
	}
	if r.ClassNo == nil {
		missing = append(missing, "class_no")
	}
	return missing
}

// SubjectScore 单科成绩（分类已摊平）
type SubjectScore struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
}

// ScoreStudent 单个学生的学期成绩
type ScoreStudent struct {
	SeatNo    int            `json:"seat_no"`
	StudentNo string         `json:"student_no"`
	Name      string         `json:"name"`
	Scores    []SubjectScore `json:"scores"`
}

// SemesterScoresResponse 学期成绩响应
type SemesterScoresResponse struct {
	Students []ScoreStudent `json:"students"`
}

// CurrentSemesterResponse 当前学期（GET /api/scores/current-semester）
type CurrentSemesterResponse struct {
	Year     int `json:"year"`
	Semester int `json:"semester"`
}
