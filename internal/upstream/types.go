package upstream

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ── 学期快照原始结构 ──
// 字段名保留校务 API 的原文键名；「學期編班」在班级层与学生层重名是上游既有行为

// Snapshot 校务 API 的学期快照（/semester-data 响应中 students 一节）
type Snapshot struct {
	Year      int             `json:"學年"`
	Term      int             `json:"學期"`
	StartDate string          `json:"學期開始日期"`
	EndDate   string          `json:"學期結束日期"`
	OpenDate  string          `json:"開學日"`
	CloseDate string          `json:"結業日"`
	UpdatedAt string          `json:"更新時間"`
	Classes   []SnapshotClass `json:"學期編班"`
	Staff     []SnapshotStaff `json:"學期教職員"`
}

// SnapshotClass 快照中的单个班级
type SnapshotClass struct {
	Grade    int               `json:"年級"`
	Name     string            `json:"班名"`
	Seq      int               `json:"班序"`
	Homeroom []SnapshotTeacher `json:"導師"`
	Students []SnapshotStudent `json:"學期編班"`
}

// SnapshotTeacher 班级导师条目
type SnapshotTeacher struct {
	UID    int     `json:"UID"`
	UID2   string  `json:"UID2"`
	Name   string  `json:"姓名"`
	IDHash *string `json:"身分證編碼"`
}

// SnapshotStudent 班内学生条目
type SnapshotStudent struct {
	StudentNo string  `json:"學號"`
	Name      string  `json:"姓名"`
	EngName   string  `json:"英文姓名"`
	Gender    string  `json:"性別"`
	IDHash    *string `json:"身分證編碼"`
	UID       int     `json:"UID"`
	UID2      string  `json:"UID2"`
	SeatNo    int     `json:"座號"`
}

// SnapshotStaff 教职员名册条目（任课教师）
type SnapshotStaff struct {
	UID      int               `json:"UID"`
	UID2     string            `json:"UID2"`
	Name     string            `json:"姓名"`
	IDHash   *string           `json:"身分證編碼"`
	Office   string            `json:"處室"`
	Title    string            `json:"職稱"`
	Subjects []SnapshotSubject `json:"任教科目"`
}

// SnapshotSubject 名册中的任课条目
type SnapshotSubject struct {
	Grade    int    `json:"年級"`
	ClassSeq int    `json:"班序"`
	Subject  string `json:"科目"`
	Hours    int    `json:"時數"`
}

// envelope /semester-data 响应外层
type envelope struct {
	Students Snapshot `json:"students"`
}

// ── 学期成绩原始结构 ──
//
// 成绩端点的键名不稳定：同一部署可能回传原文键（座號/學號/姓名/成績）
// 或已预先英文化的键（seat_no/student_no/name/scores）。
// 统一在此边界用别名表吸收，而不是让转换逻辑到处写 A-or-B 取值。

var scoreFieldAliases = map[string][]string{
	"seat_no":    {"座號", "seat_no"},
	"student_no": {"學號", "student_no"},
	"name":       {"姓名", "name"},
	"scores":     {"成績", "scores"},
}

// ScoreValue 单科分数
// 上游偶尔以字符串回传数字；无法解析的值按 0 处理而非使整笔请求失败
type ScoreValue float64

// UnmarshalJSON 兼容数值与字符串两种分数形态
func (v *ScoreValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*v = 0
		return nil
	}
	*v = ScoreValue(f)
	return nil
}

// ScoreEntry 单个学生的学期成绩（已别名归一）
// Categories 为两层嵌套：成绩分类（如 語文）→ 科目 → 分数
type ScoreEntry struct {
	SeatNo     int
	StudentNo  string
	Name       string
	Categories map[string]map[string]ScoreValue
}

// UnmarshalJSON 按别名表归一字段名
func (e *ScoreEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if msg, ok := pickAlias(raw, "seat_no"); ok {
		var n json.Number
		if err := json.Unmarshal(msg, &n); err == nil {
			if i, err := strconv.Atoi(n.String()); err == nil {
				e.SeatNo = i
			}
		}
	}
	if msg, ok := pickAlias(raw, "student_no"); ok {
		if err := json.Unmarshal(msg, &e.StudentNo); err != nil {
			return err
		}
	}
	if msg, ok := pickAlias(raw, "name"); ok {
		if err := json.Unmarshal(msg, &e.Name); err != nil {
			return err
		}
	}
	if msg, ok := pickAlias(raw, "scores"); ok {
		if err := json.Unmarshal(msg, &e.Categories); err != nil {
			return err
		}
	}

	return nil
}

// pickAlias 依别名表取第一个出现的键
func pickAlias(raw map[string]json.RawMessage, field string) (json.RawMessage, bool) {
	for _, key := range scoreFieldAliases[field] {
		if msg, ok := raw[key]; ok {
			return msg, true
		}
	}
	return nil, false
}
