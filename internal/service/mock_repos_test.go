package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jung915st/tc-api-example/internal/model"
	"github.com/jung915st/tc-api-example/internal/repository"
	"github.com/jung915st/tc-api-example/internal/upstream"
)

// 手写 Mock：只模拟接口行为，不引入 mock 框架
// 写入类方法以自然键维护内部 map，保证和真实落库一样的幂等语义

// ── SemesterRepository ──

type mockSemesterRepo struct {
	upsertCalls int
	latest      *model.Semester
	latestErr   error
}

func (m *mockSemesterRepo) Upsert(ctx context.Context, semester *model.Semester) error {
	m.upsertCalls++
	if m.latest != nil && m.latest.Year == semester.Year && m.latest.Term == semester.Term {
		semester.ID = m.latest.ID
	} else if semester.ID == 0 {
		semester.ID = uint(m.upsertCalls)
	}
	stored := *semester
	m.latest = &stored
	return nil
}

func (m *mockSemesterRepo) GetLatest(ctx context.Context) (*model.Semester, error) {
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	if m.latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.latest, nil
}

func (m *mockSemesterRepo) GetByYearTerm(ctx context.Context, year, term int) (*model.Semester, error) {
	if m.latest != nil && m.latest.Year == year && m.latest.Term == term {
		return m.latest, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── TeacherRepository ──

type mockTeacherRepo struct {
	ids          map[teacherKey]uint
	rosterKeys   map[teacherKey]bool
	homerooms    []repository.HomeroomRow
	roster       []model.Teacher
	homeroomsErr error
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{
		ids:        make(map[teacherKey]uint),
		rosterKeys: make(map[teacherKey]bool),
	}
}

func (m *mockTeacherRepo) assign(teacher *model.Teacher) {
	k := teacherKey{uid: teacher.UID, uid2: teacher.UID2}
	if id, ok := m.ids[k]; ok {
		teacher.ID = id
		return
	}
	teacher.ID = uint(len(m.ids) + 1)
	m.ids[k] = teacher.ID
}

func (m *mockTeacherRepo) Upsert(ctx context.Context, teacher *model.Teacher) error {
	m.assign(teacher)
	return nil
}

func (m *mockTeacherRepo) UpsertRoster(ctx context.Context, teacher *model.Teacher) error {
	m.assign(teacher)
	m.rosterKeys[teacherKey{uid: teacher.UID, uid2: teacher.UID2}] = true
	return nil
}

func (m *mockTeacherRepo) ListHomeroom(ctx context.Context, semesterID uint) ([]repository.HomeroomRow, error) {
	if m.homeroomsErr != nil {
		return nil, m.homeroomsErr
	}
	return m.homerooms, nil
}

func (m *mockTeacherRepo) ListRosterMembers(ctx context.Context) ([]model.Teacher, error) {
	return m.roster, nil
}

// ── StudentRepository ──

type mockStudentRepo struct {
	ids      map[string]uint
	enrolled []repository.EnrolledRow
	listErr  error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{ids: make(map[string]uint)}
}

func (m *mockStudentRepo) Upsert(ctx context.Context, student *model.Student) error {
	if id, ok := m.ids[student.StudentNo]; ok {
		student.ID = id
		return nil
	}
	student.ID = uint(len(m.ids) + 1)
	m.ids[student.StudentNo] = student.ID
	return nil
}

func (m *mockStudentRepo) ListEnrolled(ctx context.Context, semesterID uint, grade, classSeq *int) ([]repository.EnrolledRow, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]repository.EnrolledRow, 0, len(m.enrolled))
	for _, row := range m.enrolled {
		if grade != nil && row.Grade != *grade {
			continue
		}
		if classSeq != nil && row.ClassSeq != *classSeq {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

// ── ClassRepository ──

type classNaturalKey struct {
	semesterID uint
	grade      int
	classSeq   int
}

type mockClassRepo struct {
	ids      map[classNaturalKey]uint
	names    map[classNaturalKey]string
	teachers map[[2]uint]bool
	classes  []model.Class
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{
		ids:      make(map[classNaturalKey]uint),
		names:    make(map[classNaturalKey]string),
		teachers: make(map[[2]uint]bool),
	}
}

func (m *mockClassRepo) EnsureClass(ctx context.Context, class *model.Class) error {
	k := classNaturalKey{semesterID: class.SemesterID, grade: class.Grade, classSeq: class.ClassSeq}
	if id, ok := m.ids[k]; ok {
		// 插入冲突时忽略：保留首次写入的班名
		class.ID = id
		class.ClassName = m.names[k]
		return nil
	}
	class.ID = uint(len(m.ids) + 1)
	m.ids[k] = class.ID
	m.names[k] = class.ClassName
	return nil
}

func (m *mockClassRepo) AddTeacher(ctx context.Context, classID, teacherID uint) error {
	m.teachers[[2]uint{classID, teacherID}] = true
	return nil
}

func (m *mockClassRepo) ListBySemester(ctx context.Context, semesterID uint) ([]model.Class, error) {
	return m.classes, nil
}

// ── EnrollmentRepository ──

type enrollmentKey struct {
	semesterID uint
	classID    uint
	studentID  uint
}

type seatKey struct {
	semesterID uint
	classID    uint
	seatNo     int
}

type mockEnrollmentRepo struct {
	rows  map[enrollmentKey]int
	seats map[seatKey]uint
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{
		rows:  make(map[enrollmentKey]int),
		seats: make(map[seatKey]uint),
	}
}

func (m *mockEnrollmentRepo) Upsert(ctx context.Context, enrollment *model.Enrollment) error {
	sk := seatKey{semesterID: enrollment.SemesterID, classID: enrollment.ClassID, seatNo: enrollment.SeatNo}
	if holder, ok := m.seats[sk]; ok && holder != enrollment.StudentID {
		// 模拟 uq_enrollments_seat 约束冲突
		return fmt.Errorf("UNIQUE constraint failed: enrollments.seat_no (seat %d)", enrollment.SeatNo)
	}
	m.seats[sk] = enrollment.StudentID
	m.rows[enrollmentKey{
		semesterID: enrollment.SemesterID,
		classID:    enrollment.ClassID,
		studentID:  enrollment.StudentID,
	}] = enrollment.SeatNo
	return nil
}

func (m *mockEnrollmentRepo) CountBySemester(ctx context.Context, semesterID uint) (int64, error) {
	var n int64
	for k := range m.rows {
		if k.semesterID == semesterID {
			n++
		}
	}
	return n, nil
}

// ── AssignmentRepository ──

type assignmentKey struct {
	teacherID  uint
	semesterID uint
	grade      int
	classSeq   int
	subject    string
}

type mockAssignmentRepo struct {
	rows    map[assignmentKey]int
	listing []repository.AssignmentRow
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{rows: make(map[assignmentKey]int)}
}

func (m *mockAssignmentRepo) Upsert(ctx context.Context, assignment *model.TeachingAssignment) error {
	m.rows[assignmentKey{
		teacherID:  assignment.TeacherID,
		semesterID: assignment.SemesterID,
		grade:      assignment.Grade,
		classSeq:   assignment.ClassSeq,
		subject:    assignment.Subject,
	}] = assignment.Hours
	return nil
}

func (m *mockAssignmentRepo) ListBySemester(ctx context.Context, semesterID uint) ([]repository.AssignmentRow, error) {
	return m.listing, nil
}

// ── 聚合 ──

type mockRepos struct {
	semester   *mockSemesterRepo
	teacher    *mockTeacherRepo
	student    *mockStudentRepo
	class      *mockClassRepo
	enrollment *mockEnrollmentRepo
	assignment *mockAssignmentRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		semester:   &mockSemesterRepo{},
		teacher:    newMockTeacherRepo(),
		student:    newMockStudentRepo(),
		class:      newMockClassRepo(),
		enrollment: newMockEnrollmentRepo(),
		assignment: newMockAssignmentRepo(),
	}
	repo := &repository.Repository{
		Semester:   m.semester,
		Teacher:    m.teacher,
		Student:    m.student,
		Class:      m.class,
		Enrollment: m.enrollment,
		Assignment: m.assignment,
	}
	return repo, m
}

// ── SchoolAPI ──

type mockSchoolAPI struct {
	snap     *upstream.Snapshot
	snapErr  error
	snapHits int

	scores    []upstream.ScoreEntry
	scoresErr error
	lastQuery [4]int
}

func (m *mockSchoolAPI) SemesterSnapshot(ctx context.Context) (*upstream.Snapshot, error) {
	m.snapHits++
	if m.snapErr != nil {
		return nil, m.snapErr
	}
	return m.snap, nil
}

func (m *mockSchoolAPI) SemesterScores(ctx context.Context, year, term, grade, classNo int) ([]upstream.ScoreEntry, error) {
	m.lastQuery = [4]int{year, term, grade, classNo}
	if m.scoresErr != nil {
		return nil, m.scoresErr
	}
	return m.scores, nil
}
