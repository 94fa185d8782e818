package handlers_test

import (
	"database/sql"
	"net/http"
	"testing"

	"madrasati/stats"
	"madrasati/testutil"
)

func insertGrade(t *testing.T, conn *sql.DB, id, studentID string, score, maxScore float64) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO grades (id, student_id, teacher_id, subject, subject_ar, score, max_score, date, created_at)
		VALUES (?, ?, NULL, 'Math', 'رياضيات', ?, ?, '2026-01-10', '2026-01-10')`,
		id, studentID, score, maxScore)
	if err != nil {
		t.Fatalf("insert grade: %v", err)
	}
}

func insertAttendance(t *testing.T, conn *sql.DB, id, studentID, date, status string) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO attendance (id, student_id, teacher_id, date, status, notes, created_at)
		VALUES (?, ?, NULL, ?, ?, '', '2026-01-10')`,
		id, studentID, date, status)
	if err != nil {
		t.Fatalf("insert attendance: %v", err)
	}
}

type gradeStatsResponse struct {
	Students []stats.StudentAverage `json:"students"`
	Top      []stats.StudentAverage `json:"top"`
}

func TestGradeStatsEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	parentID := testutil.InsertParent(t, conn, "0501111111")
	graded := testutil.InsertStudent(t, conn, parentID)
	ungraded := testutil.InsertStudent(t, conn, parentID)

	insertGrade(t, conn, "g1", graded, 92, 100)
	insertGrade(t, conn, "g2", graded, 45, 50)
	insertGrade(t, conn, "g3", ungraded, 10, 0) // zero max, unusable

	w := testutil.DoRequest(t, router, http.MethodGet, "/api/stats/grades", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp gradeStatsResponse
	testutil.DecodeJSON(t, w, &resp)

	if len(resp.Students) != 1 {
		t.Fatalf("ranked %d students, want 1 (ungraded student excluded)", len(resp.Students))
	}
	if resp.Students[0].Student.ID != graded {
		t.Errorf("ranked student = %s, want %s", resp.Students[0].Student.ID, graded)
	}
	if resp.Students[0].Average != 91.0 {
		t.Errorf("average = %v, want 91.0", resp.Students[0].Average)
	}
	if len(resp.Top) != 1 {
		t.Errorf("top list has %d entries, want 1", len(resp.Top))
	}
}

type attendanceStatsResponse struct {
	Students []stats.AttendanceRate `json:"students"`
	Top      []stats.AttendanceRate `json:"top"`
}

func TestAttendanceStatsEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	parentID := testutil.InsertParent(t, conn, "0501111111")
	tracked := testutil.InsertStudent(t, conn, parentID)
	untracked := testutil.InsertStudent(t, conn, parentID)

	insertAttendance(t, conn, "a1", tracked, "2026-02-01", "present")
	insertAttendance(t, conn, "a2", tracked, "2026-02-02", "absent")
	insertAttendance(t, conn, "a3", tracked, "2026-02-03", "present")
	insertAttendance(t, conn, "a4", tracked, "2026-02-04", "late")

	w := testutil.DoRequest(t, router, http.MethodGet, "/api/stats/attendance", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp attendanceStatsResponse
	testutil.DecodeJSON(t, w, &resp)

	// both students present: the one without records appears at rate 0,
	// the asymmetry with the grades ranking
	if len(resp.Students) != 2 {
		t.Fatalf("rated %d students, want 2", len(resp.Students))
	}
	if resp.Students[0].Student.ID != tracked || resp.Students[0].Rate != 50.0 {
		t.Errorf("first = %s at %v, want %s at 50.0", resp.Students[0].Student.ID, resp.Students[0].Rate, tracked)
	}
	if resp.Students[1].Student.ID != untracked || resp.Students[1].Rate != 0 {
		t.Errorf("second = %s at %v, want %s at 0", resp.Students[1].Student.ID, resp.Students[1].Rate, untracked)
	}
}

func TestCourseStatsEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	parentID := testutil.InsertParent(t, conn, "0501111111")

	mkStudent := func(id, gradeAr string) {
		t.Helper()
		_, err := conn.Exec(`
			INSERT INTO students (id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at)
			VALUES (?, 'S', 'ط', 'Course', ?, '', '', ?, '2026-01-01')`, id, gradeAr, parentID)
		if err != nil {
			t.Fatalf("insert student: %v", err)
		}
	}
	mkStudent("s1", "دورة البراعم")
	mkStudent("s2", "دورة البراعم")
	mkStudent("s3", "دورة الأشبال")

	insertGrade(t, conn, "g1", "s1", 90, 100)
	insertGrade(t, conn, "g2", "s2", 70, 100)
	insertGrade(t, conn, "g3", "s3", 50, 100)

	w := testutil.DoRequest(t, router, http.MethodGet, "/api/stats/courses", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Courses []stats.CourseAverage `json:"courses"`
	}
	testutil.DecodeJSON(t, w, &resp)
	if len(resp.Courses) != 2 {
		t.Fatalf("got %d courses, want 2", len(resp.Courses))
	}

	byName := map[string]stats.CourseAverage{}
	for _, course := range resp.Courses {
		byName[course.NameAr] = course
	}
	if buds := byName["دورة البراعم"]; buds.Average != 80.0 || buds.StudentCount != 2 {
		t.Errorf("buds course = %v over %d, want 80.0 over 2", buds.Average, buds.StudentCount)
	}
	if cubs := byName["دورة الأشبال"]; cubs.Average != 50.0 || cubs.StudentCount != 1 {
		t.Errorf("cubs course = %v over %d, want 50.0 over 1", cubs.Average, cubs.StudentCount)
	}
}

func TestStatsRequireAdmin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	w := testutil.DoRequest(t, router, http.MethodGet, "/api/stats/overview", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", w.Code)
	}

	w = testutil.DoRequest(t, router, http.MethodGet, "/api/stats/overview", nil, testutil.TeacherToken(t))
	if w.Code != http.StatusForbidden {
		t.Errorf("teacher status = %d, want 403", w.Code)
	}

	w = testutil.DoRequest(t, router, http.MethodGet, "/api/stats/overview", nil, testutil.AdminToken(t))
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
}
