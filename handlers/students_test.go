package handlers_test

import (
	"net/http"
	"testing"

	"madrasati/models"
	"madrasati/testutil"
)

func TestStudentCreateFetchRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	token := testutil.AdminToken(t)

	parentID := testutil.InsertParent(t, conn, "0501111111")

	body := map[string]interface{}{
		"name":          "Yousef Ahmed",
		"name_ar":       "يوسف أحمد",
		"grade":         "Buds Course",
		"grade_ar":      "دورة البراعم",
		"class_name":    "دورة البراعم",
		"subclass_name": "صف المصطفى",
		"parent_id":     parentID,
	}
	w := testutil.DoRequest(t, router, http.MethodPost, "/api/students", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	var created models.Student
	testutil.DecodeJSON(t, w, &created)
	if created.ID == "" || created.CreatedAt == "" {
		t.Fatal("created student missing server-assigned fields")
	}

	w = testutil.DoRequest(t, router, http.MethodGet, "/api/students/"+created.ID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch status = %d, body %s", w.Code, w.Body.String())
	}

	var fetched models.Student
	testutil.DecodeJSON(t, w, &fetched)
	if fetched != created {
		t.Errorf("round trip mismatch:\ncreated %+v\nfetched %+v", created, fetched)
	}
}

func TestCreateStudentUnknownParent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	body := map[string]interface{}{
		"name":      "Orphan",
		"name_ar":   "بدون ولي",
		"parent_id": "no-such-parent",
	}
	w := testutil.DoRequest(t, router, http.MethodPost, "/api/students", body, testutil.AdminToken(t))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if n := testutil.CountRows(t, conn, "students"); n != 0 {
		t.Errorf("students table has %d rows, want 0", n)
	}
}

func TestCreateStudentMissingFields(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	w := testutil.DoRequest(t, router, http.MethodPost, "/api/students",
		map[string]interface{}{"name": "No Arabic Name"}, testutil.AdminToken(t))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp map[string]string
	testutil.DecodeJSON(t, w, &resp)
	if resp["error"] == "" {
		t.Error("error body missing error message")
	}
}

func TestDeleteParentCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	token := testutil.AdminToken(t)

	parentID := testutil.InsertParent(t, conn, "0502222222")
	studentID := testutil.InsertStudent(t, conn, parentID)
	teacherID := testutil.InsertTeacher(t, conn, "0503333333")

	otherParent := testutil.InsertParent(t, conn, "0504444444")
	otherStudent := testutil.InsertStudent(t, conn, otherParent)

	if _, err := conn.Exec(`
		INSERT INTO grades (id, student_id, teacher_id, subject, subject_ar, score, max_score, date, created_at)
		VALUES ('g1', ?, ?, 'Math', 'رياضيات', 9, 10, '2026-01-10', '2026-01-10')`, studentID, teacherID); err != nil {
		t.Fatalf("insert grade: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO attendance (id, student_id, teacher_id, date, status, notes, created_at)
		VALUES ('a1', ?, ?, '2026-01-10', 'present', '', '2026-01-10')`, studentID, teacherID); err != nil {
		t.Fatalf("insert attendance: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO evaluation_forms (id, name, name_ar, description, is_active, created_at)
		VALUES ('f1', 'Weekly', 'أسبوعي', '', 1, '2026-01-10')`); err != nil {
		t.Fatalf("insert form: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO evaluation_questions (id, form_id, question, question_ar, answer_type, display_order, created_at)
		VALUES ('q1', 'f1', 'Q', 'س', 'single_choice', 1, '2026-01-10')`); err != nil {
		t.Fatalf("insert question: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO answer_options (id, question_id, option_text, option_text_ar, option_value, display_order, created_at)
		VALUES ('o1', 'q1', 'Good', 'جيد', 3, 1, '2026-01-10')`); err != nil {
		t.Fatalf("insert option: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO student_evaluations (id, student_id, form_id, teacher_id, evaluation_date, notes, created_at)
		VALUES ('e1', ?, 'f1', ?, '2026-01-10', '', '2026-01-10')`, studentID, teacherID); err != nil {
		t.Fatalf("insert evaluation: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO evaluation_answers (id, evaluation_id, question_id, option_id, created_at)
		VALUES ('ans1', 'e1', 'q1', 'o1', '2026-01-10')`); err != nil {
		t.Fatalf("insert answer: %v", err)
	}

	w := testutil.DoRequest(t, router, http.MethodDelete, "/api/parents/"+parentID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", w.Code, w.Body.String())
	}

	// everything hanging off the parent's students is gone, to full depth
	for table, want := range map[string]int{
		"students":            1, // the other parent's student survives
		"grades":              0,
		"attendance":          0,
		"student_evaluations": 0,
		"evaluation_answers":  0,
	} {
		if n := testutil.CountRows(t, conn, table); n != want {
			t.Errorf("%s has %d rows after cascade, want %d", table, n, want)
		}
	}

	// the untouched student is still fetchable
	w = testutil.DoRequest(t, router, http.MethodGet, "/api/students/"+otherStudent, nil, token)
	if w.Code != http.StatusOK {
		t.Errorf("unrelated student gone after cascade, status = %d", w.Code)
	}
}

func TestDeleteStudentNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	w := testutil.DoRequest(t, router, http.MethodDelete, "/api/students/missing", nil, testutil.AdminToken(t))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
