package handlers_test

import (
	"net/http"
	"testing"

	"madrasati/models"
	"madrasati/testutil"
)

func TestAttendanceUpsertByStudentAndDate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	token := testutil.TeacherToken(t)

	parentID := testutil.InsertParent(t, conn, "0501111111")
	studentID := testutil.InsertStudent(t, conn, parentID)

	body := map[string]interface{}{
		"student_id": studentID,
		"date":       "2026-02-01",
		"status":     "present",
	}
	w := testutil.DoRequest(t, router, http.MethodPost, "/api/attendance", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("first submission status = %d, body %s", w.Code, w.Body.String())
	}
	var first models.Attendance
	testutil.DecodeJSON(t, w, &first)

	// re-submitting for the same day updates in place
	body["status"] = "absent"
	w = testutil.DoRequest(t, router, http.MethodPost, "/api/attendance", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("second submission status = %d, body %s", w.Code, w.Body.String())
	}
	var second models.Attendance
	testutil.DecodeJSON(t, w, &second)

	if second.ID != first.ID {
		t.Errorf("upsert changed row id: %s -> %s", first.ID, second.ID)
	}
	if second.Status != "absent" {
		t.Errorf("status = %s, want absent", second.Status)
	}
	if n := testutil.CountRows(t, conn, "attendance"); n != 1 {
		t.Errorf("attendance has %d rows, want 1", n)
	}

	// a different date gets its own row
	body["date"] = "2026-02-02"
	w = testutil.DoRequest(t, router, http.MethodPost, "/api/attendance", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("new date status = %d, body %s", w.Code, w.Body.String())
	}
	if n := testutil.CountRows(t, conn, "attendance"); n != 2 {
		t.Errorf("attendance has %d rows, want 2", n)
	}
}

func TestAttendanceRejectsUnknownStatus(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	parentID := testutil.InsertParent(t, conn, "0501111111")
	studentID := testutil.InsertStudent(t, conn, parentID)

	w := testutil.DoRequest(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": studentID,
		"date":       "2026-02-01",
		"status":     "sick",
	}, testutil.TeacherToken(t))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAttendanceUnknownStudent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	w := testutil.DoRequest(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": "missing",
		"date":       "2026-02-01",
		"status":     "present",
	}, testutil.TeacherToken(t))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if n := testutil.CountRows(t, conn, "attendance"); n != 0 {
		t.Errorf("attendance has %d rows, want 0", n)
	}
}

func TestListStudentAttendance(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	token := testutil.TeacherToken(t)

	parentID := testutil.InsertParent(t, conn, "0501111111")
	studentID := testutil.InsertStudent(t, conn, parentID)

	for _, day := range []string{"2026-02-01", "2026-02-02", "2026-02-03"} {
		w := testutil.DoRequest(t, router, http.MethodPost, "/api/attendance", map[string]interface{}{
			"student_id": studentID,
			"date":       day,
			"status":     "present",
		}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("submission for %s failed: %d %s", day, w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(t, router, http.MethodGet, "/api/students/"+studentID+"/attendance", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", w.Code, w.Body.String())
	}
	var records []models.Attendance
	testutil.DecodeJSON(t, w, &records)
	if len(records) != 3 {
		t.Errorf("listed %d records, want 3", len(records))
	}
}
