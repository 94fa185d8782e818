package handlers_test

import (
	"net/http"
	"testing"

	"madrasati/testutil"
)

func TestParentLoginFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	w := testutil.DoRequest(t, router, http.MethodPost, "/api/parents", map[string]interface{}{
		"mobile":       "0509999999",
		"password":     "secret123",
		"name":         "Ahmed",
		"name_ar":      "أحمد",
		"relationship": "أب",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create parent status = %d, body %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(t, router, http.MethodPost, "/api/login/parent", map[string]string{
		"mobile":   "0509999999",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID     string `json:"id"`
			Mobile string `json:"mobile"`
		} `json:"user"`
	}
	testutil.DecodeJSON(t, w, &resp)
	if resp.Token == "" {
		t.Error("login response missing token")
	}
	if resp.User.Mobile != "0509999999" {
		t.Errorf("login user mobile = %q", resp.User.Mobile)
	}

	// the issued token works against a protected route
	w = testutil.DoRequest(t, router, http.MethodGet, "/api/parents/"+resp.User.ID, nil, resp.Token)
	if w.Code != http.StatusOK {
		t.Errorf("token rejected on protected route: %d", w.Code)
	}
}

func TestParentLoginWrongPassword(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	w := testutil.DoRequest(t, router, http.MethodPost, "/api/parents", map[string]interface{}{
		"mobile":   "0509999999",
		"password": "secret123",
		"name":     "Ahmed",
		"name_ar":  "أحمد",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create parent status = %d", w.Code)
	}

	w = testutil.DoRequest(t, router, http.MethodPost, "/api/login/parent", map[string]string{
		"mobile":   "0509999999",
		"password": "wrong",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestProtectedRouteRejectsAnonymous(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	w := testutil.DoRequest(t, router, http.MethodGet, "/api/students", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	// mutations on admin resources refuse teacher tokens
	w = testutil.DoRequest(t, router, http.MethodPost, "/api/teachers", map[string]interface{}{
		"mobile": "0501", "password": "x", "name": "T", "name_ar": "م",
	}, testutil.TeacherToken(t))
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
