// Package testutil provides shared helpers for handler tests: an
// in-memory database with the full schema, a router wired the same way
// as main, and signed tokens for each role.
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"madrasati/config"
	"madrasati/db"
	"madrasati/routes"
)

const testSecret = "test-secret"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	config.ConfigInstance = &config.Config{
		JWTSecret: testSecret,
		UploadDir: t.TempDir(),
	}

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection keeps the in-memory database alive for the test
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewRouter builds the application router around the given database
func NewRouter(conn *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("db", conn)
		c.Next()
	})
	routes.SetupRoutes(router)
	return router
}

// Token signs a JWT for the given user id and role
func Token(t *testing.T, userID, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

// AdminToken signs a token with the admin role
func AdminToken(t *testing.T) string {
	return Token(t, uuid.NewString(), "admin")
}

// TeacherToken signs a token with the teacher role
func TeacherToken(t *testing.T) string {
	return Token(t, uuid.NewString(), "teacher")
}

// DoRequest performs a request against the router and returns the
// recorder. A non-nil body is JSON-encoded; a non-empty token is sent
// as a bearer Authorization header.
func DoRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a response body into out
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

// InsertParent inserts a parent row directly and returns its id
func InsertParent(t *testing.T, conn *sql.DB, mobile string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO parents (id, mobile, password, name, name_ar, relationship, created_at)
		VALUES (?, ?, 'x', 'Parent', 'ولي أمر', 'أب', ?)`,
		id, mobile, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert parent: %v", err)
	}
	return id
}

// InsertStudent inserts a student row directly and returns its id
func InsertStudent(t *testing.T, conn *sql.DB, parentID string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO students (id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at)
		VALUES (?, 'Student', 'طالب', '', '', '', '', ?, ?)`,
		id, parentID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert student: %v", err)
	}
	return id
}

// InsertTeacher inserts a teacher row directly and returns its id
func InsertTeacher(t *testing.T, conn *sql.DB, mobile string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO teachers (id, mobile, password, name, name_ar, created_at)
		VALUES (?, ?, 'x', 'Teacher', 'معلم', ?)`,
		id, mobile, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert teacher: %v", err)
	}
	return id
}

// CountRows returns the row count of a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
