package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return conn
}

func count(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("second CreateSchema: %v", err)
	}
}

func TestSeedAdminIdempotentByUsername(t *testing.T) {
	conn := openTestDB(t)

	if err := SeedAdmin(conn); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedAdmin(conn); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n := count(t, conn, "admins"); n != 1 {
		t.Errorf("admins has %d rows, want 1", n)
	}
}

func TestSeedDemoDataOnlyOnEmptyParents(t *testing.T) {
	conn := openTestDB(t)

	if err := SeedDemoData(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	parents := count(t, conn, "parents")
	students := count(t, conn, "students")
	if parents == 0 || students == 0 {
		t.Fatalf("demo seed inserted %d parents, %d students", parents, students)
	}

	// a populated parents table blocks a second seed
	if err := SeedDemoData(conn); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n := count(t, conn, "parents"); n != parents {
		t.Errorf("second seed grew parents from %d to %d", parents, n)
	}

	// demo students exercise the cascade path
	if _, err := conn.Exec(`DELETE FROM parents`); err != nil {
		t.Fatalf("delete parents: %v", err)
	}
	if n := count(t, conn, "students"); n != 0 {
		t.Errorf("students has %d rows after deleting all parents, want 0", n)
	}
}

func TestForeignKeyViolationRejected(t *testing.T) {
	conn := openTestDB(t)

	_, err := conn.Exec(`
		INSERT INTO students (id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at)
		VALUES ('s1', 'S', 'ط', '', '', '', '', 'no-such-parent', '2026-01-01')`)
	if err == nil {
		t.Fatal("insert with dangling parent_id succeeded, want constraint error")
	}
}
