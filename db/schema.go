package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS parents (
    id TEXT PRIMARY KEY,
    mobile TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    name TEXT NOT NULL,
    name_ar TEXT NOT NULL,
    relationship TEXT,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS teachers (
    id TEXT PRIMARY KEY,
    mobile TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    name TEXT NOT NULL,
    name_ar TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS admins (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    name TEXT NOT NULL,
    name_ar TEXT NOT NULL,
    created_at TEXT NOT NULL
);

-- Students
CREATE TABLE IF NOT EXISTS students (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_ar TEXT NOT NULL,
    grade TEXT,
    grade_ar TEXT,
    class_name TEXT,
    subclass_name TEXT,
    parent_id TEXT NOT NULL REFERENCES parents(id) ON DELETE CASCADE,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_students_parent_id ON students(parent_id);

-- Grades
CREATE TABLE IF NOT EXISTS grades (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
    teacher_id TEXT REFERENCES teachers(id) ON DELETE SET NULL,
    subject TEXT NOT NULL,
    subject_ar TEXT,
    score REAL NOT NULL,
    max_score REAL NOT NULL,
    date TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id);

-- Attendance. Uniqueness of (student_id, date) is enforced by the
-- handlers (upsert), not by the schema.
CREATE TABLE IF NOT EXISTS attendance (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
    teacher_id TEXT REFERENCES teachers(id) ON DELETE SET NULL,
    date TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('present', 'absent', 'late', 'excused')),
    notes TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attendance_student_id ON attendance(student_id);
CREATE INDEX IF NOT EXISTS idx_attendance_student_date ON attendance(student_id, date);

-- Announcements
CREATE TABLE IF NOT EXISTS announcements (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL,
    content TEXT,
    content_ar TEXT,
    teacher_id TEXT REFERENCES teachers(id) ON DELETE SET NULL,
    created_at TEXT NOT NULL
);

-- Events. The type column is a free string by design.
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL,
    description TEXT,
    description_ar TEXT,
    date TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT 'upcoming',
    created_at TEXT NOT NULL
);

-- Slideshow
CREATE TABLE IF NOT EXISTS slideshow_images (
    id TEXT PRIMARY KEY,
    image_url TEXT NOT NULL,
    title TEXT,
    title_ar TEXT,
    display_order INTEGER NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL
);

-- Evaluations
CREATE TABLE IF NOT EXISTS evaluation_forms (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_ar TEXT NOT NULL,
    description TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluation_questions (
    id TEXT PRIMARY KEY,
    form_id TEXT NOT NULL REFERENCES evaluation_forms(id) ON DELETE CASCADE,
    question TEXT NOT NULL,
    question_ar TEXT NOT NULL,
    answer_type TEXT NOT NULL,
    display_order INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluation_questions_form_id ON evaluation_questions(form_id);

CREATE TABLE IF NOT EXISTS answer_options (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES evaluation_questions(id) ON DELETE CASCADE,
    option_text TEXT NOT NULL,
    option_text_ar TEXT NOT NULL,
    option_value INTEGER NOT NULL,
    display_order INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_answer_options_question_id ON answer_options(question_id);

CREATE TABLE IF NOT EXISTS student_evaluations (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
    form_id TEXT NOT NULL REFERENCES evaluation_forms(id) ON DELETE CASCADE,
    teacher_id TEXT REFERENCES teachers(id) ON DELETE SET NULL,
    evaluation_date TEXT NOT NULL,
    notes TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_student_evaluations_student_id ON student_evaluations(student_id);

CREATE TABLE IF NOT EXISTS evaluation_answers (
    id TEXT PRIMARY KEY,
    evaluation_id TEXT NOT NULL REFERENCES student_evaluations(id) ON DELETE CASCADE,
    question_id TEXT NOT NULL REFERENCES evaluation_questions(id) ON DELETE CASCADE,
    option_id TEXT NOT NULL REFERENCES answer_options(id) ON DELETE CASCADE,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluation_answers_evaluation_id ON evaluation_answers(evaluation_id);
`
