package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin inserts the default admin account if it does not exist yet.
// Keyed on username, so it is safe to run on every boot.
func SeedAdmin(db *sql.DB) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM admins WHERE username = ?)`, "admin").Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admins (id, username, password, name, name_ar, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), "admin", string(hash), "Administrator", "المدير", time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	return nil
}

// SeedDemoData inserts a small demo dataset for a fresh install. It only
// runs when the parents table is empty; callers gate it behind the
// --seed-demo-data flag so a wiped database stays wiped on restart.
func SeedDemoData(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM parents`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count parents: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	pw := string(hash)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	parent1 := uuid.NewString()
	parent2 := uuid.NewString()
	for _, p := range []struct {
		id, mobile, name, nameAr, relationship string
	}{
		{parent1, "0501000001", "Ahmed Hassan", "أحمد حسن", "أب"},
		{parent2, "0501000002", "Mona Khaled", "منى خالد", "أم"},
	} {
		if _, err := tx.Exec(`
			INSERT INTO parents (id, mobile, password, name, name_ar, relationship, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.id, p.mobile, pw, p.name, p.nameAr, p.relationship, now); err != nil {
			return fmt.Errorf("failed to seed parent: %w", err)
		}
	}

	teacherID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO teachers (id, mobile, password, name, name_ar, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		teacherID, "0502000001", pw, "Omar Saleh", "عمر صالح", now); err != nil {
		return fmt.Errorf("failed to seed teacher: %w", err)
	}

	for _, s := range []struct {
		name, nameAr, grade, gradeAr, className, subclass, parentID string
	}{
		{"Yousef Ahmed", "يوسف أحمد", "Buds Course", "دورة البراعم", "دورة البراعم", "صف المصطفى", parent1},
		{"Sara Ahmed", "سارة أحمد", "Cubs Course", "دورة الأشبال", "دورة الأشبال", "صف النور", parent1},
		{"Lina Mona", "لينا منى", "Buds Course", "دورة البراعم", "", "صف المصطفى", parent2},
	} {
		if _, err := tx.Exec(`
			INSERT INTO students (id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), s.name, s.nameAr, s.grade, s.gradeAr, s.className, s.subclass, s.parentID, now); err != nil {
			return fmt.Errorf("failed to seed student: %w", err)
		}
	}

	for i, sl := range []struct{ title, titleAr string }{
		{"Welcome", "أهلاً وسهلاً"},
		{"Open Day", "اليوم المفتوح"},
		{"Quran Competition", "مسابقة القرآن"},
	} {
		if _, err := tx.Exec(`
			INSERT INTO slideshow_images (id, image_url, title, title_ar, display_order, is_active, created_at)
			VALUES (?, ?, ?, ?, ?, 1, ?)`,
			uuid.NewString(), fmt.Sprintf("/uploads/demo-slide-%d.jpg", i+1), sl.title, sl.titleAr, i+1, now); err != nil {
			return fmt.Errorf("failed to seed slide: %w", err)
		}
	}

	for _, ev := range []struct{ title, titleAr, date, typ string }{
		{"Term Start", "بداية الفصل", now, "current"},
		{"Parents Meeting", "اجتماع أولياء الأمور", now, "upcoming"},
		{"Sports Day", "اليوم الرياضي", now, "previous"},
	} {
		if _, err := tx.Exec(`
			INSERT INTO events (id, title, title_ar, description, description_ar, date, type, created_at)
			VALUES (?, ?, ?, '', '', ?, ?, ?)`,
			uuid.NewString(), ev.title, ev.titleAr, ev.date, ev.typ, now); err != nil {
			return fmt.Errorf("failed to seed event: %w", err)
		}
	}

	for _, an := range []struct{ title, titleAr string }{
		{"School reopens Sunday", "تفتح المدرسة أبوابها يوم الأحد"},
		{"New evaluation forms available", "نماذج التقييم الجديدة متاحة"},
	} {
		if _, err := tx.Exec(`
			INSERT INTO announcements (id, title, title_ar, content, content_ar, teacher_id, created_at)
			VALUES (?, ?, ?, '', '', NULL, ?)`,
			uuid.NewString(), an.title, an.titleAr, now); err != nil {
			return fmt.Errorf("failed to seed announcement: %w", err)
		}
	}

	formID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO evaluation_forms (id, name, name_ar, description, is_active, created_at)
		VALUES (?, ?, ?, ?, 1, ?)`,
		formID, "Weekly Behavior", "التقييم الأسبوعي", "Weekly behavior and participation review", now); err != nil {
		return fmt.Errorf("failed to seed evaluation form: %w", err)
	}

	questions := []struct{ q, qAr string }{
		{"Participation in class", "المشاركة في الصف"},
		{"Homework completion", "إنجاز الواجبات"},
		{"Behavior with classmates", "السلوك مع الزملاء"},
	}
	options := []struct {
		text, textAr string
		value        int
	}{
		{"Excellent", "ممتاز", 4},
		{"Good", "جيد", 3},
		{"Fair", "مقبول", 2},
		{"Needs improvement", "يحتاج تحسين", 1},
	}
	for qi, q := range questions {
		questionID := uuid.NewString()
		if _, err := tx.Exec(`
			INSERT INTO evaluation_questions (id, form_id, question, question_ar, answer_type, display_order, created_at)
			VALUES (?, ?, ?, ?, 'single_choice', ?, ?)`,
			questionID, formID, q.q, q.qAr, qi+1, now); err != nil {
			return fmt.Errorf("failed to seed question: %w", err)
		}
		for oi, o := range options {
			if _, err := tx.Exec(`
				INSERT INTO answer_options (id, question_id, option_text, option_text_ar, option_value, display_order, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), questionID, o.text, o.textAr, o.value, oi+1, now); err != nil {
				return fmt.Errorf("failed to seed answer option: %w", err)
			}
		}
	}

	return tx.Commit()
}
