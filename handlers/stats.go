package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"madrasati/stats"
)

func fetchStudentInfos(db *sql.DB) ([]stats.StudentInfo, error) {
	rows, err := db.Query(`
		SELECT id, name, name_ar, grade, grade_ar, class_name, subclass_name
		FROM students ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []stats.StudentInfo{}
	for rows.Next() {
		var s stats.StudentInfo
		if err := rows.Scan(&s.ID, &s.Name, &s.NameAr, &s.Grade, &s.GradeAr, &s.ClassName, &s.SubclassName); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, nil
}

func fetchGradeRecords(db *sql.DB) ([]stats.GradeRecord, error) {
	rows, err := db.Query(`SELECT student_id, score, max_score FROM grades`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := []stats.GradeRecord{}
	for rows.Next() {
		var g stats.GradeRecord
		if err := rows.Scan(&g.StudentID, &g.Score, &g.MaxScore); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, nil
}

func fetchAttendanceRecords(db *sql.DB) ([]stats.AttendanceRecord, error) {
	rows, err := db.Query(`SELECT student_id, status FROM attendance`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []stats.AttendanceRecord{}
	for rows.Next() {
		var r stats.AttendanceRecord
		if err := rows.Scan(&r.StudentID, &r.Status); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// fetchCourses derives the course list from the distinct Arabic grade
// labels carrying the course prefix.
func fetchCourses(db *sql.DB) ([]stats.CourseAverage, error) {
	rows, err := db.Query(`
		SELECT DISTINCT grade, grade_ar FROM students
		WHERE grade_ar LIKE 'دورة %' ORDER BY grade_ar`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []stats.CourseAverage{}
	for rows.Next() {
		var name, nameAr string
		if err := rows.Scan(&name, &nameAr); err != nil {
			return nil, err
		}
		courses = append(courses, stats.CourseAverage{Name: name, NameAr: nameAr})
	}
	return courses, nil
}

// GetGradeStatsHandler returns per-student grade averages, ranked, plus
// the top ten. Students without usable grades are absent.
func GetGradeStatsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	students, err := fetchStudentInfos(db)
	if err != nil {
		log.Printf("Error querying students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	grades, err := fetchGradeRecords(db)
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	averages := stats.StudentAverages(students, grades)
	c.JSON(http.StatusOK, gin.H{
		"students": stats.RankByAverage(averages),
		"top":      stats.TopAverages(averages, 10),
	})
}

// GetAttendanceStatsHandler returns per-student attendance rates, ranked,
// plus the top ten. Students without records appear with rate 0.
func GetAttendanceStatsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	students, err := fetchStudentInfos(db)
	if err != nil {
		log.Printf("Error querying students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	records, err := fetchAttendanceRecords(db)
	if err != nil {
		log.Printf("Error querying attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rates := stats.AttendanceRates(students, records)
	c.JSON(http.StatusOK, gin.H{
		"students": stats.RankByRate(rates),
		"top":      stats.TopRates(rates, 10),
	})
}

// GetCourseStatsHandler returns the average grade percentage per course.
// An optional ?course= query narrows the result to courses whose Arabic
// name contains the given text.
func GetCourseStatsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	students, err := fetchStudentInfos(db)
	if err != nil {
		log.Printf("Error querying students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	grades, err := fetchGradeRecords(db)
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	courses, err := fetchCourses(db)
	if err != nil {
		log.Printf("Error querying courses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if filter := c.Query("course"); filter != "" {
		filtered := courses[:0]
		for _, course := range courses {
			if strings.Contains(course.NameAr, filter) {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	averages := stats.StudentAverages(students, grades)
	c.JSON(http.StatusOK, gin.H{"courses": stats.CourseAverages(courses, students, averages)})
}

// GetOverviewStatsHandler returns dashboard counts and the top-ten
// leaderboards in one response.
func GetOverviewStatsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	counts := gin.H{}
	for name, query := range map[string]string{
		"students": `SELECT COUNT(*) FROM students`,
		"parents":  `SELECT COUNT(*) FROM parents`,
		"teachers": `SELECT COUNT(*) FROM teachers`,
		"grades":   `SELECT COUNT(*) FROM grades`,
	} {
		var n int
		if err := db.QueryRow(query).Scan(&n); err != nil {
			log.Printf("Error counting %s: %v", name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		counts[name] = n
	}

	students, err := fetchStudentInfos(db)
	if err != nil {
		log.Printf("Error querying students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	grades, err := fetchGradeRecords(db)
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	records, err := fetchAttendanceRecords(db)
	if err != nil {
		log.Printf("Error querying attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	averages := stats.StudentAverages(students, grades)
	rates := stats.AttendanceRates(students, records)

	c.JSON(http.StatusOK, gin.H{
		"counts":         counts,
		"top_averages":   stats.TopAverages(averages, 10),
		"top_attendance": stats.TopRates(rates, 10),
	})
}
