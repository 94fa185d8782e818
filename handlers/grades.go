package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

func scanGrades(rows *sql.Rows) []models.Grade {
	grades := []models.Grade{}
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.ID, &g.StudentID, &g.TeacherID, &g.Subject, &g.SubjectAr, &g.Score, &g.MaxScore, &g.Date, &g.CreatedAt); err != nil {
			log.Printf("Error scanning grade: %v", err)
			continue
		}
		grades = append(grades, g)
	}
	return grades
}

// CreateGradeHandler records a grade for a student. Score against
// max_score is deliberately not validated; the source system accepts
// percentages above 100.
func CreateGradeHandler(c *gin.Context) {
	var req models.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = ?)`, req.StudentID).Scan(&exists); err != nil {
		log.Printf("Error checking student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	grade := models.Grade{
		ID:        utils.NewID(),
		StudentID: req.StudentID,
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		SubjectAr: req.SubjectAr,
		Score:     *req.Score,
		MaxScore:  *req.MaxScore,
		Date:      req.Date,
		CreatedAt: utils.Now(),
	}

	_, err := db.Exec(`
		INSERT INTO grades (id, student_id, teacher_id, subject, subject_ar, score, max_score, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		grade.ID, grade.StudentID, grade.TeacherID, grade.Subject, grade.SubjectAr,
		grade.Score, grade.MaxScore, grade.Date, grade.CreatedAt)
	if err != nil {
		log.Printf("Error inserting grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, grade)
}

// ListGradesHandler lists all grades
func ListGradesHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, student_id, teacher_id, subject, subject_ar, score, max_score, date, created_at
		FROM grades ORDER BY created_at`)
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	c.JSON(http.StatusOK, scanGrades(rows))
}

// GetStudentGradesHandler lists one student's grades
func GetStudentGradesHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	studentID := c.Param("id")

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = ?)`, studentID).Scan(&exists); err != nil {
		log.Printf("Error checking student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	rows, err := db.Query(`
		SELECT id, student_id, teacher_id, subject, subject_ar, score, max_score, date, created_at
		FROM grades WHERE student_id = ? ORDER BY date`, studentID)
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	c.JSON(http.StatusOK, scanGrades(rows))
}

// GetGradeHandler fetches one grade by id
func GetGradeHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var g models.Grade
	err := db.QueryRow(`
		SELECT id, student_id, teacher_id, subject, subject_ar, score, max_score, date, created_at
		FROM grades WHERE id = ?`, c.Param("id")).Scan(
		&g.ID, &g.StudentID, &g.TeacherID, &g.Subject, &g.SubjectAr, &g.Score, &g.MaxScore, &g.Date, &g.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grade not found"})
		return
	} else if err != nil {
		log.Printf("Error querying grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// UpdateGradeHandler updates a grade record
func UpdateGradeHandler(c *gin.Context) {
	var req models.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE grades
		SET student_id = ?, teacher_id = ?, subject = ?, subject_ar = ?, score = ?, max_score = ?, date = ?
		WHERE id = ?`,
		req.StudentID, req.TeacherID, req.Subject, req.SubjectAr, *req.Score, *req.MaxScore, req.Date, c.Param("id"))
	if err != nil {
		log.Printf("Error updating grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grade not found"})
		return
	}

	GetGradeHandler(c)
}

// DeleteGradeHandler deletes a grade record
func DeleteGradeHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM grades WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grade not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
