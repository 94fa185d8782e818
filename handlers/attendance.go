package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

func scanAttendance(rows *sql.Rows) []models.Attendance {
	records := []models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.TeacherID, &a.Date, &a.Status, &a.Notes, &a.CreatedAt); err != nil {
			log.Printf("Error scanning attendance: %v", err)
			continue
		}
		records = append(records, a)
	}
	return records
}

// SubmitAttendanceHandler records attendance for a student on a date.
// At most one row exists per (student, date): a second submission for
// the same day updates the existing row and keeps its id.
func SubmitAttendanceHandler(c *gin.Context) {
	var req models.CreateAttendanceRequest
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

	var existingID string
	err := db.QueryRow(`
		SELECT id FROM attendance WHERE student_id = ? AND date = ?`,
		req.StudentID, req.Date).Scan(&existingID)
	if err != nil && err != sql.ErrNoRows {
		log.Printf("Error querying attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if existingID != "" {
		_, err := db.Exec(`
			UPDATE attendance SET teacher_id = ?, status = ?, notes = ?
			WHERE id = ?`,
			req.TeacherID, req.Status, req.Notes, existingID)
		if err != nil {
			log.Printf("Error updating attendance: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var a models.Attendance
		if err := db.QueryRow(`
			SELECT id, student_id, teacher_id, date, status, notes, created_at
			FROM attendance WHERE id = ?`, existingID).Scan(
			&a.ID, &a.StudentID, &a.TeacherID, &a.Date, &a.Status, &a.Notes, &a.CreatedAt); err != nil {
			log.Printf("Error querying attendance: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, a)
		return
	}

	record := models.Attendance{
		ID:        utils.NewID(),
		StudentID: req.StudentID,
		TeacherID: req.TeacherID,
		Date:      req.Date,
		Status:    req.Status,
		Notes:     req.Notes,
		CreatedAt: utils.Now(),
	}

	_, err = db.Exec(`
		INSERT INTO attendance (id, student_id, teacher_id, date, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.StudentID, record.TeacherID, record.Date, record.Status, record.Notes, record.CreatedAt)
	if err != nil {
		log.Printf("Error inserting attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListAttendanceHandler lists all attendance records
func ListAttendanceHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, student_id, teacher_id, date, status, notes, created_at
		FROM attendance ORDER BY date`)
	if err != nil {
		log.Printf("Error querying attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	c.JSON(http.StatusOK, scanAttendance(rows))
}

// GetStudentAttendanceHandler lists one student's attendance records
func GetStudentAttendanceHandler(c *gin.Context) {
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
		SELECT id, student_id, teacher_id, date, status, notes, created_at
		FROM attendance WHERE student_id = ? ORDER BY date`, studentID)
	if err != nil {
		log.Printf("Error querying attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	c.JSON(http.StatusOK, scanAttendance(rows))
}

// UpdateAttendanceHandler updates an attendance record by id
func UpdateAttendanceHandler(c *gin.Context) {
	var req models.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE attendance
		SET student_id = ?, teacher_id = ?, date = ?, status = ?, notes = ?
		WHERE id = ?`,
		req.StudentID, req.TeacherID, req.Date, req.Status, req.Notes, c.Param("id"))
	if err != nil {
		log.Printf("Error updating attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
		return
	}

	var a models.Attendance
	if err := db.QueryRow(`
		SELECT id, student_id, teacher_id, date, status, notes, created_at
		FROM attendance WHERE id = ?`, c.Param("id")).Scan(
		&a.ID, &a.StudentID, &a.TeacherID, &a.Date, &a.Status, &a.Notes, &a.CreatedAt); err != nil {
		log.Printf("Error querying attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// DeleteAttendanceHandler deletes an attendance record
func DeleteAttendanceHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM attendance WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting attendance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
