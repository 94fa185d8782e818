package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

func scanStudents(rows *sql.Rows) []models.Student {
	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.NameAr, &s.Grade, &s.GradeAr, &s.ClassName, &s.SubclassName, &s.ParentID, &s.CreatedAt); err != nil {
			log.Printf("Error scanning student: %v", err)
			continue
		}
		students = append(students, s)
	}
	return students
}

// CreateStudentHandler creates a student under an existing parent
func CreateStudentHandler(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM parents WHERE id = ?)`, req.ParentID).Scan(&exists); err != nil {
		log.Printf("Error checking parent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
		return
	}

	student := models.Student{
		ID:           utils.NewID(),
		Name:         req.Name,
		NameAr:       req.NameAr,
		Grade:        req.Grade,
		GradeAr:      req.GradeAr,
		ClassName:    req.ClassName,
		SubclassName: req.SubclassName,
		ParentID:     req.ParentID,
		CreatedAt:    utils.Now(),
	}

	_, err := db.Exec(`
		INSERT INTO students (id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		student.ID, student.Name, student.NameAr, student.Grade, student.GradeAr,
		student.ClassName, student.SubclassName, student.ParentID, student.CreatedAt)
	if err != nil {
		log.Printf("Error inserting student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, student)
}

// ListStudentsHandler lists all students
func ListStudentsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at
		FROM students ORDER BY created_at`)
	if err != nil {
		log.Printf("Error querying students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	c.JSON(http.StatusOK, scanStudents(rows))
}

// GetStudentHandler fetches one student by id
func GetStudentHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var s models.Student
	err := db.QueryRow(`
		SELECT id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at
		FROM students WHERE id = ?`, c.Param("id")).Scan(
		&s.ID, &s.Name, &s.NameAr, &s.Grade, &s.GradeAr, &s.ClassName, &s.SubclassName, &s.ParentID, &s.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	} else if err != nil {
		log.Printf("Error querying student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// UpdateStudentHandler updates a student's fields
func UpdateStudentHandler(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM parents WHERE id = ?)`, req.ParentID).Scan(&exists); err != nil {
		log.Printf("Error checking parent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
		return
	}

	result, err := db.Exec(`
		UPDATE students
		SET name = ?, name_ar = ?, grade = ?, grade_ar = ?, class_name = ?, subclass_name = ?, parent_id = ?
		WHERE id = ?`,
		req.Name, req.NameAr, req.Grade, req.GradeAr, req.ClassName, req.SubclassName, req.ParentID, c.Param("id"))
	if err != nil {
		log.Printf("Error updating student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	GetStudentHandler(c)
}

// DeleteStudentHandler deletes a student and every row referencing it
func DeleteStudentHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM students WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
