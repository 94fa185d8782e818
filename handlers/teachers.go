package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

// CreateTeacherHandler creates a new teacher account
func CreateTeacherHandler(c *gin.Context) {
	var req models.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	teacher := models.Teacher{
		ID:        utils.NewID(),
		Mobile:    req.Mobile,
		Name:      req.Name,
		NameAr:    req.NameAr,
		CreatedAt: utils.Now(),
	}

	db := c.MustGet("db").(*sql.DB)
	_, err = db.Exec(`
		INSERT INTO teachers (id, mobile, password, name, name_ar, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		teacher.ID, teacher.Mobile, hash, teacher.Name, teacher.NameAr, teacher.CreatedAt)
	if err != nil {
		log.Printf("Error inserting teacher: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, teacher)
}

// ListTeachersHandler lists all teachers
func ListTeachersHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, mobile, name, name_ar, created_at
		FROM teachers ORDER BY created_at`)
	if err != nil {
		log.Printf("Error querying teachers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	teachers := []models.Teacher{}
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(&t.ID, &t.Mobile, &t.Name, &t.NameAr, &t.CreatedAt); err != nil {
			log.Printf("Error scanning teacher: %v", err)
			continue
		}
		teachers = append(teachers, t)
	}

	c.JSON(http.StatusOK, teachers)
}

// GetTeacherHandler fetches one teacher by id
func GetTeacherHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var t models.Teacher
	err := db.QueryRow(`
		SELECT id, mobile, name, name_ar, created_at
		FROM teachers WHERE id = ?`, c.Param("id")).Scan(
		&t.ID, &t.Mobile, &t.Name, &t.NameAr, &t.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	} else if err != nil {
		log.Printf("Error querying teacher: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// UpdateTeacherHandler updates a teacher's profile fields
func UpdateTeacherHandler(c *gin.Context) {
	var req models.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE teachers
		SET mobile = ?, password = ?, name = ?, name_ar = ?
		WHERE id = ?`,
		req.Mobile, hash, req.Name, req.NameAr, c.Param("id"))
	if err != nil {
		log.Printf("Error updating teacher: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}

	GetTeacherHandler(c)
}

// DeleteTeacherHandler deletes a teacher. Grades, attendance and
// announcements authored by the teacher keep their rows with a null
// teacher reference.
func DeleteTeacherHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM teachers WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting teacher: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
