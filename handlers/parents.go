package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

// CreateParentHandler creates a new parent account
func CreateParentHandler(c *gin.Context) {
	var req models.CreateParentRequest
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

	parent := models.Parent{
		ID:           utils.NewID(),
		Mobile:       req.Mobile,
		Name:         req.Name,
		NameAr:       req.NameAr,
		Relationship: req.Relationship,
		CreatedAt:    utils.Now(),
	}

	db := c.MustGet("db").(*sql.DB)
	_, err = db.Exec(`
		INSERT INTO parents (id, mobile, password, name, name_ar, relationship, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		parent.ID, parent.Mobile, hash, parent.Name, parent.NameAr, parent.Relationship, parent.CreatedAt)
	if err != nil {
		log.Printf("Error inserting parent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, parent)
}

// ListParentsHandler lists all parents
func ListParentsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, mobile, name, name_ar, relationship, created_at
		FROM parents ORDER BY created_at`)
	if err != nil {
		log.Printf("Error querying parents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	parents := []models.Parent{}
	for rows.Next() {
		var p models.Parent
		if err := rows.Scan(&p.ID, &p.Mobile, &p.Name, &p.NameAr, &p.Relationship, &p.CreatedAt); err != nil {
			log.Printf("Error scanning parent: %v", err)
			continue
		}
		parents = append(parents, p)
	}

	c.JSON(http.StatusOK, parents)
}

// GetParentHandler fetches one parent by id
func GetParentHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var p models.Parent
	err := db.QueryRow(`
		SELECT id, mobile, name, name_ar, relationship, created_at
		FROM parents WHERE id = ?`, c.Param("id")).Scan(
		&p.ID, &p.Mobile, &p.Name, &p.NameAr, &p.Relationship, &p.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
		return
	} else if err != nil {
		log.Printf("Error querying parent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateParentHandler updates a parent's profile fields
func UpdateParentHandler(c *gin.Context) {
	var req models.CreateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	result, err := db.Exec(`
		UPDATE parents
		SET mobile = ?, password = ?, name = ?, name_ar = ?, relationship = ?
		WHERE id = ?`,
		req.Mobile, hash, req.Name, req.NameAr, req.Relationship, c.Param("id"))
	if err != nil {
		log.Printf("Error updating parent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
		return
	}

	GetParentHandler(c)
}

// DeleteParentHandler deletes a parent. Students owned by the parent and
// all rows referencing them go with it.
func DeleteParentHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM parents WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting parent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetParentStudentsHandler lists the students owned by a parent
func GetParentStudentsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	parentID := c.Param("id")

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM parents WHERE id = ?)`, parentID).Scan(&exists); err != nil {
		log.Printf("Error checking parent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
		return
	}

	rows, err := db.Query(`
		SELECT id, name, name_ar, grade, grade_ar, class_name, subclass_name, parent_id, created_at
		FROM students WHERE parent_id = ? ORDER BY created_at`, parentID)
	if err != nil {
		log.Printf("Error querying students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.NameAr, &s.Grade, &s.GradeAr, &s.ClassName, &s.SubclassName, &s.ParentID, &s.CreatedAt); err != nil {
			log.Printf("Error scanning student: %v", err)
			continue
		}
		students = append(students, s)
	}

	c.JSON(http.StatusOK, students)
}
