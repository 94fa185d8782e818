package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

// CreateAnnouncementHandler creates a new announcement. The teacher
// reference is optional; admin-authored announcements carry none.
func CreateAnnouncementHandler(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)

	if req.TeacherID != nil {
		var exists bool
		if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM teachers WHERE id = ?)`, *req.TeacherID).Scan(&exists); err != nil {
			log.Printf("Error checking teacher: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
			return
		}
	}

	announcement := models.Announcement{
		ID:        utils.NewID(),
		Title:     req.Title,
		TitleAr:   req.TitleAr,
		Content:   req.Content,
		ContentAr: req.ContentAr,
		TeacherID: req.TeacherID,
		CreatedAt: utils.Now(),
	}

	_, err := db.Exec(`
		INSERT INTO announcements (id, title, title_ar, content, content_ar, teacher_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		announcement.ID, announcement.Title, announcement.TitleAr, announcement.Content,
		announcement.ContentAr, announcement.TeacherID, announcement.CreatedAt)
	if err != nil {
		log.Printf("Error inserting announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// ListAnnouncementsHandler lists announcements, newest first
func ListAnnouncementsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, title, title_ar, content, content_ar, teacher_id, created_at
		FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		log.Printf("Error querying announcements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.TitleAr, &a.Content, &a.ContentAr, &a.TeacherID, &a.CreatedAt); err != nil {
			log.Printf("Error scanning announcement: %v", err)
			continue
		}
		announcements = append(announcements, a)
	}

	c.JSON(http.StatusOK, announcements)
}

// GetAnnouncementHandler fetches one announcement by id
func GetAnnouncementHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var a models.Announcement
	err := db.QueryRow(`
		SELECT id, title, title_ar, content, content_ar, teacher_id, created_at
		FROM announcements WHERE id = ?`, c.Param("id")).Scan(
		&a.ID, &a.Title, &a.TitleAr, &a.Content, &a.ContentAr, &a.TeacherID, &a.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	} else if err != nil {
		log.Printf("Error querying announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// UpdateAnnouncementHandler updates an announcement
func UpdateAnnouncementHandler(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE announcements
		SET title = ?, title_ar = ?, content = ?, content_ar = ?, teacher_id = ?
		WHERE id = ?`,
		req.Title, req.TitleAr, req.Content, req.ContentAr, req.TeacherID, c.Param("id"))
	if err != nil {
		log.Printf("Error updating announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	GetAnnouncementHandler(c)
}

// DeleteAnnouncementHandler deletes an announcement
func DeleteAnnouncementHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM announcements WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
