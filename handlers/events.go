package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madrasati/models"
	"madrasati/utils"
)

// CreateEventHandler creates a new event. The type field is a free
// string; upcoming/current/previous by convention.
func CreateEventHandler(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if req.Type == "" {
		req.Type = "upcoming"
	}

	event := models.Event{
		ID:            utils.NewID(),
		Title:         req.Title,
		TitleAr:       req.TitleAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Date:          req.Date,
		Type:          req.Type,
		CreatedAt:     utils.Now(),
	}

	db := c.MustGet("db").(*sql.DB)
	_, err := db.Exec(`
		INSERT INTO events (id, title, title_ar, description, description_ar, date, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Title, event.TitleAr, event.Description, event.DescriptionAr,
		event.Date, event.Type, event.CreatedAt)
	if err != nil {
		log.Printf("Error inserting event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEventsHandler lists all events by date
func ListEventsHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(`
		SELECT id, title, title_ar, description, description_ar, date, type, created_at
		FROM events ORDER BY date`)
	if err != nil {
		log.Printf("Error querying events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.TitleAr, &e.Description, &e.DescriptionAr, &e.Date, &e.Type, &e.CreatedAt); err != nil {
			log.Printf("Error scanning event: %v", err)
			continue
		}
		events = append(events, e)
	}

	c.JSON(http.StatusOK, events)
}

// GetEventHandler fetches one event by id
func GetEventHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var e models.Event
	err := db.QueryRow(`
		SELECT id, title, title_ar, description, description_ar, date, type, created_at
		FROM events WHERE id = ?`, c.Param("id")).Scan(
		&e.ID, &e.Title, &e.TitleAr, &e.Description, &e.DescriptionAr, &e.Date, &e.Type, &e.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	} else if err != nil {
		log.Printf("Error querying event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// UpdateEventHandler updates an event
func UpdateEventHandler(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`
		UPDATE events
		SET title = ?, title_ar = ?, description = ?, description_ar = ?, date = ?, type = ?
		WHERE id = ?`,
		req.Title, req.TitleAr, req.Description, req.DescriptionAr, req.Date, req.Type, c.Param("id"))
	if err != nil {
		log.Printf("Error updating event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	GetEventHandler(c)
}

// DeleteEventHandler deletes an event
func DeleteEventHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM events WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
