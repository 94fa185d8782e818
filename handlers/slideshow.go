package handlers

import (
	"database/sql"
	"encoding/base64"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"madrasati/config"
	"madrasati/models"
	"madrasati/utils"
)

// saveImage decodes a base64 payload and writes it to the upload
// directory, returning the relative URL path. A data-URL prefix, if
// present, is stripped before decoding.
func saveImage(data string) (string, error) {
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", err
	}

	dir := config.ConfigInstance.UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := utils.NewID() + ".jpg"
	if err := os.WriteFile(filepath.Join(dir, name), decoded, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// CreateSlideHandler adds a slideshow image. The payload carries either
// base64 image data or a URL to an already uploaded file; display order
// defaults to one past the current maximum.
func CreateSlideHandler(c *gin.Context) {
	var req models.CreateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.ImageData == "" && req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_data or image_url is required"})
		return
	}

	imageURL := req.ImageURL
	if req.ImageData != "" {
		url, err := saveImage(req.ImageData)
		if err != nil {
			log.Printf("Error saving image: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
			return
		}
		imageURL = url
	}

	db := c.MustGet("db").(*sql.DB)

	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	} else {
		if err := db.QueryRow(`SELECT COALESCE(MAX(display_order), 0) + 1 FROM slideshow_images`).Scan(&displayOrder); err != nil {
			log.Printf("Error querying display order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	slide := models.SlideshowImage{
		ID:           utils.NewID(),
		ImageURL:     imageURL,
		Title:        req.Title,
		TitleAr:      req.TitleAr,
		DisplayOrder: displayOrder,
		IsActive:     isActive,
		CreatedAt:    utils.Now(),
	}

	_, err := db.Exec(`
		INSERT INTO slideshow_images (id, image_url, title, title_ar, display_order, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		slide.ID, slide.ImageURL, slide.Title, slide.TitleAr, slide.DisplayOrder, slide.IsActive, slide.CreatedAt)
	if err != nil {
		log.Printf("Error inserting slide: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, slide)
}

func listSlides(c *gin.Context, query string) {
	db := c.MustGet("db").(*sql.DB)
	rows, err := db.Query(query)
	if err != nil {
		log.Printf("Error querying slides: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	slides := []models.SlideshowImage{}
	for rows.Next() {
		var s models.SlideshowImage
		if err := rows.Scan(&s.ID, &s.ImageURL, &s.Title, &s.TitleAr, &s.DisplayOrder, &s.IsActive, &s.CreatedAt); err != nil {
			log.Printf("Error scanning slide: %v", err)
			continue
		}
		slides = append(slides, s)
	}

	c.JSON(http.StatusOK, slides)
}

// ListSlidesHandler lists every slide, including inactive ones
func ListSlidesHandler(c *gin.Context) {
	listSlides(c, `
		SELECT id, image_url, title, title_ar, display_order, is_active, created_at
		FROM slideshow_images ORDER BY display_order`)
}

// ListActiveSlidesHandler lists the public carousel
func ListActiveSlidesHandler(c *gin.Context) {
	listSlides(c, `
		SELECT id, image_url, title, title_ar, display_order, is_active, created_at
		FROM slideshow_images WHERE is_active = 1 ORDER BY display_order`)
}

// GetSlideHandler fetches one slide by id
func GetSlideHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	var s models.SlideshowImage
	err := db.QueryRow(`
		SELECT id, image_url, title, title_ar, display_order, is_active, created_at
		FROM slideshow_images WHERE id = ?`, c.Param("id")).Scan(
		&s.ID, &s.ImageURL, &s.Title, &s.TitleAr, &s.DisplayOrder, &s.IsActive, &s.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	} else if err != nil {
		log.Printf("Error querying slide: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// UpdateSlideHandler updates a slide's metadata and active flag
func UpdateSlideHandler(c *gin.Context) {
	var req models.CreateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	db := c.MustGet("db").(*sql.DB)
	var s models.SlideshowImage
	err := db.QueryRow(`
		SELECT id, image_url, title, title_ar, display_order, is_active, created_at
		FROM slideshow_images WHERE id = ?`, c.Param("id")).Scan(
		&s.ID, &s.ImageURL, &s.Title, &s.TitleAr, &s.DisplayOrder, &s.IsActive, &s.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	} else if err != nil {
		log.Printf("Error querying slide: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if req.ImageData != "" {
		url, err := saveImage(req.ImageData)
		if err != nil {
			log.Printf("Error saving image: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
			return
		}
		s.ImageURL = url
	} else if req.ImageURL != "" {
		s.ImageURL = req.ImageURL
	}
	if req.Title != "" {
		s.Title = req.Title
	}
	if req.TitleAr != "" {
		s.TitleAr = req.TitleAr
	}
	if req.DisplayOrder != nil {
		s.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	_, err = db.Exec(`
		UPDATE slideshow_images
		SET image_url = ?, title = ?, title_ar = ?, display_order = ?, is_active = ?
		WHERE id = ?`,
		s.ImageURL, s.Title, s.TitleAr, s.DisplayOrder, s.IsActive, s.ID)
	if err != nil {
		log.Printf("Error updating slide: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// DeleteSlideHandler deletes a slide record. The image file stays on
// disk; it may still be referenced elsewhere.
func DeleteSlideHandler(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	result, err := db.Exec(`DELETE FROM slideshow_images WHERE id = ?`, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting slide: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
