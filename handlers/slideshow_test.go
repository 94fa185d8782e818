package handlers_test

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"madrasati/config"
	"madrasati/models"
	"madrasati/testutil"
)

func TestCreateSlideFromBase64(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
	w := testutil.DoRequest(t, router, http.MethodPost, "/api/slideshow", map[string]interface{}{
		"image_data": "data:image/jpeg;base64," + payload,
		"title":      "Welcome",
		"title_ar":   "أهلاً",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var slide models.SlideshowImage
	testutil.DecodeJSON(t, w, &slide)
	if !strings.HasPrefix(slide.ImageURL, "/uploads/") {
		t.Fatalf("image_url = %q, want /uploads/ path", slide.ImageURL)
	}
	if slide.DisplayOrder != 1 {
		t.Errorf("display_order = %d, want 1 on empty table", slide.DisplayOrder)
	}
	if !slide.IsActive {
		t.Error("new slide should default to active")
	}

	// the decoded file landed in the upload dir
	name := strings.TrimPrefix(slide.ImageURL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(config.ConfigInstance.UploadDir, name))
	if err != nil {
		t.Fatalf("read uploaded file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("uploaded file content = %q", data)
	}
}

func TestSlideDisplayOrderDefaultsToMaxPlusOne(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	first := map[string]interface{}{"image_url": "/uploads/a.jpg", "display_order": 7}
	if w := testutil.DoRequest(t, router, http.MethodPost, "/api/slideshow", first, admin); w.Code != http.StatusCreated {
		t.Fatalf("first slide status = %d", w.Code)
	}

	w := testutil.DoRequest(t, router, http.MethodPost, "/api/slideshow",
		map[string]interface{}{"image_url": "/uploads/b.jpg"}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("second slide status = %d", w.Code)
	}
	var slide models.SlideshowImage
	testutil.DecodeJSON(t, w, &slide)
	if slide.DisplayOrder != 8 {
		t.Errorf("display_order = %d, want 8", slide.DisplayOrder)
	}
}

func TestActiveSlideFilter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)
	admin := testutil.AdminToken(t)

	active := map[string]interface{}{"image_url": "/uploads/a.jpg"}
	if w := testutil.DoRequest(t, router, http.MethodPost, "/api/slideshow", active, admin); w.Code != http.StatusCreated {
		t.Fatalf("active slide status = %d", w.Code)
	}

	hidden := map[string]interface{}{"image_url": "/uploads/b.jpg", "is_active": false}
	if w := testutil.DoRequest(t, router, http.MethodPost, "/api/slideshow", hidden, admin); w.Code != http.StatusCreated {
		t.Fatalf("hidden slide status = %d", w.Code)
	}

	// carousel view is public and filters to active slides
	w := testutil.DoRequest(t, router, http.MethodGet, "/api/slideshow/active", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("carousel status = %d", w.Code)
	}
	var carousel []models.SlideshowImage
	testutil.DecodeJSON(t, w, &carousel)
	if len(carousel) != 1 || carousel[0].ImageURL != "/uploads/a.jpg" {
		t.Errorf("carousel = %+v, want only the active slide", carousel)
	}

	// the admin listing shows both
	w = testutil.DoRequest(t, router, http.MethodGet, "/api/slideshow", nil, admin)
	var all []models.SlideshowImage
	testutil.DecodeJSON(t, w, &all)
	if len(all) != 2 {
		t.Errorf("admin listing has %d slides, want 2", len(all))
	}
}

func TestCreateSlideRejectsBadBase64(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewRouter(conn)

	w := testutil.DoRequest(t, router, http.MethodPost, "/api/slideshow",
		map[string]interface{}{"image_data": "%%% not base64 %%%"}, testutil.AdminToken(t))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if n := testutil.CountRows(t, conn, "slideshow_images"); n != 0 {
		t.Errorf("slideshow_images has %d rows, want 0", n)
	}
}
