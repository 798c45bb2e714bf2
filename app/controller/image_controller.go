package controller

import (
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
	"github.com/keapril/WebInventory/service"
)

// ImageController handles image uploads for catalog items
type ImageController struct {
	images     service.ImageStoreInterface
	repository repository.CatalogRepositoryInterface
}

// NewImageController creates a new ImageController
func NewImageController(images service.ImageStoreInterface, repo repository.CatalogRepositoryInterface) *ImageController {
	return &ImageController{
		images:     images,
		repository: repo,
	}
}

// Upload handles POST /items/{sku}/image with a multipart "file" field.
// On success the canonical URL is written back onto the catalog row.
func (c *ImageController) Upload(w http.ResponseWriter, r *http.Request, sku string) {
	log.Printf("📥 Upload: Received image for SKU %s", sku)

	// Fail early on unknown SKUs so the image never uploads orphaned
	if _, err := c.repository.Get(r.Context(), sku); err != nil {
		writeServiceError(w, err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	url, err := c.images.Put(r.Context(), data, sku)
	if err != nil {
		log.Printf("❌ Upload: Image store failed for %s: %v", sku, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	if err := c.repository.UpdateImageRef(r.Context(), sku, url); err != nil {
		log.Printf("❌ Upload: Failed to persist image reference for %s: %v", sku, err)
		writeServiceError(w, err)
		return
	}

	log.Printf("✅ Upload: Image stored for %s", sku)
	writeJSON(w, http.StatusOK, map[string]string{"sku": sku, "imageUrl": url})
}

// BatchUpload handles POST /images/batch with multiple "files" entries.
// Each filename, minus its extension, is the target SKU. Per-file failures
// are counted, never fatal to the batch.
func (c *ImageController) BatchUpload(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 BatchUpload: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no files uploaded")
		return
	}

	result := models.BatchImageResponse{}
	for _, header := range files {
		sku := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
		if sku == "" {
			result.Failed++
			continue
		}

		f, err := header.Open()
		if err != nil {
			log.Printf("❌ BatchUpload: Failed to open %s: %v", header.Filename, err)
			result.Failed++
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			result.Failed++
			continue
		}

		url, err := c.images.Put(r.Context(), data, sku)
		if err != nil {
			log.Printf("❌ BatchUpload: Image store failed for %s: %v", sku, err)
			result.Failed++
			continue
		}
		if err := c.repository.UpdateImageRef(r.Context(), sku, url); err != nil {
			log.Printf("❌ BatchUpload: Failed to persist reference for %s: %v", sku, err)
			result.Failed++
			continue
		}
		result.Uploaded++
	}

	log.Printf("🎉 BatchUpload complete: %d uploaded, %d failed", result.Uploaded, result.Failed)
	writeJSON(w, http.StatusOK, result)
}
