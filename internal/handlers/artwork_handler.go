// internal/handlers/artwork_handler.go
package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"promomusic/internal/config"
)

// ArtworkHandler uploads banner artwork to S3 and hands back the public
// URL the artist then submits as image_url.
type ArtworkHandler struct {
	s3Client      *s3.Client
	bucket        string
	publicBaseURL string
}

func NewArtworkHandler(s3Config *config.S3Config) *ArtworkHandler {
	return &ArtworkHandler{
		s3Client:      s3Config.Client,
		bucket:        s3Config.Bucket,
		publicBaseURL: s3Config.PublicBaseURL,
	}
}

func artworkContentType(fileHeader *multipart.FileHeader) string {
	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}

// UploadArtwork handles POST /api/v1/artwork/upload
// @Tags Artwork
// @Summary Upload banner artwork
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Artwork image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/artwork/upload [post]
func (h *ArtworkHandler) UploadArtwork(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 10 << 20 // 10MB
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "file is required")
		return
	}
	defer file.Close()

	contentType := artworkContentType(fileHeader)
	if !strings.HasPrefix(contentType, "image/") {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "file must be an image")
		return
	}

	if h.s3Client == nil || h.bucket == "" {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Artwork storage is not configured")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("artwork/%s%s", uuid.New().String(), ext)

	uploader := manager.NewUploader(h.s3Client)
	if _, err := uploader.Upload(r.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	}); err != nil {
		log.Printf("Failed to upload artwork %s: %v", fileHeader.Filename, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to upload artwork")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"image_url": fmt.Sprintf("%s/%s", h.publicBaseURL, key),
		"key":       key,
		"size":      fileHeader.Size,
	})
}
