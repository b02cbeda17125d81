package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bangre/mediatheque/internal/flash"
	"github.com/bangre/mediatheque/internal/models"
)

// CatalogService is the interface that wraps the catalog business logic used
// by both the public and admin handlers.
type CatalogService interface {
	// ListCategories retrieves every category in creation order.
	ListCategories(ctx context.Context) ([]models.Category, error)
	// CreateCategory creates a new category from a raw form name. An empty or
	// oversized name fails with models.ErrInvalidInput, a name already in use
	// with models.ErrDuplicateName.
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	// ListPublic retrieves resources for the public catalog, optionally
	// narrowed to a single category.
	ListPublic(ctx context.Context, categoryID *int) ([]models.ResourceListItem, error)
	// ListAdmin retrieves resources for the admin dashboard, optionally
	// narrowed to a single media type.
	ListAdmin(ctx context.Context, mediaType *models.MediaType) ([]models.ResourceListItem, error)
	// OpenResourceFile opens the stored file behind a resource id. An unknown
	// id fails with models.ErrNotFound; a missing backing file with an error
	// wrapping fs.ErrNotExist.
	OpenResourceFile(ctx context.Context, id int) (*models.Resource, io.ReadCloser, error)
	// Upload validates, stores and records a new resource.
	Upload(ctx context.Context, title, description, rawFilename string, categoryID int, content io.Reader) (*models.Resource, error)
	// Delete removes a resource, file first and row second.
	Delete(ctx context.Context, id int) error
}

// CatalogView is the public catalog page payload
type CatalogView struct {
	Resources  []models.ResourceListItem `json:"resources"`
	Categories []models.Category         `json:"categories"`
	Flash      *flash.Notice             `json:"flash,omitempty"`
}

// CatalogHandler handles the public catalog routes
type CatalogHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    BaseHandler{logger: logger},
		catalogService: catalogService,
	}
}

// RegisterRoutes registers all public catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/download/{id}", h.Download)
	r.Get("/view/{id}", h.View)
}

// Index handles GET /
// @Summary Public catalog
// @Description List all resources with their categories, optionally filtered by category id
// @Tags catalog
// @Accept json
// @Produce json
// @Param cat query int false "Category ID filter"
// @Success 200 {object} CatalogView
// @Failure 500 {object} map[string]string
// @Router / [get]
func (h *CatalogHandler) Index(w http.ResponseWriter, r *http.Request) {
	var categoryID *int
	if catParam := r.URL.Query().Get("cat"); catParam != "" {
		id, err := strconv.Atoi(catParam)
		if err != nil {
			// A non-numeric cat matches no category, same as comparing the
			// raw value against the integer column.
			id = -1
		}
		categoryID = &id
	}

	resources, err := h.catalogService.ListPublic(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("failed to list resources", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list resources")
		return
	}

	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	h.respondJSON(w, http.StatusOK, CatalogView{
		Resources:  resources,
		Categories: categories,
		Flash:      pendingFlash(w, r),
	})
}

// Download handles GET /download/{id}
// @Summary Download a resource file
// @Description Return the file behind a resource as a forced-download attachment
// @Tags catalog
// @Produce application/octet-stream
// @Param id path int true "Resource ID"
// @Success 200 "File content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /download/{id} [get]
func (h *CatalogHandler) Download(w http.ResponseWriter, r *http.Request) {
	h.serveResource(w, r, true)
}

// View handles GET /view/{id}
// @Summary View a resource file
// @Description Return the file behind a resource inline, with range support for local files
// @Tags catalog
// @Produce application/octet-stream
// @Param id path int true "Resource ID"
// @Param Range header string false "Range"
// @Success 200 "File content"
// @Success 206 "Partial file content (for range requests)"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /view/{id} [get]
func (h *CatalogHandler) View(w http.ResponseWriter, r *http.Request) {
	h.serveResource(w, r, false)
}

// serveResource streams the file behind a resource id, as an attachment for
// downloads or inline for the viewer
func (h *CatalogHandler) serveResource(w http.ResponseWriter, r *http.Request, attachment bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, "resource not found")
		return
	}

	resource, file, err := h.catalogService.OpenResourceFile(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			h.respondError(w, http.StatusNotFound, "resource not found")
			return
		}
		h.logger.Error("failed to open resource file", zap.Error(err), zap.Int("id", id))
		h.respondError(w, http.StatusInternalServerError, "failed to open resource file")
		return
	}
	defer file.Close()

	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, resource.Filename))

	contentType := mime.TypeByExtension(filepath.Ext(resource.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	// Seekable backends get range request support, which video viewers need
	if seeker, ok := file.(io.ReadSeeker); ok {
		http.ServeContent(w, r, resource.Filename, time.Time{}, seeker)
		return
	}

	if _, err := io.Copy(w, file); err != nil {
		h.logger.Error("failed to copy file to response", zap.Error(err))
	}
}
