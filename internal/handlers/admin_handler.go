package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bangre/mediatheque/internal/flash"
	"github.com/bangre/mediatheque/internal/models"
)

// Form actions accepted by POST /admin.
const (
	actionCreateCategory = "create_category"
	actionUploadResource = "upload_resource"
)

// multipartMemoryLimit caps the in-memory part of parsed upload forms;
// larger file parts spill to temporary files.
const multipartMemoryLimit = 32 << 20

// SessionService is the interface that wraps the admin session operations
// used by the login and logout handlers.
type SessionService interface {
	// Authenticate checks the admin password and returns a session token,
	// failing with models.ErrAuthFailure on mismatch.
	Authenticate(password string) (string, error)
	// SetCookie attaches the session cookie to the response.
	SetCookie(w http.ResponseWriter, token string)
	// ClearCookie expires the session cookie.
	ClearCookie(w http.ResponseWriter)
}

// DashboardView is the admin dashboard payload
type DashboardView struct {
	Resources  []models.ResourceListItem `json:"resources"`
	Categories []models.Category         `json:"categories"`
	TypeFilter string                    `json:"type_filter,omitempty"`
	Flash      *flash.Notice             `json:"flash,omitempty"`
}

// LoginView is the admin login page payload
type LoginView struct {
	Flash *flash.Notice `json:"flash,omitempty"`
}

// AdminHandler handles the admin dashboard and session routes
type AdminHandler struct {
	BaseHandler
	catalogService CatalogService
	sessionService SessionService
	requireAdmin   func(http.Handler) http.Handler
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogService CatalogService, sessionService SessionService, requireAdmin func(http.Handler) http.Handler, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    BaseHandler{logger: logger},
		catalogService: catalogService,
		sessionService: sessionService,
		requireAdmin:   requireAdmin,
	}
}

// RegisterRoutes registers all admin routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/login", h.LoginPage)
	r.Post("/admin/login", h.Login)
	r.Get("/admin/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Get("/admin", h.Dashboard)
		r.Post("/admin", h.Dispatch)
		r.Post("/admin/delete/{id}", h.Delete)
	})
}

// LoginPage handles GET /admin/login
// @Summary Admin login page
// @Tags admin
// @Produce json
// @Success 200 {object} LoginView
// @Router /admin/login [get]
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, LoginView{Flash: pendingFlash(w, r)})
}

// Login handles POST /admin/login
// @Summary Authenticate as admin
// @Description Check the admin password and set the session cookie
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param password formData string true "Admin password"
// @Success 303 "Redirect to /admin"
// @Failure 401 {object} LoginView
// @Router /admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	token, err := h.sessionService.Authenticate(r.PostFormValue("password"))
	if err != nil {
		h.logger.Info("admin login rejected")
		h.respondJSON(w, http.StatusUnauthorized, LoginView{Flash: noticeRef(flash.Error("Mot de passe incorrect"))})
		return
	}

	h.sessionService.SetCookie(w, token)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles GET /admin/logout
// @Summary Log out of the admin session
// @Tags admin
// @Success 303 "Redirect to /"
// @Router /admin/logout [get]
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessionService.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Dashboard handles GET /admin
// @Summary Admin dashboard
// @Description List all resources and categories, optionally filtered by media type
// @Tags admin
// @Produce json
// @Param type query string false "Media type filter: pdf, image or video"
// @Success 200 {object} DashboardView
// @Failure 500 {object} map[string]string
// @Router /admin [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, http.StatusOK, pendingFlash(w, r))
}

// Dispatch handles POST /admin
// @Summary Run an admin action
// @Description Create a category or upload a resource, then render the dashboard with the outcome
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param action formData string true "Action: create_category or upload_resource"
// @Param new_category formData string false "Category name (create_category)"
// @Param title formData string false "Resource title (upload_resource)"
// @Param description formData string false "Resource description (upload_resource)"
// @Param category formData int false "Category ID (upload_resource)"
// @Param file formData file false "File to upload (upload_resource)"
// @Param type query string false "Media type filter applied to the rendered listing"
// @Success 200 {object} DashboardView
// @Failure 400 {object} DashboardView
// @Failure 409 {object} DashboardView
// @Failure 413 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin [post]
func (h *AdminHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	// Uploads arrive as multipart, category creation as a plain form; both
	// are parsed here.
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, models.ErrPayloadTooLarge.Error())
			return
		}
		h.logger.Error("failed to parse admin form", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	switch action := r.PostFormValue("action"); action {
	case actionCreateCategory:
		h.createCategory(w, r)
	case actionUploadResource:
		h.uploadResource(w, r)
	default:
		// An unknown action falls through to a plain dashboard render.
		h.renderDashboard(w, r, http.StatusOK, nil)
	}
}

// createCategory runs the create_category action and renders the outcome
func (h *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	_, err := h.catalogService.CreateCategory(r.Context(), r.PostFormValue("new_category"))
	switch {
	case err == nil:
		h.renderDashboard(w, r, http.StatusOK, noticeRef(flash.Success("Catégorie créée avec succès !")))
	case errors.Is(err, models.ErrInvalidInput):
		h.renderDashboard(w, r, http.StatusBadRequest, noticeRef(flash.Error("Nom invalide ou déjà utilisé.")))
	case errors.Is(err, models.ErrDuplicateName):
		h.renderDashboard(w, r, http.StatusConflict, noticeRef(flash.Error("Nom invalide ou déjà utilisé.")))
	default:
		h.logger.Error("failed to create category", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to create category")
	}
}

// uploadResource runs the upload_resource action and renders the outcome
func (h *AdminHandler) uploadResource(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(r.PostFormValue("category"))

	var (
		content  io.Reader
		filename string
	)
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		content = file
		filename = header.Filename
	}

	_, err := h.catalogService.Upload(r.Context(), r.PostFormValue("title"), r.PostFormValue("description"), filename, categoryID, content)
	switch {
	case err == nil:
		h.renderDashboard(w, r, http.StatusOK, noticeRef(flash.Success("Contenu ajouté avec succès !")))
	case errors.Is(err, models.ErrInvalidInput):
		h.renderDashboard(w, r, http.StatusBadRequest, noticeRef(flash.Error("Tous les champs sont obligatoires.")))
	case errors.Is(err, models.ErrInvalidExtension):
		h.renderDashboard(w, r, http.StatusBadRequest, noticeRef(flash.Error("Fichier invalide ou extension non autorisée.")))
	case errors.Is(err, models.ErrUnsupportedType):
		h.renderDashboard(w, r, http.StatusBadRequest, noticeRef(flash.Error("Type de fichier non supporté.")))
	case errors.Is(err, models.ErrInvalidReference):
		h.renderDashboard(w, r, http.StatusBadRequest, noticeRef(flash.Error("Catégorie invalide.")))
	case errors.Is(err, models.ErrStorageFailure):
		h.logger.Error("failed to store uploaded file", zap.Error(err))
		h.renderDashboard(w, r, http.StatusInternalServerError, noticeRef(flash.Error("Erreur lors de l'enregistrement du fichier.")))
	default:
		h.logger.Error("failed to upload resource", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to upload resource")
	}
}

// Delete handles POST /admin/delete/{id}
// @Summary Delete a resource
// @Description Remove the backing file and the database record, then redirect to the dashboard
// @Tags admin
// @Param id path int true "Resource ID"
// @Success 303 "Redirect to /admin"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/delete/{id} [post]
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, "resource not found")
		return
	}

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "resource not found")
			return
		}
		h.logger.Error("failed to delete resource", zap.Error(err), zap.Int("id", id))
		h.respondError(w, http.StatusInternalServerError, "failed to delete resource")
		return
	}

	flash.Write(w, flash.Success("Contenu supprimé définitivement."))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// renderDashboard builds the admin view, applying any type query filter
func (h *AdminHandler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, notice *flash.Notice) {
	typeFilter := r.URL.Query().Get("type")
	var mediaType *models.MediaType
	if mt, ok := models.ParseMediaType(typeFilter); ok {
		mediaType = &mt
	} else {
		// Unknown filter values leave the listing unfiltered.
		typeFilter = ""
	}

	resources, err := h.catalogService.ListAdmin(r.Context(), mediaType)
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

	h.respondJSON(w, status, DashboardView{
		Resources:  resources,
		Categories: categories,
		TypeFilter: typeFilter,
		Flash:      notice,
	})
}
