package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bangre/mediatheque/internal/models"
	"github.com/bangre/mediatheque/internal/storage"
)

// defaultCategoryName is seeded into an empty taxonomy so uploads always have
// a category to point at.
const defaultCategoryName = "Général"

// maxCategoryNameLength matches the category name column width.
const maxCategoryNameLength = 50

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// GetAll retrieves every category in creation order.
	GetAll(ctx context.Context) ([]models.Category, error)
	// Create inserts a new category and fills its ID. A name already in use
	// fails with models.ErrDuplicateName.
	Create(ctx context.Context, category *models.Category) error
	// Count returns the number of categories.
	Count(ctx context.Context) (int, error)
}

// ResourceRepository defines the interface for resource data access
type ResourceRepository interface {
	// GetAll retrieves resources with category names resolved, optionally
	// narrowed by the filter.
	GetAll(ctx context.Context, filter models.ResourceFilter) ([]models.ResourceListItem, error)
	// GetByID retrieves a resource, failing with models.ErrNotFound when the
	// id is unknown.
	GetByID(ctx context.Context, id int) (*models.Resource, error)
	// Create inserts a new resource and fills its ID. A missing category
	// reference fails with models.ErrInvalidReference.
	Create(ctx context.Context, resource *models.Resource) error
	// Delete removes a resource row, failing with models.ErrNotFound when the
	// id is unknown.
	Delete(ctx context.Context, id int) error
}

// Storage defines the interface for file storage operations
type Storage interface {
	// Save writes the content under the given name, replacing any existing
	// file with that name.
	Save(ctx context.Context, name string, content io.Reader) error
	// Open opens a stored file for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(ctx context.Context, name string) error
}

// CatalogService handles business logic for the media catalog
type CatalogService struct {
	categories CategoryRepository
	resources  ResourceRepository
	storage    Storage
}

// NewCatalogService creates a new catalog service
func NewCatalogService(categories CategoryRepository, resources ResourceRepository, storage Storage) *CatalogService {
	return &CatalogService{
		categories: categories,
		resources:  resources,
		storage:    storage,
	}
}

// EnsureDefaultCategory seeds the default category when the taxonomy is
// empty. Calling it again once any category exists does nothing.
func (s *CatalogService) EnsureDefaultCategory(ctx context.Context) error {
	count, err := s.categories.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	category := &models.Category{Name: defaultCategoryName}
	if err := s.categories.Create(ctx, category); err != nil {
		return fmt.Errorf("failed to seed default category: %w", err)
	}
	return nil
}

// ListCategories retrieves every category in creation order
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAll(ctx)
}

// CreateCategory creates a new category from a raw form name. The name is
// trimmed and must fit the 50 character column.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxCategoryNameLength {
		return nil, models.ErrInvalidInput
	}

	category := &models.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListPublic retrieves resources for the public catalog, optionally narrowed
// to a single category.
func (s *CatalogService) ListPublic(ctx context.Context, categoryID *int) ([]models.ResourceListItem, error) {
	return s.resources.GetAll(ctx, models.ResourceFilter{CategoryID: categoryID})
}

// ListAdmin retrieves resources for the admin dashboard, optionally narrowed
// to a single media type.
func (s *CatalogService) ListAdmin(ctx context.Context, mediaType *models.MediaType) ([]models.ResourceListItem, error) {
	return s.resources.GetAll(ctx, models.ResourceFilter{MediaType: mediaType})
}

// GetResource retrieves a single resource by id
func (s *CatalogService) GetResource(ctx context.Context, id int) (*models.Resource, error) {
	if id <= 0 {
		return nil, models.ErrNotFound
	}
	return s.resources.GetByID(ctx, id)
}

// OpenResourceFile opens the stored file behind a resource for serving.
// The caller owns the returned ReadCloser.
func (s *CatalogService) OpenResourceFile(ctx context.Context, id int) (*models.Resource, io.ReadCloser, error) {
	resource, err := s.GetResource(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	file, err := s.storage.Open(ctx, resource.Filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", resource.Filename, err)
	}
	return resource, file, nil
}

// Upload validates, stores and records a new resource. The raw filename is
// sanitized before storage; two uploads sanitizing to the same name share a
// single file, with the later upload replacing the earlier content.
func (s *CatalogService) Upload(ctx context.Context, title, description, rawFilename string, categoryID int, content io.Reader) (*models.Resource, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || categoryID <= 0 || rawFilename == "" || content == nil {
		return nil, models.ErrInvalidInput
	}

	if !models.AllowedFilename(rawFilename) {
		return nil, models.ErrInvalidExtension
	}

	mediaType, ok := models.MediaTypeForExtension(filepath.Ext(rawFilename))
	if !ok {
		return nil, models.ErrUnsupportedType
	}

	filename := storage.SanitizeFilename(rawFilename)
	if filename == "" {
		return nil, models.ErrInvalidExtension
	}

	if err := s.storage.Save(ctx, filename, content); err != nil {
		return nil, fmt.Errorf("%w: failed to save file %s: %w", models.ErrStorageFailure, filename, err)
	}

	resource := &models.Resource{
		Title:       title,
		Description: description,
		Filename:    filename,
		FileType:    mediaType,
		CategoryID:  categoryID,
	}

	// A failed insert leaves the stored file behind; nothing references it,
	// so it never shows up in listings.
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// Delete removes a resource, file first and row second. A missing file is
// tolerated; any other storage failure aborts with the row kept, so the
// entry stays listed and the delete can be retried.
func (s *CatalogService) Delete(ctx context.Context, id int) error {
	resource, err := s.GetResource(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Remove(ctx, resource.Filename); err != nil {
		return fmt.Errorf("%w: failed to remove file %s: %w", models.ErrStorageFailure, resource.Filename, err)
	}

	if err := s.resources.Delete(ctx, resource.ID); err != nil {
		return fmt.Errorf("failed to delete resource record: %w", err)
	}

	return nil
}
