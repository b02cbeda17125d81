package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bangre/mediatheque/internal/models"
)

// resourceRepository implements resource persistence operations
type resourceRepository struct {
	db *sql.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *sql.DB) *resourceRepository {
	return &resourceRepository{
		db: db,
	}
}

// GetAll retrieves resources with their category names resolved, optionally
// narrowed by the filter. An empty result is not an error.
func (r *resourceRepository) GetAll(ctx context.Context, filter models.ResourceFilter) ([]models.ResourceListItem, error) {
	var whereClauses []string
	var args []any

	// Build WHERE clause
	if filter.CategoryID != nil {
		whereClauses = append(whereClauses, "r.category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	if filter.MediaType != nil {
		whereClauses = append(whereClauses, "r.file_type = ?")
		args = append(args, *filter.MediaType)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.title, r.description, r.filename, r.file_type, r.category_id,
			COALESCE(c.name, '') AS category_name
		FROM resource r
		LEFT JOIN category c ON c.id = r.category_id
		%s
		ORDER BY r.id ASC
	`, whereClause)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get resources: %w", err)
	}
	defer rows.Close()

	var resources []models.ResourceListItem
	for rows.Next() {
		var item models.ResourceListItem
		var description sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&description,
			&item.Filename,
			&item.FileType,
			&item.CategoryID,
			&item.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		item.Description = description.String
		resources = append(resources, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}

	return resources, nil
}

// GetByID retrieves a resource by its id
func (r *resourceRepository) GetByID(ctx context.Context, id int) (*models.Resource, error) {
	query := `
		SELECT id, title, description, filename, file_type, category_id
		FROM resource
		WHERE id = ?
		LIMIT 1
	`

	var resource models.Resource
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&resource.ID,
		&resource.Title,
		&description,
		&resource.Filename,
		&resource.FileType,
		&resource.CategoryID,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resource by id: %w", err)
	}

	resource.Description = description.String
	return &resource, nil
}

// Create inserts a new resource and fills its ID. The category reference is
// verified first; pointing at a missing category fails with
// models.ErrInvalidReference.
func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	checkQuery := `SELECT EXISTS(SELECT 1 FROM category WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, checkQuery, resource.CategoryID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check category reference: %w", err)
	}
	if !exists {
		return models.ErrInvalidReference
	}

	query := `
		INSERT INTO resource (title, description, filename, file_type, category_id)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		resource.Title,
		resource.Description,
		resource.Filename,
		resource.FileType,
		resource.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	resource.ID = int(id)

	return nil
}

// Delete removes a resource row. Deleting an unknown id fails with
// models.ErrNotFound, so a second delete of the same id is an error.
func (r *resourceRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM resource WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}
