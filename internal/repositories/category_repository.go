package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bangre/mediatheque/internal/models"
)

// categoryRepository implements category persistence operations
type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories in creation order
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name
		FROM category
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// Create inserts a new category and fills its ID. A category whose exact
// name already exists is rejected with models.ErrDuplicateName.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	exists, err := r.ExistsByName(ctx, category.Name)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrDuplicateName
	}

	query := `INSERT INTO category (name) VALUES (?)`

	result, err := r.db.ExecContext(ctx, query, category.Name)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	category.ID = int(id)

	return nil
}

// ExistsByName reports whether a category with exactly this name exists.
// The name column uses a binary collation, so the compare is case-sensitive.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM category WHERE name = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}

	return exists, nil
}

// ExistsByID reports whether a category with this id exists
func (r *categoryRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM category WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category id: %w", err)
	}

	return exists, nil
}

// Count returns the number of categories
func (r *categoryRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM category`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}
