package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bangre/mediatheque/internal/models"
)

// setupCategoryTestRepository creates a category repository with a mock database
func setupCategoryTestRepository(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCategoryRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewCategoryRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCategoryRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCategoryRepository_GetAll(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedNames []string
	}{
		{
			name: "returns categories in creation order",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name"}).
					AddRow(1, "Général").
					AddRow(2, "Cours").
					AddRow(3, "Vidéos")
				mock.ExpectQuery(`SELECT id, name FROM category ORDER BY id ASC`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedNames: []string{"Général", "Cours", "Vidéos"},
		},
		{
			name: "empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name FROM category ORDER BY id ASC`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			},
			expectedError: false,
			expectedNames: nil,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name FROM category`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			categories, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				var names []string
				for _, c := range categories {
					names = append(names, c.Name)
				}
				assert.Equal(t, tt.expectedNames, names)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		category      *models.Category
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name:     "success",
			category: &models.Category{Name: "Cours"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE name = \?\)`).
					WithArgs("Cours").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO category`).
					WithArgs("Cours").
					WillReturnResult(sqlmock.NewResult(4, 1))
			},
			expectedID: 4,
		},
		{
			name:     "duplicate name",
			category: &models.Category{Name: "Général"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE name = \?\)`).
					WithArgs("Général").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectedError: models.ErrDuplicateName,
		},
		{
			name:     "database error on existence check",
			category: &models.Category{Name: "Cours"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE name = \?\)`).
					WithArgs("Cours").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to check category name"),
		},
		{
			name:     "database error on insert",
			category: &models.Category{Name: "Cours"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE name = \?\)`).
					WithArgs("Cours").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO category`).
					WithArgs("Cours").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to create category"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.category)

			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.category.ID)
			case errors.Is(tt.expectedError, models.ErrDuplicateName):
				assert.ErrorIs(t, err, models.ErrDuplicateName)
			default:
				assert.Error(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_ExistsByName(t *testing.T) {
	tests := []struct {
		name           string
		categoryName   string
		setupMock      func(sqlmock.Sqlmock)
		expectedExists bool
		expectedError  bool
	}{
		{
			name:         "name exists",
			categoryName: "Général",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE name = \?\)`).
					WithArgs("Général").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectedExists: true,
		},
		{
			name:         "name absent",
			categoryName: "Inconnu",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE name = \?\)`).
					WithArgs("Inconnu").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedExists: false,
		},
		{
			name:         "database error",
			categoryName: "Général",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE name = \?\)`).
					WithArgs("Général").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			exists, err := repo.ExistsByName(context.Background(), tt.categoryName)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedExists, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_ExistsByID(t *testing.T) {
	repo, mock, cleanup := setupCategoryTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE id = \?\)`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Count(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedCount int
		expectedError bool
	}{
		{
			name: "non-empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM category`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			},
			expectedCount: 3,
		},
		{
			name: "empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM category`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM category`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			count, err := repo.Count(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
