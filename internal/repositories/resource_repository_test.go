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

// setupResourceTestRepository creates a resource repository with a mock database
func setupResourceTestRepository(t *testing.T) (*resourceRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewResourceRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func intPtr(i int) *int {
	return &i
}

func mediaTypePtr(mt models.MediaType) *models.MediaType {
	return &mt
}

func TestNewResourceRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewResourceRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestResourceRepository_GetAll(t *testing.T) {
	columns := []string{"id", "title", "description", "filename", "file_type", "category_id", "category_name"}

	tests := []struct {
		name          string
		filter        models.ResourceFilter
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedLen   int
	}{
		{
			name:   "no filter returns everything",
			filter: models.ResourceFilter{},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "Rapport annuel", "Bilan 2023", "rapport_annuel.pdf", "pdf", 1, "Général").
					AddRow(2, "Photo de classe", "Rentrée", "photo_classe.jpg", "image", 2, "Photos").
					AddRow(3, "Tutoriel", "Prise en main", "tutoriel.mp4", "video", 1, "Général")
				mock.ExpectQuery(`SELECT r.id, r.title, r.description, r.filename, r.file_type, r.category_id, COALESCE\(c.name, ''\) AS category_name FROM resource r LEFT JOIN category c ON c.id = r.category_id ORDER BY r.id ASC`).
					WillReturnRows(rows)
			},
			expectedLen: 3,
		},
		{
			name:   "filter by category",
			filter: models.ResourceFilter{CategoryID: intPtr(2)},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(2, "Photo de classe", "Rentrée", "photo_classe.jpg", "image", 2, "Photos")
				mock.ExpectQuery(`FROM resource r LEFT JOIN category c ON c.id = r.category_id WHERE r.category_id = \? ORDER BY r.id ASC`).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name:   "filter by media type",
			filter: models.ResourceFilter{MediaType: mediaTypePtr(models.MediaTypeVideo)},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(3, "Tutoriel", "Prise en main", "tutoriel.mp4", "video", 1, "Général")
				mock.ExpectQuery(`FROM resource r LEFT JOIN category c ON c.id = r.category_id WHERE r.file_type = \? ORDER BY r.id ASC`).
					WithArgs(models.MediaTypeVideo).
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name:   "null description scans as empty string",
			filter: models.ResourceFilter{},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(4, "Sans description", nil, "brochure.pdf", "pdf", 1, "Général")
				mock.ExpectQuery(`FROM resource r LEFT JOIN category c ON c.id = r.category_id ORDER BY r.id ASC`).
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name:   "empty result",
			filter: models.ResourceFilter{CategoryID: intPtr(99)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE r.category_id = \? ORDER BY r.id ASC`).
					WithArgs(99).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedLen: 0,
		},
		{
			name:   "database error",
			filter: models.ResourceFilter{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM resource r`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupResourceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			resources, err := repo.GetAll(context.Background(), tt.filter)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, resources, tt.expectedLen)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResourceRepository_GetAllResolvesCategoryName(t *testing.T) {
	repo, mock, cleanup := setupResourceTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "filename", "file_type", "category_id", "category_name"}).
		AddRow(1, "Rapport annuel", "Bilan 2023", "rapport_annuel.pdf", "pdf", 1, "Général")
	mock.ExpectQuery(`FROM resource r LEFT JOIN category c ON c.id = r.category_id ORDER BY r.id ASC`).
		WillReturnRows(rows)

	resources, err := repo.GetAll(context.Background(), models.ResourceFilter{})

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, 1, resources[0].ID)
	assert.Equal(t, "Rapport annuel", resources[0].Title)
	assert.Equal(t, "Bilan 2023", resources[0].Description)
	assert.Equal(t, "rapport_annuel.pdf", resources[0].Filename)
	assert.Equal(t, models.MediaTypePDF, resources[0].FileType)
	assert.Equal(t, "Général", resources[0].CategoryName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "filename", "file_type", "category_id"}).
					AddRow(1, "Rapport annuel", "Bilan 2023", "rapport_annuel.pdf", "pdf", 1)
				mock.ExpectQuery(`SELECT id, title, description, filename, file_type, category_id FROM resource WHERE id = \? LIMIT 1`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "null description",
			id:   2,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "filename", "file_type", "category_id"}).
					AddRow(2, "Sans description", nil, "brochure.pdf", "pdf", 1)
				mock.ExpectQuery(`SELECT id, title, description, filename, file_type, category_id FROM resource WHERE id = \? LIMIT 1`).
					WithArgs(2).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			id:   42,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, filename, file_type, category_id FROM resource WHERE id = \? LIMIT 1`).
					WithArgs(42).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrNotFound,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, filename, file_type, category_id FROM resource WHERE id = \? LIMIT 1`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to get resource by id"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupResourceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			resource, err := repo.GetByID(context.Background(), tt.id)

			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
				require.NotNil(t, resource)
				assert.Equal(t, tt.id, resource.ID)
			case errors.Is(tt.expectedError, models.ErrNotFound):
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.Nil(t, resource)
			default:
				assert.Error(t, err)
				assert.Nil(t, resource)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResourceRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		resource      *models.Resource
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			resource: &models.Resource{
				Title:       "Rapport annuel",
				Description: "Bilan 2023",
				Filename:    "rapport_annuel.pdf",
				FileType:    models.MediaTypePDF,
				CategoryID:  1,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE id = \?\)`).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectExec(`INSERT INTO resource`).
					WithArgs("Rapport annuel", "Bilan 2023", "rapport_annuel.pdf", models.MediaTypePDF, 1).
					WillReturnResult(sqlmock.NewResult(9, 1))
			},
			expectedID: 9,
		},
		{
			name: "unknown category",
			resource: &models.Resource{
				Title:      "Rapport annuel",
				Filename:   "rapport_annuel.pdf",
				FileType:   models.MediaTypePDF,
				CategoryID: 99,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE id = \?\)`).
					WithArgs(99).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedError: models.ErrInvalidReference,
		},
		{
			name: "database error on reference check",
			resource: &models.Resource{
				Title:      "Rapport annuel",
				Filename:   "rapport_annuel.pdf",
				FileType:   models.MediaTypePDF,
				CategoryID: 1,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE id = \?\)`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to check category reference"),
		},
		{
			name: "database error on insert",
			resource: &models.Resource{
				Title:      "Rapport annuel",
				Filename:   "rapport_annuel.pdf",
				FileType:   models.MediaTypePDF,
				CategoryID: 1,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM category WHERE id = \?\)`).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectExec(`INSERT INTO resource`).
					WithArgs("Rapport annuel", "", "rapport_annuel.pdf", models.MediaTypePDF, 1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to create resource"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupResourceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.resource)

			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.resource.ID)
			case errors.Is(tt.expectedError, models.ErrInvalidReference):
				assert.ErrorIs(t, err, models.ErrInvalidReference)
			default:
				assert.Error(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResourceRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM resource WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   42,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM resource WHERE id = \?`).
					WithArgs(42).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: models.ErrNotFound,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM resource WHERE id = \?`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to delete resource"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupResourceTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), tt.id)

			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
			case errors.Is(tt.expectedError, models.ErrNotFound):
				assert.ErrorIs(t, err, models.ErrNotFound)
			default:
				assert.Error(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
