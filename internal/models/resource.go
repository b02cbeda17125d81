package models

// Resource represents a catalogued uploaded file
type Resource struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Filename    string    `json:"filename"`
	FileType    MediaType `json:"fileType"`
	CategoryID  int       `json:"categoryId"`
}

// ResourceListItem represents a resource in listing responses with its
// category name resolved through an explicit join
type ResourceListItem struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Filename     string    `json:"filename"`
	FileType     MediaType `json:"fileType"`
	CategoryID   int       `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
}

// ResourceFilter narrows resource listings. Call sites set at most one
// field: the public catalog filters by category, the admin listing by
// media type, never both.
type ResourceFilter struct {
	CategoryID *int
	MediaType  *MediaType
}
