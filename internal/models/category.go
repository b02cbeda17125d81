package models

// Category represents a named grouping that resources reference
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
