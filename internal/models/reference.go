package models

// NamedEntity is a row of one of the id/name reference tables
// (company types, document types, categories, units, roles, positions,
// subdivisions and storage conditions).
type NamedEntity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
