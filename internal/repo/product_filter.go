package repo

// ProductFilter narrows a product listing. Zero values disable a criterion.
type ProductFilter struct {
	Name       string
	Active     *bool
	CategoryID *int
	Offset     *int
	Limit      *int
}
