package models

// ListQuery carries the catalog listing parameters. Page is 1-indexed.
type ListQuery struct {
	Limit    int
	Page     int
	Sort     string // "asc" sorts by price ascending, any other non-empty value descending
	Query    string // case-insensitive title substring
	Category string
	Stock    string // "disponible" (stock > 0) or "agotado" (stock == 0)
}

// ProductFilter is the storage-level filter derived from a ListQuery.
type ProductFilter struct {
	Category string
	Title    string
	Stock    string
}

// ProductPage is the paginated listing envelope.
type ProductPage struct {
	Status      string    `json:"status"`
	Payload     []Product `json:"payload"`
	TotalPages  int       `json:"totalPages"`
	PrevPage    *int      `json:"prevPage"`
	NextPage    *int      `json:"nextPage"`
	Page        int       `json:"page"`
	HasPrevPage bool      `json:"hasPrevPage"`
	HasNextPage bool      `json:"hasNextPage"`
	PrevLink    *string   `json:"prevLink"`
	NextLink    *string   `json:"nextLink"`
}
