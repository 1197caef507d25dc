package dto

// PaginationInfo describes the position of a page within a list result.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// SuccessResponse represents a standard success message for operations
// that have no entity payload.
type SuccessResponse struct {
	Message string `json:"message"`
}

// BulkActionResult reports the outcome of an admin bulk action. Matched is
// the number of rows addressed by the id set, not the number whose values
// changed, so re-running an action reports the same count.
type BulkActionResult struct {
	Action  string `json:"action"`
	Matched int64  `json:"matched"`
}
