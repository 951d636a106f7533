package dto

// PageResponse page metadata in list responses.
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// CursorPageResponse cursor metadata for admin lists: pass NextCursor back as
// the "before" parameter to fetch the next page. Empty when exhausted.
type CursorPageResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
