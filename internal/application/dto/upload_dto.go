package dto

// UploadedFile result for one file of an upload batch.
type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Err  string `json:"error,omitempty"`
}

// UploadResponse batch result. Succeeded counts files that got a URL; a
// single failed file never aborts the rest of the batch.
type UploadResponse struct {
	Files     []UploadedFile `json:"files"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// TrackRequest one page-view beacon from the storefront.
type TrackRequest struct {
	VisitorID string `json:"visitor_id"`
	SessionID string `json:"session_id"`
	Path      string `json:"path" validate:"required"`
	Referrer  string `json:"referrer"`
	ProductID string `json:"product_id"`
	Locale    string `json:"locale"`
}

// TrackResponse echoes the (possibly rotated) identifiers so the client can
// persist them. Always returned, even when the write silently failed.
type TrackResponse struct {
	VisitorID string `json:"visitor_id"`
	SessionID string `json:"session_id"`
}
