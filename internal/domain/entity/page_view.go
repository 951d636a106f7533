package entity

import "time"

// PageView is a best-effort telemetry row. Writes never surface errors to the
// visitor; failures are logged and dropped.
type PageView struct {
	ID        string
	VisitorID string // stable per browser
	SessionID string // rotates after 30 minutes of inactivity
	Path      string
	Referrer  string
	ProductID string // set when the view is a product detail page
	Locale    string
	CreatedAt time.Time
}
