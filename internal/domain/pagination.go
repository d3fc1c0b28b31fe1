package domain

import "time"

// DateLayout is the calendar-day format used in requests and query parameters.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar day in DateLayout as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// ListFilter contains filter parameters for listing dated records
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
