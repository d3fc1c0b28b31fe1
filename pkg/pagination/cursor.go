package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned for a cursor that does not decode to a position.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is the position of the last returned row in a list ordered by
// (date DESC, id DESC).
type Cursor struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"`
}

// Encode encodes the cursor to a base64 string
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a base64 cursor string. An empty string yields a nil cursor.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, ErrInvalidCursor
	}
	if cursor.ID == uuid.Nil || cursor.Date.IsZero() {
		return nil, ErrInvalidCursor
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page trims a result fetched with limit+1 rows and returns the cursor for the
// next page. next is empty when there are no more rows.
func Page[T any](rows []T, limit int, position func(T) Cursor) (page []T, next string, hasMore bool) {
	limit = NormalizeLimit(limit)
	hasMore = len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	if hasMore && len(rows) > 0 {
		c := position(rows[len(rows)-1])
		next = c.Encode()
	}
	return rows, next, hasMore
}
