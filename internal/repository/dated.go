package repository

import (
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pageByDate applies the user scope, date range and cursor to a query over a
// table with a date column, ordered newest first. One extra row is fetched so
// callers can tell whether another page exists.
func pageByDate(query *gorm.DB, column string, userID uuid.UUID, filter domain.ListFilter) (*gorm.DB, error) {
	query = query.
		Where("user_id = ?", userID).
		Order(column + " DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where(column+" >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where(column+" <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// For DESC order: rows strictly before the cursor position
		query = query.Where(
			"("+column+" < ?) OR ("+column+" = ? AND id < ?)",
			cursor.Date, cursor.Date, cursor.ID,
		)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	return query.Limit(limit + 1), nil
}

// rangeByDate selects a user's rows with from <= column <= to in ascending order.
func rangeByDate(query *gorm.DB, column string, userID uuid.UUID, from, to time.Time) *gorm.DB {
	return query.
		Where("user_id = ?", userID).
		Where(column+" >= ? AND "+column+" <= ?", from, to).
		Order(column + " ASC")
}

// onUserDateConflict updates the given columns when a row for the same user
// and day already exists.
func onUserDateConflict(columns ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}
}
