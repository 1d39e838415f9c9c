package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// NextSuffixID scans the highest numeric suffix in column and returns
// "PREFIX-(max+1)". The read and the following insert are not atomic, so
// concurrent creators can compute the same id; callers run it inside the
// same statement ordering as the insert and accept that limitation.
func NextSuffixID(db *gorm.DB, table, column, prefix string) (string, error) {
	var max int64
	start := len(prefix) + 2 // 1-based, past "PREFIX-"
	q := fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(%s, ?) AS INTEGER)), 0) FROM %s", column, table)
	if err := db.Raw(q, start).Scan(&max).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d", prefix, max+1), nil
}
