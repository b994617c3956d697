package repo

import "strings"

// IsDuplicateKey reports whether err is a unique-constraint violation. Matched
// by message so both the postgres and mysql drivers are covered without
// depending on gorm.ErrDuplicatedKey translation being enabled.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
