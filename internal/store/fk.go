package store

import (
	"errors"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsForeignKeyViolation reports whether err is a sqlite foreign-key constraint
// failure. Handlers surface these as referential conflicts ("remove dependent
// resources first") instead of generic internal errors.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
			code == sqlite3.SQLITE_CONSTRAINT_TRIGGER
	}
	// The driver occasionally flattens constraint failures into plain errors.
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
