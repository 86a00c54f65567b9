package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassifier] for the SQLite backend.
// It inspects the extended result code reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier]. If err is nil or is not a SQLite
// driver error, [KindOther] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return KindOther
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return KindOther
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return KindUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return KindForeignKeyViolation
	}

	return KindOther
}
