package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// maxRows caps listings that come without an explicit limit.
const maxRows = 500

type scanner interface {
	Scan(dest ...any) error
}

type txExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// jsonDoc marshals v for a nullable JSONB column.
func jsonDoc(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func limitArg(limit int) int {
	if limit <= 0 || limit > maxRows {
		return maxRows
	}
	return limit
}
