package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows must be treated as not found")
	}
	if !isNotFound(fmt.Errorf("get row: %w", sql.ErrNoRows)) {
		t.Fatal("wrapped sql.ErrNoRows must be treated as not found")
	}
	if isNotFound(fmt.Errorf("connection refused")) {
		t.Fatal("arbitrary errors must not be treated as not found")
	}
	if isNotFound(nil) {
		t.Fatal("nil must not be treated as not found")
	}
}
