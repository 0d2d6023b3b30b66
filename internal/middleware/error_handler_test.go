package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/gulfrate/gulfrate/internal/repository"
)

func TestMapDBError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"not found sentinel", repository.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("update rate: %w", repository.ErrNotFound), http.StatusNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest},
		{"check violation", &pgconn.PgError{Code: "23514"}, http.StatusBadRequest},
		{"unknown pg error", &pgconn.PgError{Code: "42P01"}, http.StatusInternalServerError},
		{"generic error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := MapDBError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
