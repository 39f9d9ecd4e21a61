//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		kinds    []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		notFound bool
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantKind: infra.KindNotFound, notFound: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindConflict},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindConflict},
		{name: "anything else", err: errors.New("connection reset"), wantKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kinds: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound, notFound: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", tc.err, tc.kinds...)
			assert.True(t, infra.IsKind(err, tc.wantKind))
			assert.Equal(t, tc.notFound, errs.Is(err, errs.ErrNotFound))
		})
	}

	assert.True(t, errs.Is(infra.NotFound("reservation not found"), errs.ErrNotFound))
}
