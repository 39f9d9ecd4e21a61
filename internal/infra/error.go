package infra

import (
	"errors"

	"github.com/antoninkin/parkmate-app/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound  RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure RepositoryErrorKind = "DB_FAILURE"
	KindConflict  RepositoryErrorKind = "CONFLICT"
)

const (
	pgErrCodeUniqueViolation = "23505"
	pgErrCodeCheckViolation  = "23514"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a driver error. An explicit kind overrides detection.
// Not-found errors carry the errs.ErrNotFound mark so use cases can match them
// without importing this package.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := detectKind(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	var out error = RepositoryError{Kind: kind, msg: msg, err: err}
	if kind == KindNotFound {
		out = errs.Mark(out, errs.ErrNotFound)
	}
	return out
}

func NotFound(msg string) error {
	return WrapRepoErr(msg, nil, KindNotFound)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func detectKind(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation, pgErrCodeCheckViolation:
			return KindConflict
		}
	}
	return KindDBFailure
}
