//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	serialization := infra.WrapRepoErr("debit", &pgconn.PgError{Code: pgErrCodeSerializationFailure})
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, shouldRetry(serialization, 0, 3), "wrapped serialization failure")
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3), "out of attempts")
	assert.False(t, shouldRetry(unique, 0, 3))
	assert.False(t, shouldRetry(errors.New("location full"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}
