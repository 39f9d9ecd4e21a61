//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenMinter stands in for the external auth provider.
type TokenMinter struct {
	cfg config.JWTConfig
}

func NewTokenMinter(cfg config.JWTConfig) *TokenMinter {
	return &TokenMinter{cfg: cfg}
}

func (m *TokenMinter) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(m.cfg.Secret, time.Hour, clock.NewRealClock())
	token, err := service.GenerateToken(userID, role.String())
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token that expired an hour ago.
func (m *TokenMinter) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issuedAt := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(m.cfg.Secret, time.Hour, issuedAt)
	token, err := service.GenerateToken(userID, role.String())
	require.NoError(t, err)
	return token
}

// NewUser returns a fresh user id with a valid token for it.
func (m *TokenMinter) NewUser(t *testing.T, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, m.GenerateToken(t, id, role)
}
