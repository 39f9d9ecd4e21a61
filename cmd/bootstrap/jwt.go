package bootstrap

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/pkg/jwt"

	"go.uber.org/fx"
)

// Only used when this service mints a token itself (tests, local tooling);
// production tokens come from the auth provider with their own expiry.
const localTokenDuration = time.Hour

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, localTokenDuration, clk)
}
