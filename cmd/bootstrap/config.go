package bootstrap

import (
	"fmt"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
		NewRateTable,
		NewCommandsConfig,
	),
)

// LoadConfig reads the environment and then the optional rate table file.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	cfg.Pricing, err = cfg.Pricing.ApplyRateTableFile()
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func NewRateTable(cfg config.Config) (pricing.RateTable, error) {
	p := cfg.Pricing
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return pricing.RateTable{}, fmt.Errorf("invalid PRICING_TIMEZONE %q: %w", p.TimeZone, err)
	}

	day, err := bandRate(p.DayMinimumCharge, p.DayFirstTwoHoursFlat, p.DayPerHourAfterTwo)
	if err != nil {
		return pricing.RateTable{}, fmt.Errorf("invalid day rates: %w", err)
	}
	night, err := bandRate(p.NightMinimumCharge, p.NightFirstTwoHoursFlat, p.NightPerHourAfterTwo)
	if err != nil {
		return pricing.RateTable{}, fmt.Errorf("invalid night rates: %w", err)
	}

	table, err := pricing.NewRateTable(pricing.Config{
		Location:     loc,
		DayStartHour: p.DayStartHour,
		DayEndHour:   p.DayEndHour,
		Day:          day,
		Night:        night,
	})
	if err != nil {
		return pricing.RateTable{}, fmt.Errorf("invalid rate table: %w", err)
	}
	return table, nil
}

func bandRate(minimum, firstTwo, perHour float64) (pricing.BandRate, error) {
	var (
		r   pricing.BandRate
		err error
	)
	if r.MinimumCharge, err = pricing.MoneyFromAmount(minimum); err != nil {
		return pricing.BandRate{}, err
	}
	if r.FirstTwoHoursFlat, err = pricing.MoneyFromAmount(firstTwo); err != nil {
		return pricing.BandRate{}, err
	}
	if r.PerHourAfterTwo, err = pricing.MoneyFromAmount(perHour); err != nil {
		return pricing.BandRate{}, err
	}
	return r, nil
}

func NewCommandsConfig(cfg config.Config) commands.Config {
	return commands.Config{
		GatewayTimeout:  cfg.Lifecycle.GatewayTimeout,
		EventTopic:      cfg.Kafka.Topic,
		ExpiryBatchSize: cfg.Lifecycle.ExpiryBatchSize,
	}
}
