package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rateTableFile mirrors PricingConfig; fields left out of the file keep their env value.
type rateTableFile struct {
	TimeZone     *string   `yaml:"timezone"`
	DayStartHour *int      `yaml:"day_start_hour"`
	DayEndHour   *int      `yaml:"day_end_hour"`
	Day          *bandFile `yaml:"day"`
	Night        *bandFile `yaml:"night"`
}

type bandFile struct {
	MinimumCharge     *float64 `yaml:"minimum_charge"`
	FirstTwoHoursFlat *float64 `yaml:"first_two_hours"`
	PerHourAfterTwo   *float64 `yaml:"per_hour_after_two"`
}

// ApplyRateTableFile overlays the YAML file named by RATE_TABLE_FILE, if any.
func (p PricingConfig) ApplyRateTableFile() (PricingConfig, error) {
	if p.RateTableFile == "" {
		return p, nil
	}

	data, err := os.ReadFile(p.RateTableFile)
	if err != nil {
		return p, fmt.Errorf("failed to read rate table: %w", err)
	}

	var file rateTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return p, fmt.Errorf("failed to parse rate table %s: %w", p.RateTableFile, err)
	}

	setString(&p.TimeZone, file.TimeZone)
	setInt(&p.DayStartHour, file.DayStartHour)
	setInt(&p.DayEndHour, file.DayEndHour)
	if file.Day != nil {
		setFloat(&p.DayMinimumCharge, file.Day.MinimumCharge)
		setFloat(&p.DayFirstTwoHoursFlat, file.Day.FirstTwoHoursFlat)
		setFloat(&p.DayPerHourAfterTwo, file.Day.PerHourAfterTwo)
	}
	if file.Night != nil {
		setFloat(&p.NightMinimumCharge, file.Night.MinimumCharge)
		setFloat(&p.NightFirstTwoHoursFlat, file.Night.FirstTwoHoursFlat)
		setFloat(&p.NightPerHourAfterTwo, file.Night.PerHourAfterTwo)
	}
	return p, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
