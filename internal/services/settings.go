package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/config"
)

// Settings carries the accounting knobs shared by the services
type Settings struct {
	ResidualThreshold decimal.Decimal
	LapsedMode        accounting.LapsedMode
	BookingDay        int
	AllowOverpay      bool
	DefaultCurrency   string
	ReportCacheTTL    time.Duration

	// Now is the as-of clock. Defaults to time.Now.
	Now func() time.Time
}

// SettingsFromConfig copies the accounting section of cfg
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		ResidualThreshold: cfg.ResidualThreshold,
		LapsedMode:        cfg.LapsedScheduleMode,
		BookingDay:        cfg.BookingDay,
		AllowOverpay:      cfg.AllowOverpay,
		DefaultCurrency:   cfg.DefaultCurrency,
		ReportCacheTTL:    cfg.ReportCacheTTL,
		Now:               time.Now,
	}
}

func (s Settings) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s Settings) currency(c string) string {
	if c != "" {
		return c
	}
	if s.DefaultCurrency != "" {
		return s.DefaultCurrency
	}
	return "HNL"
}
