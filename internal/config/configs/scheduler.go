package configs

import "time"

// Scheduler configures the timer-driven job dispatcher. SweepInterval is
// the cadence of the periodic evaluation pass; ResetCheckInterval is how
// often the dispatcher looks for a calendar-day rollover to fire the daily
// and monthly resets. CampaignTimeout bounds one campaign's evaluation
// inside a sweep.
type Scheduler struct {
	// Enabled turns the in-process dispatcher on. When false the jobs run
	// only via the /jobs HTTP triggers.
	Enabled bool `env:"ENABLED" envDefault:"true"`

	SweepInterval      time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	ResetCheckInterval time.Duration `env:"RESET_CHECK_INTERVAL" envDefault:"30s"`
	CampaignTimeout    time.Duration `env:"CAMPAIGN_TIMEOUT" envDefault:"10s"`
}
