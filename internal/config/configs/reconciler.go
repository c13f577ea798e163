package configs

import "time"

// Reconciler configures the background loop that re-runs milestone
// advancement for campaigns whose active milestone is already funded. It
// exists to pick up advances lost when the post-commit sequencer step fails.
type Reconciler struct {
	// Enabled toggles the loop. Disabled by default for one-off tooling.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Interval is the sweep period.
	Interval time.Duration `env:"INTERVAL" envDefault:"1m"`
}
