package app

import (
	"context"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	healthCheckTimeout = 5 * time.Second
)

// Check is the result of pinging one dependency.
type Check struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthReport reports overall status and every dependency check.
type HealthReport struct {
	Status      string           `json:"status"`
	Timestamp   time.Time        `json:"timestamp"`
	Environment string           `json:"environment"`
	Checks      map[string]Check `json:"checks"`
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Health pings the database. The report is unhealthy if any check fails.
func (a *App) Health(ctx context.Context) *HealthReport {
	return checkHealth(ctx, a.Config.Primary.Env, map[string]pinger{"database": a.DB.Pool})
}

func checkHealth(ctx context.Context, env string, deps map[string]pinger) *HealthReport {
	report := &HealthReport{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: env,
		Checks:      make(map[string]Check, len(deps)),
	}

	for name, dep := range deps {
		ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		start := time.Now()
		err := dep.Ping(ctx)
		cancel()

		check := Check{Status: StatusHealthy, ResponseTime: time.Since(start).String()}
		if err != nil {
			check.Status = StatusUnhealthy
			check.Error = err.Error()
			report.Status = StatusUnhealthy
		}
		report.Checks[name] = check
	}
	return report
}
