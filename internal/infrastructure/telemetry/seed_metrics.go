package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when seed metrics are created without a meter
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// RunStats are the outcome counts of one seeding run
type RunStats struct {
	CustomerOptionsCreated int
	ProductsCreated        int
	OptionGroupsCreated    int
	OptionGroupsSkipped    int
	RandomFailures         int
}

// SeedMetrics records seeding runs
type SeedMetrics struct {
	customerOptionsCreated metric.Int64Counter
	productsCreated        metric.Int64Counter
	optionGroupsCreated    metric.Int64Counter
	optionGroupsSkipped    metric.Int64Counter
	randomFailures         metric.Int64Counter
	runDuration            metric.Float64Histogram
}

// NewSeedMetrics registers the seeding instruments on meter
func NewSeedMetrics(meter metric.Meter) (*SeedMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	var (
		m   SeedMetrics
		err error
	)
	counters := []struct {
		dst         *metric.Int64Counter
		name        string
		description string
		unit        string
	}{
		{&m.customerOptionsCreated, "seed_customer_options_created_total", "Customer options created by seeding", "{options}"},
		{&m.productsCreated, "seed_products_created_total", "Products created by seeding", "{products}"},
		{&m.optionGroupsCreated, "seed_option_groups_created_total", "Option groups created by seeding", "{groups}"},
		{&m.optionGroupsSkipped, "seed_option_groups_skipped_total", "Option groups skipped because their code already exists", "{groups}"},
		{&m.randomFailures, "seed_random_failures_total", "Generated option groups that could not be built", "{groups}"},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name,
			metric.WithDescription(c.description),
			metric.WithUnit(c.unit),
		)
		if err != nil {
			return nil, err
		}
	}

	m.runDuration, err = meter.Float64Histogram("seed_run_duration_seconds",
		metric.WithDescription("Duration of seeding runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordRun records the counts and duration of a finished run.
// A failed run only records its duration.
func (m *SeedMetrics) RecordRun(ctx context.Context, stats RunStats, elapsed time.Duration, runErr error) {
	status := "success"
	if runErr != nil {
		status = "error"
	}
	m.runDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("status", status)))
	if runErr != nil {
		return
	}

	m.customerOptionsCreated.Add(ctx, int64(stats.CustomerOptionsCreated))
	m.productsCreated.Add(ctx, int64(stats.ProductsCreated))
	m.optionGroupsCreated.Add(ctx, int64(stats.OptionGroupsCreated))
	m.optionGroupsSkipped.Add(ctx, int64(stats.OptionGroupsSkipped))
	m.randomFailures.Add(ctx, int64(stats.RandomFailures))
}
