package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcatalog "github.com/erp/customeroptions/internal/application/catalog"
	"github.com/erp/customeroptions/internal/infrastructure/config"
	"github.com/erp/customeroptions/internal/infrastructure/faker"
	"github.com/erp/customeroptions/internal/infrastructure/fixture"
	"github.com/erp/customeroptions/internal/infrastructure/logger"
	"github.com/erp/customeroptions/internal/infrastructure/persistence"
	"github.com/erp/customeroptions/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/erp/customeroptions/cmd/seed"

func main() {
	var (
		configDir string
		opts      flags
	)

	flag.StringVar(&configDir, "config", "", "Directory containing config.toml (default: . and ./configs)")
	flag.StringVar(&opts.fixtures, "fixtures", "", "YAML fixture file (default: seed.fixtures from config)")
	flag.IntVar(&opts.random, "random", -1, "Number of random option groups to generate (overrides fixture and config)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Faker seed for reproducible data (0: config value or random)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.locale, "locale", "", "Locale of generated group names (default: seed.locale from config)")
	flag.Parse()

	var searchPaths []string
	if configDir != "" {
		searchPaths = append(searchPaths, configDir)
	}
	cfg, err := config.Load(searchPaths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	opts.apply(cfg)
	if err := config.ValidateLocale(cfg.Seed.Locale); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -locale: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	})
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	level, _ := logger.ParseLevel(cfg.Log.Level)
	log = lp.Tee(log, level)

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    time.Duration(cfg.Telemetry.MetricsExportInterval) * time.Second,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	metrics, err := telemetry.NewSeedMetrics(mp.Meter(tracerName))
	if err != nil {
		log.Fatal("Failed to register seed metrics", zap.Error(err))
	}

	start := time.Now()
	report, runErr := run(ctx, cfg, opts.random, tp.Tracer(tracerName), log)
	metrics.RecordRun(ctx, runStats(report), time.Since(start), runErr)

	if err := mp.Shutdown(context.Background()); err != nil {
		log.Warn("Failed to flush metrics", zap.Error(err))
	}
	if err := tp.Shutdown(context.Background()); err != nil {
		log.Warn("Failed to flush traces", zap.Error(err))
	}
	if err := lp.Shutdown(context.Background()); err != nil {
		log.Warn("Failed to flush logs", zap.Error(err))
	}
	if runErr != nil {
		log.Fatal("Seeding failed", zap.Error(runErr))
	}
}

func run(ctx context.Context, cfg *config.Config, randomOverride int, tracer trace.Tracer, log *zap.Logger) (*appcatalog.SeedReport, error) {
	ctx = logger.WithRunID(ctx, uuid.NewString())
	ctx = logger.WithContext(ctx, log)
	ctx, span := tracer.Start(ctx, "seed")
	defer span.End()

	l := logger.L(ctx)
	l.Info("Seed run started",
		zap.String("driver", cfg.Database.Driver),
		zap.String("fixtures", cfg.Seed.Fixtures),
		zap.Uint64("faker_seed", cfg.Seed.FakerSeed),
	)

	req, err := loadRequest(cfg.Seed, randomOverride)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("seed.option_groups", len(req.OptionGroups)),
		attribute.Int("seed.random_option_groups", req.RandomOptionGroups),
	)

	db, err := persistence.NewDatabase(&cfg.Database, log,
		persistence.WithSQLLogLevel(logger.MapGormLogLevel(cfg.Log.SQLLevel)),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(); err != nil {
		return nil, err
	}

	optionRepo := persistence.NewGormCustomerOptionRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	groupRepo := persistence.NewGormOptionGroupRepository(db.DB)

	factory := appcatalog.NewOptionGroupFactory(
		optionRepo,
		productRepo,
		faker.New(cfg.Seed.FakerSeed),
		log,
		appcatalog.WithLocale(cfg.Seed.Locale),
	)
	service := appcatalog.NewSeedService(factory, optionRepo, productRepo, groupRepo, log)

	report, err := service.Seed(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "seeding failed")
		return nil, err
	}

	for _, failure := range report.RandomFailures {
		l.Warn("Random option group skipped",
			zap.Int("index", failure.Index),
			zap.String("code", failure.Code),
			zap.Error(failure.Err),
		)
	}
	l.Info("Seed run finished",
		zap.Int("customer_options_created", report.CustomerOptionsCreated),
		zap.Int("customer_options_skipped", report.CustomerOptionsSkipped),
		zap.Int("products_created", report.ProductsCreated),
		zap.Int("products_skipped", report.ProductsSkipped),
		zap.Int("option_groups_created", report.OptionGroupsCreated),
		zap.Int("option_groups_skipped", report.OptionGroupsSkipped),
		zap.Int("random_failures", len(report.RandomFailures)),
	)
	return report, nil
}

// runStats converts a seed report for the run metrics; a nil report has no counts
func runStats(report *appcatalog.SeedReport) telemetry.RunStats {
	if report == nil {
		return telemetry.RunStats{}
	}
	return telemetry.RunStats{
		CustomerOptionsCreated: report.CustomerOptionsCreated,
		ProductsCreated:        report.ProductsCreated,
		OptionGroupsCreated:    report.OptionGroupsCreated,
		OptionGroupsSkipped:    report.OptionGroupsSkipped,
		RandomFailures:         len(report.RandomFailures),
	}
}

// loadRequest reads the configured fixture file, if any. A non-negative
// randomOverride replaces the random amount of the file and the config.
func loadRequest(seed config.SeedConfig, randomOverride int) (appcatalog.SeedRequest, error) {
	file := &fixture.File{}
	if seed.Fixtures != "" {
		var err error
		file, err = fixture.LoadFile(seed.Fixtures)
		if err != nil {
			return appcatalog.SeedRequest{}, err
		}
	}

	req := requestFromFixture(file)
	switch {
	case randomOverride >= 0:
		req.RandomOptionGroups = randomOverride
	case seed.RandomGroups > 0:
		req.RandomOptionGroups = seed.RandomGroups
	}
	return req, nil
}
