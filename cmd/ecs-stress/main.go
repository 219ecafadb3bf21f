package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/chronos/components"
	"github.com/plus3/chronos/ecs"
	"github.com/plus3/chronos/internal/config"
	"github.com/plus3/chronos/internal/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "Path to the INI config file.")
	envFile := flag.String("env", ".env", "Optional dotenv file with CHRONOS_* overrides.")
	duration := flag.Duration("duration", 0, "Overrides stress.duration when non-zero.")
	entityCount := flag.Int("entities", 0, "Overrides stress.entities when non-zero.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.LoadEnv(cfg, *envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *duration > 0 {
		cfg.Stress.Duration = *duration
	}
	if *entityCount > 0 {
		cfg.Stress.Entities = *entityCount
	}

	logger, err := logging.New(cfg.Log.Level, "ecs-stress")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	switch cfg.Stress.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	report := run(cfg, logger)
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

func run(cfg *config.Config, logger *zap.Logger) *Report {
	rng := rand.New(rand.NewSource(cfg.Stress.Seed))
	manager := ecs.NewEntityManager(cfg.Core.InitialCapacity, ecs.WithLogger(logger.Named("ecs")))

	logger.Info("populating entity manager", zap.Int("entities", cfg.Stress.Entities))
	live := make([]ecs.EntityId, 0, cfg.Stress.Entities)
	for i := 0; i < cfg.Stress.Entities; i++ {
		live = append(live, manager.CreateEntity(randomBundle(rng)...))
	}

	report := &Report{
		Duration:        cfg.Stress.Duration,
		Entities:        cfg.Stress.Entities,
		Churn:           cfg.Stress.Churn,
		InitialCapacity: cfg.Core.InitialCapacity,
		UpdateTime: FrameTimings{
			Samples: make([]time.Duration, 0),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running churn loop", zap.Duration("duration", cfg.Stress.Duration), zap.Int("churn", cfg.Stress.Churn))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Stress.Duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			frame(manager, rng, live, cfg.Stress.Churn, report)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Final = manager.Stats()
	report.Process = sampleProcess(logger)

	logger.Info("stress test complete",
		zap.Int64("updates", report.TotalUpdates),
		zap.Int("entities", report.Final.EntityCount),
		zap.Int("capacity", report.Final.Capacity))
	return report
}

// frame replaces churn random entities and reads every shape the way a
// renderer would.
func frame(manager *ecs.EntityManager, rng *rand.Rand, live []ecs.EntityId, churn int, report *Report) {
	if len(live) == 0 {
		churn = 0
	}
	for i := 0; i < churn; i++ {
		slot := rng.Intn(len(live))
		if err := manager.RemoveEntity(live[slot]); err != nil {
			report.Errors++
			continue
		}
		live[slot] = manager.CreateEntity(randomBundle(rng)...)
		report.Replaced++
	}

	shapes := ecs.Column[components.Shape](manager.Directory())
	if shapes == nil {
		return
	}
	for i, owner := range shapes.Owners() {
		color := ecs.ReadComponent[components.Color](manager, owner)
		if color != nil && len(shapes.Values()[i].Vertices()) > 0 {
			report.Drawn++
		}
	}
}
