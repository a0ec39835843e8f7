package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	appinv "github.com/Zhima-Mochi/stockroom/internal/application/inventory"
	dominv "github.com/Zhima-Mochi/stockroom/internal/domain/inventory"
	"github.com/Zhima-Mochi/stockroom/internal/infrastructure/id"
	"github.com/Zhima-Mochi/stockroom/internal/infrastructure/jsonfile"
	"github.com/Zhima-Mochi/stockroom/internal/infrastructure/observability/oteltrace"
	"github.com/Zhima-Mochi/stockroom/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/stockroom/internal/infrastructure/observability/telemetry"
	"github.com/Zhima-Mochi/stockroom/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/stockroom/internal/observability"
	"github.com/Zhima-Mochi/stockroom/internal/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	serviceName := getenvDefault("SERVICE_NAME", "stockroom")
	env := getenvDefault("ENV", "dev")
	baseLogger := logging.MustNewLogger(serviceName, env)
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	systemLogger := logging.WithTrace(baseLogger, logging.SystemTraceID, logging.SystemSpanID)

	registry := prometrics.New("", "")
	counters := map[observability.MetricKey]observability.Counter{
		observability.MOperationRequests: registry.Counter(
			string(observability.MOperationRequests),
			"Total number of inventory operations.",
			"operation", "outcome",
		),
		observability.MSnapshotRequests: registry.Counter(
			string(observability.MSnapshotRequests),
			"Total number of snapshot load/save requests.",
			"operation", "outcome",
		),
	}
	histograms := map[observability.MetricKey]observability.Histogram{
		observability.MOperationDuration: registry.Histogram(
			string(observability.MOperationDuration),
			"Duration of inventory operations in seconds.",
			prometheus.DefBuckets,
			"operation",
		),
		observability.MSnapshotDuration: registry.Histogram(
			string(observability.MSnapshotDuration),
			"Duration of snapshot load/save requests in seconds.",
			prometheus.DefBuckets,
			"operation",
		),
	}

	tel := telemetry.New(
		oteltrace.New(serviceName),
		zaplogger.Wrap(baseLogger),
		counters,
		histograms,
	)

	store := appinv.NewService(jsonfile.New(), id.NewUUIDGenerator(), tel)
	ctx := context.Background()

	// Walkthrough of the store's whole surface.
	journal := &dominv.Journal{}
	store.AddItem(ctx, "apple", 10, journal)
	store.AddItem(ctx, "banana", -2, journal)
	store.AddItem(ctx, "", 3, journal) // ignored: empty identifier
	store.RemoveItem(ctx, "apple", 3)
	store.RemoveItem(ctx, "orange", 1) // unknown item, silent no-op

	qty, err := store.GetQuantity(ctx, "apple")
	if err != nil {
		systemLogger.Fatal("quantity_failed", zap.Error(err))
	}
	fmt.Println("Apple stock:", qty)
	fmt.Println("Low items:", store.LowStock(ctx, dominv.DefaultLowStockThreshold))

	if err := store.Save(ctx, dominv.DefaultSnapshotPath); err != nil {
		systemLogger.Fatal("save_failed", zap.Error(err))
	}
	if err := store.Load(ctx, dominv.DefaultSnapshotPath); err != nil {
		systemLogger.Fatal("load_failed", zap.Error(err))
	}
	if err := store.Report(ctx, os.Stdout); err != nil {
		systemLogger.Fatal("report_failed", zap.Error(err))
	}

	systemLogger.Info("journal",
		zap.Strings("entries", journal.Entries()),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
