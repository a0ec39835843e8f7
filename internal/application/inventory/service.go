package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	dominv "github.com/Zhima-Mochi/stockroom/internal/domain/inventory"
	"github.com/Zhima-Mochi/stockroom/internal/infrastructure/id"
	"github.com/Zhima-Mochi/stockroom/internal/observability"
	"github.com/Zhima-Mochi/stockroom/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "inventory-store"
	spanPrefix  = "Store."

	opAdd      = "inventory.add"
	opRemove   = "inventory.remove"
	opQuantity = "inventory.quantity"
	opLowStock = "inventory.low_stock"
	opReport   = "inventory.report"
	opLoad     = "inventory.load"
	opSave     = "inventory.save"
)

type instruments struct {
	requests observability.Counter
	duration observability.Histogram
}

// Service fronts the inventory store with tracing, metrics, and
// structured completion logs on every operation. It adds no semantics of
// its own; the store's contract (silent no-ops included) passes through
// unchanged.
type Service struct {
	inv       *dominv.Inventory
	snapshots dominv.SnapshotStore
	ids       id.Generator

	log    observability.Logger
	tracer observability.Tracer
	ops    instruments
	snaps  instruments
}

func NewService(snapshots dominv.SnapshotStore, ids id.Generator, tel observability.Observability) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	metrics := tel.Metrics()
	return &Service{
		inv:       dominv.New(),
		snapshots: snapshots,
		ids:       ids,
		log: tel.Logger().With(
			observability.F("service", serviceName),
		),
		tracer: tel.Tracer(),
		ops: instruments{
			requests: metrics.Counter(observability.MOperationRequests),
			duration: metrics.Histogram(observability.MOperationDuration),
		},
		snaps: instruments{
			requests: metrics.Counter(observability.MSnapshotRequests),
			duration: metrics.Histogram(observability.MSnapshotDuration),
		},
	}
}

// AddItem adjusts stock for item by qty. Empty identifiers are silently
// ignored; a non-nil journal receives a timestamped record.
func (s *Service) AddItem(ctx context.Context, item string, qty int, journal *dominv.Journal) {
	_, finish := s.begin(ctx, s.ops, opAdd, "Add",
		attribute.String("item.id", item),
		attribute.Int("item.quantity", qty),
	)
	s.inv.Add(item, qty, journal)
	finish(nil)
}

// RemoveItem deducts qty from item. Removing an unknown item is a no-op.
func (s *Service) RemoveItem(ctx context.Context, item string, qty int) {
	_, finish := s.begin(ctx, s.ops, opRemove, "Remove",
		attribute.String("item.id", item),
		attribute.Int("item.quantity", qty),
	)
	s.inv.Remove(item, qty)
	finish(nil)
}

// GetQuantity reports the stock on hand for item. Unknown items surface
// inventory.ErrNotFound.
func (s *Service) GetQuantity(ctx context.Context, item string) (_ int, err error) {
	_, finish := s.begin(ctx, s.ops, opQuantity, "Quantity",
		attribute.String("item.id", item),
	)
	defer func() { finish(err) }()

	return s.inv.Quantity(item)
}

// LowStock lists the items with quantity strictly below threshold.
func (s *Service) LowStock(ctx context.Context, threshold int) []string {
	_, finish := s.begin(ctx, s.ops, opLowStock, "LowStock",
		attribute.Int("stock.threshold", threshold),
	)
	low := s.inv.LowStock(threshold)
	finish(nil)
	return low
}

// Report writes the human-readable stock listing to w.
func (s *Service) Report(ctx context.Context, w io.Writer) (err error) {
	_, finish := s.begin(ctx, s.ops, opReport, "Report")
	defer func() { finish(err) }()

	return s.inv.Report(w)
}

// Load replaces the whole mapping with the snapshot at path. An empty
// path means the default snapshot location.
func (s *Service) Load(ctx context.Context, path string) (err error) {
	if path == "" {
		path = dominv.DefaultSnapshotPath
	}
	ctx, finish := s.begin(ctx, s.snaps, opLoad, "Load",
		attribute.String("snapshot.path", path),
	)
	defer func() { finish(err) }()

	data, err := s.snapshots.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("inventory: load: %w", err)
	}
	s.inv.Replace(data)
	return nil
}

// Save persists the whole mapping to path. An empty path means the
// default snapshot location.
func (s *Service) Save(ctx context.Context, path string) (err error) {
	if path == "" {
		path = dominv.DefaultSnapshotPath
	}
	ctx, finish := s.begin(ctx, s.snaps, opSave, "Save",
		attribute.String("snapshot.path", path),
	)
	defer func() { finish(err) }()

	if err := s.snapshots.Save(ctx, path, s.inv.Snapshot()); err != nil {
		return fmt.Errorf("inventory: save: %w", err)
	}
	return nil
}

// begin opens a span and returns a finish callback that closes it,
// records the operation metrics, and emits the completion log.
func (s *Service) begin(ctx context.Context, ins instruments, op, spanName string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	opID := ""
	if s.ids != nil {
		opID = s.ids.NewID()
	}

	logger := logctx.FromOr(ctx, s.log).With(
		observability.F("operation", op),
		observability.F("op_id", opID),
	)

	attrs = append(attrs,
		attribute.String("operation", op),
		attribute.String("op.id", opID),
	)
	ctx, span := s.tracer.Start(ctx, spanPrefix+spanName, attrs...)
	start := time.Now()

	return ctx, func(err error) {
		outcome, statusText := "success", "OK"
		if err != nil {
			outcome, statusText = "error", "FAILED"
		}

		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, statusText)
			} else {
				span.SetStatus(codes.Ok, statusText)
			}
			span.End()
		}

		latency := time.Since(start).Seconds()
		if ins.requests != nil {
			ins.requests.Add(1,
				observability.L("operation", op),
				observability.L("outcome", outcome),
			)
		}
		if ins.duration != nil {
			ins.duration.Observe(latency,
				observability.L("operation", op),
			)
		}

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", latency),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}

		logger.Info("operation_done", fields...)
	}
}
