package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned when no meter is supplied.
var ErrMeterNil = errors.New("business metrics: meter cannot be nil")

// Order types used as the order_type attribute.
const (
	OrderTypeOnline = "online"
	OrderTypeWalkIn = "walkin"
)

// BusinessMetrics tracks storefront sales and stock health.
type BusinessMetrics struct {
	logger *zap.Logger

	ordersTotal        *Counter
	orderAmountCents   *Counter
	stockMovementUnits *Counter
	lowStockProducts   *Gauge

	lowStock LowStockCounter

	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once
}

// LowStockCounter reports how many products are at or below the low-stock threshold.
type LowStockCounter interface {
	LowStockCount(ctx context.Context) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter    metric.Meter
	Logger   *zap.Logger
	LowStock LowStockCounter
}

// NewBusinessMetrics creates the business counters and gauges on cfg.Meter.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		logger:   logger,
		lowStock: cfg.LowStock,
		stopChan: make(chan struct{}),
	}

	var err error
	if bm.ordersTotal, err = NewCounter(cfg.Meter,
		"garage_orders_total", "Orders placed online and walk-in sales recorded", "{orders}"); err != nil {
		return nil, err
	}
	if bm.orderAmountCents, err = NewCounter(cfg.Meter,
		"garage_order_amount_cents_total", "Order value in cents", "{cents}"); err != nil {
		return nil, err
	}
	if bm.stockMovementUnits, err = NewCounter(cfg.Meter,
		"garage_stock_movement_units_total", "Units moved through the inventory ledger", "{units}"); err != nil {
		return nil, err
	}
	if bm.lowStockProducts, err = NewGauge(cfg.Meter,
		"garage_low_stock_products", "Products below the low-stock threshold", "{products}"); err != nil {
		return nil, err
	}
	return bm, nil
}

// RecordOrderPlaced records a checkout and its total.
func (bm *BusinessMetrics) RecordOrderPlaced(ctx context.Context, total decimal.Decimal) {
	bm.ordersTotal.Inc(ctx, AttrOrderType.String(OrderTypeOnline))
	bm.orderAmountCents.Add(ctx, toCents(total), AttrOrderType.String(OrderTypeOnline))
}

// RecordWalkInSale records an in-store sale and its total.
func (bm *BusinessMetrics) RecordWalkInSale(ctx context.Context, paymentMethod string, total decimal.Decimal) {
	bm.ordersTotal.Inc(ctx,
		AttrOrderType.String(OrderTypeWalkIn),
		AttrPaymentMethod.String(paymentMethod),
	)
	bm.orderAmountCents.Add(ctx, toCents(total),
		AttrOrderType.String(OrderTypeWalkIn),
		AttrPaymentMethod.String(paymentMethod),
	)
}

// RecordStockMovement records units moved by a ledger entry. Negative units are
// recorded as their magnitude with direction "out".
func (bm *BusinessMetrics) RecordStockMovement(ctx context.Context, txType string, units int) {
	direction := "in"
	if units < 0 {
		direction = "out"
		units = -units
	}
	bm.stockMovementUnits.Add(ctx, int64(units),
		AttrTransactionType.String(txType),
		AttrDirection.String(direction),
	)
}

// RecordLowStockCount records the current low-stock product count.
func (bm *BusinessMetrics) RecordLowStockCount(ctx context.Context, count int64) {
	bm.lowStockProducts.Record(ctx, count)
}

func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// StartPeriodicCollection samples the low-stock gauge every interval
// (default 5 minutes) until Stop is called or ctx is done.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		go bm.runPeriodicCollection(ctx, interval)
	})
}

func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.collect(ctx)
	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			bm.collect(ctx)
		}
	}
}

func (bm *BusinessMetrics) collect(ctx context.Context) {
	if bm.lowStock == nil {
		return
	}
	count, err := bm.lowStock.LowStockCount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to count low-stock products", zap.Error(err))
		return
	}
	bm.RecordLowStockCount(ctx, count)
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}
