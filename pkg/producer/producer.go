package producer

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/storely/mission-engine/pkg/errors"
)

// Event types reported by the built-in producers.
const (
	EventTypeWeeklyRevenue     = "weekly_revenue"
	EventTypeMonthlyBestSeller = "monthly_best_seller"
)

// Store is a storefront together with its owning account.
type Store struct {
	ID      int64
	OwnerID int64
}

// StoreDirectory lists the stores a producer cycle iterates over.
type StoreDirectory interface {
	ListStores(ctx context.Context) ([]Store, error)
}

// OrderStats reduces a store's qualifying orders within a window to a single
// numeric observation.
type OrderStats interface {
	// CompletedRevenue sums the totals of completed orders in [from, to).
	CompletedRevenue(ctx context.Context, storeID int64, from, to time.Time) (float64, error)

	// BestSellerUnits returns the highest per-product unit count among
	// completed orders in [from, to).
	BestSellerUnits(ctx context.Context, storeID int64, from, to time.Time) (float64, error)
}

// ProgressTracker receives one observation per store per cycle.
type ProgressTracker interface {
	TrackProgress(ctx context.Context, ownerID int64, eventType string, value float64) error
}

// MetricFunc computes one store's observation for the window.
type MetricFunc func(ctx context.Context, storeID int64, from, to time.Time) (float64, error)

// Producer runs one periodic metric cycle: resolve the window, iterate every
// store, compute the observation and feed it to the tracker.
//
// A store with nothing to report still reports 0, so reset cycles apply and
// degenerate progress is recorded. A failure for one store is collected and
// the remaining stores still run; Run returns the aggregate.
type Producer struct {
	name      string
	eventType string
	window    WindowFunc
	metric    MetricFunc
	stores    StoreDirectory
	tracker   ProgressTracker
	loc       *time.Location
	logger    *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewWeeklyRevenueProducer reports each store's completed-order revenue for
// the previous calendar week.
func NewWeeklyRevenueProducer(stores StoreDirectory, orders OrderStats, tracker ProgressTracker, loc *time.Location, logger *slog.Logger) *Producer {
	return &Producer{
		name:      "weekly-revenue",
		eventType: EventTypeWeeklyRevenue,
		window:    PreviousWeek,
		metric:    orders.CompletedRevenue,
		stores:    stores,
		tracker:   tracker,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// NewMonthlyBestSellerProducer reports each store's best-selling product
// units for the previous calendar month.
func NewMonthlyBestSellerProducer(stores StoreDirectory, orders OrderStats, tracker ProgressTracker, loc *time.Location, logger *slog.Logger) *Producer {
	return &Producer{
		name:      "monthly-best-seller",
		eventType: EventTypeMonthlyBestSeller,
		window:    PreviousMonth,
		metric:    orders.BestSellerUnits,
		stores:    stores,
		tracker:   tracker,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// Name identifies the producer in logs and scheduler entries.
func (p *Producer) Name() string {
	return p.name
}

// EventType is the event key this producer reports under.
func (p *Producer) EventType() string {
	return p.eventType
}

// Run executes one cycle over all stores.
func (p *Producer) Run(ctx context.Context) error {
	from, to := p.window(p.now(), p.loc)

	stores, err := p.stores.ListStores(ctx)
	if err != nil {
		return errors.ErrDatabaseError("list stores for "+p.name, err)
	}

	p.logger.Info("Producer cycle started",
		"producer", p.name,
		"window_start", from,
		"window_end", to,
		"stores", len(stores),
	)

	var errs []error
	for _, store := range stores {
		value, err := p.metric(ctx, store.ID, from, to)
		if err != nil {
			p.logger.Error("Store metric computation failed",
				"producer", p.name,
				"store_id", store.ID,
				"error", err,
			)
			errs = append(errs, errors.ErrStoreMetricFailed(store.ID, p.eventType, err))
			continue
		}

		if err := p.tracker.TrackProgress(ctx, store.OwnerID, p.eventType, value); err != nil {
			p.logger.Error("Progress tracking failed for store",
				"producer", p.name,
				"store_id", store.ID,
				"owner_id", store.OwnerID,
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	p.logger.Info("Producer cycle finished",
		"producer", p.name,
		"stores", len(stores),
		"failures", len(errs),
	)

	return stderrors.Join(errs...)
}
