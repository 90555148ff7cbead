package overdue_alert

import (
	"context"
	"time"

	"fastship/pkg/logger"
)

type Service interface {
	DispatchOverdueAlerts(ctx context.Context, window time.Duration) (int64, error)
}

// OverdueAlert periodically mails delivery partners about shipments
// still out for delivery past their estimate.
type OverdueAlert struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	window   time.Duration
}

func NewOverdueAlert(log logger.Logger, service Service, interval, window time.Duration) *OverdueAlert {
	return &OverdueAlert{
		log:      log,
		service:  service,
		interval: interval,
		window:   window,
	}
}

func (o *OverdueAlert) TTL() time.Duration {
	return o.interval
}

func (o *OverdueAlert) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	dispatched, err := o.service.DispatchOverdueAlerts(ctxWithTimeout, o.window)

	if dispatched > 0 {
		o.log.With(
			logger.NewField("overdue_shipments", dispatched),
		).Info("overdue alert")
	}

	return err
}

func (o *OverdueAlert) Info() string {
	return "overdue alert"
}
