package jobs

import (
	"context"
	"log"
	"time"

	"shopmart/internal/services"

	"github.com/go-co-op/gocron/v2"
)

const popularRefreshInterval = 5 * time.Minute

// CatalogWarmer periodically rebuilds the popular-products cache entry so the
// listing stays warm between invalidations.
type CatalogWarmer struct {
	scheduler  gocron.Scheduler
	productSvc services.ProductService
}

func NewCatalogWarmer(productSvc services.ProductService) (*CatalogWarmer, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	w := &CatalogWarmer{
		scheduler:  scheduler,
		productSvc: productSvc,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(popularRefreshInterval),
		gocron.NewTask(w.refreshPopular, context.Background()),
		gocron.WithName("popular-products-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (w *CatalogWarmer) Start() {
	log.Printf("Starting catalog cache warmer")
	w.scheduler.Start()
}

func (w *CatalogWarmer) Stop() error {
	log.Printf("Stopping catalog cache warmer")
	return w.scheduler.Shutdown()
}

func (w *CatalogWarmer) refreshPopular(ctx context.Context) {
	if err := w.productSvc.RefreshPopular(ctx); err != nil {
		log.Printf("WARN: popular products refresh failed: %v", err)
	}
}
