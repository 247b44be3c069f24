// Package jobs tareas programadas con robfig/cron.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/gestion-stock/internal/domain/repository"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Scheduler envoltorio del cron con el logger de la app.
type Scheduler struct {
	sched *cron.Cron
	log   *logger.Logger
}

// NewScheduler crea el scheduler sin tareas.
func NewScheduler(log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{sched: cron.New(cron.WithParser(cronParser)), log: log}
}

// AddLowStockScan programa el escaneo de stock bajo. Horario vacío = no se programa.
func (s *Scheduler) AddLowStockScan(schedule string, productRepo repository.ProductRepository) error {
	if schedule == "" {
		return nil
	}
	scan := &LowStockScan{productRepo: productRepo, log: s.log}
	if _, err := s.sched.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := scan.Run(ctx); err != nil {
			s.log.Error().Err(err).Msg("escaneo de stock bajo")
		}
	}); err != nil {
		return fmt.Errorf("programar escaneo de stock bajo %q: %w", schedule, err)
	}
	return nil
}

// Start arranca el cron en segundo plano.
func (s *Scheduler) Start() { s.sched.Start() }

// Stop detiene el cron y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	<-s.sched.Stop().Done()
}

// LowStockScan registra un warning por cada producto bajo su mínimo (todos los dueños).
type LowStockScan struct {
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewLowStockScan construye la tarea.
func NewLowStockScan(productRepo repository.ProductRepository, log *logger.Logger) *LowStockScan {
	if log == nil {
		log = logger.Nop()
	}
	return &LowStockScan{productRepo: productRepo, log: log}
}

// Run devuelve cuántos productos están bajo el mínimo.
func (j *LowStockScan) Run(ctx context.Context) (int, error) {
	defer func() {
		if r := recover(); r != nil {
			j.log.Error().Interface("panic", r).Msg("escaneo de stock bajo")
		}
	}()
	list, err := j.productRepo.ListLowStock(ctx, "")
	if err != nil {
		return 0, err
	}
	for _, p := range list {
		j.log.Warn().
			Str("owner_id", p.OwnerID).
			Str("product_id", p.ID).
			Str("product", p.Name).
			Int("quantity", p.Quantity).
			Int("min_stock", p.MinStock).
			Msg("stock bajo")
	}
	j.log.Info().Int("count", len(list)).Msg("escaneo de stock bajo completado")
	return len(list), nil
}
