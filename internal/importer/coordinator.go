package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gatewayops/gwshift/internal/logger"
	"github.com/gatewayops/gwshift/internal/model"
	"github.com/gatewayops/gwshift/internal/split"
	"github.com/gatewayops/gwshift/internal/transform"
	gwerrors "github.com/gatewayops/gwshift/pkg/errors"
)

// GatewayClient is the boundary to the target management API.
type GatewayClient interface {
	ExistsListenPath(ctx context.Context, listenPath string) (bool, error)
	CreateDefinition(ctx context.Context, def transform.APIDefinition) error
}

// Events carries optional per-unit progress callbacks. Callbacks may be
// invoked from worker goroutines.
type Events struct {
	UnitStarted  func(title string)
	UnitFinished func(res model.UnitResult)
}

// Options configures a Coordinator.
type Options struct {
	// Workers bounds concurrent imports. 1 reproduces the strictly
	// sequential reference behavior, attempting units in emission order.
	Workers int
	DryRun  bool
	Events  Events
}

// Coordinator drives units through the idempotent import: existence check,
// conditional create, per-unit outcome aggregation.
type Coordinator struct {
	client  GatewayClient
	log     *logger.Logger
	workers int
	dryRun  bool
	events  Events
}

// New creates a Coordinator for the given client.
func New(client GatewayClient, log *logger.Logger, opts Options) *Coordinator {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Coordinator{
		client:  client,
		log:     log,
		workers: workers,
		dryRun:  opts.DryRun,
		events:  opts.Events,
	}
}

// Run attempts every unit and aggregates the outcomes. Per-unit rejections
// are collected and never abort the run. A transport failure, or an
// indeterminate existence query, cancels in-flight and unstarted work:
// already-completed outcomes stay in the partial batch, the triggering unit
// and everything unstarted stay unattempted, and the fatal error is
// returned alongside the batch.
//
// Re-running against an unchanged source and target skips every unit and
// creates nothing.
func (c *Coordinator) Run(ctx context.Context, units []split.Unit) (*model.BatchResult, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*model.UnitResult, len(units))
	sem := make(chan struct{}, c.workers)

	var wg sync.WaitGroup
	var once sync.Once
	var fatalErr error

	for idx, unit := range units {
		select {
		case sem <- struct{}{}:
		case <-runCtx.Done():
		}
		if runCtx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(idx int, unit split.Unit) {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := c.importUnit(runCtx, unit)
			if err != nil {
				once.Do(func() {
					fatalErr = err
					cancel()
				})
				return
			}
			results[idx] = &res
		}(idx, unit)
	}

	wg.Wait()

	batch := &model.BatchResult{}
	for _, res := range results {
		if res == nil {
			// Unattempted after an abort; excluded from the counts.
			continue
		}
		batch.Record(*res)
	}

	if fatalErr != nil {
		batch.Aborted = true
		c.log.Error(fatalErr, "import aborted")
		return batch, fatalErr
	}

	return batch, nil
}

func (c *Coordinator) importUnit(ctx context.Context, unit split.Unit) (model.UnitResult, error) {
	if ctx.Err() != nil {
		return model.UnitResult{}, gwerrors.NewTransportError("import", ctx.Err())
	}

	if c.events.UnitStarted != nil {
		c.events.UnitStarted(unit.Title)
	}

	start := time.Now()
	log := c.log.WithFields(map[string]any{"unit": unit.Title, "listen_path": unit.Definition.ListenPath})

	res, err := c.attempt(ctx, unit, log)
	res.Title = unit.Title
	res.Duration = time.Since(start)
	res.Timestamp = time.Now()

	if err == nil && c.events.UnitFinished != nil {
		c.events.UnitFinished(res)
	}
	return res, err
}

func (c *Coordinator) attempt(ctx context.Context, unit split.Unit, log *logger.Logger) (model.UnitResult, error) {
	if c.dryRun {
		log.Info("dry-run: would import")
		return model.UnitResult{Status: model.StatusWouldImport, Message: "dry-run"}, nil
	}

	exists, err := c.client.ExistsListenPath(ctx, unit.Definition.ListenPath)
	if err != nil {
		// Indeterminate or unreachable: proceeding to create could
		// duplicate definitions, so the whole batch stops here.
		return model.UnitResult{}, err
	}
	if exists {
		log.Info("definition already present, skipping")
		return model.UnitResult{Status: model.StatusSkipped, Message: "already present on target"}, nil
	}

	err = c.client.CreateDefinition(ctx, unit.Definition)
	if err == nil {
		log.Info("definition imported")
		return model.UnitResult{Status: model.StatusImported, Message: "created"}, nil
	}

	var rejection *gwerrors.RejectionError
	if errors.As(err, &rejection) {
		log.Error(err, "definition rejected by target")
		return model.UnitResult{
			Status:  model.StatusFailed,
			Message: fmt.Sprintf("rejected (status %d)", rejection.StatusCode),
			Error:   err,
		}, nil
	}

	return model.UnitResult{}, err
}
