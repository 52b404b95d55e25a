package pricing

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"logistics.app/pricing/business/admin"
	"logistics.app/pricing/business/changelog"
	"logistics.app/pricing/business/resolver"
	"logistics.app/pricing/business/snapshot"
	"logistics.app/pricing/domain"
	"logistics.app/pricing/store"
	"logistics.app/pricing/workflow"
)

var pricingDB = sqldb.NewDatabase("pricing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	resolver  resolver.Business
	snapshots snapshot.Business
	admin     admin.Business
	changeLog changelog.Business

	temporal  client.Client
	worker    worker.Worker
	taskQueue string
	quoteTTL  time.Duration
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(pricingDB)

	rlog.Info("Initializing Store")
	transactor := domain.NewPgTransactor(pgxdb, store.NewStore(pgxdb))

	resolverBusiness := resolver.NewResolverBusiness(transactor)
	snapshotBusiness := snapshot.NewSnapshotBusiness(transactor)
	changeLogBusiness := changelog.NewChangeLogBusiness(
		transactor,
		int32(cfg.ChangeLog.DefaultLimit()),
		int32(cfg.ChangeLog.MaxLimit()),
	)
	adminBusiness := admin.NewAdminBusiness(transactor, changeLogBusiness)

	taskQueue := cfg.Temporal.TaskQueue()
	rlog.Info("Connecting to Temporal", "host", cfg.Temporal.HostPort(), "namespace", cfg.Temporal.Namespace(), "task_queue", taskQueue)
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort(),
		Namespace: cfg.Temporal.Namespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(resolverBusiness, snapshotBusiness)

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.OrderPricing)
	w.RegisterActivity(workflow.ResolveFeeActivity)
	w.RegisterActivity(workflow.RecordOrderPriceActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	return &Service{
		resolver:  resolverBusiness,
		snapshots: snapshotBusiness,
		admin:     adminBusiness,
		changeLog: changeLogBusiness,
		temporal:  temporalClient,
		worker:    w,
		taskQueue: taskQueue,
		quoteTTL:  quoteTTL(),
	}, nil
}

// Shutdown stops the worker before closing the client it polls through.
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
