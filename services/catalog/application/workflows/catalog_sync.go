// Package workflows runs catalog syncs as Temporal workflows so scheduled
// syncs get durable retries and history.
package workflows

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
)

const (
	// WorkflowName is the registered name of CatalogSyncWorkflow.
	WorkflowName = "CatalogSyncWorkflow"
	// ScheduleID identifies the periodic sync schedule.
	ScheduleID = "catalog-sync"

	errTypeNonRetryable = "CatalogSyncNonRetryable"
)

// Syncer runs one catalog sync. *services.CatalogService satisfies it.
type Syncer interface {
	Sync(ctx context.Context, mode models.SyncMode) (models.Result, error)
}

// Activities holds the catalog sync activity.
type Activities struct {
	Catalog Syncer
}

// SyncCatalog runs one sync. An invalid mode can never succeed and fails the
// workflow at once; every other error is retried per the workflow's policy.
func (a *Activities) SyncCatalog(ctx context.Context, mode models.SyncMode) (models.Result, error) {
	res, err := a.Catalog.Sync(ctx, mode)
	if err == nil {
		activity.GetLogger(ctx).Info("catalog synced",
			"mode", res.Mode, "inserted", res.Inserted, "updated", res.Updated)
		return res, nil
	}
	if errors.Is(err, catalogdomain.ErrInvalidSyncMode) {
		return models.Result{}, temporal.NewNonRetryableApplicationError(err.Error(), errTypeNonRetryable, err)
	}
	return models.Result{}, err
}

// activityOptions: a source outage or a concurrent run is retried with
// backoff for roughly half an hour before the run is given up.
var activityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 2 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:        10 * time.Second,
		BackoffCoefficient:     2,
		MaximumInterval:        5 * time.Minute,
		MaximumAttempts:        8,
		NonRetryableErrorTypes: []string{errTypeNonRetryable},
	},
}

// CatalogSyncWorkflow fetches the catalog source and reconciles storage in
// the given mode.
func CatalogSyncWorkflow(ctx workflow.Context, mode models.SyncMode) (models.Result, error) {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var a *Activities
	var res models.Result
	if err := workflow.ExecuteActivity(ctx, a.SyncCatalog, mode).Get(ctx, &res); err != nil {
		return models.Result{}, err
	}
	return res, nil
}

// Register adds the workflow and its activity to a Temporal worker.
func Register(w worker.Registry, acts *Activities) {
	w.RegisterWorkflowWithOptions(CatalogSyncWorkflow, workflow.RegisterOptions{Name: WorkflowName})
	w.RegisterActivity(acts)
}

// ScheduleOptions describes the periodic sync run on taskQueue at cron.
func ScheduleOptions(cron, taskQueue string, mode models.SyncMode) client.ScheduleOptions {
	return client.ScheduleOptions{
		ID:   ScheduleID,
		Spec: client.ScheduleSpec{CronExpressions: []string{cron}},
		Action: &client.ScheduleWorkflowAction{
			ID:        ScheduleID,
			Workflow:  WorkflowName,
			Args:      []any{mode},
			TaskQueue: taskQueue,
		},
	}
}
