package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
	storeworkflows "github.com/Apurer/go-gin-boutique-api/internal/platform/temporal/workflows/boutiques"
)

// storeCreationTimeout bounds how long a create request waits when no worker picks the workflow up.
const storeCreationTimeout = time.Minute

var (
	_ ports.WorkflowOrchestrator = (*TemporalStoreWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineStoreWorkflows)(nil)
)

// TemporalStoreWorkflows starts store workflows on a Temporal cluster.
type TemporalStoreWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalStoreWorkflows wires a Temporal client into the orchestrator.
func NewTemporalStoreWorkflows(c client.Client) *TemporalStoreWorkflows {
	return &TemporalStoreWorkflows{client: c, taskQueue: storeworkflows.StoreCreationTaskQueue}
}

// CreateStore starts the creation workflow and waits for the persisted store.
func (o *TemporalStoreWorkflows) CreateStore(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal store workflows not configured")
	}
	options := client.StartWorkflowOptions{
		ID:                       buildStoreCreationWorkflowID(),
		TaskQueue:                o.taskQueue,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
		WorkflowExecutionTimeout: storeCreationTimeout,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		storeworkflows.StoreCreationWorkflowName,
		storeworkflows.StoreCreationWorkflowInput{Command: input, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		return nil, err
	}
	var store domain.Store
	if err := run.Get(ctx, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// InlineStoreWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineStoreWorkflows struct {
	service ports.Service
}

// NewInlineStoreWorkflows wraps the boutique service for synchronous execution.
func NewInlineStoreWorkflows(service ports.Service) *InlineStoreWorkflows {
	return &InlineStoreWorkflows{service: service}
}

// CreateStore delegates to the application service without durable orchestration.
func (o *InlineStoreWorkflows) CreateStore(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline store workflows not configured")
	}
	return o.service.Create(ctx, input)
}

// Creations are not idempotent, so every request gets a fresh workflow id.
func buildStoreCreationWorkflowID() string {
	return fmt.Sprintf("boutique-creation-%s", uuid.NewString())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
