package boutiques

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	storememory "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/memory"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application"
	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	storeactivities "github.com/Apurer/go-gin-boutique-api/internal/platform/temporal/activities/boutiques"
)

func newEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	acts := storeactivities.NewActivities(application.NewService(storememory.NewRepository()))
	env.RegisterActivityWithOptions(acts.CreateStore, activity.RegisterOptions{Name: storeactivities.CreateStoreActivityName})
	return env
}

func TestStoreCreationWorkflow_PersistsPlaceholder(t *testing.T) {
	env := newEnv(t)

	env.ExecuteWorkflow(StoreCreationWorkflow, StoreCreationWorkflowInput{TraceID: "trace-1"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var store domain.Store
	require.NoError(t, env.GetWorkflowResult(&store))
	require.NotZero(t, store.ID)
	require.Equal(t, domain.PlaceholderName, store.Name)
}

func TestStoreCreationWorkflow_AppliesPayload(t *testing.T) {
	env := newEnv(t)
	name := "Chez Paul"

	env.ExecuteWorkflow(StoreCreationWorkflow, StoreCreationWorkflowInput{
		Command: storetypes.CreateStoreInput{Name: &name},
	})

	require.NoError(t, env.GetWorkflowError())
	var store domain.Store
	require.NoError(t, env.GetWorkflowResult(&store))
	require.Equal(t, name, store.Name)
}

func TestStoreCreationWorkflow_DoesNotRetryFailedFlush(t *testing.T) {
	env := newEnv(t)
	env.OnActivity(storeactivities.CreateStoreActivityName, mock.Anything, mock.Anything).
		Return(nil, errors.New("flush failed")).Once()

	env.ExecuteWorkflow(StoreCreationWorkflow, StoreCreationWorkflowInput{})

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
	require.Contains(t, env.GetWorkflowError().Error(), "flush failed")
	env.AssertExpectations(t)
}
