package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tasklist/internal/adapter"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/mock"
	"github.com/MKhiriev/go-tasklist/models"
)

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (ClientTaskService, *mock.MockTaskAdapter, *mock.MockClientAuthService) {
	t.Helper()
	mockAdapter := mock.NewMockTaskAdapter(ctrl)
	mockAuth := mock.NewMockClientAuthService(ctrl)
	return NewClientTaskService(mockAdapter, mockAuth, logger.Nop()), mockAdapter, mockAuth
}

func TestClientTaskService_Claim(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestTaskSvc(t, ctrl)

	task := models.Task{ID: "t-1", Name: "Approve"}
	mockAdapter.EXPECT().ClaimTask(gomock.Any(), "t-1").
		Return(models.Task{ID: "t-1", Name: "Approve", Assignee: "alice"}, nil)

	claimed, err := svc.Claim(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "alice", claimed.Assignee)
}

func TestClientTaskService_Claim_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestTaskSvc(t, ctrl)

	task := models.Task{ID: "t-1"}
	mockAdapter.EXPECT().ClaimTask(gomock.Any(), "t-1").
		Return(models.Task{}, &adapter.ServerError{StatusCode: 409, Message: "already claimed"})

	got, err := svc.Claim(context.Background(), task)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, task, got, "при ошибке возвращается исходная задача")
}

func TestClientTaskService_Unclaim_ByAssignee(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockAuth := newTestTaskSvc(t, ctrl)

	mockAuth.EXPECT().CurrentUser().Return(models.User{Username: "alice"}, nil)
	mockAdapter.EXPECT().UnclaimTask(gomock.Any(), "t-1").Return(models.Task{ID: "t-1"}, nil)

	got, err := svc.Unclaim(context.Background(), models.Task{ID: "t-1", Assignee: "alice"})
	require.NoError(t, err)
	assert.False(t, got.Assigned())
}

func TestClientTaskService_Unclaim_ByOtherUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAuth := newTestTaskSvc(t, ctrl)

	mockAuth.EXPECT().CurrentUser().Return(models.User{Username: "bob"}, nil)

	_, err := svc.Unclaim(context.Background(), models.Task{ID: "t-1", Assignee: "alice"})
	assert.ErrorIs(t, err, ErrTaskNotClaimable)
}

func TestClientTaskService_Unclaim_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAuth := newTestTaskSvc(t, ctrl)

	mockAuth.EXPECT().CurrentUser().Return(models.User{}, ErrNotAuthenticated)

	_, err := svc.Unclaim(context.Background(), models.Task{ID: "t-1", Assignee: "alice"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientTaskService_ToggleClaim(t *testing.T) {
	t.Run("unassigned task is claimed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockAdapter, _ := newTestTaskSvc(t, ctrl)

		mockAdapter.EXPECT().ClaimTask(gomock.Any(), "t-1").Return(models.Task{ID: "t-1", Assignee: "alice"}, nil)

		got, err := svc.ToggleClaim(context.Background(), models.Task{ID: "t-1"})
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Assignee)
	})

	t.Run("assigned task is unclaimed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockAdapter, mockAuth := newTestTaskSvc(t, ctrl)

		mockAuth.EXPECT().CurrentUser().Return(models.User{Username: "alice"}, nil)
		mockAdapter.EXPECT().UnclaimTask(gomock.Any(), "t-1").Return(models.Task{ID: "t-1"}, nil)

		got, err := svc.ToggleClaim(context.Background(), models.Task{ID: "t-1", Assignee: "alice"})
		require.NoError(t, err)
		assert.Empty(t, got.Assignee)
	})
}
