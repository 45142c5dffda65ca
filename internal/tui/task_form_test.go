package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-tasklist/internal/mock"
	"github.com/MKhiriev/go-tasklist/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestClaimDisabled(t *testing.T) {
	demo := models.User{Username: "demo"}

	tests := []struct {
		name string
		task models.Task
		user models.User
		want bool
	}{
		{name: "unassigned", task: models.Task{}, user: demo, want: false},
		{name: "assigned to me", task: models.Task{Assignee: "demo"}, user: demo, want: false},
		{name: "assigned to other", task: models.Task{Assignee: "other"}, user: demo, want: true},
		{name: "unknown user, unassigned", task: models.Task{}, user: models.User{}, want: false},
		{name: "unknown user, assigned", task: models.Task{Assignee: "demo"}, user: models.User{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClaimDisabled(tt.task, tt.user))
		})
	}
}

func TestClaimButtonLabel(t *testing.T) {
	assert.Equal(t, "Claim", claimButtonLabel(models.Task{}))
	assert.Equal(t, "Unclaim", claimButtonLabel(models.Task{Assignee: "demo"}))
}

func newTestTaskForm(t *testing.T, task models.Task) (taskFormModel, *mock.MockClientTaskService) {
	t.Helper()

	tasks := mock.NewMockClientTaskService(gomock.NewController(t))
	doc := models.TaskDocument{Task: task}
	return newTaskFormModel(context.Background(), tasks, nil, doc, models.User{Username: "demo"}), tasks
}

func TestTaskForm_ClaimUnassigned(t *testing.T) {
	task := models.Task{ID: "1", Name: "Approve"}
	m, tasks := newTestTaskForm(t, task)

	claimed := task
	claimed.Assignee = "demo"
	tasks.EXPECT().ToggleClaim(gomock.Any(), task).Return(claimed, nil)

	m, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Contains(t, m.View(), "Claim...")

	m, _ = m.Update(cmd())

	assert.False(t, m.busy)
	assert.Equal(t, "demo", m.task.Assignee)
	assert.Contains(t, m.View(), "Unclaim")
}

func TestTaskForm_ClaimedByOtherIsDisabled(t *testing.T) {
	m, _ := newTestTaskForm(t, models.Task{ID: "1", Assignee: "other"})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})

	assert.Nil(t, cmd, "no call expected for a task claimed by somebody else")
	assert.False(t, m.busy)
	assert.Contains(t, m.View(), "Unclaim")
}

func TestTaskForm_IgnoresKeysWhileBusy(t *testing.T) {
	m, _ := newTestTaskForm(t, models.Task{ID: "1"})
	m.busy = true

	_, cmd := m.Update(runes("c"))

	assert.Nil(t, cmd)
}

func TestTaskForm_ErrorOverlay(t *testing.T) {
	m, tasks := newTestTaskForm(t, models.Task{ID: "1"})
	tasks.EXPECT().ToggleClaim(gomock.Any(), gomock.Any()).Return(models.Task{}, errors.New("task is gone"))

	m, cmd := m.Update(runes("c"))
	m, _ = m.Update(cmd())

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "task is gone")
	assert.Equal(t, "1", m.task.ID, "task must be kept on failure")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NoError(t, m.err)
}

func TestTaskForm_ViewShowsVariables(t *testing.T) {
	m, _ := newTestTaskForm(t, models.Task{
		ID:        "1",
		Name:      "Approve invoice",
		Assignee:  "demo",
		Variables: map[string]any{"amount": 10},
	})

	view := m.View()

	assert.Contains(t, view, "Approve invoice")
	assert.Contains(t, view, "amount: 10")
	assert.NotContains(t, view, "только чтение")
}

func TestTaskForm_ViewReadOnlyFollowsClaimRule(t *testing.T) {
	tests := []struct {
		name     string
		assignee string
		readOnly bool
	}{
		{name: "unassigned", assignee: "", readOnly: false},
		{name: "assigned to current user", assignee: "demo", readOnly: false},
		{name: "assigned to somebody else", assignee: "other", readOnly: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestTaskForm(t, models.Task{
				ID:        "1",
				Assignee:  tt.assignee,
				Variables: map[string]any{"amount": 10},
			})

			view := m.View()

			assert.Contains(t, view, "amount: 10")
			if tt.readOnly {
				assert.Contains(t, view, "только чтение")
			} else {
				assert.NotContains(t, view, "только чтение")
			}
		})
	}
}
