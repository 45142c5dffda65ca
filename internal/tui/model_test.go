package tui

import (
	"testing"

	"github.com/MKhiriev/go-tasklist/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, withTask bool) rootModel {
	t.Helper()

	orgs, _, _ := newTestOrganizationsModel(t, testOrganizations())
	r := rootModel{
		organizations: orgs,
		buildInfo:     models.NewAppBuildInfo("v1.2.3", "", ""),
	}
	if withTask {
		r.task, _ = newTestTaskForm(t, models.Task{ID: "1", Name: "Approve"})
		r.hasTask = true
	}
	return r
}

func update(t *testing.T, r rootModel, msg tea.Msg) (rootModel, tea.Cmd) {
	t.Helper()

	next, cmd := r.Update(msg)
	root, ok := next.(rootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRoot_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		r, cmd := update(t, newTestRoot(t, false), msg)

		assert.True(t, r.quitByUser)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestRoot_QIsTextWhileEditing(t *testing.T) {
	r := newTestRoot(t, false)

	r, _ = update(t, r, runes("e"))
	r, _ = update(t, r, runes("q"))

	assert.False(t, r.quitByUser)
	assert.Equal(t, "acmeq", r.organizations.edit.organization().Name)
}

func TestRoot_BuildInfo(t *testing.T) {
	r := newTestRoot(t, false)

	r, _ = update(t, r, runes("v"))
	assert.Contains(t, r.View(), "v1.2.3")

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyEscape})
	assert.NotContains(t, r.View(), "v1.2.3")
}

func TestRoot_SwitchToTask(t *testing.T) {
	r := newTestRoot(t, true)

	r, _ = update(t, r, runes("t"))
	assert.Equal(t, screenTask, r.screen)
	assert.Contains(t, r.View(), "Approve")

	r, _ = update(t, r, runes("t"))
	assert.Equal(t, screenOrganizations, r.screen)
}

func TestRoot_NoTaskScreenWithoutTask(t *testing.T) {
	r := newTestRoot(t, false)

	r, _ = update(t, r, runes("t"))

	assert.Equal(t, screenOrganizations, r.screen)
}

func TestRoot_RoutesTaskUpdates(t *testing.T) {
	r := newTestRoot(t, true)
	r.task.busy = true

	r, _ = update(t, r, taskUpdatedMsg{task: models.Task{ID: "1", Assignee: "demo"}})

	assert.False(t, r.task.busy)
	assert.Equal(t, "demo", r.task.task.Assignee)
}
