package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ClaimDisabled reports whether user may not press the claim control of task:
// the task is assigned to somebody else.
func ClaimDisabled(task models.Task, user models.User) bool {
	return task.Assigned() && !task.AssignedTo(user.Username)
}

// claimButtonLabel is "Claim" for an unassigned task and "Unclaim" otherwise.
func claimButtonLabel(task models.Task) string {
	if task.Assigned() {
		return "Unclaim"
	}
	return "Claim"
}

type taskFormModel struct {
	ctx    context.Context
	tasks  service.ClientTaskService
	viewer FormViewer

	task   models.Task
	schema models.FormSchema
	user   models.User

	busy bool
	err  error
}

func newTaskFormModel(ctx context.Context, tasks service.ClientTaskService, viewer FormViewer, doc models.TaskDocument, user models.User) taskFormModel {
	if viewer == nil {
		viewer = NewReadOnlyFormViewer()
	}

	return taskFormModel{
		ctx:    ctx,
		tasks:  tasks,
		viewer: viewer,
		task:   doc.Task,
		schema: doc.Schema,
		user:   user,
	}
}

func (m taskFormModel) Update(msg tea.Msg) (taskFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case taskUpdatedMsg:
		m.busy = false
		m.err = msg.err
		if msg.err == nil {
			m.task = msg.task
		}
		return m, nil

	case tea.KeyMsg:
		if m.err != nil {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.err = nil
			}
			return m, nil
		}
		if key.Matches(msg, keys.claim) && !m.busy && !ClaimDisabled(m.task, m.user) {
			m.busy = true
			return m, m.cmdToggleClaim()
		}
	}

	return m, nil
}

func (m taskFormModel) cmdToggleClaim() tea.Cmd {
	ctx, tasks, task := m.ctx, m.tasks, m.task
	return func() tea.Msg {
		updated, err := tasks.ToggleClaim(ctx, task)
		return taskUpdatedMsg{task: updated, err: err}
	}
}

func (m taskFormModel) View() string {
	if m.err != nil {
		return errorOverlayModel{message: humanizeError(m.err)}.View()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Задача: %s\n", valueOrDash(m.task.Name))
	fmt.Fprintf(&b, "Процесс: %s\n", valueOrDash(m.task.ProcessName))
	fmt.Fprintf(&b, "Исполнитель: %s\n", valueOrDash(m.task.Assignee))
	fmt.Fprintf(&b, "Создана: %s\n\n", valueOrDash(m.task.CreationTime))

	button := claimButtonLabel(m.task)
	switch {
	case m.busy:
		b.WriteString(disabledStyle.Render(button + "..."))
	case ClaimDisabled(m.task, m.user):
		b.WriteString(disabledStyle.Render(button))
	default:
		b.WriteString(buttonStyle.Render(button))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewer.Render(FormProps{
		Schema:    m.schema,
		Variables: m.task.Variables,
		Disabled:  ClaimDisabled(m.task, m.user),
	}))

	return renderPage("ЗАДАЧА", b.String(), "c/space claim/unclaim  t организации  q выход")
}
