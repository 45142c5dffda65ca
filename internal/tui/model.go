package tui

import (
	"github.com/MKhiriev/go-tasklist/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenOrganizations screen = iota
	screenTask
)

// rootModel switches between the organization admin screen and the task
// form, and handles the global keys.
type rootModel struct {
	organizations organizationsModel
	task          taskFormModel
	hasTask       bool
	screen        screen

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

func (r rootModel) Init() tea.Cmd {
	return r.organizations.Init()
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.handleKey(msg)
	case taskUpdatedMsg:
		var cmd tea.Cmd
		r.task, cmd = r.task.Update(msg)
		return r, cmd
	}

	var cmd tea.Cmd
	r.organizations, cmd = r.organizations.Update(msg)
	return r, cmd
}

func (r rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			r.showBuildInfo = false
		}
		return r, nil
	}

	// text input and dialogs own every key
	if r.screen == screenOrganizations && (r.organizations.editing || r.organizations.showConfirm) {
		var cmd tea.Cmd
		r.organizations, cmd = r.organizations.Update(msg)
		return r, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return r, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		r.showBuildInfo = true
		return r, nil
	case key.Matches(msg, keys.switchTab) && r.hasTask:
		if r.screen == screenTask {
			r.screen = screenOrganizations
		} else {
			r.screen = screenTask
		}
		return r, nil
	}

	var cmd tea.Cmd
	if r.screen == screenTask {
		r.task, cmd = r.task.Update(msg)
	} else {
		r.organizations, cmd = r.organizations.Update(msg)
	}
	return r, cmd
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.screen == screenTask {
		return appStyle.Render(r.task.View())
	}
	return appStyle.Render(r.organizations.View())
}
