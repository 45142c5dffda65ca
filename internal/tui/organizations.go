package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/internal/state"
	"github.com/MKhiriev/go-tasklist/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

type organizationsModel struct {
	ctx     context.Context
	sync    service.OrganizationSynchronizer
	updates <-chan state.State
	copy    func(string) error

	state   state.State
	idx     int
	spinner spinner.Model
	status  string

	editing     bool
	edit        editOrganizationModel
	showConfirm bool
	confirm     confirmModel

	logger *logger.Logger
}

func newOrganizationsModel(
	ctx context.Context,
	sync service.OrganizationSynchronizer,
	updates <-chan state.State,
	initial state.State,
	copyFn func(string) error,
	logger *logger.Logger,
) organizationsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return organizationsModel{
		ctx:     ctx,
		sync:    sync,
		updates: updates,
		copy:    copyFn,
		state:   initial,
		spinner: s,
		logger:  logger,
	}
}

func (m organizationsModel) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.updates),
		m.spinner.Tick,
		m.cmdOp("request", func(ctx context.Context) error {
			_, err := m.sync.RequestOrganizations(ctx)
			return err
		}),
	)
}

// waitForState delivers the next state published by the container.
func waitForState(updates <-chan state.State) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-updates
		return stateMsg{state: s, ok: ok}
	}
}

func (m organizationsModel) current() (models.Organization, bool) {
	if m.idx < 0 || m.idx >= len(m.state.Items) {
		return models.Organization{}, false
	}
	return m.state.Items[m.idx], true
}

func (m organizationsModel) Update(msg tea.Msg) (organizationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if !msg.ok {
			return m, nil
		}
		m.state = msg.state
		m.idx = min(m.idx, max(len(m.state.Items)-1, 0))
		return m, waitForState(m.updates)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Str("op", msg.op).Msg("organization operation failed")
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Не удалось скопировать: " + msg.err.Error()
		} else {
			m.status = "Скопировано: " + msg.name
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m organizationsModel) handleKey(msg tea.KeyMsg) (organizationsModel, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			org, ok := m.current()
			if !ok || org.Name != m.confirm.name {
				return m, nil
			}
			return m, m.cmdOp("activate", func(ctx context.Context) error {
				return m.sync.SetActive(ctx, org.Loaded())
			})
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.state.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdOp("refresh", m.sync.ForceRefresh)
	case key.Matches(msg, keys.newItem):
		return m, m.cmdOp("create", m.sync.CreateOrganization)
	case key.Matches(msg, keys.activate):
		if org, ok := m.current(); ok && !org.Active {
			m.showConfirm = true
			m.confirm = confirmModel{name: org.Name}
		}
	case key.Matches(msg, keys.edit):
		if org, ok := m.current(); ok {
			m.editing = true
			m.edit = newEditOrganizationModel(org)
			return m, m.edit.focusCmd()
		}
	case key.Matches(msg, keys.copy):
		if org, ok := m.current(); ok {
			return m, m.cmdCopy(org.Name)
		}
	}

	return m, nil
}

func (m organizationsModel) handleEditKey(msg tea.KeyMsg) (organizationsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		return m, nil
	case key.Matches(msg, keys.enter):
		org := m.edit.organization()
		if strings.TrimSpace(org.Name) == "" {
			m.edit.err = "Название не может быть пустым"
			return m, nil
		}
		m.editing = false
		return m, m.cmdOp("save", func(ctx context.Context) error {
			return m.sync.Save(ctx, org)
		})
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return m, cmd
}

func (m organizationsModel) cmdOp(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m organizationsModel) cmdCopy(name string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{name: name, err: copyFn(name)}
	}
}

func (m organizationsModel) View() string {
	if m.editing {
		return m.edit.View()
	}
	if m.showConfirm {
		return m.confirm.View()
	}

	var b strings.Builder

	switch {
	case m.state.Status == state.StatusLoading:
		b.WriteString(m.spinner.View() + " Загрузка...\n\n")
	case m.state.Status == state.StatusError:
		b.WriteString(errorStyle.Render("Ошибка: "+humanizeFailure(m.state.ErrorMessage)) + "\n\n")
	}

	if len(m.state.Items) == 0 {
		b.WriteString("Нет организаций\n")
	}
	for i, org := range m.state.Items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s", cursor, activeMark(org), fitText(org.Name, 40))
		if org.Description != "" {
			line += "  " + helpStyle.Render(fitText(org.Description, 40))
		}
		if org.Active {
			line = activeStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ОРГАНИЗАЦИИ", b.String(),
		"r обновить  n новая  a активировать  e изменить  y копировать  q выход")
}

func activeMark(org models.Organization) string {
	if org.Active {
		return "[*]"
	}
	return "[ ]"
}
