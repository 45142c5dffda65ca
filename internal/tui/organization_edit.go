package tui

import (
	"strings"

	"github.com/MKhiriev/go-tasklist/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editFieldName = iota
	editFieldDescription
	editFieldGroups
	editFieldUsers
	editFieldCount
)

var editFieldLabels = [editFieldCount]string{
	"Название",
	"Описание",
	"Группы (через запятую)",
	"Пользователи (через запятую)",
}

// editOrganizationModel edits a copy of an organization. The copy keeps the
// stored key in OldName, so a changed name is saved as a rename.
type editOrganizationModel struct {
	original models.Organization
	inputs   [editFieldCount]textinput.Model
	focus    int
	err      string
}

func newEditOrganizationModel(org models.Organization) editOrganizationModel {
	m := editOrganizationModel{original: org.Loaded()}

	values := [editFieldCount]string{
		org.Name,
		org.Description,
		strings.Join(org.Groups, ", "),
		strings.Join(org.Users, ", "),
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.SetValue(values[i])
		m.inputs[i] = in
	}
	m.inputs[editFieldName].Focus()

	return m
}

func (m editOrganizationModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m editOrganizationModel) Update(msg tea.KeyMsg) (editOrganizationModel, tea.Cmd) {
	// letters are text here, only tab and arrows move between fields
	switch {
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		return m.moveFocus(1), nil
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		return m.moveFocus(-1), nil
	}

	m.err = ""
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m editOrganizationModel) moveFocus(delta int) editOrganizationModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + editFieldCount) % editFieldCount
	m.inputs[m.focus].Focus()
	return m
}

// organization returns the edited organization addressed by its stored key.
func (m editOrganizationModel) organization() models.Organization {
	org := m.original
	org.Name = strings.TrimSpace(m.inputs[editFieldName].Value())
	org.Description = strings.TrimSpace(m.inputs[editFieldDescription].Value())
	org.Groups = splitList(m.inputs[editFieldGroups].Value())
	org.Users = splitList(m.inputs[editFieldUsers].Value())
	return org
}

func (m editOrganizationModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + editFieldLabels[i] + "\n")
		b.WriteString("    " + in.View() + "\n")
	}
	if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err) + "\n")
	}

	return renderPage("ИЗМЕНИТЬ "+m.original.OldName, b.String(), "tab поле  enter сохранить  esc отмена")
}
