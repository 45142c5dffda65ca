package tui

// confirmModel asks before switching the active organization.
type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	content := "Сделать \"" + m.name + "\" активной организацией?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
