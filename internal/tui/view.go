package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// styles holds every style the frame uses, all created from one renderer so
// color detection follows the session's output.
type styles struct {
	// r is the renderer the styles were created from; Place uses it too.
	r *lipgloss.Renderer

	// doc is the outer frame with its margin.
	doc lipgloss.Style
	// title renders the program name at the top of the frame.
	title lipgloss.Style
	// label renders row labels such as "Directory:" in a fixed-width column.
	label lipgloss.Style
	// path renders the explored directory.
	path lipgloss.Style
	// faint renders secondary details like volume usage.
	faint lipgloss.Style
	// helpKey, helpDesc and helpSep style the key hint line.
	helpKey  lipgloss.Style
	helpDesc lipgloss.Style
	helpSep  lipgloss.Style
}

// newStyles builds the palette on r. Colors are 256-color codes and degrade
// with the renderer's profile.
func newStyles(r *lipgloss.Renderer) styles {
	faint := r.NewStyle().Faint(true)
	return styles{
		r:        r,
		doc:      r.NewStyle().Margin(1, 2),
		title:    r.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		label:    r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Width(11),
		path:     r.NewStyle().Foreground(lipgloss.Color("255")),
		faint:    faint,
		helpKey:  r.NewStyle().Foreground(lipgloss.Color("245")),
		helpDesc: faint,
		helpSep:  faint,
	}
}

// View draws the whole frame. Once the loop is exiting it draws nothing, so
// the final flush before teardown leaves no frame behind.
func (m model) View() string {
	if m.state == Exiting {
		return ""
	}

	rows := []string{
		m.styles.title.Render("breeze"),
		"",
		m.row("Directory", m.styles.path.Render(m.info.Path)),
	}
	if git := m.info.Git(); git != "" {
		rows = append(rows, m.row("Git", git))
	}
	if m.info.Volume != nil {
		rows = append(rows, m.row("Volume", m.styles.faint.Render(m.info.Volume.String())))
	}
	rows = append(rows, "", "", m.help.View(m.keys))

	frame := m.styles.doc.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if m.width <= 0 || m.height <= 0 {
		return frame
	}
	return m.styles.r.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, frame)
}

// row renders one "Label: value" line.
func (m model) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.label.Render(label+":"), value)
}
