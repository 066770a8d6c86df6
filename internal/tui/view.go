package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthside/duebook/internal/cli"
	"github.com/hearthside/duebook/internal/model"
	"github.com/hearthside/duebook/internal/report"
)

const cellWidth = 10

var (
	weekdayStyle = cli.SubtleStyle.Width(cellWidth).Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(2).
			Padding(0, 1)

	selectedCellStyle = cellStyle.
				Background(lipgloss.Color("#283457")).
				Bold(true)

	helpStyle = cli.SubtleStyle
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewCalendar()
	}
}

func (m Model) viewCalendar() string {
	bills := m.visibleBills()

	var b strings.Builder
	b.WriteString(cli.FormatTitle(m.anchor.Format("January 2006")))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(bills))
	b.WriteString("\n")
	b.WriteString(m.renderDayDetail(bills))
	b.WriteString("\n")

	side := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTotals(bills),
		m.renderPartitions(bills),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, b.String(), " ", side)

	var footer string
	switch m.mode {
	case modeSearch:
		footer = m.search.View()
	case modeImport:
		footer = m.importInput.View()
	default:
		footer = m.renderStatus()
	}

	help := helpStyle.Render("←↓↑→ move · [/] month · t today · n new · enter edit · space pay · d delete · / search · E export · I import · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, footer, help)
}

func (m Model) renderGrid(bills []model.Bill) string {
	var rows []string

	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var header strings.Builder
	for _, d := range weekdays {
		header.WriteString(weekdayStyle.Render(d))
	}
	rows = append(rows, header.String())

	today := model.DateOf(m.now())
	for week := 0; week < len(m.grid); week += 7 {
		var cells []string
		for i := week; i < week+7; i++ {
			cells = append(cells, m.renderCell(i, bills, today))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCell(i int, bills []model.Bill, today model.Date) string {
	day := m.grid[i]
	bucket := report.DueOn(bills, day.Date)

	num := fmt.Sprintf("%d", day.Date.Day())
	if day.Date.Equal(today.Time) {
		num = "•" + num
	}

	badge := ""
	if n := len(bucket); n > 0 {
		unpaid := 0
		for _, b := range bucket {
			if !b.Paid {
				unpaid++
			}
		}
		badge = fmt.Sprintf("%d bill", n)
		if n > 1 {
			badge += "s"
		}
		switch {
		case unpaid > 0 && day.Date.Before(today.Time):
			badge = cli.ErrorStyle.Render(badge)
		case unpaid > 0:
			badge = cli.WarningStyle.Render(badge)
		default:
			badge = cli.SuccessStyle.Render(badge)
		}
	}

	content := num + "\n" + badge

	style := cellStyle
	if i == m.selected {
		style = selectedCellStyle
	}
	if !day.InMonth(m.anchor.Month()) {
		return style.Render(cli.SubtleStyle.Render(num) + "\n" + badge)
	}
	return style.Render(content)
}

func (m Model) renderDayDetail(bills []model.Bill) string {
	day := m.selectedDay()
	bucket := report.DueOn(bills, day.Date)

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render(day.Date.Format("Mon, Jan 2")))
	b.WriteString("\n")
	if len(bucket) == 0 {
		b.WriteString(cli.SubtleStyle.Render("no bills due"))
		return b.String()
	}

	members := m.store.Members()
	for i, bill := range bucket {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s · %s · %s", cursor, bill.Title, bill.Amount.StringFixed(2), bill.Category)
		if bill.Paid {
			line = cli.PaidStyle.Render(line + " · paid by " + memberName(members, bill.PaidBy))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTotals(bills []model.Bill) string {
	totals := report.MonthTotals(bills, m.anchor.Year(), m.anchor.Month())

	content := fmt.Sprintf("Total   %s\nPaid    %s\nUnpaid  %s",
		totals.Total.StringFixed(2),
		cli.SuccessStyle.Render(totals.Paid.StringFixed(2)),
		cli.WarningStyle.Render(totals.Unpaid.StringFixed(2)),
	)
	return cli.BoxStyle.Render(cli.TitleStyle.Render("This month") + "\n" + content)
}

func (m Model) renderPartitions(bills []model.Bill) string {
	overdue, upcoming := report.Partition(bills, m.now())

	var b strings.Builder
	b.WriteString(cli.ErrorStyle.Render(fmt.Sprintf("Overdue (%d)", len(overdue))))
	b.WriteString("\n")
	for _, bill := range overdue {
		b.WriteString(fmt.Sprintf("%s · %s · %s\n", bill.DueDate.Format("Jan 2"), bill.Title, bill.Amount.StringFixed(2)))
	}
	if len(overdue) == 0 {
		b.WriteString(cli.SubtleStyle.Render("none") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.TitleStyle.Render("Upcoming"))
	b.WriteString("\n")
	shown := upcoming
	if len(shown) > report.UpcomingDisplayLimit {
		shown = shown[:report.UpcomingDisplayLimit]
	}
	for _, bill := range shown {
		b.WriteString(fmt.Sprintf("%s · %s · %s\n", bill.DueDate.Format("Jan 2"), bill.Title, bill.Amount.StringFixed(2)))
	}
	if len(upcoming) == 0 {
		b.WriteString(cli.SubtleStyle.Render("none") + "\n")
	} else if len(upcoming) > len(shown) {
		b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("… and %d more", len(upcoming)-len(shown))))
	}

	return cli.BoxStyle.Render(b.String())
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusOK {
		return cli.FormatSuccess(m.status)
	}
	return cli.FormatError(m.status)
}

func (m Model) viewForm() string {
	title := "Edit bill"
	if m.form.isNew {
		title = "New bill"
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle(title))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(cli.FormatError(m.form.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab next field · enter save · esc cancel"))
	return cli.BoxStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	msg := fmt.Sprintf("Delete %q (%s)?", m.deleteTarget.Title, m.deleteTarget.Amount.StringFixed(2))
	return cli.BoxStyle.Render(
		cli.FormatWarning(msg) + "\n\n" + helpStyle.Render("y confirm · any other key cancel"),
	)
}

// memberName resolves a member reference, tolerating dangling IDs.
func memberName(members []model.Member, id string) string {
	for _, m := range members {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}
