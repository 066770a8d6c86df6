package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hearthside/duebook/internal/calendar"
	"github.com/hearthside/duebook/internal/model"
	"github.com/hearthside/duebook/internal/report"
	"github.com/hearthside/duebook/internal/snapshot"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case importLoadedMsg:
		return m.handleImportLoaded(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeImport:
			return m.updateImport(msg)
		default:
			return m.updateCalendar(msg)
		}
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := m.selectedDay()
	bucket := report.DueOn(m.visibleBills(), day.Date)

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		if m.selected > 0 {
			m.selected--
			m.cursor = 0
		}
	case "right", "l":
		if m.selected < calendar.GridCells-1 {
			m.selected++
			m.cursor = 0
		}
	case "up", "k":
		if m.selected >= calendar.DaysPerWeek {
			m.selected -= calendar.DaysPerWeek
			m.cursor = 0
		}
	case "down", "j":
		if m.selected < calendar.GridCells-calendar.DaysPerWeek {
			m.selected += calendar.DaysPerWeek
			m.cursor = 0
		}

	case "[", "pgup":
		m.gotoMonth(-1)
	case "]", "pgdown":
		m.gotoMonth(1)
	case "t":
		today := model.DateOf(m.now())
		m.anchor = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		m.refreshGrid()
		m.selectDay(today)

	case "tab":
		if len(bucket) > 0 {
			m.cursor = (m.cursor + 1) % len(bucket)
		}

	case "/":
		m.mode = modeSearch
		return m, m.search.Focus()

	case "n":
		m.form = newBillForm(m.newBillTemplate(day.Date), true)
		m.mode = modeForm

	case "enter", "e":
		if b, ok := m.billUnderCursor(bucket); ok {
			m.form = newBillForm(b, false)
			m.mode = modeForm
		}

	case " ":
		if b, ok := m.billUnderCursor(bucket); ok {
			toggled, err := m.store.TogglePaid(m.ctx, b.ID)
			if err != nil {
				m.setStatus(err.Error(), false)
			} else if toggled.Paid {
				m.setStatus(fmt.Sprintf("%q marked paid", toggled.Title), true)
			} else {
				m.setStatus(fmt.Sprintf("%q marked unpaid", toggled.Title), true)
			}
		}

	case "d", "x":
		if b, ok := m.billUnderCursor(bucket); ok {
			m.deleteTarget = b
			m.mode = modeConfirmDelete
		}

	case "E":
		path := snapshot.ExportFilename(m.now())
		data, err := snapshot.Encode(m.store.Snapshot())
		if err == nil {
			err = os.WriteFile(path, data, 0600)
		}
		if err != nil {
			m.setStatus("export failed: "+err.Error(), false)
		} else {
			m.setStatus("exported to "+path, true)
		}

	case "I":
		m.importInput.SetValue("")
		m.mode = modeImport
		return m, m.importInput.Focus()
	}

	return m, nil
}

// billUnderCursor returns the bill the cursor points at within the
// selected day's bucket.
func (m Model) billUnderCursor(bucket []model.Bill) (model.Bill, bool) {
	if len(bucket) == 0 {
		return model.Bill{}, false
	}
	if m.cursor >= len(bucket) {
		return bucket[len(bucket)-1], true
	}
	return bucket[m.cursor], true
}

// newBillTemplate pre-fills a bill for the form with the store defaults
// and the selected day.
func (m Model) newBillTemplate(due model.Date) model.Bill {
	createdBy := ""
	if members := m.store.Members(); len(members) > 0 {
		createdBy = members[0].ID
	}
	category := "Misc"
	if cats := m.store.Categories(); len(cats) > 0 {
		category = cats[0]
	}
	return model.Bill{
		ID:           uuid.NewString(),
		DueDate:      due,
		Category:     category,
		CreatedBy:    createdBy,
		ReminderDays: m.store.ReminderDays(),
		Recipients:   m.store.Recipients(),
	}
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		if msg.String() == "esc" {
			m.search.SetValue("")
		}
		m.search.Blur()
		m.mode = modeCalendar
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeCalendar
		return m, nil

	case "enter":
		bill, err := m.form.toBill()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		if m.form.isNew {
			err = m.store.Add(m.ctx, bill)
		} else {
			err = m.store.Upsert(m.ctx, bill)
		}
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.mode = modeCalendar
		m.selectDay(bill.DueDate)
		m.setStatus(fmt.Sprintf("saved %q", bill.Title), true)
		return m, nil

	case "tab", "down":
		m.form.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.form.focusPrev()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "y" {
		if m.store.Delete(m.ctx, m.deleteTarget.ID) {
			m.setStatus(fmt.Sprintf("deleted %q", m.deleteTarget.Title), true)
		}
		m.cursor = 0
	} else {
		m.setStatus("deletion cancelled", true)
	}
	m.deleteTarget = model.Bill{}
	m.mode = modeCalendar
	return m, nil
}

func (m Model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.importInput.Blur()
		m.mode = modeCalendar
		return m, nil

	case "enter":
		path := m.importInput.Value()
		m.importInput.Blur()
		m.mode = modeCalendar
		// Each request gets a fresh generation; a slow read that
		// finishes after a newer request is discarded on arrival.
		m.importGen++
		return m, readImportFile(path, m.importGen)
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m Model) handleImportLoaded(msg importLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.importGen {
		return m, nil // stale completion
	}
	if msg.err != nil {
		m.setStatus("import failed: "+msg.err.Error(), false)
		return m, nil
	}
	if err := snapshot.Verify(msg.data); err != nil {
		m.setStatus("invalid file: not a duebook export", false)
		return m, nil
	}
	merged, err := snapshot.Decode(msg.data, m.store.Snapshot())
	if err != nil {
		m.setStatus("invalid file: not a duebook export", false)
		return m, nil
	}
	m.store.Replace(m.ctx, merged)
	m.cursor = 0
	m.setStatus(fmt.Sprintf("imported %d bills", len(merged.Bills)), true)
	return m, nil
}
