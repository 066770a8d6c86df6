// Package tui implements the calendar interface: a month grid with
// per-day bill buckets, a search box, the overdue/upcoming panel, month
// totals, and the bill form.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthside/duebook/internal/calendar"
	"github.com/hearthside/duebook/internal/model"
	"github.com/hearthside/duebook/internal/report"
	"github.com/hearthside/duebook/internal/store"
)

// mode is the input mode the calendar is in.
type mode int

const (
	modeCalendar mode = iota
	modeSearch
	modeForm
	modeConfirmDelete
	modeImport
)

// Model is the bubbletea model for the calendar view.
type Model struct {
	ctx   context.Context
	store *store.Store
	// now is injectable so tests can pin the current day.
	now func() time.Time

	mode     mode
	anchor   time.Time // first day of the displayed month
	grid     []calendar.Day
	selected int // grid cell index
	cursor   int // bill index within the selected day's bucket

	search       textinput.Model
	form         billForm
	deleteTarget model.Bill
	importInput  textinput.Model
	// importGen is the generation of the latest import request; results
	// carrying an older generation are discarded.
	importGen int

	status   string
	statusOK bool
	width    int
	height   int
	quitting bool
}

// New creates the calendar model over the given store.
func New(ctx context.Context, s *store.Store) Model {
	return newModel(ctx, s, time.Now)
}

func newModel(ctx context.Context, s *store.Store, now func() time.Time) Model {
	search := textinput.New()
	search.Placeholder = "search bills"
	search.Prompt = "/ "
	search.CharLimit = 64

	importInput := textinput.New()
	importInput.Placeholder = "path to exported JSON"
	importInput.Prompt = "import: "

	today := now()
	m := Model{
		ctx:         ctx,
		store:       s,
		now:         now,
		anchor:      time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		search:      search,
		importInput: importInput,
	}
	m.refreshGrid()
	m.selectDay(model.DateOf(today))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// refreshGrid rebuilds the 42-cell grid for the current anchor month.
func (m *Model) refreshGrid() {
	m.grid = calendar.MonthGrid(m.anchor)
}

// selectDay moves the selection to the cell holding the given date, if
// the displayed grid contains it.
func (m *Model) selectDay(d model.Date) {
	for i, day := range m.grid {
		if day.Date.Equal(d.Time) {
			m.selected = i
			return
		}
	}
}

// gotoMonth displays the month offset months away from the current
// anchor, keeping the selection on the same weekday slot.
func (m *Model) gotoMonth(offset int) {
	m.anchor = m.anchor.AddDate(0, offset, 0)
	m.refreshGrid()
	m.cursor = 0
}

// visibleBills is the search-filtered bill collection every view is
// derived from.
func (m Model) visibleBills() []model.Bill {
	return report.Filter(m.store.Bills(), m.search.Value())
}

// selectedDay returns the currently selected grid cell.
func (m Model) selectedDay() calendar.Day {
	if m.selected < 0 || m.selected >= len(m.grid) {
		return calendar.Day{}
	}
	return m.grid[m.selected]
}

// setStatus records a status-bar message.
func (m *Model) setStatus(msg string, ok bool) {
	m.status = msg
	m.statusOK = ok
}
