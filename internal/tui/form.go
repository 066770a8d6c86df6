package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/hearthside/duebook/internal/model"
)

// Form field order.
const (
	fieldTitle = iota
	fieldAmount
	fieldDue
	fieldCategory
	fieldNotes
	fieldReminder
	fieldCount
)

// billForm is the add/edit bill form. It keeps the fields a user cannot
// edit through the form (ID, paid state, creator, recipients) on base
// and copies them into the result on save.
type billForm struct {
	base   model.Bill
	inputs []textinput.Model
	focus  int
	isNew  bool
	errMsg string
}

func newBillForm(b model.Bill, isNew bool) billForm {
	labels := [fieldCount]struct {
		prompt      string
		placeholder string
		value       string
	}{
		fieldTitle:    {"Title: ", "Internet", b.Title},
		fieldAmount:   {"Amount: ", "60.00", amountValue(b)},
		fieldDue:      {"Due: ", "2024-03-16", b.DueDate.String()},
		fieldCategory: {"Category: ", "Utilities", b.Category},
		fieldNotes:    {"Notes: ", "", b.Notes},
		fieldReminder: {"Reminder days: ", "3", strconv.Itoa(b.ReminderDays)},
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = labels[i].prompt
		in.Placeholder = labels[i].placeholder
		in.SetValue(labels[i].value)
		in.CharLimit = 128
		inputs[i] = in
	}
	inputs[fieldTitle].Focus()

	return billForm{base: b, inputs: inputs, isNew: isNew}
}

func amountValue(b model.Bill) string {
	if b.Amount.IsZero() {
		return ""
	}
	return b.Amount.StringFixed(2)
}

func (f *billForm) focusNext() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *billForm) focusPrev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *billForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f billForm) update(msg tea.KeyMsg) (billForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.errMsg = ""
	return f, cmd
}

// toBill builds the bill from the form fields. The title check itself
// lives in the store; the form only has to turn strings into values.
func (f billForm) toBill() (model.Bill, error) {
	b := f.base
	b.Title = f.inputs[fieldTitle].Value()
	b.Category = strings.TrimSpace(f.inputs[fieldCategory].Value())
	b.Notes = f.inputs[fieldNotes].Value()

	amount, err := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldAmount].Value()))
	if err != nil {
		return model.Bill{}, fmt.Errorf("invalid amount %q", f.inputs[fieldAmount].Value())
	}
	b.Amount = amount

	due, err := model.ParseDate(strings.TrimSpace(f.inputs[fieldDue].Value()))
	if err != nil {
		return model.Bill{}, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", f.inputs[fieldDue].Value())
	}
	b.DueDate = due

	reminder := strings.TrimSpace(f.inputs[fieldReminder].Value())
	if reminder == "" {
		b.ReminderDays = 0
	} else {
		days, err := strconv.Atoi(reminder)
		if err != nil || days < 0 {
			return model.Bill{}, fmt.Errorf("invalid reminder days %q", reminder)
		}
		b.ReminderDays = days
	}

	return b, nil
}
