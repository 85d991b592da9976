package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/pawlog/internal/entry"
	"github.com/xolan/pawlog/internal/service"
	"github.com/xolan/pawlog/internal/tui/ui"
)

// SelectActivity is the notice shown when saving with nothing selected
const SelectActivity = "Please select at least one activity."

// formField is one detail input of the log form
type formField struct {
	kind        entry.Kind
	label       string
	placeholder string
	set         func(d *entry.Details, value string)
}

var formFields = []formField{
	{entry.Walk, "Start", "HH:MM", func(d *entry.Details, v string) { walkOf(d).Start = v }},
	{entry.Walk, "End", "HH:MM", func(d *entry.Details, v string) { walkOf(d).End = v }},
	{entry.Walk, "Distance (km)", "2.5", func(d *entry.Details, v string) { walkOf(d).Distance = v }},
	{entry.Walk, "Location", "Riverside park", func(d *entry.Details, v string) { walkOf(d).Location = v }},
	{entry.Poop, "Where", "walk or backyard (default walk)", func(d *entry.Details, v string) { poopOf(d).Location = v }},
	{entry.Pish, "Where", "walk or backyard (default walk)", func(d *entry.Details, v string) { pishOf(d).Location = v }},
	{entry.Play, "With other dogs", "yes or no (default no)", func(d *entry.Details, v string) { playOf(d).WithOtherDogs = v }},
	{entry.Play, "Details", "fetch, tug...", func(d *entry.Details, v string) { playOf(d).Details = v }},
	{entry.Sleep, "Start", "HH:MM", func(d *entry.Details, v string) { sleepOf(d).Start = v }},
	{entry.Sleep, "End", "HH:MM", func(d *entry.Details, v string) { sleepOf(d).End = v }},
	{entry.Sleep, "Location", "crate, sofa...", func(d *entry.Details, v string) { sleepOf(d).Location = v }},
	{entry.Meal, "Time", "HH:MM", func(d *entry.Details, v string) { mealOf(d).Time = v }},
	{entry.Meal, "Food", "kibble", func(d *entry.Details, v string) { mealOf(d).Food = v }},
	{entry.Other, "Description", "vet visit", func(d *entry.Details, v string) { otherOf(d).Description = v }},
}

func walkOf(d *entry.Details) *entry.WalkDetails {
	if d.Walk == nil {
		d.Walk = &entry.WalkDetails{}
	}
	return d.Walk
}

func poopOf(d *entry.Details) *entry.EliminationDetails {
	if d.Poop == nil {
		d.Poop = &entry.EliminationDetails{}
	}
	return d.Poop
}

func pishOf(d *entry.Details) *entry.EliminationDetails {
	if d.Pish == nil {
		d.Pish = &entry.EliminationDetails{}
	}
	return d.Pish
}

func playOf(d *entry.Details) *entry.PlayDetails {
	if d.Play == nil {
		d.Play = &entry.PlayDetails{}
	}
	return d.Play
}

func sleepOf(d *entry.Details) *entry.SleepDetails {
	if d.Sleep == nil {
		d.Sleep = &entry.SleepDetails{}
	}
	return d.Sleep
}

func mealOf(d *entry.Details) *entry.MealDetails {
	if d.Meal == nil {
		d.Meal = &entry.MealDetails{}
	}
	return d.Meal
}

func otherOf(d *entry.Details) *entry.OtherDetails {
	if d.Other == nil {
		d.Other = &entry.OtherDetails{}
	}
	return d.Other
}

// itemType is what a focusable row of the form holds
type itemType int

const (
	itemToggle itemType = iota
	itemField
	itemNotes
	itemSave
)

// formItem is a focusable row; index points into entry.Kinds or formFields
type formItem struct {
	typ   itemType
	index int
}

// FormModel is the model for the log form view
type FormModel struct {
	ctx      context.Context
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	focus    int
	selected map[entry.Kind]bool
	inputs   []textinput.Model // parallel to formFields
	notes    textinput.Model

	// Result of the last save
	status string
	err    error
}

// NewFormModel creates a new log form view model
func NewFormModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap) FormModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = 100
		in.Width = 40
		inputs[i] = in
	}

	notes := textinput.New()
	notes.Placeholder = "Anything else worth noting..."
	notes.CharLimit = 500
	notes.Width = 50

	return FormModel{
		ctx:      ctx,
		services: services,
		styles:   styles,
		keys:     keys,
		selected: map[entry.Kind]bool{},
		inputs:   inputs,
		notes:    notes,
	}
}

// entrySavedMsg is sent when the form was submitted
type entrySavedMsg struct {
	entry *entry.Entry
	err   error
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return nil
}

// items lists the focusable rows: toggles, inputs of selected kinds, notes, save
func (m FormModel) items() []formItem {
	items := make([]formItem, 0, len(entry.Kinds)+len(formFields)+2)
	for i := range entry.Kinds {
		items = append(items, formItem{typ: itemToggle, index: i})
	}
	for i, f := range formFields {
		if m.selected[f.kind] {
			items = append(items, formItem{typ: itemField, index: i})
		}
	}
	items = append(items, formItem{typ: itemNotes}, formItem{typ: itemSave})
	return items
}

func (m FormModel) focused() formItem {
	items := m.items()
	return items[min(m.focus, len(items)-1)]
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case entrySavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.reset()
		m.status = fmt.Sprintf("Activity logged successfully. %s %s – %s", msg.entry.Date, msg.entry.Time, msg.entry.ActivityTitles())
		return m, func() tea.Msg { return ui.EntriesChangedMsg{} }

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m FormModel) handleKey(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	item := m.focused()
	typing := item.typ == itemField || item.typ == itemNotes

	switch {
	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case key.Matches(msg, m.keys.Back):
		m.reset()
		return m, nil

	case msg.Type == tea.KeyUp || (!typing && key.Matches(msg, m.keys.Up)):
		return m, m.moveFocus(-1)

	case msg.Type == tea.KeyDown || (!typing && key.Matches(msg, m.keys.Down)):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Select):
		switch item.typ {
		case itemToggle:
			m.toggle(entry.Kinds[item.index])
			return m, nil
		case itemSave:
			return m, m.save()
		default:
			return m, m.moveFocus(1)
		}

	case !typing && key.Matches(msg, m.keys.Toggle):
		if item.typ == itemToggle {
			m.toggle(entry.Kinds[item.index])
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput passes msg to the focused text input, if any
func (m FormModel) updateFocusedInput(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch item := m.focused(); item.typ {
	case itemField:
		m.inputs[item.index], cmd = m.inputs[item.index].Update(msg)
	case itemNotes:
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) toggle(k entry.Kind) {
	m.selected[k] = !m.selected[k]
	m.status = ""
	m.err = nil
}

// moveFocus moves the focus by delta rows, wrapping around
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	n := len(m.items())
	m.focus = (min(m.focus, n-1) + delta + n) % n
	return m.syncFocus()
}

// syncFocus focuses the text input under the cursor and blurs the rest
func (m *FormModel) syncFocus() tea.Cmd {
	item := m.focused()
	for i := range m.inputs {
		if item.typ == itemField && item.index == i {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if item.typ == itemNotes {
		m.notes.Focus()
	} else {
		m.notes.Blur()
	}
	if item.typ == itemField || item.typ == itemNotes {
		return textinput.Blink
	}
	return nil
}

// reset clears the selection and every input
func (m *FormModel) reset() {
	m.selected = map[entry.Kind]bool{}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.notes.SetValue("")
	m.notes.Blur()
	m.focus = 0
	m.status = ""
	m.err = nil
}

// Draft builds the draft the form currently describes.
// Only inputs of selected activities are included.
func (m FormModel) Draft() entry.Draft {
	var d entry.Draft
	for _, k := range entry.Kinds {
		if m.selected[k] {
			d.Activities = append(d.Activities, k)
		}
	}
	for i, f := range formFields {
		if m.selected[f.kind] {
			f.set(&d.Details, m.inputs[i].Value())
		}
	}
	d.Notes = m.notes.Value()
	return d
}

// save creates a command that submits the form
func (m FormModel) save() tea.Cmd {
	draft := m.Draft()
	return func() tea.Msg {
		e, err := m.services.Log.Create(m.ctx, draft)
		return entrySavedMsg{entry: e, err: err}
	}
}

// View implements tea.Model
func (m FormModel) View() string {
	var b strings.Builder
	focused := m.focused()

	b.WriteString(m.styles.ViewTitle.Render("Log Activity"))
	b.WriteString("\n")

	for i, k := range entry.Kinds {
		cursor := "  "
		if focused.typ == itemToggle && focused.index == i {
			cursor = "▸ "
		}
		b.WriteString(cursor)
		if m.selected[k] {
			b.WriteString(m.styles.ToggleOn.Render("[x] " + k.Title()))
		} else {
			b.WriteString(m.styles.ToggleOff.Render("[ ] " + k.Title()))
		}
		b.WriteString("\n")
	}

	var current entry.Kind
	for i, f := range formFields {
		if !m.selected[f.kind] {
			continue
		}
		if f.kind != current {
			current = f.kind
			b.WriteString("\n")
			b.WriteString(m.styles.CardTitle.Render(f.kind.Title()))
			b.WriteString("\n")
		}
		b.WriteString(m.renderInput(f.label, m.inputs[i], focused.typ == itemField && focused.index == i))
	}

	b.WriteString("\n")
	b.WriteString(m.renderInput("Notes", m.notes, focused.typ == itemNotes))
	b.WriteString("\n")

	if focused.typ == itemSave {
		b.WriteString(m.styles.ButtonFocus.Render("Save"))
	} else {
		b.WriteString(m.styles.Button.Render("Save"))
	}
	b.WriteString("\n")

	switch {
	case errors.Is(m.err, entry.ErrNoActivities):
		b.WriteString(m.styles.Warning.Render(SelectActivity))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(renderError(m.styles, m.err))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("space/enter toggle  ↑/↓ move  ctrl+s save  esc reset"))
	return b.String()
}

func (m FormModel) renderInput(label string, in textinput.Model, focused bool) string {
	style := m.styles.FieldLabel
	if focused {
		style = m.styles.FieldFocused
	}
	return style.Render(label+":") + " " + in.View() + "\n"
}

// SetSize sets the view dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsCapturingKeys reports whether a text input has the focus
func (m FormModel) IsCapturingKeys() bool {
	typ := m.focused().typ
	return typ == itemField || typ == itemNotes
}
