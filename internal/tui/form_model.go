// Package tui provides the interactive footprint entry form.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/footprint"
)

// FormState represents the current state of the form.
type FormState int

const (
	// FormStateEditing indicates the user is still entering values.
	FormStateEditing FormState = iota
	// FormStateAccepted indicates the user confirmed valid values.
	FormStateAccepted
	// FormStateCancelled indicates the user left without confirming.
	FormStateCancelled
)

// Input sizing.
const (
	inputCharLimit = 16
	inputWidth     = 14
	defaultWidth   = 72
)

// fieldKey identifies an editable value.
type fieldKey int

const (
	fieldElectricity fieldKey = iota
	fieldGas
	fieldCar
	fieldFlight
	fieldElectricityFactor
	fieldGasFactor
	fieldCarFactor
	fieldFlightFactor
)

// formField is one labelled text input.
type formField struct {
	key    fieldKey
	label  string
	unit   string
	custom bool // only shown for the custom preset
	input  textinput.Model
}

// FormOptions configure RunForm and NewFormModel.
type FormOptions struct {
	Input      footprint.ConsumptionInput
	Preset     footprint.Preset
	Benchmarks footprint.Benchmarks
	Unit       footprint.Unit

	In  io.Reader
	Out io.Writer
}

// FormResult is what the user confirmed. Input and Preset are only
// meaningful when Accepted is true.
type FormResult struct {
	Input    footprint.ConsumptionInput
	Preset   footprint.Preset
	Accepted bool
}

// FormModel is the Bubble Tea model for entering consumption values.
//
// Row 0 is the preset selector; the remaining rows are the visible fields.
// Every edit recalculates the assessment so the total and verdict update live.
type FormModel struct {
	fields     []formField
	preset     footprint.PresetKind
	manual     *footprint.ManualFactors
	benchmarks footprint.Benchmarks
	unit       footprint.Unit

	focus int

	assessment *footprint.Assessment
	input      footprint.ConsumptionInput
	factors    footprint.FactorSet
	err        error

	state FormState
	width int
}

// NewFormModel creates a form pre-seeded with opts.Input. Custom factor
// fields start from the supplied overrides, falling back to the baseline
// factors for any that are absent.
func NewFormModel(opts FormOptions) *FormModel {
	seed := footprint.DefaultFactors()
	if m := opts.Preset.Manual; m != nil {
		if m.Electricity != nil {
			seed.Electricity = *m.Electricity
		}
		if m.Gas != nil {
			seed.Gas = *m.Gas
		}
		if m.Car != nil {
			seed.Car = *m.Car
		}
		if m.Flight != nil {
			seed.Flight = *m.Flight
		}
	}

	unit := opts.Unit
	if unit == "" {
		unit = footprint.UnitKg
	}

	m := &FormModel{
		preset:     opts.Preset.Kind,
		manual:     opts.Preset.Manual,
		benchmarks: opts.Benchmarks,
		unit:       unit,
		width:      defaultWidth,
		fields: []formField{
			newField(fieldElectricity, "Electricity", "kWh", false, opts.Input.ElectricityKWh),
			newField(fieldGas, "Natural gas", "kWh", false, opts.Input.GasKWh),
			newField(fieldCar, "Car travel", "km", false, opts.Input.CarKm),
			newField(fieldFlight, "Flights", "km", false, opts.Input.FlightKm),
			newField(fieldElectricityFactor, "Electricity factor", "kg/kWh", true, seed.Electricity),
			newField(fieldGasFactor, "Gas factor", "kg/kWh", true, seed.Gas),
			newField(fieldCarFactor, "Car factor", "kg/km", true, seed.Car),
			newField(fieldFlightFactor, "Flight factor", "kg/km", true, seed.Flight),
		},
	}
	m.recalculate()
	return m
}

func newField(key fieldKey, label, unit string, custom bool, value float64) formField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = inputCharLimit
	ti.Width = inputWidth
	ti.SetValue(strconv.FormatFloat(value, 'f', -1, 64))
	return formField{key: key, label: label, unit: unit, custom: custom, input: ti}
}

// RunForm runs the form on opts.In and opts.Out until the user accepts or
// cancels, or ctx is done.
func RunForm(ctx context.Context, opts FormOptions) (FormResult, error) {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.In != nil {
		programOpts = append(programOpts, tea.WithInput(opts.In))
	}
	if opts.Out != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Out))
	}

	finalModel, err := tea.NewProgram(NewFormModel(opts), programOpts...).Run()
	if err != nil {
		return FormResult{}, err
	}

	form, ok := finalModel.(*FormModel)
	if !ok {
		return FormResult{}, fmt.Errorf("unexpected model type %T", finalModel)
	}
	return form.Result(), nil
}

// Init initializes the model.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *FormModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = FormStateCancelled
		return m, tea.Quit

	case tea.KeyEnter:
		if m.err != nil || m.assessment == nil {
			return m, nil
		}
		m.state = FormStateAccepted
		return m, tea.Quit

	case tea.KeyUp, tea.KeyShiftTab:
		m.moveFocus(-1)
		return m, nil

	case tea.KeyDown:
		m.moveFocus(1)
		return m, nil

	case tea.KeyTab:
		if m.focus == 0 {
			m.cyclePreset(1)
		} else {
			m.moveFocus(1)
		}
		return m, nil

	case tea.KeyLeft, tea.KeyRight:
		if m.focus == 0 {
			step := 1
			if msg.Type == tea.KeyLeft {
				step = -1
			}
			m.cyclePreset(step)
			return m, nil
		}
	}

	if m.focus == 0 {
		return m, nil
	}

	idx := m.visible()[m.focus-1]
	var cmd tea.Cmd
	m.fields[idx].input, cmd = m.fields[idx].input.Update(msg)
	m.recalculate()
	return m, cmd
}

// visible returns indexes into m.fields of the rows currently shown.
func (m *FormModel) visible() []int {
	out := make([]int, 0, len(m.fields))
	for i, f := range m.fields {
		if f.custom && m.preset != footprint.PresetCustom {
			continue
		}
		out = append(out, i)
	}
	return out
}

// rows is the preset row plus the visible fields.
func (m *FormModel) rows() int {
	return len(m.visible()) + 1
}

func (m *FormModel) moveFocus(step int) {
	m.focus = (m.focus + step + m.rows()) % m.rows()
	m.syncFocus()
}

func (m *FormModel) cyclePreset(step int) {
	presets := footprint.Presets()
	n := len(presets)
	m.preset = footprint.PresetKind((int(m.preset) + step + n) % n)
	if m.focus >= m.rows() {
		m.focus = m.rows() - 1
	}
	m.syncFocus()
	m.recalculate()
}

// syncFocus focuses the text input under the cursor and blurs the rest.
func (m *FormModel) syncFocus() {
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
	if m.focus == 0 {
		return
	}
	idx := m.visible()[m.focus-1]
	m.fields[idx].input.Focus()
}

// recalculate parses the visible fields and reassesses.
func (m *FormModel) recalculate() {
	m.assessment = nil

	values := make(map[fieldKey]float64, len(m.fields))
	for _, i := range m.visible() {
		f := m.fields[i]
		v, err := parseValue(f.input.Value())
		if err != nil {
			m.err = fmt.Errorf("%s: %w", f.label, err)
			return
		}
		values[f.key] = v
	}

	m.input = footprint.ConsumptionInput{
		ElectricityKWh: values[fieldElectricity],
		GasKWh:         values[fieldGas],
		CarKm:          values[fieldCar],
		FlightKm:       values[fieldFlight],
	}

	a, err := footprint.Assess(m.input, m.currentPreset(values), m.benchmarks)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.factors = a.Factors
	m.assessment = &a
}

// currentPreset builds the preset selection. The custom preset takes the
// factor fields, whose visible values count as entered by the user.
func (m *FormModel) currentPreset(values map[fieldKey]float64) footprint.Preset {
	if m.preset != footprint.PresetCustom {
		return footprint.Preset{Kind: m.preset, Manual: m.manual}
	}
	return footprint.Preset{
		Kind: footprint.PresetCustom,
		Manual: footprint.ManualFromFactorSet(footprint.FactorSet{
			Electricity: values[fieldElectricityFactor],
			Gas:         values[fieldGasFactor],
			Car:         values[fieldCarFactor],
			Flight:      values[fieldFlightFactor],
		}),
	}
}

var errEmptyValue = errors.New("a value is required")

// groupedNumber matches commas used only as thousands separators.
var groupedNumber = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyValue
	}
	raw := s
	if strings.Contains(s, ",") {
		if !groupedNumber.MatchString(s) {
			return 0, fmt.Errorf("%q is not a number", raw)
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}

// State returns the current form state.
func (m *FormModel) State() FormState { return m.state }

// Assessment returns the live assessment, or nil while the values are invalid.
func (m *FormModel) Assessment() *footprint.Assessment { return m.assessment }

// Err returns the current validation error.
func (m *FormModel) Err() error { return m.err }

// Result returns the confirmed values.
func (m *FormModel) Result() FormResult {
	if m.state != FormStateAccepted || m.assessment == nil {
		return FormResult{}
	}
	preset := footprint.Preset{Kind: m.preset, Manual: m.manual}
	if m.preset == footprint.PresetCustom {
		preset.Manual = footprint.ManualFromFactorSet(m.factors)
	}
	return FormResult{Input: m.input, Preset: preset, Accepted: true}
}
