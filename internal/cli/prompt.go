package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/soniarosenberger/brickring/pkg/errors"
	"github.com/soniarosenberger/brickring/pkg/ring"
)

// maxFieldRetries bounds the re-prompt loop: after this many rejected
// entries for one field the prompt gives up instead of looping forever.
const maxFieldRetries = 5

// exampleInputs is the documented sample job: barrel Ø24 with 4.5 thick
// bricks, eight per ring.
var exampleInputs = ring.Inputs{
	BarrelInsideDiameter: 24,
	BarrelWallThickness:  0.25,
	InsulationThickness:  1.0,
	BrickThickness:       4.5,
	BricksPerRing:        8,
	FaceLength:           9.0,
	SawKerf:              0.125,
}

// promptCommand creates the prompt command: line-oriented entry of every
// dimension in a fixed order, with re-prompting on malformed input.
func (c *CLI) promptCommand() *cobra.Command {
	var (
		mode       string
		unit       string
		output     string
		formatsStr string
		example    bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Enter the ring dimensions interactively",
		Long: `Ask for each dimension in order: barrel diameter, wall thickness,
insulation thickness, brick thickness, bricks per ring, face length, kerf.
Malformed entries are re-prompted. With --example, pressing enter on an
empty line accepts the sample value shown in brackets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPromptModel(example)
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return fmt.Errorf("prompt: %w", err)
			}

			pm, ok := final.(promptModel)
			if !ok || pm.aborted {
				return errors.New(errors.ErrCodeInvalidInput, "prompt aborted before all fields were entered")
			}

			return c.runCalc(pm.toInputs(), ring.Mode(mode), unit, output, formatsStr)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(ring.ModeShrinkToFit), "solve mode: fixed, shrink (default), clamp")
	cmd.Flags().StringVar(&unit, "unit", "in", "length unit for report and diagrams")
	cmd.Flags().StringVarP(&output, "output", "o", "", "base path for diagrams (writes <base>_ring and <base>_brick)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "diagram format(s): svg (default), png, pdf")
	cmd.Flags().BoolVar(&example, "example", false, "offer the sample barrel as per-field defaults")

	return cmd
}

// promptField describes one requested dimension.
type promptField struct {
	label    string
	integer  bool
	def      float64
	hasDef   bool
	validate func(float64) error
}

// promptFields returns the seven fields in their canonical entry order.
func promptFields(example bool) []promptField {
	seed := func(v float64) (float64, bool) { return v, example }

	fields := []promptField{
		{label: "Barrel inside diameter", validate: positive("barrel_inside_diameter")},
		{label: "Barrel wall thickness", validate: nonNegative("barrel_wall_thickness")},
		{label: "Backup insulation thickness", validate: nonNegative("backup_insulation_thickness")},
		{label: "Brick radial thickness", validate: positive("brick_radial_thickness")},
		{label: "Bricks per ring", integer: true, validate: atLeastThree("bricks_per_ring")},
		{label: "Outer face length", validate: positive("outer_face_length")},
		{label: "Saw kerf", validate: nonNegative("saw_kerf")},
	}

	defaults := []float64{
		exampleInputs.BarrelInsideDiameter,
		exampleInputs.BarrelWallThickness,
		exampleInputs.InsulationThickness,
		exampleInputs.BrickThickness,
		float64(exampleInputs.BricksPerRing),
		exampleInputs.FaceLength,
		exampleInputs.SawKerf,
	}
	for i := range fields {
		fields[i].def, fields[i].hasDef = seed(defaults[i])
	}
	return fields
}

func positive(field string) func(float64) error {
	return func(v float64) error { return errors.RequirePositive(field, v) }
}

func nonNegative(field string) func(float64) error {
	return func(v float64) error { return errors.RequireNonNegative(field, v) }
}

func atLeastThree(field string) func(float64) error {
	return func(v float64) error { return errors.RequireMinInt(field, int(v), 3) }
}

// promptModel is the bubbletea model walking through the fields one by one.
type promptModel struct {
	fields  []promptField
	idx     int
	input   string
	errMsg  string
	retries int
	values  []float64
	aborted bool
}

func newPromptModel(example bool) promptModel {
	return promptModel{fields: promptFields(example)}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		return m.accept()

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	default:
		if key.Type == tea.KeyRunes {
			m.input += string(key.Runes)
		}
		return m, nil
	}
}

// accept parses the current line, either advancing to the next field or
// recording a re-prompt. The retry budget is per field.
func (m promptModel) accept() (tea.Model, tea.Cmd) {
	field := m.fields[m.idx]
	text := strings.TrimSpace(m.input)

	var value float64
	switch {
	case text == "" && field.hasDef:
		value = field.def
	default:
		var err error
		value, err = strconv.ParseFloat(text, 64)
		if err == nil && field.integer && value != float64(int(value)) {
			err = fmt.Errorf("not a whole number")
		}
		if err != nil {
			return m.reject(fmt.Sprintf("%q is not a valid number, try again", text))
		}
	}

	if err := field.validate(value); err != nil {
		return m.reject(errors.UserMessage(err))
	}

	m.values = append(m.values, value)
	m.input = ""
	m.errMsg = ""
	m.retries = 0
	m.idx++
	if m.idx >= len(m.fields) {
		return m, tea.Quit
	}
	return m, nil
}

func (m promptModel) reject(msg string) (tea.Model, tea.Cmd) {
	m.retries++
	if m.retries >= maxFieldRetries {
		m.aborted = true
		return m, tea.Quit
	}
	m.errMsg = msg
	m.input = ""
	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Brick ring dimensions"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("enter each value  ⏎ confirm  esc quit"))
	b.WriteString("\n\n")

	for i := 0; i < m.idx; i++ {
		b.WriteString(styleDim.Render(fmt.Sprintf("  %s: ", m.fields[i].label)))
		b.WriteString(styleValue.Render(formatFieldValue(m.fields[i], m.values[i])))
		b.WriteString("\n")
	}

	if m.idx >= len(m.fields) {
		b.WriteString(styleSuccess.Render("  ✓ all dimensions entered"))
		b.WriteString("\n")
		return b.String()
	}

	field := m.fields[m.idx]
	b.WriteString(fmt.Sprintf("▸ %s", field.label))
	if field.hasDef {
		b.WriteString(styleDim.Render(fmt.Sprintf(" [%s]", formatFieldValue(field, field.def))))
	}
	b.WriteString(": ")
	b.WriteString(styleValue.Render(m.input))
	b.WriteString("█\n")

	if m.errMsg != "" {
		b.WriteString(styleError.Render("  ✗ " + m.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func formatFieldValue(f promptField, v float64) string {
	if f.integer {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// toInputs maps the collected values back onto the input record. Field order
// matches promptFields.
func (m promptModel) toInputs() ring.Inputs {
	return ring.Inputs{
		BarrelInsideDiameter: m.values[0],
		BarrelWallThickness:  m.values[1],
		InsulationThickness:  m.values[2],
		BrickThickness:       m.values[3],
		BricksPerRing:        int(m.values[4]),
		FaceLength:           m.values[5],
		SawKerf:              m.values[6],
	}
}
