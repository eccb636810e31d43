package color

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Step is a signed percentage in [-100, 100]. Positive steps are tints,
// negative steps shades and zero is the base color
type Step int

// MinusSign is the display glyph used in shade labels
const MinusSign = "−"

// Clamp restricts the step to [-100, 100]
func (s Step) Clamp() Step {
	if s > 100 {
		return 100
	}
	if s < -100 {
		return -100
	}
	return s
}

// Label returns "+25%", "−25%" (true minus sign) or "Base"
func (s Step) Label() string {
	switch {
	case s == 0:
		return "Base"
	case s > 0:
		return fmt.Sprintf("+%d%%", int(s))
	default:
		return fmt.Sprintf("%s%d%%", MinusSign, -int(s))
	}
}

// Fraction returns |s|/100
func (s Step) Fraction() float64 {
	if s < 0 {
		return float64(-s) / 100
	}
	return float64(s) / 100
}

// Step presets
var (
	// Decimal is the symmetric ladder in 10% increments
	Decimal = []Step{50, 40, 30, 20, 10, 0, -10, -20, -30, -40, -50}
	// Tailwind is the 25/50/75/95 ladder
	Tailwind = []Step{95, 75, 50, 25, 0, -25, -50, -75, -95}
)

var presets = map[string][]Step{
	"decimal":  Decimal,
	"tailwind": Tailwind,
}

// DefaultPreset is used when nothing else is configured
const DefaultPreset = "tailwind"

// Preset returns a copy of the named step ladder
func Preset(name string) ([]Step, bool) {
	steps, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return append([]Step(nil), steps...), true
}

// PresetNames lists the known presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseSteps parses a comma or space separated list such as
// "50, 25, 0, -25" or "+50% 0 −50%"
func ParseSteps(text string) ([]Step, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no steps given")
	}

	steps := make([]Step, 0, len(fields))
	for _, f := range fields {
		raw := f
		f = strings.TrimSuffix(f, "%")
		f = strings.Replace(f, MinusSign, "-", 1)
		if strings.EqualFold(f, "base") {
			steps = append(steps, 0)
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("step %q is not an integer", raw)
		}
		if v < -100 || v > 100 {
			return nil, fmt.Errorf("step %q out of range [-100, 100]", raw)
		}
		steps = append(steps, Step(v))
	}
	return steps, nil
}

// FormatSteps is the inverse of ParseSteps
func FormatSteps(steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}
