package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is matched by every error returned from Parse
var ErrInvalidColor = errors.New("invalid color syntax")

// SyntaxError reports text that matches none of the accepted color syntaxes
type SyntaxError struct {
	Original string
	Reason   string
}

func (e *SyntaxError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid color %q", e.Original)
	}
	return fmt.Sprintf("invalid color %q: %s", e.Original, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidColor }

var funcRegex = regexp.MustCompile(`(?i)^(rgba?|hsla?)\(\s*(.*?)\s*\)$`)

// Parse converts a single color token into a Color. Surrounding whitespace
// and one wrapping quote on either side are ignored. Accepted forms are hex
// (#RGB, #RGBA, #RRGGBB, #RRGGBBAA, '#' optional), rgb()/rgba(), hsl()/hsla()
// and CSS named colors. Alpha is accepted and discarded
func Parse(text string) (Color, error) {
	s := Clean(text)
	if s == "" {
		return Color{}, &SyntaxError{Original: text, Reason: "empty"}
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{R: named.R, G: named.G, B: named.B}, nil
	}

	if m := funcRegex.FindStringSubmatch(s); m != nil {
		var (
			c   Color
			err error
		)
		switch strings.ToLower(m[1]) {
		case "rgb", "rgba":
			c, err = parseRGBArgs(m[2])
		default:
			c, err = parseHSLArgs(m[2])
		}
		if err != nil {
			return Color{}, &SyntaxError{Original: text, Reason: err.Error()}
		}
		return c, nil
	}

	c, err := parseHexDigits(strings.TrimPrefix(s, "#"))
	if err != nil {
		return Color{}, &SyntaxError{Original: text, Reason: err.Error()}
	}
	return c, nil
}

// Clean trims whitespace and strips one leading and one trailing quote
func Clean(text string) string {
	s := strings.TrimSpace(text)
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if s != "" && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

func parseHexDigits(h string) (Color, error) {
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return Color{}, errors.New("not a recognised color format")
		}
	}

	switch len(h) {
	case 3, 4: // RGB, RGBA
		return Color{
			R: hexNibble(h[0]) * 17,
			G: hexNibble(h[1]) * 17,
			B: hexNibble(h[2]) * 17,
		}, nil
	case 6, 8: // RRGGBB, RRGGBBAA
		return Color{
			R: hexNibble(h[0])<<4 | hexNibble(h[1]),
			G: hexNibble(h[2])<<4 | hexNibble(h[3]),
			B: hexNibble(h[4])<<4 | hexNibble(h[5]),
		}, nil
	}
	return Color{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits, got %d", len(h))
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexNibble(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// splitArgs splits functional notation arguments. Both the legacy comma
// form "r, g, b, a" and the space form "r g b / a" are accepted
func splitArgs(args string) (parts []string, alpha string, err error) {
	main := args
	if i := strings.Index(args, "/"); i >= 0 {
		main = args[:i]
		alpha = strings.TrimSpace(args[i+1:])
		if alpha == "" {
			return nil, "", errors.New("missing alpha after '/'")
		}
	}

	if strings.Contains(main, ",") {
		for _, p := range strings.Split(main, ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
	} else {
		parts = strings.Fields(main)
	}

	if len(parts) == 4 && alpha == "" {
		if parts[3] == "" {
			return nil, "", errors.New("empty alpha component")
		}
		alpha = parts[3]
		parts = parts[:3]
	}
	if len(parts) != 3 {
		return nil, "", fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return nil, "", errors.New("empty component")
		}
	}
	if alpha != "" {
		if err := checkAlpha(alpha); err != nil {
			return nil, "", err
		}
	}
	return parts, alpha, nil
}

func parseRGBArgs(args string) (Color, error) {
	parts, _, err := splitArgs(args)
	if err != nil {
		return Color{}, err
	}

	percent := strings.HasSuffix(parts[0], "%")
	var ch [3]uint8
	for i, p := range parts {
		if strings.HasSuffix(p, "%") != percent {
			return Color{}, errors.New("cannot mix numbers and percentages")
		}
		if percent {
			v, err := parseNumber(strings.TrimSuffix(p, "%"))
			if err != nil {
				return Color{}, err
			}
			if v < 0 || v > 100 {
				return Color{}, fmt.Errorf("channel %s out of range [0%%, 100%%]", p)
			}
			ch[i] = uint8(math.Round(v * 255 / 100))
			continue
		}
		v, err := parseNumber(p)
		if err != nil {
			return Color{}, err
		}
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("channel %s out of range [0, 255]", p)
		}
		ch[i] = uint8(math.Round(v))
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseHSLArgs(args string) (Color, error) {
	parts, _, err := splitArgs(args)
	if err != nil {
		return Color{}, err
	}

	h, err := parseNumber(strings.TrimSuffix(strings.ToLower(parts[0]), "deg"))
	if err != nil {
		return Color{}, err
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	var sl [2]float64
	for i, p := range parts[1:] {
		if !strings.HasSuffix(p, "%") {
			return Color{}, fmt.Errorf("%s must be a percentage", p)
		}
		v, err := parseNumber(strings.TrimSuffix(p, "%"))
		if err != nil {
			return Color{}, err
		}
		if v < 0 || v > 100 {
			return Color{}, fmt.Errorf("%s out of range [0%%, 100%%]", p)
		}
		sl[i] = v / 100
	}
	return FromColorful(colorful.Hsl(h, sl[0], sl[1])), nil
}

func checkAlpha(s string) error {
	limit := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		limit = 100
	}
	v, err := parseNumber(s)
	if err != nil {
		return err
	}
	if v < 0 || v > limit {
		return fmt.Errorf("alpha %s out of range", s)
	}
	return nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}
