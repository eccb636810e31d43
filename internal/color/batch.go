package color

import "strings"

// Parsed is the outcome of parsing one token of a batch
type Parsed struct {
	Original string
	Color    Color
	Err      error
}

// Valid reports whether the token parsed to a color
func (p Parsed) Valid() bool {
	return p.Err == nil
}

// ParseBatch splits text on commas and newlines and parses every non-empty
// token independently. Separators inside parentheses do not split, so
// "rgb(1, 2, 3)" stays one token; newlines always split. Invalid tokens are reported per entry and
// never abort their siblings
func ParseBatch(text string) []Parsed {
	tokens := SplitTokens(text)
	out := make([]Parsed, 0, len(tokens))
	for _, tok := range tokens {
		c, err := Parse(tok)
		out = append(out, Parsed{Original: tok, Color: c, Err: err})
	}
	return out
}

// SplitTokens returns the trimmed, non-empty tokens of a bulk color list
func SplitTokens(text string) []string {
	var (
		tokens []string
		depth  int
		start  int
	)
	flush := func(end int) {
		if tok := strings.TrimSpace(text[start:end]); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		case '\n':
			// an unbalanced parenthesis never swallows the following lines
			depth = 0
			flush(i)
			start = i + 1
		}
	}
	flush(len(text))
	return tokens
}

// Colors returns the valid colors of a batch, in input order
func Colors(batch []Parsed) []Color {
	var out []Color
	for _, p := range batch {
		if p.Valid() {
			out = append(out, p.Color)
		}
	}
	return out
}

// Summary counts the valid and invalid entries of a batch
func Summary(batch []Parsed) (valid, invalid int) {
	for _, p := range batch {
		if p.Valid() {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}
