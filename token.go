package kansuji

import "unicode/utf8"

// token is a classified character of the input.
type token struct {
	kind  symbolKind
	value int8 // digit or exponent, see symbol
	unit  Unit
	char  rune
	pos   int // rune index in the input
}

// tokenize classifies every character of text.
// It does not check the order of the characters.
func tokenize(text string) ([]token, error) {
	if text == "" {
		return nil, &ParseError{Input: text, Pos: -1, Err: ErrEmptyInput}
	}
	toks := make([]token, 0, utf8.RuneCountInString(text))
	pos := 0
	for _, r := range text {
		s := classify(r)
		tok := token{kind: s.kind, value: s.value, unit: s.unit, char: r, pos: pos}
		if tok.kind == kindInvalid {
			return nil, newParseError(text, tok, ErrInvalidCharacter)
		}
		toks = append(toks, tok)
		pos++
	}
	return toks, nil
}
