package blk

type scanner struct {
	*source

	// nlsemi records that the previous token can end an entry, making a
	// following newline a separator instead of plain whitespace. valueok
	// records that the previous token was '=' or ',', making a following
	// digit or sign the start of a number instead of an identifier.
	nlsemi  bool
	valueok bool

	pos Pos
	tok token
	lit string
}

func newScanner(src *source) *scanner {
	sc := &scanner{
		source: src,
	}
	sc.next()
	return sc
}

// Identifiers are ASCII only, and may consist entirely of digits.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (sc *scanner) ident() {
	sc.startLit()

	r := sc.get()

	for isLetter(r) || isDigit(r) {
		r = sc.get()
	}
	sc.unget()

	sc.nlsemi = true
	sc.tok = _Name
	sc.lit = sc.stopLit()
}

func (sc *scanner) number() {
	sc.startLit()

	isFloat := false

	r := sc.get()

	for {
		if !isDigit(r) {
			if r == '.' && !isFloat {
				isFloat = true
				r = sc.get()
				continue
			}
			if r == 'e' || r == 'E' {
				if r = sc.get(); r == '+' || r == '-' {
					r = sc.get()
				}
				for isDigit(r) {
					r = sc.get()
				}
			}
			break
		}
		r = sc.get()
	}
	sc.unget()

	sc.nlsemi = true
	sc.tok = _Number
	sc.lit = sc.stopLit()
}

func (sc *scanner) string() {
	sc.startLit()

	// No escape sequences, the string runs to the next '"' no matter what.
	for {
		r := sc.get()

		if r == '"' {
			break
		}
		if r == -1 {
			sc.errAt(sc.pos, "unterminated string")
			break
		}
	}

	lit := sc.stopLit()

	if len(lit) >= 2 && lit[len(lit)-1] == '"' {
		lit = lit[1 : len(lit)-1]
	} else {
		lit = lit[1:]
	}

	sc.nlsemi = true
	sc.tok = _String
	sc.lit = lit
}

func (sc *scanner) next() {
	nlsemi := sc.nlsemi
	valueok := sc.valueok

	sc.nlsemi = false
	sc.valueok = false

	sc.tok = token(0)
	sc.lit = sc.lit[0:0]

	r := sc.get()

	for r == ' ' || r == '\t' || r == '\r' || r == '\n' && !nlsemi {
		r = sc.get()
	}

	sc.pos = sc.getpos()

	if valueok && (isDigit(r) || r == '-' || r == '+' || r == '.') {
		sc.number()
		return
	}

	if isLetter(r) || isDigit(r) {
		sc.ident()
		return
	}

	switch r {
	case -1:
		sc.tok = _EOF
	case '\n', ';':
		sc.tok = _Semi
	case ',':
		sc.valueok = true
		sc.tok = _Comma
	case ':':
		sc.tok = _Colon
	case '=':
		sc.valueok = true
		sc.tok = _Assign
	case '{':
		sc.tok = _Lbrace
	case '}':
		sc.nlsemi = true
		sc.tok = _Rbrace
	case '"':
		sc.string()
	default:
		// Left for the parser to reject, or to hand back as leftover
		// when it sits after the last complete top-level entry.
		sc.tok = _Bad
		sc.lit = string(r)
	}
}
