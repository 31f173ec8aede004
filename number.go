package flatjson

// Convert decomposes a number token's lexeme into integer, fractional,
// and exponent subfields using the number table, then combines them
// into a float64. It is a simple decimal model, not a correctly-rounded
// parser: accuracy beyond what the two loops below compute is out of
// scope, matching how the lexeme was always meant to be decomposed by
// the surrounding DFA rather than handed to a general-purpose parser.
// A byte the number table doesn't recognize fails the whole conversion
// (TypeNone), the same as an unrecognized byte anywhere else in the DFA.
//
// One quirk is carried forward unchanged rather than hardened: a stray
// '-' or '+' in the middle of a subfield is silently dropped rather
// than rejected, because the number table treats both as part of the
// ordinary digit run and stoi only ever looks at a subfield's very
// first byte as a sign.
func Convert(tok Token, buf []byte) (float64, Type) {
	if tok.Type != TypeNumber {
		return 0, TypeNone
	}
	data := tok.Bytes(buf)

	var fltOff, fltLen, expOff, expLen, intLen int
	state := 0 // 0 = integer, 1 = fraction, 2 = exponent
	sectionStart := 0

	pos := 0
	for pos < len(data) {
		switch numberTable[data[pos]] {
		case numFailed:
			return 0, TypeNone
		case numLoop:
			pos++
			continue
		case numBreak:
			pos = len(data)
			continue
		case numFloat:
			if state != 0 {
				return 0, TypeNone
			}
			intLen = pos - sectionStart
			state = 1
			fltOff = pos + 1
			sectionStart = fltOff
		case numExp:
			if state == 2 {
				return 0, TypeNone
			}
			if state == 0 {
				intLen = pos - sectionStart
			} else {
				fltLen = pos - sectionStart
			}
			state = 2
			expOff = pos + 1
			sectionStart = expOff
		}
		pos++
	}
	switch state {
	case 0:
		intLen = pos - sectionStart
	case 1:
		fltLen = pos - sectionStart
	case 2:
		expLen = pos - sectionStart
	}

	intTok := data[0:intLen]
	var fltTok, expTok []byte
	if fltLen > 0 {
		fltTok = data[fltOff : fltOff+fltLen]
	}
	if expLen > 0 {
		expTok = data[expOff : expOff+expLen]
	}

	i := stoi(intTok)
	f := stof(fltTok)
	e := stoi(expTok)

	p := ipow(10, e)
	if e < 0 {
		p = 1 / p
	}

	var mantissa float64
	if i < 0 {
		mantissa = float64(i) - f
	} else {
		mantissa = float64(i) + f
	}
	return mantissa * p, TypeNumber
}

// stoi sums the digits of tok, treating only its very first byte as an
// optional sign. Every other byte the number table let through as part
// of this subfield is either a digit or a stray '-'/'+' (OQ5); either
// way a non-digit byte here is silently skipped rather than rejected.
func stoi(tok []byte) int {
	if len(tok) == 0 {
		return 0
	}
	off := 0
	neg := false
	switch tok[0] {
	case '-':
		neg = true
		off = 1
	case '+':
		off = 1
	}
	n := 0
	for i := off; i < len(tok); i++ {
		if d := tok[i]; d >= '0' && d <= '9' {
			n = n*10 + int(d-'0')
		}
	}
	if neg {
		n = -n
	}
	return n
}

func stof(tok []byte) float64 {
	f := 0.0
	frac := 0.1
	for _, d := range tok {
		if d >= '0' && d <= '9' {
			f += float64(d-'0') * frac
			frac *= 0.1
		}
	}
	return f
}

func ipow(base float64, exp int) float64 {
	if exp < 0 {
		exp = -exp
	}
	result := 1.0
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
