package flatjson

// Iterator walks a byte buffer one token at a time. A freshly built
// Iterator treats its own window as the interior of an implicit
// enclosing value: depth starts at 1, so the window's own outermost
// container (if any) is discovered and wrapped as a single token the
// same way a nested container is, and depth 2 is where that
// container's direct pairs/elements live. Loader.go exploits this by
// handing a container's interior bytes to a fresh Iterator to recurse
// one level at a time, rather than threading parent/child pointers
// through the token array.
type Iterator struct {
	buf        []byte
	pos        int
	end        int
	depth      int
	mode       mode
	utf8Remain int
	started    bool
	str        int
	err        error
}

// Begin returns an Iterator scanning the whole of buf.
func Begin(buf []byte) Iterator {
	return beginWindow(buf, 0, len(buf))
}

func beginWindow(buf []byte, start, end int) Iterator {
	initTables()
	return Iterator{buf: buf, pos: start, end: end, depth: 1, mode: modeStruct}
}

// Err reports the error that stopped the iterator, if any. Once Read
// has returned an error, every subsequent call returns false
// immediately without scanning further.
func (it *Iterator) Err() error {
	return it.err
}

// Read scans forward and returns the next token, or ok=false when the
// window is exhausted (check Err to distinguish a clean end from a
// parse failure).
func (it *Iterator) Read() (Token, bool) {
	if it.err != nil {
		return Token{}, false
	}
	if it.pos >= it.end {
		return Token{}, false
	}

	var tok Token
	it.started = false
	cur := it.pos
	for cur < it.end {
		c := it.buf[cur]
		switch dfaTable[it.mode][c] {
		case actLoop:
			cur++
		case actUp:
			pre := it.depth
			if pre > 1 {
				tok.Sub++
			}
			if pre == 2 {
				tok.Children++
			}
			if pre == 1 {
				it.str = cur
				it.started = true
			}
			it.depth++
			cur++
		case actDown:
			it.depth--
			if it.depth < 1 {
				it.err = ErrParsingError
				it.pos = cur + 1
				return Token{}, false
			}
			if it.depth == 1 {
				tok.Offset = it.str
				tok.Length = cur - it.str + 1
				tok.Type = classify(it.buf[it.str])
				it.pos = cur + 1
				return tok, true
			}
			cur++
		case actQuoteUp:
			if it.depth <= 1 {
				it.str = cur
				it.started = true
			} else {
				if it.depth == 2 {
					tok.Children++
				}
				tok.Sub++
			}
			it.mode = modeString
			cur++
		case actQuoteDown:
			it.mode = modeStruct
			if it.depth <= 1 {
				tok.Offset = it.str + 1
				tok.Length = cur - it.str - 1
				tok.Type = TypeString
				it.pos = cur + 1
				return tok, true
			}
			cur++
		case actSep:
			if it.depth == 2 {
				tok.Children--
			}
			cur++
		case actBareStart:
			if it.depth <= 1 {
				it.str = cur
				it.started = true
			} else {
				if it.depth == 2 {
					tok.Children++
				}
				tok.Sub++
			}
			it.mode = modeBare
			cur++
		case actUnbare:
			it.mode = modeStruct
			if it.depth <= 1 {
				tok.Offset = it.str
				tok.Length = cur - it.str
				tok.Type = classify(it.buf[it.str])
				it.pos = cur
				return tok, true
			}
			// reprocess this delimiter under the struct table
		case actEsc:
			it.mode = modeEscape
			cur++
		case actUnesc:
			it.mode = modeString
			cur++
		case actUTF82:
			it.utf8Remain = 1
			it.mode = modeUTF8
			cur++
		case actUTF83:
			it.utf8Remain = 2
			it.mode = modeUTF8
			cur++
		case actUTF84:
			it.utf8Remain = 3
			it.mode = modeUTF8
			cur++
		case actUTF8Next:
			it.utf8Remain--
			if it.utf8Remain == 0 {
				it.mode = modeString
			}
			cur++
		case actFailed:
			it.err = ErrParsingError
			it.pos = cur + 1
			return Token{}, false
		}
	}

	it.pos = cur
	if it.depth == 1 && it.started && it.mode == modeBare {
		tok.Offset = it.str
		tok.Length = cur - it.str
		tok.Type = classify(it.buf[it.str])
		return tok, true
	}
	if it.depth == 1 && !it.started {
		return Token{}, false
	}
	it.err = ErrParsingError
	return Token{}, false
}

// Pair is one object member: its name token and its value token.
type Pair struct {
	Name  Token
	Value Token
}

// Parse reads one name/value pair. It assumes the iterator's window is
// currently positioned inside an object; calling it while positioned
// inside an array or at top level yields whatever the next two tokens
// happen to be, same as the underlying Read calls.
func (it *Iterator) Parse() (Pair, bool) {
	name, ok := it.Read()
	if !ok {
		return Pair{}, false
	}
	value, ok := it.Read()
	if !ok {
		return Pair{}, false
	}
	return Pair{Name: name, Value: value}, true
}
