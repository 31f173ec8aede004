package flatjson

import "testing"

func TestReadScalarTopLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"42", TypeNumber},
		{"-3.5", TypeNumber},
		{`"hi"`, TypeString},
		{"true", TypeTrue},
		{"false", TypeFalse},
		{"null", TypeNull},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			it := Begin([]byte(tc.in))
			tok, ok := it.Read()
			if !ok {
				t.Fatalf("Read failed, err: %v", it.Err())
			}
			if tok.Type != tc.want {
				t.Fatalf("expected: %v, got: %v", tc.want, tok.Type)
			}
			if _, ok := it.Read(); ok {
				t.Fatalf("expected exhaustion after single scalar")
			}
			if it.Err() != nil {
				t.Fatalf("expected clean exhaustion, got err: %v", it.Err())
			}
		})
	}
}

// TestReadObjectWraps pins the scenario 1 shape from the specification:
// a single Read over a 2-pair object yields one Object token whose
// Children and Sub already account for its two name/value pairs.
func TestReadObjectWraps(t *testing.T) {
	buf := []byte(`{"x":1,"y":2}`)
	it := Begin(buf)
	tok, ok := it.Read()
	if !ok {
		t.Fatalf("Read failed, err: %v", it.Err())
	}
	if tok.Type != TypeObject {
		t.Fatalf("expected: %v, got: %v", TypeObject, tok.Type)
	}
	if tok.Children != 2 {
		t.Fatalf("expected Children: %v, got: %v", 2, tok.Children)
	}
	if tok.Sub != 4 {
		t.Fatalf("expected Sub: %v, got: %v", 4, tok.Sub)
	}
	if string(tok.Bytes(buf)) != string(buf) {
		t.Fatalf("expected full object span, got: %q", tok.Bytes(buf))
	}
}

// TestReadNestedObjectSub pins the deeper-than-one-level Sub/Children
// accounting: a pair nested two levels down must still bump the
// outermost token's Sub, even though it is too deep to bump Children.
func TestReadNestedObjectSub(t *testing.T) {
	buf := []byte(`{"a":{"b":1}}`)
	it := Begin(buf)
	tok, ok := it.Read()
	if !ok {
		t.Fatalf("Read failed, err: %v", it.Err())
	}
	if tok.Children != 1 {
		t.Fatalf("expected Children: %v, got: %v", 1, tok.Children)
	}
	// descendants: "a", {"b":1}, "b", 1 == 4
	if tok.Sub != 4 {
		t.Fatalf("expected Sub: %v, got: %v", 4, tok.Sub)
	}
}

func TestReadArray(t *testing.T) {
	buf := []byte(`[1,2,3]`)
	it := Begin(buf)
	tok, ok := it.Read()
	if !ok {
		t.Fatalf("Read failed, err: %v", it.Err())
	}
	if tok.Type != TypeArray {
		t.Fatalf("expected: %v, got: %v", TypeArray, tok.Type)
	}
	if tok.Children != 3 {
		t.Fatalf("expected Children: %v, got: %v", 3, tok.Children)
	}
	if tok.Sub != 3 {
		t.Fatalf("expected Sub: %v, got: %v", 3, tok.Sub)
	}
}

func TestReadEmptyInputCleanExhaustion(t *testing.T) {
	it := Begin(nil)
	if _, ok := it.Read(); ok {
		t.Fatalf("expected no token from empty input")
	}
	if it.Err() != nil {
		t.Fatalf("expected clean exhaustion, got err: %v", it.Err())
	}
}

// TestReadTruncatedObjectFails pins the redesigned EOF behavior: input
// that ends mid-structure, not cleanly back at depth 1 in struct mode,
// is a parsing error rather than a silently partial result.
func TestReadTruncatedObjectFails(t *testing.T) {
	it := Begin([]byte(`{"x":1`))
	for {
		if _, ok := it.Read(); !ok {
			break
		}
	}
	if it.Err() != ErrParsingError {
		t.Fatalf("expected: %v, got: %v", ErrParsingError, it.Err())
	}
}

// TestReadBareScalarAtEOF pins the other half of the redesigned EOF
// behavior: a bare scalar with no trailing delimiter, ending exactly at
// EOF, is a legitimate token rather than a truncation error.
func TestReadBareScalarAtEOF(t *testing.T) {
	it := Begin([]byte("42"))
	tok, ok := it.Read()
	if !ok {
		t.Fatalf("Read failed, err: %v", it.Err())
	}
	if tok.Type != TypeNumber {
		t.Fatalf("expected: %v, got: %v", TypeNumber, tok.Type)
	}
	if it.Err() != nil {
		t.Fatalf("expected no error, got: %v", it.Err())
	}
}

func TestReadUnmatchedCloseFails(t *testing.T) {
	it := Begin([]byte(`}`))
	if _, ok := it.Read(); ok {
		t.Fatalf("expected failure on unmatched close")
	}
	if it.Err() != ErrParsingError {
		t.Fatalf("expected: %v, got: %v", ErrParsingError, it.Err())
	}
}

func TestReadInvalidLeadByteFails(t *testing.T) {
	it := Begin([]byte(`@`))
	if _, ok := it.Read(); ok {
		t.Fatalf("expected failure on invalid lead byte")
	}
	if it.Err() != ErrParsingError {
		t.Fatalf("expected: %v, got: %v", ErrParsingError, it.Err())
	}
}

// TestReadRawControlByteInStringFails pins the string table's
// "all else -> Failed" default: a literal control byte inside a
// string must not be accepted as ordinary string content.
func TestReadRawControlByteInStringFails(t *testing.T) {
	it := Begin([]byte("\"a\tb\""))
	if _, ok := it.Read(); ok {
		t.Fatalf("expected failure on raw control byte inside string")
	}
	if it.Err() != ErrParsingError {
		t.Fatalf("expected: %v, got: %v", ErrParsingError, it.Err())
	}
}

func TestReadInvalidEscapeFails(t *testing.T) {
	it := Begin([]byte(`"a\zb"`))
	if _, ok := it.Read(); ok {
		t.Fatalf("expected failure on invalid escape sequence")
	}
	if it.Err() != ErrParsingError {
		t.Fatalf("expected: %v, got: %v", ErrParsingError, it.Err())
	}
}

// TestReadInvalidUTF8ContinuationFails pins the same default for the
// UTF-8 continuation table: a lead byte not followed by a continuation
// byte must fail immediately instead of swallowing the next byte
// (here 'X'; it could just as well be the string's closing quote).
func TestReadInvalidUTF8ContinuationFails(t *testing.T) {
	it := Begin([]byte("\"\xC0X\""))
	if _, ok := it.Read(); ok {
		t.Fatalf("expected failure on invalid UTF-8 continuation byte")
	}
	if it.Err() != ErrParsingError {
		t.Fatalf("expected: %v, got: %v", ErrParsingError, it.Err())
	}
}

func TestParsePair(t *testing.T) {
	buf := []byte(`{"x":1,"y":2}`)
	it := Begin(buf)
	outer, ok := it.Read()
	if !ok {
		t.Fatalf("Read failed, err: %v", it.Err())
	}
	inner := Begin(buf[outer.Offset+1 : outer.Offset+outer.Length-1])
	pair, ok := inner.Parse()
	if !ok {
		t.Fatalf("Parse failed, err: %v", inner.Err())
	}
	if string(pair.Name.Bytes(buf[outer.Offset+1:])) != "x" {
		t.Fatalf("expected name: %v, got: %v", "x", string(pair.Name.Bytes(buf[outer.Offset+1:])))
	}
}
