package flatjson

// MaxDepth bounds how many levels of nested object/array values Load will
// descend into before failing with a parsing error. It guards against
// stack exhaustion on adversarial or accidentally-cyclic-looking input;
// well-formed documents rarely nest anywhere near this deep.
var MaxDepth = 1024

// Count reports how many tokens Load would need room for. Because each
// token's Sub field already accounts for every descendant discovered
// while scanning its own span, a single top-to-bottom pass over buf is
// enough: no recursion into nested containers is required just to
// count them.
func Count(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalid
	}
	it := Begin(buf)
	total := 0
	for {
		tok, ok := it.Read()
		if !ok {
			break
		}
		total += 1 + tok.Sub
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

// Load scans buf and writes every token, in prefix (parent-before-
// children) order, into tokens. It returns the number of tokens
// written. If tokens is too small, Load returns StatusOutOfToken's
// error; callers typically size tokens with a prior call to Count.
func Load(tokens []Token, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalid
	}
	n := 0
	err := loadWindow(tokens, &n, buf, 0, len(buf), 0)
	if err != nil {
		return n, err
	}
	return n, nil
}

func loadWindow(tokens []Token, n *int, buf []byte, start, end, depth int) error {
	if depth > MaxDepth {
		return ErrParsingError
	}
	it := beginWindow(buf, start, end)
	for {
		tok, ok := it.Read()
		if !ok {
			break
		}
		if *n >= len(tokens) {
			return ErrOutOfToken
		}
		tokens[*n] = tok
		*n++

		if tok.Type == TypeObject || tok.Type == TypeArray {
			interiorStart := tok.Offset + 1
			interiorEnd := tok.Offset + tok.Length - 1
			if err := loadWindow(tokens, n, buf, interiorStart, interiorEnd, depth+1); err != nil {
				return err
			}
		}
	}
	return it.Err()
}
