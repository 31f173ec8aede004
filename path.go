package flatjson

// Option configures path-query behavior. WithDelimiter is the only one
// defined today; it exists so callers aren't locked into '.' as the
// path separator, the Go-idiomatic stand-in for the original's
// build-time delimiter constant.
type Option func(*queryConfig)

type queryConfig struct {
	delimiter byte
}

// WithDelimiter overrides the path segment separator, which defaults
// to '.'.
func WithDelimiter(b byte) Option {
	return func(c *queryConfig) { c.delimiter = b }
}

func newQueryConfig(opts []Option) queryConfig {
	cfg := queryConfig{delimiter: '.'}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

type pathSegment struct {
	name    []byte
	isIndex bool
	index   int
}

func parsePath(path string, delim byte) []pathSegment {
	var segs []pathSegment
	i := 0
	for i < len(path) {
		if path[i] == '[' {
			j := i + 1
			idx := 0
			for j < len(path) && path[j] != ']' {
				if path[j] >= '0' && path[j] <= '9' {
					idx = idx*10 + int(path[j]-'0')
				}
				j++
			}
			segs = append(segs, pathSegment{isIndex: true, index: idx})
			i = j
			if i < len(path) && path[i] == ']' {
				i++
			}
			if i < len(path) && path[i] == delim {
				i++
			}
			continue
		}
		j := i
		for j < len(path) && path[j] != delim && path[j] != '[' {
			j++
		}
		segs = append(segs, pathSegment{name: []byte(path[i:j])})
		i = j
		if i < len(path) && path[i] == delim {
			i++
		}
	}
	return segs
}

// lcmp compares a token's bytes against name up to the shorter of the
// two lengths. A shorter name that is a byte-for-byte prefix of the
// token (or vice versa) counts as a match: Query("foo") will find a
// key named "foobar". This is carried forward unchanged from the
// original rather than tightened to an exact-length comparison.
func lcmp(tok, name []byte) bool {
	n := len(tok)
	if len(name) < n {
		n = len(name)
	}
	for i := 0; i < n; i++ {
		if tok[i] != name[i] {
			return false
		}
	}
	return true
}

// Query walks tokens (as produced by Load) along path and returns the
// matching token, or StatusInvalid if the path does not resolve: an
// unknown name, an out-of-range array index, or a path that tries to
// descend through a scalar.
func Query(tokens []Token, buf []byte, path string, opts ...Option) (*Token, Status) {
	if len(tokens) == 0 {
		return nil, StatusInvalid
	}
	cfg := newQueryConfig(opts)
	segs := parsePath(path, cfg.delimiter)
	if len(segs) == 0 {
		return &tokens[0], StatusOK
	}

	i := 0
	for segIdx := 0; segIdx < len(segs); {
		if i >= len(tokens) {
			return nil, StatusInvalid
		}
		cur := tokens[i]
		seg := segs[segIdx]

		switch cur.Type {
		case TypeObject:
			if seg.isIndex {
				return nil, StatusInvalid
			}
			pos := i + 1
			found := false
			for k := 0; k < cur.Children; k++ {
				if pos >= len(tokens) {
					return nil, StatusInvalid
				}
				name := tokens[pos]
				valueIdx := pos + 1
				if valueIdx >= len(tokens) {
					return nil, StatusInvalid
				}
				if lcmp(name.Bytes(buf), seg.name) {
					i = valueIdx
					found = true
					break
				}
				value := tokens[valueIdx]
				if value.Type == TypeObject || value.Type == TypeArray {
					pos = valueIdx + value.Sub + 1
				} else {
					pos = valueIdx + 1
				}
			}
			if !found {
				return nil, StatusInvalid
			}
			segIdx++
		case TypeArray:
			if !seg.isIndex || seg.index < 0 || seg.index >= cur.Children {
				return nil, StatusInvalid
			}
			pos := i + 1
			for k := 0; k < seg.index; k++ {
				if pos >= len(tokens) {
					return nil, StatusInvalid
				}
				elem := tokens[pos]
				if elem.Type == TypeObject || elem.Type == TypeArray {
					pos += elem.Sub + 1
				} else {
					pos++
				}
			}
			i = pos
			segIdx++
		default:
			return nil, StatusInvalid
		}
	}
	return &tokens[i], StatusOK
}

// QueryNumber resolves path and converts the result with Convert.
func QueryNumber(tokens []Token, buf []byte, path string, opts ...Option) (float64, Type) {
	tok, status := Query(tokens, buf, path, opts...)
	if status != StatusOK {
		return 0, TypeNone
	}
	return Convert(*tok, buf)
}

// QueryString resolves path and copies its bytes into dst, returning
// the number of bytes written. dst is not NUL-terminated; Go slices
// already carry their own length.
func QueryString(tokens []Token, buf []byte, dst []byte, path string, opts ...Option) (int, Type) {
	tok, status := Query(tokens, buf, path, opts...)
	if status != StatusOK {
		return 0, TypeNone
	}
	src := tok.Bytes(buf)
	n := copy(dst, src)
	return n, tok.Type
}

// QueryType resolves path and reports only its type.
func QueryType(tokens []Token, buf []byte, path string, opts ...Option) Type {
	tok, status := Query(tokens, buf, path, opts...)
	if status != StatusOK {
		return TypeNone
	}
	return tok.Type
}
