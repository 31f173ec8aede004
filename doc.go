// Package flatjson tokenizes JSON into a flat array of offset/length
// tokens over a caller-owned buffer, and walks that array with a
// dotted-path query, without copying any string data. Tokenizing and
// loading allocate nothing; Query parses its path into a small
// heap-allocated list of segments on every call.
//
//	buf := []byte(`{"map":{"entity":[{"name":"soldier","position":{"x":1,"y":2}}]}}`)
//	n, err := Count(buf)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tokens := make([]Token, n)
//	if _, err := Load(tokens, buf); err != nil {
//		log.Fatal(err)
//	}
//	typ := QueryType(tokens, buf, "map.entity[0].name")
//	x, _ := QueryNumber(tokens, buf, "map.entity[0].position.x")
//
// A Token never holds a copy of the bytes it describes: Offset and
// Length always index into the same buf passed to Load. Token.Children
// counts direct members (object pairs, array elements); Token.Sub
// counts every descendant beneath it, which is what lets Query skip an
// entire subtree in one jump instead of walking it.
package flatjson
