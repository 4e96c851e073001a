// Package ljson is a single-pass JSON parser that turns a byte buffer into
// an arena-allocated tree of typed values.
//
// A first-character-dispatched lexer feeds a recursive-descent parser that
// runs over an explicit composite stack instead of recursing on nesting
// depth. Every allocation a parse makes - string bytes, value nodes, stack
// frames - comes out of a chunked bump arena owned by the Parser, so
// repeated parses of similarly-shaped payloads amortize to a handful of
// chunk allocations instead of thousands of individual ones.
//
//	p := ljson.NewParser()
//	v, err := p.Parse([]byte(`{"answer": 42}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	m, _ := v.AsObject()
//	n, _ := m["answer"].AsInt64()
//
// Call Reset between parses to reclaim the arena's chunks in one step, or
// just call Parse again - it resets internally. Values returned from one
// Parse call are only valid until the next Parse or Reset on the same
// Parser; never hold on to a Value across parses.
package ljson
