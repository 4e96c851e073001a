package ljson

import "fmt"

// parseState tracks where a composite frame is within its own grammar.
// Array and object frames share the type but never share a value: a
// frame's composite.tag says which transition table applies.
type parseState int

const (
	stateArrayJustBegun parseState = iota
	stateArrayMoreElements
	stateArrayFirstComposite

	stateObjectJustBegun
	stateObjectMoreElements
	stateObjectParsingValue
)

// frame is one entry of the explicit composite parse stack. prev chains
// toward the outermost frame (nil once there); composite is the
// in-progress Array or Object value this frame is building.
type frame struct {
	composite *Value
	state     parseState
	prev      *frame
}

// Parser turns a byte buffer into a Value tree. Reuse one Parser across
// many inputs: each Parse call resets its Arena rather than allocating a
// fresh one, so the bookkeeping and chunk pools amortize across calls.
type Parser struct {
	arena *Arena
	diag  diagnostics
	cfg   Config

	lx    *lexer
	top   *frame
	depth int // current composite nesting depth
	next  uint32 // next composite id to assign

	root       *Value // the outermost value, returned to the caller
	result     *Value // most recently opened composite; head of the reverse-nesting list
	lastPopped *Value // composite most recently popped, awaiting reattachment
}

// NewParser allocates a Parser with its own Arena and default Config.
func NewParser() *Parser {
	return NewParserWithConfig(Config{})
}

// NewParserWithConfig allocates a Parser tuned by cfg. See Config for the
// available knobs.
func NewParserWithConfig(cfg Config) *Parser {
	return &Parser{arena: newArenaWithConfig(cfg), cfg: cfg}
}

// Parse parses a complete JSON document from data and returns its root
// Value. The returned Value and everything reachable from it are owned by
// the Parser's Arena and are only valid until the next call to Parse,
// Reset, or Close on this Parser.
func (p *Parser) Parse(data []byte) (v *Value, err error) {
	p.arena.Reset()
	p.diag.reset()
	p.lx = newLexer(data, p.arena, &p.diag)
	p.top = nil
	p.depth = 0
	p.next = 1
	p.root = nil
	p.result = nil
	p.lastPopped = nil

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errArenaOOM); !ok {
				panic(r)
			}
			p.fail(ErrOutOfMemory, "allocator exhausted its configured memory budget")
			v, err = nil, p.diag.err
		}
	}()

	v = p.parse()
	if p.diag.err != nil {
		return nil, p.diag.err
	}
	return v, nil
}

// LastComposite returns the entry point for walking every composite
// allocated during the most recent Parse via Value.NestingNext, innermost
// first: it is the last composite pushed, which is usually nested deep
// inside the tree Parse returned, not that tree's root. Use this when you
// want to visit every Array/Object in the document in one flat pass
// without recursing on the tree itself; use the Parse return value for
// navigating the document's actual structure. Nil if the last parse
// produced no composites (a bare primitive document).
func (p *Parser) LastComposite() *Value {
	return p.result
}

// Reset discards everything allocated by prior parses without destroying
// the Parser. Parse already does this implicitly; Reset is for callers
// that want to release memory between uses without starting a new parse.
func (p *Parser) Reset() {
	p.arena.Reset()
	p.diag.reset()
}

// Close releases all memory held by the Parser's Arena. The Parser must
// not be used afterward.
func (p *Parser) Close() {
	p.arena.Destroy()
}

func (p *Parser) parse() *Value {
	tok := p.lx.next()
	switch {
	case tok.kind == tokChar && (tok.ch == '[' || tok.ch == '{'):
		p.pushComposite(tok.ch)
		for p.top != nil {
			p.step()
			if p.diag.err != nil {
				return nil
			}
		}
		return p.finish(p.root)

	case tok.kind == tokChar:
		p.fail(ErrSynExtraneous, fmt.Sprintf("Unknow object starting with '%c'", tok.ch))
		return nil

	case tok.kind == tokEnd:
		p.fail(ErrSynEmptyInput, "Input json is empty")
		return nil

	case tok.isPrimitive():
		return p.finish(p.primitiveValue(tok))

	default:
		p.fail(ErrSynExtraneous, "Extraneous stuff")
		return nil
	}
}

// finish requires end-of-input right after a complete value and hands
// back that value, or fails with "Extraneous stuff" if anything follows.
func (p *Parser) finish(v *Value) *Value {
	end := p.lx.next()
	if end.kind != tokEnd {
		p.fail(ErrSynExtraneous, "Extraneous stuff")
		return nil
	}
	return v
}

// step advances the frame on top of the stack by exactly one transition:
// reading a token (or consuming one already set aside by a just-completed
// child) and either emitting a primitive child, pushing a nested
// composite (suspending this frame), or popping this frame.
func (p *Parser) step() {
	fr := p.top
	if fr.composite.tag == TagArray {
		p.stepArray(fr)
	} else {
		p.stepObject(fr)
	}
}

func (p *Parser) pushComposite(open byte) {
	if p.cfg.MaxDepth > 0 && p.depth >= p.cfg.MaxDepth {
		p.fail(ErrMaxDepthExceeded, "maximum nesting depth exceeded")
		return
	}
	isRoot := p.depth == 0
	p.depth++

	v := p.arena.newValue()
	if open == '[' {
		v.tag = TagArray
	} else {
		v.tag = TagObject
	}
	v.id = p.next
	p.next++
	v.nesting = p.result
	p.result = v
	if isRoot {
		p.root = v
	}

	fr := p.arena.newFrame()
	fr.composite = v
	if open == '[' {
		fr.state = stateArrayJustBegun
	} else {
		fr.state = stateObjectJustBegun
	}
	fr.prev = p.top
	p.top = fr
}

// popComposite discards the top frame. The frame's composite is stashed
// in lastPopped for the frame now on top (if any) to reattach as a child
// on its next step; the outermost pop leaves nothing to reattach to.
func (p *Parser) popComposite() {
	p.depth--
	p.lastPopped = p.top.composite
	p.top = p.top.prev
}

func (p *Parser) prependChild(composite *Value, child *Value) {
	child.next = composite.children
	composite.children = child
	composite.childLen++
}

func (p *Parser) primitiveValue(tok *token) *Value {
	v := p.arena.newValue()
	switch tok.kind {
	case tokInt64:
		v.tag = TagInt64
		v.i64 = tok.i64
	case tokDouble:
		v.tag = TagDouble
		v.f64 = tok.f64
	case tokString:
		v.tag = TagString
		v.str = tok.str
	case tokBool:
		v.tag = TagBool
		v.boolean = tok.boolean
	case tokNull:
		v.tag = TagNull
	}
	return v
}

func (p *Parser) fail(kind ErrKind, msg string) {
	p.diag.set(kind, p.lx.line, p.lx.col, msg)
}

// stepArray implements the §4.4.1 array transition table.
func (p *Parser) stepArray(fr *frame) {
	switch fr.state {
	case stateArrayJustBegun:
		tok := p.lx.next()
		switch {
		case tok.isPrimitive():
			p.prependChild(fr.composite, p.primitiveValue(tok))
			fr.state = stateArrayMoreElements
		case tok.kind == tokChar && (tok.ch == '[' || tok.ch == '{'):
			fr.state = stateArrayFirstComposite
			p.pushComposite(tok.ch)
		case tok.kind == tokChar && tok.ch == ']':
			p.popComposite()
		default:
			p.fail(ErrSynArray, "Array syntax error, expect ',' or ']'")
		}

	case stateArrayMoreElements:
		tok := p.lx.next()
		switch {
		case tok.kind == tokChar && tok.ch == ']':
			p.popComposite()
		case tok.kind == tokChar && tok.ch == ',':
			p.arrayElement(fr)
		default:
			p.fail(ErrSynArray, "Array syntax error, expect ',' or ']'")
		}

	case stateArrayFirstComposite:
		p.prependChild(fr.composite, p.lastPopped)
		fr.state = stateArrayMoreElements
	}
}

func (p *Parser) arrayElement(fr *frame) {
	tok := p.lx.next()
	switch {
	case tok.isPrimitive():
		p.prependChild(fr.composite, p.primitiveValue(tok))
	case tok.kind == tokChar && (tok.ch == '[' || tok.ch == '{'):
		fr.state = stateArrayFirstComposite
		p.pushComposite(tok.ch)
	default:
		p.fail(ErrSynArray, "Array syntax error, expect ',' or ']'")
	}
}

// stepObject implements the §4.4.2 object transition table. Unlike the
// array case, a completed key is prepended to the child list the moment
// it is read - before its value (primitive or composite) is known - so
// that when a composite value later pops, reattaching it is a single
// prependChild with no separate "pending key" bookkeeping.
//
// A '}' in key position closes the object whether or not a comma came
// first, so a trailing comma before the close (`{"a":1,}`) is tolerated
// rather than rejected.
func (p *Parser) stepObject(fr *frame) {
	switch fr.state {
	case stateObjectJustBegun:
		p.keyValueStep(fr, p.lx.next())

	case stateObjectMoreElements:
		tok := p.lx.next()
		switch {
		case tok.kind == tokChar && tok.ch == '}':
			p.popComposite()
		case tok.kind == tokChar && tok.ch == ',':
			p.keyValueStep(fr, p.lx.next())
		default:
			p.fail(ErrSynObjectKey, "hashtab syntax error")
		}

	case stateObjectParsingValue:
		p.prependChild(fr.composite, p.lastPopped)
		fr.state = stateObjectMoreElements
	}
}

func (p *Parser) keyValueStep(fr *frame, keyTok *token) {
	if keyTok.kind == tokChar && keyTok.ch == '}' {
		p.popComposite()
		return
	}
	if keyTok.kind != tokString {
		p.lx.rewind()
		p.fail(ErrSynObjectKey, "Key must be a string")
		return
	}
	key := p.primitiveValue(keyTok)

	colon := p.lx.next()
	if colon.kind != tokChar || colon.ch != ':' {
		p.fail(ErrSynObjectColon, "expect ':'")
		return
	}

	valTok := p.lx.next()
	switch {
	case valTok.isPrimitive():
		p.prependChild(fr.composite, key)
		p.prependChild(fr.composite, p.primitiveValue(valTok))
		fr.state = stateObjectMoreElements
	case valTok.kind == tokChar && (valTok.ch == '[' || valTok.ch == '{'):
		p.prependChild(fr.composite, key)
		fr.state = stateObjectParsingValue
		p.pushComposite(valTok.ch)
	default:
		p.fail(ErrSynObjectValue, "value object syntax error")
	}
}
