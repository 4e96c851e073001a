package ljson

import "testing"

func lex(input string) *lexer {
	var d diagnostics
	return newLexer([]byte(input), NewArena(), &d)
}

func TestLexerDelimiters(t *testing.T) {
	lx := lex("{}[],:")
	want := "{}[],:"
	for _, c := range []byte(want) {
		tok := lx.next()
		if tok.kind != tokChar || tok.ch != c {
			t.Fatalf("got kind=%v ch=%q, want tokChar %q", tok.kind, tok.ch, c)
		}
	}
	if end := lx.next(); end.kind != tokEnd {
		t.Fatalf("end.kind = %v, want tokEnd", end.kind)
	}
}

func TestLexerSkipsWhitespaceAndTracksPosition(t *testing.T) {
	lx := lex("  \n\t 42")
	tok := lx.next()
	if tok.kind != tokInt64 || tok.i64 != 42 {
		t.Fatalf("got kind=%v i64=%d, want tokInt64 42", tok.kind, tok.i64)
	}
	if lx.line != 2 {
		t.Errorf("line = %d, want 2", lx.line)
	}
}

func TestLexerNull(t *testing.T) {
	tok := lex("null").next()
	if tok.kind != tokNull {
		t.Fatalf("kind = %v, want tokNull", tok.kind)
	}
}

func TestLexerNullWrongCase(t *testing.T) {
	var d diagnostics
	lx := newLexer([]byte("Null"), NewArena(), &d)
	lx.next()
	if d.err == nil || d.err.Kind != ErrLexKeywordCase {
		t.Fatalf("d.err = %v, want ErrLexKeywordCase", d.err)
	}
}

func TestLexerBooleans(t *testing.T) {
	lx := lex("true false")
	tr := lx.next()
	if tr.kind != tokBool || !tr.boolean {
		t.Fatalf("got kind=%v boolean=%v, want tokBool true", tr.kind, tr.boolean)
	}
	fl := lx.next()
	if fl.kind != tokBool || fl.boolean {
		t.Fatalf("got kind=%v boolean=%v, want tokBool false", fl.kind, fl.boolean)
	}
}

func TestLexerBooleanWrongCase(t *testing.T) {
	var d diagnostics
	lx := newLexer([]byte("True"), NewArena(), &d)
	lx.next()
	if d.err == nil || d.err.Kind != ErrLexKeywordCase {
		t.Fatalf("d.err = %v, want ErrLexKeywordCase", d.err)
	}
}

func TestLexerSimpleString(t *testing.T) {
	tok := lex(`"hello"`).next()
	if tok.kind != tokString || string(tok.str) != "hello" {
		t.Fatalf("got kind=%v str=%q, want tokString %q", tok.kind, tok.str, "hello")
	}
}

func TestLexerStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"a\/b"`, "a/b"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\bb"`, "a\bb"},
		{`"a\fb"`, "a\fb"},
		{`"a\rb"`, "a\rb"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lex(tt.input).next()
			if tok.kind != tokString || string(tok.str) != tt.want {
				t.Fatalf("got kind=%v str=%q, want tokString %q", tok.kind, tok.str, tt.want)
			}
		})
	}
}

func TestLexerStringUnicodeEscape(t *testing.T) {
	tok := lex(`"\` + `u00e9"`).next()
	if tok.kind != tokString || string(tok.str) != "é" {
		t.Fatalf("got kind=%v str=%q, want tokString %q", tok.kind, tok.str, "é")
	}
}

func TestLexerStringSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, written as the \u-escaped surrogate pair
	// D83D DE00, must decode to the same rune as Go's own \U escape.
	tok := lex(`"\ud83d\ude00"`).next()
	if tok.kind != tokString {
		t.Fatalf("kind = %v, want tokString", tok.kind)
	}
	want := "\U0001F600"
	if string(tok.str) != want {
		t.Fatalf("str = %q, want %q", tok.str, want)
	}
}

func TestLexerStringRawUTF8Passthrough(t *testing.T) {
	// A literal multi-byte UTF-8 rune with no escape involved is simply
	// copied through unchanged.
	tok := lex(`"😀"`).next()
	if tok.kind != tokString || string(tok.str) != "😀" {
		t.Fatalf("got kind=%v str=%q, want tokString %q", tok.kind, tok.str, "😀")
	}
}

func TestLexerStringLoneHighSurrogate(t *testing.T) {
	var d diagnostics
	lx := newLexer([]byte(`"\ud83d"`), NewArena(), &d)
	lx.next()
	if d.err == nil || d.err.Kind != ErrLexBadUnicodeEscape {
		t.Fatalf("d.err = %v, want ErrLexBadUnicodeEscape", d.err)
	}
}

func TestLexerStringLoneLowSurrogate(t *testing.T) {
	var d diagnostics
	lx := newLexer([]byte(`"\udc00"`), NewArena(), &d)
	lx.next()
	if d.err == nil || d.err.Kind != ErrLexBadUnicodeEscape {
		t.Fatalf("d.err = %v, want ErrLexBadUnicodeEscape", d.err)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	var d diagnostics
	lx := newLexer([]byte(`"abc`), NewArena(), &d)
	lx.next()
	if d.err == nil || d.err.Kind != ErrLexUnterminatedString {
		t.Fatalf("d.err = %v, want ErrLexUnterminatedString", d.err)
	}
}

func TestLexerIllegalEscape(t *testing.T) {
	var d diagnostics
	lx := newLexer([]byte(`"a\qb"`), NewArena(), &d)
	lx.next()
	if d.err == nil || d.err.Kind != ErrLexIllegalEscape {
		t.Fatalf("d.err = %v, want ErrLexIllegalEscape", d.err)
	}
}

func TestLexerRewindRestoresTokenStart(t *testing.T) {
	lx := lex(`true`)
	before := lx.pos
	tok := lx.next()
	if tok.kind != tokBool {
		t.Fatalf("kind = %v, want tokBool", tok.kind)
	}
	lx.rewind()
	if lx.pos != before {
		t.Fatalf("pos after rewind = %d, want %d", lx.pos, before)
	}
}

func TestLexerUnrecognizedToken(t *testing.T) {
	var d diagnostics
	lx := newLexer([]byte(`#`), NewArena(), &d)
	lx.next()
	if d.err == nil || d.err.Kind != ErrLexUnrecognized {
		t.Fatalf("d.err = %v, want ErrLexUnrecognized", d.err)
	}
}

func TestLexerNumbers(t *testing.T) {
	lx := lex("42 -3.5")
	i := lx.next()
	if i.kind != tokInt64 || i.i64 != 42 {
		t.Fatalf("got kind=%v i64=%d, want tokInt64 42", i.kind, i.i64)
	}
	d := lx.next()
	if d.kind != tokDouble || d.f64 != -3.5 {
		t.Fatalf("got kind=%v f64=%v, want tokDouble -3.5", d.kind, d.f64)
	}
}
