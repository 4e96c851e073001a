package ljson

import "strconv"

// scanNumericLiteral scans a JSON numeric literal starting at buf[p:e).
//
// The fast path accumulates an int64 on the fly while reading digits and,
// if the literal has no fractional part or exponent and its digit count
// (sign included) is strictly under 20, returns it directly: 19 digits is
// the most that is guaranteed to fit an int64 without per-digit overflow
// checking, and checking digit count is cheaper than checking for
// overflow on every digit.
//
// Anything wider, or with a '.'/'e'/'E', falls back to locating the full
// extent of the literal and handing it to strconv.ParseFloat, Go's
// correctly-rounded decimal-to-double conversion.
//
// ok is false if no valid literal starts at p; newP is only meaningful
// when ok is true.
func scanNumericLiteral(buf []byte, p, e int) (kind tokenKind, newP int, i64 int64, f64 float64, ok bool) {
	start := p
	neg := p < e && buf[p] == '-'
	if neg {
		p++
	}

	digitsStart := p
	var acc int64
	for p < e && isDigit(buf[p]) {
		acc = acc*10 + int64(buf[p]-'0')
		p++
	}
	if p == digitsStart {
		return 0, start, 0, 0, false
	}

	if p < e && (buf[p] == '.' || buf[p] == 'e' || buf[p] == 'E') {
		return scanDoubleSlow(buf, start, e)
	}

	if p-start < 20 {
		if neg {
			acc = -acc
		}
		return tokInt64, p, acc, 0, true
	}

	return scanDoubleSlow(buf, start, e)
}

// scanDoubleSlow re-derives the literal's full extent (digits, optional
// fraction, optional exponent) and converts it with strconv.ParseFloat.
func scanDoubleSlow(buf []byte, start, e int) (tokenKind, int, int64, float64, bool) {
	end := numericLiteralEnd(buf, start, e)
	if end == start {
		return 0, start, 0, 0, false
	}

	f, err := strconv.ParseFloat(string(buf[start:end]), 64)
	if err != nil {
		return 0, start, 0, 0, false
	}
	return tokDouble, end, 0, f, true
}

// numericLiteralEnd returns the end of the longest valid JSON number
// literal starting at buf[start:e], or start if none is present.
func numericLiteralEnd(buf []byte, start, e int) int {
	p := start
	if p < e && buf[p] == '-' {
		p++
	}

	digitsStart := p
	for p < e && isDigit(buf[p]) {
		p++
	}
	if p == digitsStart {
		return start
	}

	if p < e && buf[p] == '.' {
		q := p + 1
		fracStart := q
		for q < e && isDigit(buf[q]) {
			q++
		}
		if q > fracStart {
			p = q
		}
	}

	if p < e && (buf[p] == 'e' || buf[p] == 'E') {
		q := p + 1
		if q < e && (buf[q] == '+' || buf[q] == '-') {
			q++
		}
		expStart := q
		for q < e && isDigit(buf[q]) {
			q++
		}
		if q > expStart {
			p = q
		}
	}

	return p
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
