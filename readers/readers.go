// Package readers parses the canonical text form of values.
//
// Every reader has the shape func(string) (T, bool) and accepts exactly the
// text that the value's own formatting would produce: no surrounding blanks,
// no "+" signs, no leading zeros, no alternative spellings. Readers are used
// to build element pools from textual fixtures (see
// random.UniformSampleParsed) and to read CLI configuration.
package readers

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvrand/random"
)

// canonicalInteger reports whether s is a decimal integer without sign
// decoration or leading zeros. "-0" is rejected.
func canonicalInteger(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	if digits[0] == '0' {
		return digits == "0" && s == "0"
	}

	return true
}

// ReadInt parses a canonical decimal int.
func ReadInt(s string) (int, bool) {
	if !canonicalInteger(s) {
		return 0, false
	}
	v, err := strconv.Atoi(s)

	return v, err == nil
}

// ReadInt32 parses a canonical decimal int32.
func ReadInt32(s string) (int32, bool) {
	if !canonicalInteger(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 32)

	return int32(v), err == nil
}

// ReadBigInt parses a canonical decimal integer of any size.
func ReadBigInt(s string) (*big.Int, bool) {
	if !canonicalInteger(s) {
		return nil, false
	}

	return new(big.Int).SetString(s, 10)
}

// ReadBool accepts "true" and "false" only.
func ReadBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// ReadOrdering accepts "<", "=" and ">".
func ReadOrdering(s string) (random.Ordering, bool) {
	for _, o := range random.AllOrderings {
		if o.String() == s {
			return o, true
		}
	}

	return 0, false
}

// ReadQuotedString parses a double-quoted Go string literal in the form
// strconv.Quote produces.
func ReadQuotedString(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' {
		return "", false
	}
	v, err := strconv.Unquote(s)
	if err != nil || strconv.Quote(v) != s {
		return "", false
	}

	return v, true
}

// ReadUUID parses a UUID in its lowercase hyphenated form.
func ReadUUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id.String() != s {
		return uuid.UUID{}, false
	}

	return id, true
}

// ReadList parses "[e1, e2, ...]" where every element is read with elem.
// Elements may themselves be lists or quoted strings containing ", ".
func ReadList[T any](s string, elem func(string) (T, bool)) ([]T, bool) {
	if elem == nil || len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	body := s[1 : len(s)-1]
	out := []T{}
	if body == "" {
		return out, true
	}
	parts, ok := splitTopLevel(body)
	if !ok {
		return nil, false
	}
	for _, part := range parts {
		v, ok := elem(part)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}

	return out, true
}

// ReadStrings parses a list of quoted strings.
func ReadStrings(s string) ([]string, bool) {
	return ReadList(s, ReadQuotedString)
}

// splitTopLevel splits body at ", " separators that are outside brackets and
// string literals.
func splitTopLevel(body string) ([]string, bool) {
	var (
		parts   []string
		depth   int
		inQuote bool
		escaped bool
		start   int
	)
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case inQuote:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return nil, false
			}
		case c == ',' && depth == 0:
			if i+1 >= len(body) || body[i+1] != ' ' {
				return nil, false
			}
			parts = append(parts, body[start:i])
			start = i + 2
			i++
		}
	}
	if inQuote || depth != 0 {
		return nil, false
	}

	return append(parts, body[start:]), true
}
