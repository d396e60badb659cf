// File: text.go
// Role: Exact comma-separated text form of a token sequence.
//       "3,9,20,null,null,15,7,null,null,null,null" ⇄ Tokens.

package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders ts as comma-separated tokens, null slots spelled "null".
// The empty sequence renders as the empty string.
func (ts Tokens) String() string {
	if len(ts) == 0 {
		return ""
	}
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}

	return strings.Join(parts, ",")
}

// ParseTokens parses the comma-separated form produced by Tokens.String.
// Surrounding whitespace per token is tolerated. Returns ErrTokenSyntax for
// an empty input or any token that is neither an integer nor "null";
// String(ParseTokens(s)) reproduces the canonical spelling of s.
func ParseTokens(s string) (Tokens, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrTokenSyntax)
	}
	parts := strings.Split(s, ",")
	out := make(Tokens, 0, len(parts))
	for i, part := range parts {
		word := strings.TrimSpace(part)
		if word == nullLiteral {
			out = append(out, NullToken())
			continue
		}
		v, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q)", ErrTokenSyntax, i, word)
		}
		out = append(out, ValueToken(v))
	}

	return out, nil
}
