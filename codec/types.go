// Package codec declares the Token wire form, tunable options, and error
// definitions for level-order tree serialization.
package codec

import (
	"context"
	"errors"
	"strconv"
)

// Sentinel errors for codec operations.
var (
	// ErrMalformedTokenSequence is returned by Deserialize when the input
	// is not an exact level-order encoding of any tree.
	ErrMalformedTokenSequence = errors.New("codec: malformed token sequence")

	// ErrTokenSyntax is returned by ParseTokens for text that is neither
	// an integer nor the null literal.
	ErrTokenSyntax = errors.New("codec: invalid token syntax")
)

// nullLiteral is the textual spelling of the null marker.
const nullLiteral = "null"

// Token is one element of a level-order encoding: either an integer node
// value or the null marker denoting an absent slot. The tag keeps the two
// cases apart, so every int64 remains a legal node value.
// The zero Token is the value token 0.
type Token struct {
	value int64
	null  bool
}

// ValueToken returns the token carrying node value v.
func ValueToken(v int64) Token {
	return Token{value: v}
}

// NullToken returns the null marker token.
func NullToken() Token {
	return Token{null: true}
}

// IsNull reports whether t is the null marker.
func (t Token) IsNull() bool {
	return t.null
}

// Value returns the node value carried by t.
// Meaningful only when IsNull is false; null tokens report 0.
func (t Token) Value() int64 {
	return t.value
}

// String renders t as its decimal value or the null literal.
func (t Token) String() string {
	if t.null {
		return nullLiteral
	}

	return strconv.FormatInt(t.value, 10)
}

// Tokens is a level-order encoding of one binary tree.
type Tokens []Token

// Equal reports whether ts and other are identical token for token.
func (ts Tokens) Equal(other Tokens) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if ts[i] != other[i] {
			return false
		}
	}

	return true
}

// Option configures codec behavior via functional arguments.
type Option func(*CodecOptions)

// CodecOptions holds parameters customizing Serialize and Deserialize.
type CodecOptions struct {
	// Ctx allows cancellation and deadlines; checked once per queue step.
	Ctx context.Context
}

// DefaultOptions returns a CodecOptions with context.Background().
func DefaultOptions() CodecOptions {
	return CodecOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *CodecOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
