package token

// Stream is a pull source of tokens. The parser driver calls Next once to
// fill its one-token lookahead and once more per shift to refill it; there
// is no buffering beyond that single slot (§5).
type Stream interface {
	// Next returns the next token and advances the stream by one.
	Next() Token

	// Peek returns the next token without advancing.
	Peek() Token

	// HasNext reports whether the stream has not yet produced EOF.
	HasNext() bool
}
