// Package token provides tokenization support for Verso manual markup.
//
// [Tokenize] turns raw document bytes into an ordered token sequence. The
// sequence covers the input completely: concatenating the literal bytes of
// all tokens in order reconstructs the input byte for byte. Structural
// anomalies never fail tokenization; anything that matches no markup pattern
// becomes a plain text run. The only fatal condition is invalid UTF-8.
package token
