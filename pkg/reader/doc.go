// Package reader turns source text into value.Value form trees ready for
// pkg/analyzer. Unlike a two-stage lexer+parser, a Lisp reader is
// characteristically single-pass: parenthesised syntax needs no operator
// precedence climbing, so scanning and structure-building collapse into one
// recursive-descent walk over runes. The character-at-a-time bookkeeping
// (readChar/peekChar, line/column tracking) follows the same idiom as the
// teacher's lexer.
package reader
