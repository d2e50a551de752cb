// Package lexer tokenizes scm source text.
//
// The Lexer exposes a one-token lookahead through Peek and Advance, which
// is all the reader needs to decide whether a list has ended or whether a
// dot introduces an improper-list tail. Every token other than "(" and
// "'", once emitted, is checked against its terminator: the character
// immediately following it must be whitespace, an open or close parenthesis, or end of
// input, or the Lexer reports a SyntaxError rather than silently
// swallowing the ambiguity between e.g. "12abc" as one token or two.
package lexer
