package svganim

import (
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// TokenKind identifies the kind of a path data token.
type TokenKind int

// Path data tokens are either single command letters or numeric
// literals.
const (
	TokenLetter TokenKind = iota
	TokenNumber
)

// Token is one lexical item of a path data string.
type Token struct {
	Kind  TokenKind
	Value string
}

// TokenizePath splits path data text into command letter and number
// tokens, in source order. Characters that belong to neither are
// skipped, a best effort over malformed input; empty or whitespace
// only input yields no tokens.
func TokenizePath(data string) []Token {
	lex, _ := gl.Lex("d", normalizePathData(data))
	var tokens []Token
	for {
		i := lex.NextItem()
		switch i.Type {
		case gl.ItemError, gl.ItemEOS:
			return tokens
		case gl.ItemLetter:
			tokens = append(tokens, Token{Kind: TokenLetter, Value: i.Value})
		case gl.ItemNumber:
			tokens = append(tokens, Token{Kind: TokenNumber, Value: i.Value})
		}
	}
}

// normalizePathData rewrites path data as space separated command
// letters and numeric literals. A number is an optional minus, digits
// with at most one decimal point, and an optional exponent; run
// together numbers like "3-4" or "1.5.5" come apart at the second
// sign or point. Bare leading points gain a zero and exponent markers
// are lowercased, the only spellings the lexer takes. Anything else
// is dropped.
func normalizePathData(data string) string {
	var b strings.Builder
	b.Grow(len(data) + len(data)/2)
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(c)
			i++
		case c == '-' || c == '.' || c >= '0' && c <= '9':
			lit, n := scanNumber(data[i:])
			if n == 0 {
				i++
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(lit)
			i += n
		default:
			i++
		}
	}
	return b.String()
}

// scanNumber reads one numeric literal from the start of s and
// returns its normalized spelling and the bytes consumed. Consumed is
// zero when s does not begin with a number. An exponent marker is
// consumed only when digits follow it; otherwise it is left behind as
// a letter.
func scanNumber(s string) (string, int) {
	var lit strings.Builder
	i := 0
	if i < len(s) && s[i] == '-' {
		lit.WriteByte('-')
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	lit.WriteString(s[start:i])
	intDigits := i - start
	fracDigits := 0
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		if intDigits == 0 {
			lit.WriteByte('0')
		}
		lit.WriteByte('.')
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		lit.WriteString(s[start:i])
		fracDigits = i - start
	}
	if intDigits == 0 && fracDigits == 0 {
		return "", 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			lit.WriteByte('e')
			lit.WriteString(s[i+1 : k])
			i = k
		}
	}
	return lit.String(), i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
