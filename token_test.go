package svganim

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestTokenizePath(t *testing.T) {
	is := is.New(t)

	tokens := TokenizePath("M0 0 L3.5 -4e2")
	is.Equal(6, len(tokens))
	is.Equal(Token{TokenLetter, "M"}, tokens[0])
	is.Equal(Token{TokenNumber, "0"}, tokens[1])
	is.Equal(Token{TokenNumber, "0"}, tokens[2])
	is.Equal(Token{TokenLetter, "L"}, tokens[3])
	is.Equal(Token{TokenNumber, "3.5"}, tokens[4])
	is.Equal(Token{TokenNumber, "-4e2"}, tokens[5])
}

func TestTokenizePathSeparators(t *testing.T) {
	is := is.New(t)

	// Commas, runs of whitespace and missing separators all lex the
	// same way.
	for _, d := range []string{"M0,0 L3,4", "M 0 0 L 3 4", "M0 0L3 4"} {
		tokens := TokenizePath(d)
		is.Equal(6, len(tokens))
		is.Equal("L", tokens[3].Value)
		is.Equal("4", tokens[5].Value)
	}
}

func TestTokenizePathSkipsUnrecognized(t *testing.T) {
	is := is.New(t)

	tokens := TokenizePath("M0 0 # L3 4 !")
	is.Equal(6, len(tokens))
	is.Equal("L", tokens[3].Value)
}

func TestTokenizePathEmpty(t *testing.T) {
	is := is.New(t)

	is.Equal(0, len(TokenizePath("")))
	is.Equal(0, len(TokenizePath("   \t\n")))
}

func TestTokenizePathExponentSign(t *testing.T) {
	is := is.New(t)

	tokens := TokenizePath("M0 0 L1e+2 5")
	is.Equal(6, len(tokens))
	is.Equal("1e+2", tokens[4].Value)
}

func TestTokenizePathLeadingDot(t *testing.T) {
	is := is.New(t)

	tokens := TokenizePath("M.5 .5 L1.5 .5")
	is.Equal(6, len(tokens))
	is.Equal(Token{TokenNumber, "0.5"}, tokens[1])
	is.Equal(Token{TokenNumber, "0.5"}, tokens[2])
	is.Equal(Token{TokenNumber, "1.5"}, tokens[4])
	is.Equal(Token{TokenNumber, "0.5"}, tokens[5])
}

func TestTokenizePathRunOnNegative(t *testing.T) {
	is := is.New(t)

	// A minus that is not an exponent sign starts a new number.
	tokens := TokenizePath("M0 0L3-4")
	is.Equal(6, len(tokens))
	is.Equal(Token{TokenNumber, "3"}, tokens[4])
	is.Equal(Token{TokenNumber, "-4"}, tokens[5])
}

func TestTokenizePathSecondDecimalPoint(t *testing.T) {
	is := is.New(t)

	tokens := TokenizePath("M1.5.5 L2 2")
	is.Equal(6, len(tokens))
	is.Equal(Token{TokenNumber, "1.5"}, tokens[1])
	is.Equal(Token{TokenNumber, "0.5"}, tokens[2])
}

func TestTokenizePathUppercaseExponent(t *testing.T) {
	is := is.New(t)

	tokens := TokenizePath("M0 0 L1E+5 1")
	is.Equal(6, len(tokens))
	is.Equal(Token{TokenNumber, "1e+5"}, tokens[4])
	is.Equal(Token{TokenNumber, "1"}, tokens[5])
}

func TestTokenizePathDanglingExponent(t *testing.T) {
	is := is.New(t)

	// An exponent marker with no digits after it is a plain letter.
	tokens := TokenizePath("M1e 2")
	is.Equal(4, len(tokens))
	is.Equal(Token{TokenNumber, "1"}, tokens[1])
	is.Equal(Token{TokenLetter, "e"}, tokens[2])
	is.Equal(Token{TokenNumber, "2"}, tokens[3])
}

func TestTokenizePathTrailingDot(t *testing.T) {
	is := is.New(t)

	// A point with no digits after it ends the number.
	tokens := TokenizePath("M5. 4")
	is.Equal(3, len(tokens))
	is.Equal(Token{TokenNumber, "5"}, tokens[1])
	is.Equal(Token{TokenNumber, "4"}, tokens[2])
}
