package scene

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const symbols = "()<>[],*"

// InputStream reads scene text one character at a time, tracks source
// positions and supports one character and one token of pushback, which
// is all the grammar's lookahead requires
type InputStream struct {
	reader        *bufio.Reader
	location      SourceLocation
	savedChar     byte
	hasSavedChar  bool
	savedLocation SourceLocation
	savedToken    *Token
}

// NewInputStream wraps a reader; fileName only feeds diagnostics
func NewInputStream(r io.Reader, fileName string) *InputStream {
	return &InputStream{
		reader:   bufio.NewReader(r),
		location: SourceLocation{FileName: fileName, Line: 1, Col: 1},
	}
}

// readChar returns the next character, or ok=false at end of input
func (s *InputStream) readChar() (byte, bool) {
	if s.hasSavedChar {
		s.hasSavedChar = false
		s.location = s.savedLocation
		s.advanceLocation(s.savedChar)
		return s.savedChar, true
	}

	ch, err := s.reader.ReadByte()
	if err != nil {
		return 0, false
	}
	s.savedLocation = s.location
	s.advanceLocation(ch)
	return ch, true
}

// unreadChar pushes the last character back onto the stream
func (s *InputStream) unreadChar(ch byte) {
	s.savedChar = ch
	s.hasSavedChar = true
	s.location = s.savedLocation
}

func (s *InputStream) advanceLocation(ch byte) {
	if ch == '\n' {
		s.location.Line++
		s.location.Col = 1
	} else {
		s.location.Col++
	}
}

// skipWhitespaceAndComments consumes blanks and '#' comments up to the
// end of their line
func (s *InputStream) skipWhitespaceAndComments() {
	for {
		ch, ok := s.readChar()
		if !ok {
			return
		}
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			continue
		case ch == '#':
			for {
				c, ok := s.readChar()
				if !ok || c == '\n' {
					break
				}
			}
		default:
			s.unreadChar(ch)
			return
		}
	}
}

// ReadToken returns the next token of the stream
func (s *InputStream) ReadToken() (Token, error) {
	if s.savedToken != nil {
		token := *s.savedToken
		s.savedToken = nil
		return token, nil
	}

	s.skipWhitespaceAndComments()

	tokenLocation := s.location
	ch, ok := s.readChar()
	if !ok {
		return Token{Location: tokenLocation, Kind: EOFToken}, nil
	}

	switch {
	case strings.IndexByte(symbols, ch) >= 0:
		return Token{Location: tokenLocation, Kind: SymbolToken, Symbol: ch}, nil
	case ch == '"':
		return s.parseStringToken(tokenLocation)
	case ch >= '0' && ch <= '9', ch == '.', ch == '+', ch == '-':
		return s.parseNumberToken(ch, tokenLocation)
	case isIdentStart(ch):
		return s.parseKeywordOrIdentifier(ch, tokenLocation), nil
	default:
		return Token{}, &GrammarError{
			Location: tokenLocation,
			Message:  "invalid character " + strconv.QuoteRune(rune(ch)),
		}
	}
}

// UnreadToken pushes a token back; the grammar never needs more than one
func (s *InputStream) UnreadToken(token Token) {
	s.savedToken = &token
}

func (s *InputStream) parseStringToken(location SourceLocation) (Token, error) {
	var sb strings.Builder
	for {
		ch, ok := s.readChar()
		if !ok {
			return Token{}, &GrammarError{Location: location, Message: "unterminated string"}
		}
		if ch == '"' {
			break
		}
		sb.WriteByte(ch)
	}
	return Token{Location: location, Kind: StringToken, Str: sb.String()}, nil
}

func (s *InputStream) parseNumberToken(first byte, location SourceLocation) (Token, error) {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		ch, ok := s.readChar()
		if !ok {
			break
		}
		if !isNumberChar(ch, sb.String()) {
			s.unreadChar(ch)
			break
		}
		sb.WriteByte(ch)
	}

	value, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return Token{}, &GrammarError{
			Location: location,
			Message:  "malformed numeric literal " + strconv.Quote(sb.String()),
		}
	}
	return Token{Location: location, Kind: NumberToken, Number: value}, nil
}

func (s *InputStream) parseKeywordOrIdentifier(first byte, location SourceLocation) Token {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		ch, ok := s.readChar()
		if !ok {
			break
		}
		if !isIdentChar(ch) {
			s.unreadChar(ch)
			break
		}
		sb.WriteByte(ch)
	}

	word := sb.String()
	if kw, isKeyword := keywords[word]; isKeyword {
		return Token{Location: location, Kind: KeywordToken, Keyword: kw}
	}
	return Token{Location: location, Kind: IdentifierToken, Identifier: word}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// isNumberChar accepts digits, the decimal point and a signed exponent.
// Signs are only valid right after an exponent marker.
func isNumberChar(ch byte, soFar string) bool {
	switch {
	case ch >= '0' && ch <= '9', ch == '.', ch == 'e', ch == 'E':
		return true
	case ch == '+' || ch == '-':
		last := soFar[len(soFar)-1]
		return last == 'e' || last == 'E'
	}
	return false
}
