package lexer

import (
	"testing"

	"github.com/cwbudde/go-lbpl/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New("<test>", input)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "(){}?,.:;%-+/*!!====>=<=>><<&&||")
	want := []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.QUESTION,
		token.COMMA, token.DOT, token.COLON, token.SEMICOLON, token.PERCENT,
		token.MINUS, token.PLUS, token.SLASH, token.STAR,
		token.BANG, token.BANG_EQ, token.EQ_EQ, token.EQ,
		token.GREATER_EQ, token.LESS_EQ, token.SHR, token.SHL,
		token.AND, token.OR, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestSoloAmpersandAndPipeAreErrors(t *testing.T) {
	toks := scanAll(t, "&")
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for solo '&', got %s", toks[0].Kind)
	}

	toks = scanAll(t, "|")
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for solo '|', got %s", toks[0].Kind)
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	cases := []struct {
		lexeme string
		want   token.Kind
	}{
		{"import", token.IMPORT}, {"let", token.LET}, {"class", token.CLASS},
		{"else", token.ELSE}, {"false", token.FALSE}, {"fn", token.FN},
		{"for", token.FOR}, {"if", token.IF}, {"nil", token.NIL},
		{"return", token.RETURN}, {"break", token.BREAK}, {"continue", token.CONTINUE},
		{"super", token.SUPER}, {"this", token.THIS}, {"true", token.TRUE},
		{"while", token.WHILE}, {"loop", token.LOOP},
		{"forest", token.IDENT}, {"classy", token.IDENT}, {"_foo1", token.IDENT},
	}

	for _, c := range cases {
		toks := scanAll(t, c.lexeme)
		if toks[0].Kind != c.want {
			t.Errorf("lexeme %q: got %s want %s", c.lexeme, toks[0].Kind, c.want)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	toks := scanAll(t, "123 1.5 0 3.")
	if toks[0].Kind != token.INT || toks[0].IntValue != 123 {
		t.Errorf("expected INT(123), got %v", toks[0])
	}
	if toks[1].Kind != token.FLOAT || toks[1].FloatValue != 1.5 {
		t.Errorf("expected FLOAT(1.5), got %v", toks[1])
	}
	if toks[2].Kind != token.INT || toks[2].IntValue != 0 {
		t.Errorf("expected INT(0), got %v", toks[2])
	}
	// "3." has no digit after the dot: the dot is not part of the number.
	if toks[3].Kind != token.INT || toks[3].IntValue != 3 {
		t.Errorf("expected INT(3) before bare dot, got %v", toks[3])
	}
	if toks[4].Kind != token.DOT {
		t.Errorf("expected DOT after bare '3.', got %v", toks[4])
	}
}

func TestStringEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nb\t\"\\"`)
	if toks[0].Kind != token.STRING {
		t.Fatalf("expected STRING, got %s", toks[0].Kind)
	}
	if toks[0].Lexeme != "a\nb\t\"\\" {
		t.Errorf("escape decoding mismatch: got %q", toks[0].Lexeme)
	}
}

func TestStringRejectsUnknownEscape(t *testing.T) {
	toks := scanAll(t, `"\q"`)
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unknown escape, got %s", toks[0].Kind)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	toks := scanAll(t, `"abc`)
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %s", toks[0].Kind)
	}
}

func TestCharLiteral(t *testing.T) {
	toks := scanAll(t, "'x'")
	if toks[0].Kind != token.CHAR || toks[0].CharValue != 'x' {
		t.Fatalf("expected CHAR('x'), got %v", toks[0])
	}
}

func TestMultiCharLiteralIsError(t *testing.T) {
	toks := scanAll(t, "'xy'")
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for multi-char literal, got %s", toks[0].Kind)
	}
}

func TestLineCommentsAreSkipped(t *testing.T) {
	toks := scanAll(t, "let x = 1; # comment to end of line\nlet y = 2;")
	// Expect: let x = 1 ; let y = 2 ; EOF  (no comment tokens produced)
	var lets int
	for _, tok := range toks {
		if tok.Kind == token.LET {
			lets++
		}
	}
	if lets != 2 {
		t.Fatalf("expected 2 'let' tokens, got %d", lets)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("<test>", "let\nx")
	first := l.Next() // let
	if first.Pos.Line != 1 || first.Pos.Column != 0 {
		t.Errorf("expected line 1 column 0, got %d:%d", first.Pos.Line, first.Pos.Column)
	}
	second := l.Next() // x, on line 2
	if second.Pos.Line != 2 || second.Pos.Column != 0 {
		t.Errorf("expected line 2 column 0 after newline, got %d:%d", second.Pos.Line, second.Pos.Column)
	}
}

func TestTabCountsAsFourColumns(t *testing.T) {
	l := New("<test>", "\tx")
	tok := l.Next()
	if tok.Pos.Column != 4 {
		t.Errorf("expected column 4 after one leading tab, got %d", tok.Pos.Column)
	}
}

func TestEOFIsTerminal(t *testing.T) {
	l := New("<test>", "")
	tok := l.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF on empty input, got %s", tok.Kind)
	}
	again := l.Next()
	if again.Kind != token.EOF {
		t.Fatalf("expected EOF to repeat, got %s", again.Kind)
	}
}
