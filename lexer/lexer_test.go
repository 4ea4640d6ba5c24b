/*
File    : tron/lexer/lexer_test.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a single ConsumeTokens test case.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` ( ) + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACK, "["),
				NewToken(RIGHT_BRACK, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <=  + 2   (31) - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(LEFT_PAREN, "("),
				NewToken(NUMBER_LIT, "31"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
		{
			Input: ` ++ -- += -= ^ | `,
			ExpectedTokens: []Token{
				NewToken(INCREMENT_OP, "++"),
				NewToken(DECREMENT_OP, "--"),
				NewToken(PLUS_ASSIGN, "+="),
				NewToken(MINUS_ASSIGN, "-="),
				NewToken(CARET_OP, "^"),
				NewToken(PIPE_OP, "|"),
			},
		},
		{
			// the Language does no escape processing: the literal keeps its
			// enclosing quotes and a backslash is just a character.
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, `"This is a long string  "`),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, `"12"`),
			},
		},
		{
			Input: `fun var if elif else then for break return try catch abc123 "hello!" __KEY__`,
			ExpectedTokens: []Token{
				NewToken(FUN_KEY, "fun"),
				NewToken(VAR_KEY, "var"),
				NewToken(IF_KEY, "if"),
				NewToken(ELIF_KEY, "elif"),
				NewToken(ELSE_KEY, "else"),
				NewToken(IDENTIFIER_ID, "then"),
				NewToken(FOR_KEY, "for"),
				NewToken(BREAK_KEY, "break"),
				NewToken(RETURN_KEY, "return"),
				NewToken(TRY_KEY, "try"),
				NewToken(CATCH_KEY, "catch"),
				NewToken(IDENTIFIER_ID, "abc123"),
				NewToken(STRING_LIT, `"hello!"`),
				NewToken(IDENTIFIER_ID, "__KEY__"),
			},
		},
		{
			Input: `
			fun main(args, argv) start
				var a = args[0];
				var b = argv[0];
				if (a <= 0) start
					return a + b;
				end else start
					var f = 1;
					while (f < b) start
						f = f * a + 2;
					end
				end
			end
			`,
			ExpectedTokens: []Token{
				NewToken(FUN_KEY, "fun"),
				NewToken(IDENTIFIER_ID, "main"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "args"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "argv"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(START_KEY, "start"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "args"),
				NewToken(LEFT_BRACK, "["),
				NewToken(NUMBER_LIT, "0"),
				NewToken(RIGHT_BRACK, "]"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "argv"),
				NewToken(LEFT_BRACK, "["),
				NewToken(NUMBER_LIT, "0"),
				NewToken(RIGHT_BRACK, "]"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(LE_OP, "<="),
				NewToken(NUMBER_LIT, "0"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(START_KEY, "start"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(END_KEY, "end"),
				NewToken(ELSE_KEY, "else"),
				NewToken(START_KEY, "start"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(WHILE_KEY, "while"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(LT_OP, "<"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(START_KEY, "start"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(MUL_OP, "*"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(END_KEY, "end"),
				NewToken(END_KEY, "end"),
				NewToken(END_KEY, "end"),
			},
		},
		{
			Input: `1 1.23 true "hello" nil`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(NUMBER_LIT, "1.23"),
				NewToken(TRUE_KEY, "true"),
				NewToken(STRING_LIT, `"hello"`),
				NewToken(NIL_KEY, "nil"),
			},
		},
		{
			// no hex, octal, or scientific-notation forms are recognized:
			// the digits after a leading integer simply stop being consumed.
			Input: `0x16`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "0"),
				NewToken(IDENTIFIER_ID, "x16"),
			},
		},
		{
			Input: `var fun for while if elif else try catch true false nil gets`,
			ExpectedTokens: []Token{
				NewToken(VAR_KEY, "var"),
				NewToken(FUN_KEY, "fun"),
				NewToken(FOR_KEY, "for"),
				NewToken(WHILE_KEY, "while"),
				NewToken(IF_KEY, "if"),
				NewToken(ELIF_KEY, "elif"),
				NewToken(ELSE_KEY, "else"),
				NewToken(TRY_KEY, "try"),
				NewToken(CATCH_KEY, "catch"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(NIL_KEY, "nil"),
				NewToken(GETS_KEY, "gets"),
			},
		},
		{
			Input: `a cube b root c cubicroot d random e | f`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(CUBE_OP, "cube"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(ROOT_OP, "root"),
				NewToken(IDENTIFIER_ID, "c"),
				NewToken(CUBICROOT_OP, "cubicroot"),
				NewToken(IDENTIFIER_ID, "d"),
				NewToken(RANDOM_OP, "random"),
				NewToken(IDENTIFIER_ID, "e"),
				NewToken(PIPE_OP, "|"),
				NewToken(IDENTIFIER_ID, "f"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

// line comments are skipped entirely; the Language has no block comments.
func TestNewLexer_LineComments(t *testing.T) {
	src := "var a = 1; // trailing comment\nvar b = 2;"
	lex := NewLexer(src)
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 10, len(tokens))
	assert.Equal(t, NUMBER_LIT, tokens[3].Type)
	assert.Equal(t, "1", tokens[3].Literal)
	assert.Equal(t, VAR_KEY, tokens[5].Type)
}

func TestNewLexer_Import(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `import "math.tron"`,
			ExpectedTokens: []Token{
				NewToken(IMPORT_KEY, "import"),
				NewToken(STRING_LIT, `"math.tron"`),
			},
		},
		{
			Input: `import "sets.tron"`,
			ExpectedTokens: []Token{
				NewToken(IMPORT_KEY, "import"),
				NewToken(STRING_LIT, `"sets.tron"`),
			},
		},
	}
	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()
		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}
