/*
File    : tron/eval/eval_helpers.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"math"
	"strconv"

	"github.com/tron-lang/tron/values"
)

// parseNumberLiteral converts a scanned number lexeme into its f64 value.
func parseNumberLiteral(lexeme string) (float64, error) {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, runtimeErrorf("malformed number literal '%s'", lexeme)
	}
	return f, nil
}

// stripEnclosingQuotes drops the leading and trailing '"' a string lexeme
// retains after scanning.
func stripEnclosingQuotes(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

// asNumber requires v to be a Number, failing with a line-anchored error
// (line 0 if the caller has none in scope) naming the offending operator.
func asNumber(v values.Value, who string, line int) (float64, error) {
	n, ok := v.(*values.Number)
	if !ok {
		return 0, runtimeErrorAt(line, "operator %s: expected number, got %s", who, values.TypeName(v))
	}
	return n.Val, nil
}

func bothNumbers(l, r values.Value, who string, line int) (float64, float64, error) {
	lf, err := asNumber(l, who, line)
	if err != nil {
		return 0, 0, err
	}
	rf, err := asNumber(r, who, line)
	if err != nil {
		return 0, 0, err
	}
	return lf, rf, nil
}

func powf(base, exp float64) float64 {
	return math.Pow(base, exp)
}
