// Package expr turns command-line tokens into a conversion request.
//
// Parsing happens in two passes. The first pass walks the tokens: it
// short-circuits on recognized flags, rejects unknown dash arguments and
// concatenates everything else into a single expression string, folding the
// accepted equality spellings ("->", "=>", "=", ">") into a canonical "=".
// The second pass classifies the expression character by character into an
// amount, a from code and a to code. This is what lets both
// "12,50 eur -> usd" and "12.50EUR=USD" mean the same thing.
package expr

import (
	"strconv"
	"strings"

	"curconv/internal/domain"
)

// Kind discriminates the possible outcomes of an argument list.
type Kind int

const (
	// KindConvert carries a conversion request to execute.
	KindConvert Kind = iota
	// KindShowHelp requests the usage text.
	KindShowHelp
	// KindShowVersion requests the program version.
	KindShowVersion
	// KindShowUsualList requests the short list of well-known currencies.
	KindShowUsualList
	// KindShowCompleteList requests the full list of snapshot codes.
	KindShowCompleteList
)

// Outcome is the result of a successful parse. Request is only meaningful
// for KindConvert; flag outcomes win over any accumulated expression state.
type Outcome struct {
	Kind    Kind
	Request domain.ConversionRequest
}

// Parse classifies args and, unless a flag short-circuits, scans the
// concatenated expression into a conversion request.
func Parse(args []string) (Outcome, error) {
	if len(args) == 0 {
		return Outcome{}, domain.ErrNoArguments
	}

	var expression strings.Builder
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return Outcome{Kind: KindShowHelp}, nil
		case "-V", "--version":
			return Outcome{Kind: KindShowVersion}, nil
		case "-l", "--list", "-lu", "--list-usual":
			return Outcome{Kind: KindShowUsualList}, nil
		case "-la", "--list-all":
			return Outcome{Kind: KindShowCompleteList}, nil
		case "->", "=>", "=", ">":
			expression.WriteByte('=')
		default:
			if strings.HasPrefix(arg, "-") {
				return Outcome{}, &domain.UnknownArgumentError{Token: arg}
			}
			expression.WriteString(arg)
		}
	}

	request, err := scan(expression.String())
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: KindConvert, Request: request}, nil
}

// scan runs the character classifier over the normalized expression.
func scan(expression string) (domain.ConversionRequest, error) {
	var (
		fromDone bool
		number   strings.Builder
		from     strings.Builder
		to       strings.Builder
		invalid  strings.Builder
	)

	for _, c := range expression {
		switch {
		case c >= '0' && c <= '9' || c == '.':
			number.WriteRune(c)
		case c == ',':
			// comma is a decimal-separator alias
			number.WriteByte('.')
		case c == '=':
			fromDone = true
		case c >= 'A' && c <= 'Z' || c == '_':
			if fromDone {
				to.WriteRune(c)
			} else {
				from.WriteRune(c)
			}
		case c >= 'a' && c <= 'z':
			if fromDone {
				to.WriteRune(c - 'a' + 'A')
			} else {
				from.WriteRune(c - 'a' + 'A')
			}
		default:
			// keep scanning so every bad character gets reported
			invalid.WriteRune(c)
		}
	}

	if invalid.Len() > 0 {
		return domain.ConversionRequest{}, &domain.UnknownExpressionError{Fragment: invalid.String()}
	}

	// A bare pair like "USD=EUR" means "convert one unit".
	amount, err := strconv.ParseFloat(number.String(), 64)
	if err != nil {
		amount = 1.0
	}

	return domain.ConversionRequest{
		From:   from.String(),
		To:     to.String(),
		Amount: amount,
	}, nil
}
