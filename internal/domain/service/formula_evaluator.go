package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// Formula evaluation errors. These never escape Evaluate; they exist so the
// lower-level parser can be tested directly.
var (
	ErrFormulaSyntax          = errors.New("formula: syntax error")
	ErrFormulaUnknownVariable = errors.New("formula: unknown variable")
	ErrFormulaDivisionByZero  = errors.New("formula: division by zero")
	ErrFormulaNotFinite       = errors.New("formula: result is not finite")
)

// Formula variable names visible to product authors. Any other identifier is
// rejected at parse time.
const (
	VarWidthMm      = "widthMm"
	VarHeightMm     = "heightMm"
	VarDepthMm      = "depthMm"
	VarBasePriceUSD = "basePriceUsd"
	VarCategoryID   = "categoryId"
)

// FormulaEvaluator parses and evaluates user-authored pricing formulas over a
// closed variable table. The grammar is deliberately tiny: numeric literals,
// the whitelisted variables, + - * /, unary minus, parentheses, and the
// binary min/max functions. Standard precedence, left associativity.
//
// Evaluation never fails from the caller's point of view: a missing formula,
// a parse error, an unknown variable, division by zero, or a non-finite or
// non-positive result all degrade to the adjusted reference price. Pricing
// must not block an order flow.
type FormulaEvaluator struct{}

// NewFormulaEvaluator creates a new FormulaEvaluator.
func NewFormulaEvaluator() *FormulaEvaluator {
	return &FormulaEvaluator{}
}

// Evaluate computes the final unit price for a product.
//
// Parameters:
//   - formula: the product's formula, empty for none
//   - dims: resolved working dimensions
//   - adjustedPrice: the adjusted reference price (fallback value)
//   - categoryID: product category id; bound as a number when coercible
//
// Returns:
//   - valueobject.Money: final unit price, USD, two decimals, always > 0
func (e *FormulaEvaluator) Evaluate(
	formula string,
	dims valueobject.Dimensions,
	adjustedPrice valueobject.Money,
	categoryID string,
) valueobject.Money {
	if strings.TrimSpace(formula) == "" {
		return adjustedPrice
	}

	vars := map[string]float64{
		VarWidthMm:      dims.WidthMm,
		VarHeightMm:     dims.HeightMm,
		VarDepthMm:      dims.DepthMm,
		VarBasePriceUSD: adjustedPrice.ToFloat(),
	}
	if id, err := strconv.ParseFloat(categoryID, 64); err == nil {
		vars[VarCategoryID] = id
	}

	result, err := evalExpression(formula, vars)
	if err != nil || !isUsablePrice(result) {
		return adjustedPrice
	}
	return valueobject.USD(result)
}

// isUsablePrice rejects NaN, infinities and non-positive prices.
func isUsablePrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// evalExpression tokenizes, parses and evaluates src against vars in one
// pass. Exposed within the package for direct testing.
func evalExpression(src string, vars map[string]float64) (float64, error) {
	tokens, err := scanFormula(src)
	if err != nil {
		return 0, err
	}
	p := &formulaParser{tokens: tokens, vars: vars}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.atEnd() {
		return 0, fmt.Errorf("%w: unexpected %q", ErrFormulaSyntax, p.peek().text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrFormulaNotFinite
	}
	return v, nil
}

// tokenKind enumerates the lexical classes of the formula grammar.
type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenOp // + - * /
	tokenLParen
	tokenRParen
	tokenComma
	tokenEOF
)

type formulaToken struct {
	kind tokenKind
	text string
	num  float64
}

// scanFormula splits src into tokens, rejecting anything outside the grammar.
func scanFormula(src string) ([]formulaToken, error) {
	var tokens []formulaToken
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, formulaToken{kind: tokenLParen, text: "("})
			i++
		case r == ')':
			tokens = append(tokens, formulaToken{kind: tokenRParen, text: ")"})
			i++
		case r == ',':
			tokens = append(tokens, formulaToken{kind: tokenComma, text: ","})
			i++
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, formulaToken{kind: tokenOp, text: string(r)})
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrFormulaSyntax, text)
			}
			tokens = append(tokens, formulaToken{kind: tokenNumber, text: text, num: num})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, formulaToken{kind: tokenIdent, text: string(runes[start:i])})
		default:
			return nil, fmt.Errorf("%w: illegal character %q", ErrFormulaSyntax, string(r))
		}
	}
	tokens = append(tokens, formulaToken{kind: tokenEOF})
	return tokens, nil
}

// formulaParser is a recursive-descent parser that evaluates as it parses.
//
// Grammar:
//
//	expr    -> term (('+' | '-') term)*
//	term    -> unary (('*' | '/') unary)*
//	unary   -> '-' unary | primary
//	primary -> NUMBER | IDENT | IDENT '(' expr ',' expr ')' | '(' expr ')'
//
// The only callable identifiers are min and max, both binary.
type formulaParser struct {
	tokens []formulaToken
	pos    int
	vars   map[string]float64
}

func (p *formulaParser) peek() formulaToken { return p.tokens[p.pos] }

func (p *formulaParser) next() formulaToken {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *formulaParser) atEnd() bool { return p.peek().kind == tokenEOF }

func (p *formulaParser) expect(kind tokenKind, what string) error {
	if p.peek().kind != kind {
		return fmt.Errorf("%w: expected %s, got %q", ErrFormulaSyntax, what, p.peek().text)
	}
	p.next()
	return nil
}

func (p *formulaParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.peek().kind == tokenOp && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next().text
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *formulaParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.peek().kind == tokenOp && (p.peek().text == "*" || p.peek().text == "/") {
		op := p.next().text
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			left *= right
		} else {
			if right == 0 {
				return 0, ErrFormulaDivisionByZero
			}
			left /= right
		}
	}
	return left, nil
}

func (p *formulaParser) parseUnary() (float64, error) {
	if p.peek().kind == tokenOp && p.peek().text == "-" {
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parsePrimary()
}

func (p *formulaParser) parsePrimary() (float64, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenNumber:
		p.next()
		return tok.num, nil

	case tokenIdent:
		p.next()
		if p.peek().kind == tokenLParen {
			return p.parseCall(tok.text)
		}
		v, ok := p.vars[tok.text]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrFormulaUnknownVariable, tok.text)
		}
		return v, nil

	case tokenLParen:
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(tokenRParen, ")"); err != nil {
			return 0, err
		}
		return v, nil

	default:
		return 0, fmt.Errorf("%w: unexpected %q", ErrFormulaSyntax, tok.text)
	}
}

// parseCall handles the binary min/max functions.
func (p *formulaParser) parseCall(name string) (float64, error) {
	if name != "min" && name != "max" {
		return 0, fmt.Errorf("%w: unknown function %q", ErrFormulaSyntax, name)
	}
	if err := p.expect(tokenLParen, "("); err != nil {
		return 0, err
	}
	first, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if err := p.expect(tokenComma, ","); err != nil {
		return 0, err
	}
	second, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if err := p.expect(tokenRParen, ")"); err != nil {
		return 0, err
	}
	if name == "min" {
		return math.Min(first, second), nil
	}
	return math.Max(first, second), nil
}
