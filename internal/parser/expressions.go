package parser

import (
	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/token"
)

// parseExpression is the grammar entry point for the expression
// sub-language (spec §4.1), climbing precedence from loosest to tightest:
// OR > AND > NOT > comparison (non-associative) > +/- > */÷ > unary >
// primary.
func (p *parser) parseExpression() (expr.Expression, *diag.Error) {
	return p.parseOr()
}

func (p *parser) parseOr() (expr.Expression, *diag.Error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("OR") {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: expr.Or, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (expr.Expression, *diag.Error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("AND") {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: expr.And, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (expr.Expression, *diag.Error) {
	if p.atKeyword("NOT") {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: expr.Not, Inner: inner}, nil
	}
	return p.parseComparison()
}

var comparisonOps = map[string]expr.BinaryOp{
	"=": expr.Eq, "<": expr.Lt, ">": expr.Gt,
	"<=": expr.Le, ">=": expr.Ge, "<>": expr.Ne, "!=": expr.Ne,
}

// parseComparison handles a single, non-associative comparison (`a = b`
// parses, `a = b = c` is a syntax error — spec §4.1 forbids chained
// comparisons) and the `[NOT] IN (subquery)` postfix, which attaches at
// the same level since it produces a boolean result from an additive
// operand just like a comparison does.
func (p *parser) parseComparison() (expr.Expression, *diag.Error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	negated := false
	if p.atKeyword("NOT") && p.peekAt(1).Is("IN") {
		p.advance()
		negated = true
	}
	if p.atKeyword("IN") {
		p.advance()
		if err := p.expectSymbol("("); err != nil {
			return nil, err
		}
		sub, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		var result expr.Expression = &expr.InSubquery{Expr: left, Query: sub}
		if negated {
			result = &expr.Unary{Op: expr.Not, Inner: result}
		}
		return result, nil
	}

	for sym, op := range comparisonOps {
		if !p.atSymbol(sym) {
			continue
		}
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		result := expr.Expression(&expr.Binary{Op: op, Left: left, Right: right})
		if isComparisonSymbol(p.cur()) {
			return nil, diag.New(diag.Syntactic, p.locus(), "comparison operators do not chain; parenthesize %q", p.cur().Text)
		}
		return result, nil
	}
	return left, nil
}

func isComparisonSymbol(t interface{ IsSymbol(string) bool }) bool {
	for sym := range comparisonOps {
		if t.IsSymbol(sym) {
			return true
		}
	}
	return false
}

func (p *parser) parseAdditive() (expr.Expression, *diag.Error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.atSymbol("+") || p.atSymbol("-") {
		op := expr.Add
		if p.atSymbol("-") {
			op = expr.Sub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (expr.Expression, *diag.Error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atSymbol("*") || p.atSymbol("/") {
		op := expr.Mul
		if p.atSymbol("/") {
			op = expr.Div
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (expr.Expression, *diag.Error) {
	if p.atSymbol("-") {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: expr.Negate, Inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (expr.Expression, *diag.Error) {
	tok := p.cur()

	if p.atSymbol("(") {
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	switch {
	case tok.Kind == token.Number:
		p.advance()
		kind := expr.Int
		for _, ch := range tok.Text {
			if ch == '.' {
				kind = expr.Double
				break
			}
		}
		return &expr.Literal{Kind: kind, Value: tok.Text}, nil

	case tok.Kind == token.String:
		p.advance()
		return &expr.Literal{Kind: expr.StringKind, Value: tok.Text}, nil

	case p.atKeyword("NULL"):
		p.advance()
		return &expr.Literal{Kind: expr.Null}, nil

	case p.atKeyword("COUNT") || p.atKeyword("SUM") || p.atKeyword("AVG") || p.atKeyword("MIN") || p.atKeyword("MAX"):
		return p.parseAggregate()

	case p.atSymbol("*"):
		p.advance()
		return &expr.Column{Name: expr.WildcardName}, nil

	case tok.Kind == token.Ident:
		p.advance()
		if p.atSymbol(".") && p.peekAt(1).IsSymbol("*") {
			p.advance()
			p.advance()
			return &expr.Column{Qualifier: tok.Text, Name: expr.WildcardName}, nil
		}
		if p.atSymbol(".") {
			p.advance()
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			return &expr.Column{Qualifier: tok.Text, Name: name}, nil
		}
		return &expr.Column{Name: tok.Text}, nil

	default:
		return nil, diag.New(diag.Syntactic, p.locus(), "unexpected token %q in expression", tok.Text)
	}
}

func (p *parser) parseAggregate() (expr.Expression, *diag.Error) {
	name := p.advance().Text
	fn := aggregateFuncs[name]
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var inner expr.Expression
	var err *diag.Error
	if fn == expr.Count && p.atSymbol("*") {
		p.advance()
		inner = &expr.Column{Name: expr.WildcardName}
	} else {
		inner, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
		if containsAggregate(inner) {
			return nil, diag.NewNoLocus(diag.Internal, "aggregate functions do not nest")
		}
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return &expr.Aggregate{Func: fn, Inner: inner}, nil
}

// containsAggregate reports whether e has an Aggregate anywhere within
// it, not just at its root — spec §3 forbids aggregate nesting at any
// depth (`SUM(1 + COUNT(x))` is as invalid as `SUM(COUNT(x))`). A
// subquery's own expression scope is independent, so InSubquery does not
// recurse into its Query.
func containsAggregate(e expr.Expression) bool {
	switch n := e.(type) {
	case *expr.Aggregate:
		return true
	case *expr.Binary:
		return containsAggregate(n.Left) || containsAggregate(n.Right)
	case *expr.Unary:
		return containsAggregate(n.Inner)
	case *expr.InSubquery:
		return containsAggregate(n.Expr)
	default:
		return false
	}
}

var aggregateFuncs = map[string]expr.AggregateFunc{
	"COUNT": expr.Count, "SUM": expr.Sum, "AVG": expr.Avg, "MIN": expr.Min, "MAX": expr.Max,
}
