package parser

import (
	"strconv"

	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/sra"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/token"
)

// parseQuery parses a full SELECT, including any left-associative chain of
// set operations (spec §4.2: "set operations are left-associative at the
// query level") — each side of a UNION/INTERSECT/EXCEPT is itself a
// complete SELECT with its own FROM/WHERE/ORDER BY.
func (p *parser) parseQuery() (sra.SRA, *diag.Error) {
	left, err := p.parseSelectCore()
	if err != nil {
		return nil, err
	}
	for {
		var kind sra.SetOpKind
		switch {
		case p.atKeyword("UNION"):
			p.advance()
			if p.atKeyword("ALL") {
				p.advance()
			}
			kind = sra.Union
		case p.atKeyword("INTERSECT"):
			p.advance()
			kind = sra.Intersect
		case p.atKeyword("EXCEPT"):
			p.advance()
			kind = sra.Except
		default:
			return left, nil
		}
		right, err := p.parseSelectCore()
		if err != nil {
			return nil, err
		}
		left = &sra.SetOp{Kind: kind, Left: left, Right: right}
	}
}

// parseSelectCore parses a single SELECT statement without any trailing
// set-op chain: the projection list, FROM/JOIN chain, WHERE, GROUP
// BY/HAVING (recorded as annotations only, spec §4.4), ORDER BY, and
// LIMIT/OFFSET.
func (p *parser) parseSelectCore() (sra.SRA, *diag.Error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}
	distinct := false
	if p.atKeyword("DISTINCT") {
		p.advance()
		distinct = true
	}

	items, err := p.parseProjectItems()
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	child, err := p.parseFromList()
	if err != nil {
		return nil, err
	}

	if p.atKeyword("WHERE") {
		p.advance()
		pred, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		child = &sra.Select{Predicate: pred, Child: child}
	}

	var groupBy []expr.Expression
	var having expr.Expression
	if p.atKeyword("GROUP") {
		p.advance()
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		groupBy, err = p.parseExprList()
		if err != nil {
			return nil, err
		}
	}
	if p.atKeyword("HAVING") {
		p.advance()
		having, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	var result sra.SRA = &sra.Project{Items: items, Distinct: distinct, GroupBy: groupBy, Having: having, Child: child}

	if p.atKeyword("ORDER") {
		p.advance()
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		orderings, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		// The first-listed ordering is primary and must end up outermost,
		// so build from the last entry inward (spec §4.2).
		for i := len(orderings) - 1; i >= 0; i-- {
			result = &sra.OrderBy{Column: orderings[i].col, Direction: orderings[i].dir, Child: result}
		}
	}

	if p.atKeyword("LIMIT") {
		p.advance()
		n, err := p.expectNumber()
		if err != nil {
			return nil, err
		}
		lim := &sra.Limit{Count: n, Child: result}
		if p.atKeyword("OFFSET") {
			p.advance()
			off, err := p.expectNumber()
			if err != nil {
				return nil, err
			}
			lim.HasOffset = true
			lim.Offset = off
		}
		result = lim
	}

	return result, nil
}

func (p *parser) expectNumber() (int, *diag.Error) {
	if p.cur().Kind != token.Number {
		return 0, diag.New(diag.Syntactic, p.locus(), "expected a number, got %q", p.cur().Text)
	}
	text := p.advance().Text
	n, convErr := strconv.Atoi(text)
	if convErr != nil {
		return 0, diag.New(diag.Syntactic, p.locus(), "invalid integer %q", text)
	}
	return n, nil
}

// parseProjectItems parses the comma-separated SELECT list: a bare `*`, a
// qualified `t.*`, or an (expression, optional alias) pair.
func (p *parser) parseProjectItems() ([]sra.ProjectItem, *diag.Error) {
	var items []sra.ProjectItem
	for {
		item, err := p.parseProjectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.atSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	return items, nil
}

func (p *parser) parseProjectItem() (sra.ProjectItem, *diag.Error) {
	if p.atSymbol("*") {
		p.advance()
		return sra.ProjectItem{Expr: &expr.Column{Name: expr.WildcardName}}, nil
	}
	if p.atIdent() && p.peekAt(1).IsSymbol(".") && p.peekAt(2).IsSymbol("*") {
		qualifier := p.advance().Text
		p.advance() // .
		p.advance() // *
		return sra.ProjectItem{Expr: &expr.Column{Qualifier: qualifier, Name: expr.WildcardName}}, nil
	}

	e, err := p.parseExpression()
	if err != nil {
		return sra.ProjectItem{}, err
	}
	alias := ""
	if p.atKeyword("AS") {
		p.advance()
		alias, err = p.expectIdent()
		if err != nil {
			return sra.ProjectItem{}, err
		}
	} else if p.atIdent() {
		alias = p.advance().Text
	}
	return sra.ProjectItem{Expr: e, Alias: alias}, nil
}

func (p *parser) parseExprList() ([]expr.Expression, *diag.Error) {
	var list []expr.Expression
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if p.atSymbol(",") {
			p.advance()
			continue
		}
		return list, nil
	}
}

type ordering struct {
	col expr.Expression
	dir sra.Direction
}

func (p *parser) parseOrderByList() ([]ordering, *diag.Error) {
	var list []ordering
	for {
		col, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		dir := sra.Asc
		if p.atKeyword("ASC") {
			p.advance()
		} else if p.atKeyword("DESC") {
			p.advance()
			dir = sra.Desc
		}
		list = append(list, ordering{col: col, dir: dir})
		if p.atSymbol(",") {
			p.advance()
			continue
		}
		return list, nil
	}
}

// parseFromList parses the FROM clause: a left-associative chain of table
// references, joined either by `,` (a plain Cross) or by an explicit JOIN
// of some kind (spec §4.2).
func (p *parser) parseFromList() (sra.SRA, *diag.Error) {
	left, err := p.parseTableRef()
	if err != nil {
		return nil, err
	}
	for {
		if p.atSymbol(",") {
			p.advance()
			right, err := p.parseTableRef()
			if err != nil {
				return nil, err
			}
			left = &sra.Join{Kind: sra.Cross, Left: left, Right: right}
			continue
		}
		kind, ok, err := p.tryParseJoinKeyword()
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.parseTableRef()
		if err != nil {
			return nil, err
		}
		join := &sra.Join{Kind: kind, Left: left, Right: right}
		if p.atKeyword("ON") {
			p.advance()
			cond, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			join.Condition = cond
		} else if p.atKeyword("USING") {
			p.advance()
			if err := p.expectSymbol("("); err != nil {
				return nil, err
			}
			cols, err := p.parseIdentList()
			if err != nil {
				return nil, err
			}
			if err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			join.UsingColumns = cols
		}
		left = join
	}
}

// tryParseJoinKeyword consumes a join-introducing keyword sequence and
// reports the resulting JoinKind. Returns ok=false (consuming nothing) if
// the current position isn't a join keyword.
func (p *parser) tryParseJoinKeyword() (sra.JoinKind, bool, *diag.Error) {
	switch {
	case p.atKeyword("JOIN"):
		p.advance()
		return sra.Inner, true, nil
	case p.atKeyword("INNER"):
		p.advance()
		if err := p.expectKeyword("JOIN"); err != nil {
			return 0, false, err
		}
		return sra.Inner, true, nil
	case p.atKeyword("CROSS"):
		p.advance()
		if err := p.expectKeyword("JOIN"); err != nil {
			return 0, false, err
		}
		return sra.Cross, true, nil
	case p.atKeyword("NATURAL"):
		p.advance()
		if err := p.expectKeyword("JOIN"); err != nil {
			return 0, false, err
		}
		return sra.Natural, true, nil
	case p.atKeyword("LEFT"):
		p.advance()
		if p.atKeyword("OUTER") {
			p.advance()
		}
		if err := p.expectKeyword("JOIN"); err != nil {
			return 0, false, err
		}
		return sra.LeftOuter, true, nil
	case p.atKeyword("RIGHT"):
		p.advance()
		if p.atKeyword("OUTER") {
			p.advance()
		}
		if err := p.expectKeyword("JOIN"); err != nil {
			return 0, false, err
		}
		return sra.RightOuter, true, nil
	case p.atKeyword("FULL"):
		p.advance()
		if p.atKeyword("OUTER") {
			p.advance()
		}
		if err := p.expectKeyword("JOIN"); err != nil {
			return 0, false, err
		}
		return sra.FullOuter, true, nil
	default:
		return 0, false, nil
	}
}

func (p *parser) parseTableRef() (sra.SRA, *diag.Error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	alias := ""
	if p.atKeyword("AS") {
		p.advance()
		alias, err = p.expectIdent()
		if err != nil {
			return nil, err
		}
	} else if p.atIdent() {
		alias = p.advance().Text
	}
	return &sra.Table{Name: name, Alias: alias}, nil
}

func (p *parser) parseIdentList() ([]string, *diag.Error) {
	var list []string
	for {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		list = append(list, name)
		if p.atSymbol(",") {
			p.advance()
			continue
		}
		return list, nil
	}
}
