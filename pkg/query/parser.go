package query

import (
	"errors"
	"regexp"
	"strings"

	"custdb/pkg/common"
)

// Expr is a parsed filter expression over one customer field.
type Expr struct {
	Field string
	Op    string
	Value string

	date common.Date
}

var exprRe = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)\s*(>=|<=|!=|=|>|<)\s*(.+)$`)

// Parse parses a filter expression:
//
//	"country = France"
//	"first_name != Maria"
//	"subscription_date >= 2020-01-01"
//
// Equality and inequality work on every field; the relational
// operators are only supported on subscription_date. Values may be
// quoted to keep leading or trailing spaces.
func Parse(s string) (*Expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty expression")
	}

	matches := exprRe.FindStringSubmatch(s)
	if matches == nil {
		return nil, errors.New("syntax: expected <field> <op> <value>")
	}

	expr := &Expr{
		Field: strings.ToLower(matches[1]),
		Op:    matches[2],
		Value: unquote(matches[3]),
	}

	if _, ok := (common.Record{}).Field(expr.Field); !ok {
		return nil, errors.New("unknown field " + expr.Field)
	}

	if expr.Field == "subscription_date" || expr.Field == "date" {
		expr.date = common.ParseDate(expr.Value)
		if !expr.date.Valid {
			return nil, errors.New("invalid date value; expected YYYY-MM-DD")
		}
	} else if expr.Op != "=" && expr.Op != "!=" {
		return nil, errors.New("operator " + expr.Op + " is only supported on subscription_date")
	}

	return expr, nil
}

// Exact reports whether the expression is a plain equality, the only
// form the index fast path can serve.
func (e *Expr) Exact() bool { return e.Op == "=" }

// Match evaluates the expression against one record. Records without a
// subscription date never match a relational date comparison.
func (e *Expr) Match(r common.Record) bool {
	if e.date.Valid {
		if !r.Subscribed.Valid {
			return e.Op == "!="
		}
		c := r.Subscribed.Compare(e.date)
		switch e.Op {
		case "=":
			return c == 0
		case "!=":
			return c != 0
		case ">":
			return c > 0
		case "<":
			return c < 0
		case ">=":
			return c >= 0
		case "<=":
			return c <= 0
		}
		return false
	}

	got, _ := r.Field(e.Field)
	if e.Op == "!=" {
		return !strings.EqualFold(got, e.Value)
	}
	return strings.EqualFold(got, e.Value)
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
