package meme

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/yuin/gopher-lua/ast"
	"github.com/yuin/gopher-lua/parse"
)

const (
	// registerFunc is the global a module calls to declare its meme.
	registerFunc = "add_meme"
	// dateFunc is the constructor recognized for date_created values.
	dateFunc = "date"
)

// Extract parses a module's Lua declaration source and returns the metadata
// of its first add_meme call. It returns (nil, error) when the source does
// not parse, and (nil, nil) when it parses but contains no registration call.
// The source is only inspected as a syntax tree; no code runs.
func Extract(name string, source []byte) (*Info, error) {
	chunk, err := parse.Parse(bytes.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	var call *ast.FuncCallExpr
	walkChunk(chunk, func(expr ast.Expr) bool {
		fc, ok := expr.(*ast.FuncCallExpr)
		if !ok || fc.Receiver != nil {
			return false
		}
		ident, ok := fc.Func.(*ast.IdentExpr)
		if !ok || ident.Value != registerFunc {
			return false
		}
		call = fc
		return true
	})
	if call == nil {
		return nil, nil
	}

	info := &Info{}
	for _, field := range registrationFields(call) {
		key, ok := field.Key.(*ast.StringExpr)
		if !ok {
			continue
		}
		switch key.Value {
		case "keywords":
			if list, ok := stringList(field.Value); ok {
				info.Keywords = list
			}
		case "min_images":
			info.MinImages = intLiteral(field.Value)
		case "min_texts":
			info.MinTexts = intLiteral(field.Value)
		case "default_texts":
			if list, ok := stringList(field.Value); ok {
				info.DefaultTexts = list
			}
		case "date_created":
			info.DateCreated = dateLiteral(field.Value)
		}
	}
	return info, nil
}

// registrationFields returns the named fields of the registration call's
// first table argument. Lua keyword arguments are table-constructor fields,
// so both add_meme{...} and add_meme({...}) are covered. A call with no
// table argument has no fields and yields an all-default Info.
func registrationFields(call *ast.FuncCallExpr) []*ast.Field {
	for _, arg := range call.Args {
		if tbl, ok := arg.(*ast.TableExpr); ok {
			return tbl.Fields
		}
	}
	return nil
}

// stringList accepts only a table-constructor value and returns its string
// literal elements in order. Non-string elements are silently dropped;
// any other value shape is rejected entirely.
func stringList(value ast.Expr) ([]string, bool) {
	tbl, ok := value.(*ast.TableExpr)
	if !ok {
		return nil, false
	}
	var list []string
	for _, field := range tbl.Fields {
		if field.Key != nil {
			continue
		}
		if s, ok := field.Value.(*ast.StringExpr); ok {
			list = append(list, s.Value)
		}
	}
	return list, true
}

// intLiteral accepts only a number literal and returns its integer value,
// or nil for any other shape.
func intLiteral(value ast.Expr) *int {
	num, ok := value.(*ast.NumberExpr)
	if !ok {
		return nil
	}
	n, ok := parseNumber(num.Value)
	if !ok {
		return nil
	}
	return &n
}

// dateLiteral accepts only a call to the date constructor with at least
// three number literal arguments, interpreted as (year, month, day).
// Extra arguments are ignored; any other shape yields nil.
func dateLiteral(value ast.Expr) *time.Time {
	call, ok := value.(*ast.FuncCallExpr)
	if !ok || call.Receiver != nil {
		return nil
	}
	ident, ok := call.Func.(*ast.IdentExpr)
	if !ok || ident.Value != dateFunc {
		return nil
	}

	var args []int
	for _, arg := range call.Args {
		num, ok := arg.(*ast.NumberExpr)
		if !ok {
			continue
		}
		if n, ok := parseNumber(num.Value); ok {
			args = append(args, n)
		}
	}
	if len(args) < 3 {
		return nil
	}
	date := time.Date(args[0], time.Month(args[1]), args[2], 0, 0, 0, 0, time.UTC)
	return &date
}

// parseNumber converts a Lua number literal to an int. The parser keeps the
// source text, so decimal, hex, and exponent forms all appear here.
func parseNumber(literal string) (int, bool) {
	if n, err := strconv.ParseInt(literal, 0, 64); err == nil {
		return int(n), true
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
