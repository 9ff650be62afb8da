package meme

import "github.com/yuin/gopher-lua/ast"

// walkChunk visits every expression in a parsed chunk, depth first.
// visit returns true to stop the walk; walkChunk reports whether it stopped.
func walkChunk(chunk []ast.Stmt, visit func(ast.Expr) bool) bool {
	for _, stmt := range chunk {
		if walkStmt(stmt, visit) {
			return true
		}
	}
	return false
}

func walkStmt(stmt ast.Stmt, visit func(ast.Expr) bool) bool {
	switch st := stmt.(type) {
	case *ast.AssignStmt:
		return walkExprs(st.Lhs, visit) || walkExprs(st.Rhs, visit)
	case *ast.LocalAssignStmt:
		return walkExprs(st.Exprs, visit)
	case *ast.FuncCallStmt:
		return walkExpr(st.Expr, visit)
	case *ast.DoBlockStmt:
		return walkChunk(st.Stmts, visit)
	case *ast.WhileStmt:
		return walkExpr(st.Condition, visit) || walkChunk(st.Stmts, visit)
	case *ast.RepeatStmt:
		return walkChunk(st.Stmts, visit) || walkExpr(st.Condition, visit)
	case *ast.IfStmt:
		return walkExpr(st.Condition, visit) ||
			walkChunk(st.Then, visit) ||
			walkChunk(st.Else, visit)
	case *ast.NumberForStmt:
		return walkExpr(st.Init, visit) ||
			walkExpr(st.Limit, visit) ||
			walkExpr(st.Step, visit) ||
			walkChunk(st.Stmts, visit)
	case *ast.GenericForStmt:
		return walkExprs(st.Exprs, visit) || walkChunk(st.Stmts, visit)
	case *ast.FuncDefStmt:
		return walkExpr(st.Func, visit)
	case *ast.ReturnStmt:
		return walkExprs(st.Exprs, visit)
	}
	return false
}

func walkExprs(exprs []ast.Expr, visit func(ast.Expr) bool) bool {
	for _, expr := range exprs {
		if walkExpr(expr, visit) {
			return true
		}
	}
	return false
}

func walkExpr(expr ast.Expr, visit func(ast.Expr) bool) bool {
	if expr == nil {
		return false
	}
	if visit(expr) {
		return true
	}
	switch ex := expr.(type) {
	case *ast.AttrGetExpr:
		return walkExpr(ex.Object, visit) || walkExpr(ex.Key, visit)
	case *ast.TableExpr:
		for _, field := range ex.Fields {
			if walkExpr(field.Key, visit) || walkExpr(field.Value, visit) {
				return true
			}
		}
	case *ast.FuncCallExpr:
		return walkExpr(ex.Func, visit) ||
			walkExpr(ex.Receiver, visit) ||
			walkExprs(ex.Args, visit)
	case *ast.LogicalOpExpr:
		return walkExpr(ex.Lhs, visit) || walkExpr(ex.Rhs, visit)
	case *ast.RelationalOpExpr:
		return walkExpr(ex.Lhs, visit) || walkExpr(ex.Rhs, visit)
	case *ast.StringConcatOpExpr:
		return walkExpr(ex.Lhs, visit) || walkExpr(ex.Rhs, visit)
	case *ast.ArithmeticOpExpr:
		return walkExpr(ex.Lhs, visit) || walkExpr(ex.Rhs, visit)
	case *ast.UnaryMinusOpExpr:
		return walkExpr(ex.Expr, visit)
	case *ast.UnaryNotOpExpr:
		return walkExpr(ex.Expr, visit)
	case *ast.UnaryLenOpExpr:
		return walkExpr(ex.Expr, visit)
	case *ast.FunctionExpr:
		return walkChunk(ex.Stmts, visit)
	}
	return false
}
