package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const ginContextType = "github.com/gin-gonic/gin.Context"

// GinAbortAnalyzer reports a *gin.Context Abort* call that is followed by
// another statement in the same block. Abort only stops the middleware chain,
// so the handler keeps running unless it returns.
var GinAbortAnalyzer = &analysis.Analyzer{
	Name:     "ginabort",
	Doc:      "reports gin Abort* calls not followed by return",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runGinAbort,
}

func runGinAbort(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.BlockStmt)(nil)}, func(n ast.Node) {
		stmts := n.(*ast.BlockStmt).List
		for i, stmt := range stmts[:max(len(stmts)-1, 0)] {
			expr, ok := stmt.(*ast.ExprStmt)
			if !ok || !isGinAbort(pass, expr.X) {
				continue
			}
			if _, ok := stmts[i+1].(*ast.ReturnStmt); !ok {
				pass.Reportf(stmts[i+1].Pos(), "statement after gin Abort; missing return?")
			}
		}
	})
	return nil, nil
}

func isGinAbort(pass *analysis.Pass, e ast.Expr) bool {
	call, ok := e.(*ast.CallExpr)
	if !ok {
		return false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || len(sel.Sel.Name) < 5 || sel.Sel.Name[:5] != "Abort" {
		return false
	}
	t := pass.TypesInfo.TypeOf(sel.X)
	if t == nil {
		return false
	}
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	return named.Obj().Pkg().Path()+"."+named.Obj().Name() == ginContextType
}
