package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// ErrLeakAnalyzer находит http.Error, в текст которого попадает err.Error().
// Клиент ретранслятора должен видеть только фиксированные сообщения.
var ErrLeakAnalyzer = &analysis.Analyzer{
	Name:     "errleak",
	Doc:      "reports http.Error calls whose message is built from an error value",
	Run:      runErrLeakCheck,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var errorIface = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

func runErrLeakCheck(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		if !isPkgFunc(pass.TypesInfo, call, "net/http", "Error") || len(call.Args) < 2 {
			return
		}
		if leaksError(pass.TypesInfo, call.Args[1]) {
			pass.Reportf(call.Pos(), "error details leak to HTTP client, write a fixed message and log the error")
		}
	})

	return nil, nil
}

// leaksError ищет в выражении вызов Error() у значения, реализующего error
func leaksError(info *types.Info, expr ast.Expr) bool {
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		if found {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Error" || len(call.Args) != 0 {
			return true
		}
		if t := info.TypeOf(sel.X); t != nil && types.Implements(t, errorIface) {
			found = true
		}
		return !found
	})
	return found
}
