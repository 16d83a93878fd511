package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "forbiddencalls"
	analyzerDoc  = "reports panic, log.Fatal, zerolog Fatal/Panic and os.Exit outside the main function"

	zerologPkg = "github.com/rs/zerolog/log"
)

// Analyzer reports calls that terminate the process outside main.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

type forbiddenCall struct {
	pkgPath string
	fn      string
	message string
}

var forbiddenCalls = []forbiddenCall{
	{pkgPath: "log", fn: "Fatal", message: "log.Fatal is forbidden outside main function"},
	{pkgPath: "os", fn: "Exit", message: "os.Exit is forbidden outside main function"},
	{pkgPath: zerologPkg, fn: "Fatal", message: "zerolog log.Fatal is forbidden outside main function"},
	{pkgPath: zerologPkg, fn: "Panic", message: "zerolog log.Panic is forbidden outside main function"},
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.CallExpr)(nil),
	}

	var inMain *ast.FuncDecl
	insp.Nodes(nodeFilter, func(node ast.Node, push bool) bool {
		switch n := node.(type) {
		case *ast.FuncDecl:
			if push {
				if n.Recv == nil && n.Name.Name == "main" {
					inMain = n
				}
			} else if inMain == n {
				inMain = nil
			}
		case *ast.CallExpr:
			if push {
				checkCall(pass, n, inMain != nil)
			}
		}
		return true
	})

	return nil, nil
}

func checkCall(pass *analysis.Pass, callExpr *ast.CallExpr, inMain bool) {
	switch fn := callExpr.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "panic" && isBuiltin(pass, fn) {
			pass.Reportf(callExpr.Pos(), "panic is forbidden")
		}
	case *ast.SelectorExpr:
		if !inMain {
			checkSelectorExpr(pass, fn, callExpr)
		}
	}
}

func isBuiltin(pass *analysis.Pass, ident *ast.Ident) bool {
	if pass.TypesInfo == nil {
		return true
	}
	_, ok := pass.TypesInfo.Uses[ident].(*types.Builtin)
	return ok
}

func checkSelectorExpr(pass *analysis.Pass, selectorExpr *ast.SelectorExpr, callExpr *ast.CallExpr) {
	ident, ok := selectorExpr.X.(*ast.Ident)
	if !ok || pass.TypesInfo == nil {
		return
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return
	}

	pkgPath := pkgName.Imported().Path()
	for _, fc := range forbiddenCalls {
		if fc.pkgPath == pkgPath && fc.fn == selectorExpr.Sel.Name {
			pass.Reportf(callExpr.Pos(), "%s", fc.message)
			return
		}
	}
}
