// Staticlint - multichecker проекта: стандартные анализаторы x/tools,
// staticcheck, go-critic, errcheck и собственные osexit и errleak.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/appends"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sortslice"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
)

// Проверки stylecheck, которые не подходят проекту:
// ST1000 требует комментарий у каждого пакета, ST1003 спорит с именами вроде APIKey в JSON DTO.
var disabledStyleChecks = map[string]bool{
	"ST1000": true,
	"ST1003": true,
}

func main() {
	var checks []*analysis.Analyzer
	checks = append(checks, projectAnalyzers()...)
	checks = append(checks, passesAnalyzers()...)
	checks = append(checks, staticcheckAnalyzers()...)

	// Публичные анализаторы
	checks = append(checks,
		analyzer.Analyzer, // go-critic
		errcheck.Analyzer,
	)

	multichecker.Main(checks...)
}

// projectAnalyzers возвращает собственные анализаторы ретранслятора
func projectAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		OsExitAnalyzer,
		ErrLeakAnalyzer,
	}
}

// passesAnalyzers возвращает анализаторы golang.org/x/tools/go/analysis/passes.
// В проекте нет ассемблера, cgo и unsafe, поэтому asmdecl, cgocall и unsafeptr не подключены.
func passesAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		appends.Analyzer,
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		deepequalerrors.Analyzer,
		defers.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		ifaceassert.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		sortslice.Analyzer,
		stdmethods.Analyzer,
		stringintconv.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		timeformat.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
	}
}

// staticcheckAnalyzers возвращает все SA и S проверки и ST без отключённых
func staticcheckAnalyzers() []*analysis.Analyzer {
	var out []*analysis.Analyzer
	for _, group := range [][]*lint.Analyzer{staticcheck.Analyzers, simple.Analyzers} {
		for _, v := range group {
			out = append(out, v.Analyzer)
		}
	}
	for _, v := range stylecheck.Analyzers {
		if disabledStyleChecks[strings.ToUpper(v.Analyzer.Name)] {
			continue
		}
		out = append(out, v.Analyzer)
	}
	return out
}
