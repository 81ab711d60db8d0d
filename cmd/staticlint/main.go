// Command staticlint runs the project's static analysis suite through
// golang.org/x/tools/go/analysis/multichecker.
//
// Usage:
//
//	go install ./cmd/staticlint
//	staticlint ./...
//
// Enabled analyzers:
//   - go vet passes: printf, shadow, structtag, nilness, unusedresult, httpresponse, lostcancel;
//   - every staticcheck SA check (honnef.co/go/tools/staticcheck);
//   - simple S1000 (single-case select);
//   - exitmain: forbids os.Exit directly inside main.main;
//   - ginabort: reports gin handlers that write a response after Abort* without returning.
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

func main() {
	analyzers := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		unusedresult.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		ExitMainAnalyzer,
		GinAbortAnalyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	for _, a := range simple.Analyzers {
		if a.Analyzer.Name == "S1000" {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	multichecker.Main(analyzers...)
}
