//go:build tools

// Package tools pins the versions of build-time binaries:
// golangci-lint, swag (regenerates docs/), mockery and benchstat (compares drawer benchmarks).
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
