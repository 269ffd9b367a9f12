// Package pkg provides the core libraries for wordsearch.
//
// # Overview
//
// wordsearch finds dictionary words hidden in a grid of letters the way a
// person solves a word search puzzle: from every cell it walks in straight
// lines, up to eight directions, and records each prefix that is a word.
// The pkg directory is organized into three areas:
//
//  1. Inputs - [grid], [dictionary] and [direction]
//  2. Core - [search] (the grid walk) and [report] (aggregation and output)
//  3. Infrastructure - [pipeline], [config], [cache], [errors],
//     [observability] and [buildinfo]
//
// # Architecture
//
// The data flow of one run:
//
//	puzzle file            word list
//	     ↓                     ↓
//	[grid] package      [dictionary] package (filtered, optionally cached)
//	     ↓                     ↓
//	     └──→ [search] package ←── [direction] set
//	               ↓
//	         [search.Index] (word → occurrences)
//	               ↓
//	     [report] package (header + body, text or JSON)
//
// # Quick Start
//
// Search a puzzle held in memory:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/wordsearch/pkg/dictionary"
//	    "github.com/matzehuels/wordsearch/pkg/direction"
//	    "github.com/matzehuels/wordsearch/pkg/grid"
//	    "github.com/matzehuels/wordsearch/pkg/report"
//	    "github.com/matzehuels/wordsearch/pkg/search"
//	)
//
//	// 1. Build the inputs
//	g := grid.New("GNUX", "NXXX", "UXEMU")
//	dict := dictionary.New(3, "GNU", "EMU")
//	dirs := direction.AllSet()
//
//	// 2. Walk the grid
//	idx := search.Scan(g, dict, dirs)
//
//	// 3. Aggregate
//	r := report.Build(idx, 1, 3, dirs)
//	fmt.Println(r)
//
// # Main Packages
//
// ## Inputs
//
// [grid] - A ragged grid of runes. Every whitespace-separated token of the
// puzzle file is one row, and rows may differ in width.
//
// [dictionary] - An immutable word set filtered by minimum length, read
// from a newline-separated word list such as /usr/share/dict/words.
//
// [direction] - The eight search directions, their short labels (ul, u, ur,
// l, r, dl, d, dr) and a compact set type.
//
// ## Core
//
// [search] - The grid walk. [search.Scan] runs sequentially;
// [search.ScanWithOptions] splits rows across goroutines and merges the
// partial indexes in row order.
//
// [report] - Filters the index by minimum count and renders the one-line
// text report or JSON.
//
// ## Infrastructure
//
// [pipeline] - Complete run (load → scan → report) used by the CLI.
//
// [config] - Search settings, defaults, flag parsing and the TOML config file.
//
// [cache] - File, Redis and null backends for the filtered dictionary.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for load, scan and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./...                 # All tests
//	go test ./pkg/search/...      # Specific package
//	go test -run Example ./pkg/...  # Examples only
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/grid
// [dictionary]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/dictionary
// [direction]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/direction
// [search]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/search
// [search.Index]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/search#Index
// [search.Scan]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/search#Scan
// [search.ScanWithOptions]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/search#ScanWithOptions
// [report]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/buildinfo
package pkg
