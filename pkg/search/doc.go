// Package search finds dictionary words in a word search grid.
//
// # Overview
//
// [Scan] visits every cell of a [grid.Grid] and, for each enabled
// [direction.Direction], walks outward in a straight line. Runes are appended
// to an accumulator one step at a time and every accumulated string found in
// the [dictionary.Set] is recorded as an [Occurrence]. A walk ends when it
// steps off the grid; bounds are checked against the width of the row being
// visited, so ragged grids are handled without spurious matches.
//
// Results are collected in an [Index] keyed by word. Occurrences of a word
// are kept in discovery order: row-major over start cells, then direction
// declaration order, then walk length.
//
// # Concurrency
//
// [ScanWithOptions] can split the rows across workers. Each worker fills its
// own Index and the partial results are merged in row order, so the merged
// Index is identical to a sequential scan.
//
// # Usage
//
//	g := grid.New("CAT", "TAC")
//	dict := dictionary.New(3, "CAT", "TAC")
//	idx := search.Scan(g, dict, direction.NewSet(direction.Right))
//	fmt.Println(idx.Words()) // [CAT TAC]
package search
