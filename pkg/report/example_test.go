package report_test

import (
	"fmt"

	"github.com/matzehuels/wordsearch/pkg/dictionary"
	"github.com/matzehuels/wordsearch/pkg/direction"
	"github.com/matzehuels/wordsearch/pkg/grid"
	"github.com/matzehuels/wordsearch/pkg/report"
	"github.com/matzehuels/wordsearch/pkg/search"
)

func ExampleBuild() {
	g := grid.New(
		"GNUX",
		"NXXX",
		"UXEMU",
	)
	dirs := direction.NewSet(direction.Right, direction.Down)
	idx := search.Scan(g, dictionary.New(3, "GNU", "EMU"), dirs)

	r := report.Build(idx, 1, 3, dirs)
	fmt.Println(r.Header())
	fmt.Println(r.Body())
	// Output:
	// 2 3+ words (searching d, r),
	// EMU, GNU (2)
}
