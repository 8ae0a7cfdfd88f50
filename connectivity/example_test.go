package connectivity_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unionfind/connectivity"
)

// ExampleSolve prints the pairs that create new connections, the classic client output.
func ExampleSolve() {
	prob, err := connectivity.Parse(strings.NewReader("5\n0 1\n1 2\n0 2\n3 4\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res := connectivity.Solve(prob)
	for _, p := range res.Connections {
		fmt.Println(p.P, p.Q)
	}
	fmt.Println(res.Count, "components")
	// Output:
	// 0 1
	// 1 2
	// 3 4
	// 2 components
}
