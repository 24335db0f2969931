package zonotope_test

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/zonotope"
)

// ExampleSample walks the zonotope of a 1×3 feature matrix; every tile is a
// single column.
func ExampleSample() {
	v := mat.NewDense(1, 3, []float64{1, 2, 1})
	c, err := zonotope.Sample(context.Background(), v, zonotope.WithMaxIter(5), zonotope.WithSeed(9))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sizes := make([]int, 0, c.Len())
	for _, st := range c.States {
		sizes = append(sizes, len(st))
	}
	fmt.Println("states:", c.Len())
	fmt.Println("sizes:", sizes)
	// Output:
	// states: 5
	// sizes: [1 1 1 1 1]
}

func ExampleExtractBasis() {
	fmt.Println(zonotope.ExtractBasis([]float64{0, 0.25, 1, 0.6}, zonotope.DefaultBasisTol))
	// Output: [1 3]
}
