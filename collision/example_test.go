package collision_test

import (
	"fmt"

	"github.com/Gweiqi/LB-t/collision"
)

func ExampleNewBGK() {
	op, err := collision.NewBGK(0.65)
	if err != nil {
		panic(err)
	}

	fmt.Println(op.Name(), op.Tau())
	// Output: bgk 0.65
}

// Relaxation times at or below the stability limit are rejected at
// construction, long before a sweep could run with them.
func ExampleNewTRT() {
	_, err := collision.NewTRT(0.5, 0.25)
	fmt.Println(err)
	// Output: population: relaxation time must exceed 1/2: τ = 0.5
}
