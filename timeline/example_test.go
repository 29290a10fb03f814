package timeline_test

import (
	"fmt"

	"github.com/lixenwraith/scrollstack/timeline"
)

func ExampleStack() {
	stack, err := timeline.New(timeline.DefaultParams(3))
	if err != nil {
		panic(err)
	}

	for _, p := range []float64{0, 0.5, 1} {
		g := stack.Global(p)
		top := stack.Item(p, 2)
		fmt.Printf("p=%.1f bg=%s title=%.2f top.opacity=%.2f\n", p, g.Background, g.TitleOpacity, top.Opacity)
	}
	// Output:
	// p=0.0 bg=rgb(250, 243, 225) title=1.00 top.opacity=0.00
	// p=0.5 bg=rgb(205, 199, 185) title=0.20 top.opacity=0.00
	// p=1.0 bg=rgb(48, 39, 34) title=0.20 top.opacity=1.00
}
