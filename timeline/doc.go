// Package timeline compiles and evaluates a scroll-synchronized stacking-card animation.
//
// A Stack turns one scalar scroll progress into per-item transforms (vertical offset,
// scale, opacity, paint order) and section-wide colors (background, title color and
// opacity). Items enter one after another in staggered activation slots; the background
// and title crossfade exactly while the corresponding item slides in.
//
// Two coordinate spaces are involved, see Space:
//
//	scroll space  raw progress from the scroll source, drives global colors
//	card space    [StartOffset,1] of scroll space rescaled to [0,1], drives item transforms
//
// Construction validates the configuration and compiles all breakpoint tables once;
// evaluation afterwards is allocation-free (except Items growing dst) and never fails.
// Out-of-range or NaN progress clamps.
//
// Basic usage:
//
//	p := timeline.DefaultParams(3)
//	stack, err := timeline.New(p)
//	if err != nil {
//		return err
//	}
//	g := stack.Global(progress)
//	states = stack.Items(progress, states)
package timeline
