// Package sandpack implements a scroll-driven hero choreography for
// [Ebitengine]: a logo/text composition that morphs into a two-pane code
// editor and preview as the user scrolls.
//
// The package has three layers. At the bottom sit pure functions:
// [Interpolate] maps a scroll offset through a piecewise-linear curve, and
// [Complete] reports whether the scroll has passed the completion threshold.
// Above them, [Choreography] derives the fixed set of breakpoint curves from
// a measured [Geometry] and computes a full [Frame] of output parameters for
// any scroll offset. At the top, [Hero] owns a small retained node tree and
// applies each Frame to its elements every update.
//
// # Quick start
//
// The simplest way to see the choreography is [Run], which creates a window
// and game loop for you:
//
//	scene := sandpack.NewScene()
//	hero := sandpack.NewHero(scene, sandpack.HeroConfig{
//		ViewportWidth:  1280,
//		ViewportHeight: 720,
//		Editor:         sandpack.DefaultEditorConfig(),
//	})
//	scene.SetUpdateFunc(hero.Step)
//	sandpack.Run(scene, sandpack.RunConfig{
//		Title: "Hero", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Choreography model
//
// Scroll position drives everything; there is no timeline. Viewport resizes
// feed the [GeometryTracker] (debounced through [Debouncer]), which
// republishes a [Geometry] triple. The Choreography turns that triple into
// breakpoint curves, and every scroll read is interpolated against them.
// The [CompletionDetector] flips a single boolean once scroll passes 90% of
// the hero width, gating editor interactivity and preview stacking order.
//
// Smooth programmatic scrolling ([ScrollView.ScrollTo]) is tweened via
// [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sandpack
