// Package showcase drives a windowed card carousel and the section around it
// on a small retained-mode scene graph for [Ebitengine].
//
// # Quick start
//
// Build the page as a tree of named nodes, bind a carousel to it and hand
// the scene to [Run]:
//
//	scene := showcase.NewScene()
//	track := showcase.NewContainer("projectsTrack")
//	scene.Root().AddChild(track)
//	for i := 0; i < 10; i++ {
//		track.AddChild(showcase.NewRect("project-card", 0, 360, cardColor))
//	}
//	scene.Root().AddChild(showcase.NewRect("prevProject", 48, 48, buttonColor))
//	scene.Root().AddChild(showcase.NewRect("nextProject", 48, 48, buttonColor))
//
//	scene.SetViewportSize(1200, 800)
//	c := showcase.BindCarousel(scene, showcase.DefaultConfig())
//	defer c.Close()
//
//	showcase.Run(scene, showcase.RunConfig{Title: "Projects", Width: 1200, Height: 800})
//
// # Carousel
//
// A [Carousel] shows a window over a fixed list of cards. The window width
// (cards visible, card width and gap) comes from a [BreakpointTable] keyed
// by viewport width. Navigation is by [Carousel.Next], [Carousel.Previous],
// [Carousel.GotoSlide], clicks on the two buttons, horizontal swipes on the
// track, the arrow keys and optional auto-advance. A move locks navigation
// for a settle delay; commands arriving during it are dropped. Viewport
// resizes are debounced and reconciled without resetting the index.
//
// Components that react to carousel moves register with [Carousel.OnRender].
//
// # Time
//
// Nothing reads the wall clock. Every timer lives on the scene's
// [Scheduler], which advances once per [Scene.Step], so tests step time
// exactly:
//
//	scene.Step(400 * time.Millisecond)
//
// # Effects
//
// Property tweens ([TweenTo], [TweenSpec]) run on [gween]. A [Timeline]
// sequences them with relative offsets and [Stagger]. A [ScrollTrigger]
// fires once when a node scrolls far enough into the viewport. The
// [SectionAnimator] uses all three for the section entrance, card hover,
// navigation button tilt and the settle effect after carousel moves. It
// skips them when a [DeviceProfile] asks for reduced motion.
//
// # Logging
//
// Components log through [logr]. The scene logger defaults to
// logr.Discard(); set one with [Scene.SetLogger] or [WithLogger].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [logr]: https://github.com/go-logr/logr
package showcase
