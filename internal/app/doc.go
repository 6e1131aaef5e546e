// Package app assembles the viewer: shared view state, the UI bindings
// (pause, theme, speed sliders), pointer hit-testing, the viewport manager
// and the per-frame render loop.
//
// Hosts supply the widgets through [Elements] and drive the loop by calling
// [Ticker.Tick] once per display frame. Every callback and tick must run on
// the same goroutine; nothing in this package locks.
//
// # Example
//
//	a, err := app.New(config.DefaultConfig(), app.Elements{...}, log)
//	if err != nil {
//		return err
//	}
//	a.Viewport.Resize(1280, 720)
//	for running {
//		a.Loop.Tick()
//	}
package app
