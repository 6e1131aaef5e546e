// Package camera implements the viewer's perspective camera, damped orbit
// controls and a ray caster for sphere hit-testing.
//
// The camera always looks at the point given to [Perspective.LookAt]; the
// projection is only refreshed by [Perspective.UpdateProjection], so aspect
// changes take effect exactly when the viewport manager asks for them.
package camera
