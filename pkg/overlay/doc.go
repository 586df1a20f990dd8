// Package overlay manages stacked floating surfaces (modals) on a terminal UI.
//
// A single Controller, built at application start and passed down through a
// context.Context, owns the ordered stack of open surfaces. Any code holding
// the controller may Open a surface and must keep the returned SurfaceID to
// Close it later. The controller guarantees:
//
//   - the last opened surface is the topmost one and is the only one that
//     receives keys, pointer events and cancel signals;
//   - each surface's OnClose callback fires at most once, whichever path
//     removed it (Close, CloseAll, CloseTop, cancel key, backdrop click,
//     dismiss control), and a panicking callback never blocks removal;
//   - the page behind the stack is scroll-locked exactly while the stack is
//     non-empty, and its original style is restored when the stack empties.
//
// Surfaces are rendered into the process-wide MountPoint layer, which the
// front-end composites above its main view.
package overlay
