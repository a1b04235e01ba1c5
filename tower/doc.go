// Package tower implements the stacking core: a pool of blocks, the placement state machine
// driven by input begin/end and frame ticks, and the perfect move cascade
//
// The core is single-threaded. Every exported method must be called from the goroutine
// that owns the Engine; long-running behaviour is expressed as engine.Task values advanced
// by the shared engine.Scheduler on each frame tick.
package tower
