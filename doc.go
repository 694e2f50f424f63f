// Package spawntree generates deterministic, reproducible process trees in
// which each spawned process finally replaces its image with one of a fixed
// set of binary-linkage scenario fixtures. The trees are meant to be consumed
// by an external tracing or analysis tool which needs known process lineage,
// library loads, and execution transitions to validate itself against; this
// package never verifies anything on its own.
//
// # Chain Generation
//
// A process chain of depth N is built recursively: every chain link first
// spawns the remaining chain, so the whole tree exists before any link starts
// executing a scenario. Each link then sleeps for a depth-proportional
// stagger, announces itself on stdout, and replaces its process image with
// the scenario binary bound to its depth. Each parent waits for its one
// direct child and bids farewell on stdout; a child's exit status is
// collected but not interpreted.
//
// Because the Go runtime cannot fork() without exec'ing, every chain link is
// a re-execution of the current binary, dispatched through the well-known
// re-execution action trick (see github.com/moby/moby/pkg/reexec). Programs
// driving chain generation therefore need to give re-execution dispatching a
// chance very early in their main(), before doing anything else:
//
//	func main() {
//	    if reexec.Init() {
//	        return
//	    }
//	    // ...
//	    err := spawntree.Run(3)
//	    // ...
//	}
//
// # Observable Output
//
// Running a chain of depth 3 with the scenario fixtures installed at their
// well-known paths produces this transcript on stdout:
//
//	Child 1 calling all-in-one...
//	Hello from printf_wrapper!
//	Goodbye from parent 1!
//	Child 2 calling dynamic...
//	Hello from printf!
//	Hello from printf_wrapper!
//	Goodbye from parent 2!
//	Child 3 calling static...
//	Hello from printf_wrapper!
//	Goodbye from parent 3!
//
// The waits serialize this transcript; the per-depth sleeps merely stagger
// execution on the wall clock for the benefit of an observing tracer.
package spawntree
