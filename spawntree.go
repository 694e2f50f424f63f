// Process chain generation; because the Golang runtime sucks at fork()
// without exec(), every chain link is a re-execution of the current binary.

// Copyright 2023 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux

package spawntree

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/moby/moby/pkg/reexec"
	"golang.org/x/sys/unix"

	"github.com/thediveo/spawntree/scenario"
)

// linkAction names the re-execution action which turns a freshly re-executed
// copy of the current binary into one link of the process chain. The link's
// chain depth travels as the action's single argument.
const linkAction = "spawntree-link"

// staggerEnvVar optionally overrides the stagger unit (defaulting to one
// second) with any time.Duration string. As an environment variable it
// automatically propagates to all transitively re-executed chain links, so
// tests can compress a whole chain's wall-clock staggering.
const staggerEnvVar = "spawntree_stagger"

func init() {
	reexec.Register(linkAction, link)
}

// Run spawns a chain of depth nested child processes, each one finally
// replacing its process image with the linkage scenario binary bound to its
// chain depth. Run waits for its one direct child to terminate and then bids
// farewell on stdout; it has no visibility into (or business with) any
// deeper descendants. A depth of zero immediately returns without spawning
// anything at all.
//
// The child's collected exit status is deliberately not inspected: a failing
// scenario is the external observer's business, not ours (and the original
// process tree would be torn down by error propagation otherwise).
func Run(depth uint) error {
	if depth == 0 {
		return nil
	}
	child := reexec.Command(linkAction, strconv.FormatUint(uint64(depth), 10))
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Start(); err != nil {
		return fmt.Errorf("cannot spawn chain link %d: %w", depth, err)
	}
	_ = child.Wait()
	fmt.Printf("Goodbye from parent %d!\n", depth)
	return nil
}

// link is the child-side continuation of Run, running in a re-executed copy
// of the current binary: it first spawns the remaining chain, so the whole
// process tree exists before any link executes its scenario, then sleeps for
// a depth-proportional stagger, announces itself, and finally replaces its
// process image with the scenario binary bound to its chain depth. It never
// returns: on success the process image is gone, on failure the process
// terminates with exit code 1 after reporting on stderr.
func link() {
	if len(os.Args) < 2 {
		fatal(fmt.Errorf("%s: missing chain depth argument", linkAction))
	}
	depth64, err := strconv.ParseUint(os.Args[1], 10, 32)
	if err != nil {
		fatal(fmt.Errorf("%s: invalid chain depth %q: %w", linkAction, os.Args[1], err))
	}
	depth := uint(depth64)
	// Resolve the scenario binding before spawning anything, so an unmapped
	// chain depth fails fast instead of leaving a half-built tree behind.
	sc, err := scenario.ForDepth(depth)
	if err != nil {
		fatal(err)
	}
	if err := Run(depth - 1); err != nil {
		fatal(err)
	}
	time.Sleep(time.Duration(depth) * stagger())
	fmt.Printf("Child %d calling %s...\n", depth, sc.Name)
	err = unix.Exec(sc.Path(), []string{sc.Name}, os.Environ())
	fatal(fmt.Errorf("cannot replace process image with %s: %w", sc.Path(), err))
}

// For the sake of code coverage ;)
var osExit = os.Exit

// fatal reports err on stderr and terminates the current process with the
// fixture suite's one and only failure exit code.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	osExit(1)
}

// stagger returns the stagger unit each chain link multiplies with its own
// depth before sleeping; links deeper down the chain thus (loosely) go first.
func stagger() time.Duration {
	if s := os.Getenv(staggerEnvVar); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return time.Second
}
