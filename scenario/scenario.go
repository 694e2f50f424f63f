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

// Package scenario binds process chain depths to the binary-linkage scenario
// fixtures, using a single explicit and total lookup table: every chain depth
// either maps onto exactly one scenario or is an error, with no implicit
// fallthrough into neighboring depths.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBinDir is the well-known installation directory of the scenario
// binaries; an external analysis tool relies on these exact paths.
const DefaultBinDir = "/usr/local/bin"

// binDirEnvVar optionally relocates the scenario binaries, so tests can
// point chain links at stand-ins. As an environment variable it
// automatically propagates to all transitively re-executed chain links.
const binDirEnvVar = "spawntree_bindir"

// ErrUnmappedDepth signals a chain depth outside the scenario binding table.
var ErrUnmappedDepth = errors.New("no scenario bound to chain depth")

// Scenario identifies one linkage scenario fixture by the name of its
// installed binary.
type Scenario struct {
	Name string
}

// Path returns the absolute path of this scenario's installed binary.
func (s Scenario) Path() string {
	return filepath.Join(binDir(), s.Name)
}

// The fixed set of linkage scenario fixtures.
var (
	// AllInOne invokes the wrapper routine through ordinary load-time
	// dynamic linking, resolved by the program loader before main.
	AllInOne = Scenario{Name: "all-in-one"}
	// Dynamic opens the wrapper shared object at runtime and resolves the
	// routine by symbol name, well after process start.
	Dynamic = Scenario{Name: "dynamic"}
	// Static carries the wrapper routine's object code inside its own
	// executable, with no wrapper shared object needed at runtime.
	Static = Scenario{Name: "static"}
	// StaticPIE is the fully self-contained, position-independent build
	// variant of Static, without any runtime loader dependency whatsoever.
	// It gets installed alongside the other fixtures but never enters the
	// chain's depth binding.
	StaticPIE = Scenario{Name: "static-pie"}
)

// bindings is the explicit depth-to-scenario table, indexed by depth-1.
var bindings = []Scenario{AllInOne, Dynamic, Static}

// ForDepth returns the scenario bound to the specified chain depth, or an
// ErrUnmappedDepth-wrapping error for any depth outside the binding table.
func ForDepth(depth uint) (Scenario, error) {
	if depth < 1 || depth > uint(len(bindings)) {
		return Scenario{}, fmt.Errorf("%w %d", ErrUnmappedDepth, depth)
	}
	return bindings[depth-1], nil
}

func binDir() string {
	if dir := os.Getenv(binDirEnvVar); dir != "" {
		return dir
	}
	return DefaultBinDir
}
