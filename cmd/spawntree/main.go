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

// spawntree builds a chain of nested child processes which finally replace
// their images with the installed linkage scenario fixtures, giving an
// external tracer a deterministic process tree to observe.
package main

import (
	"fmt"
	"os"

	"github.com/moby/moby/pkg/reexec"
	"github.com/spf13/pflag"

	"github.com/thediveo/spawntree"
)

func main() {
	// A re-executed chain link gets dispatched here and never returns to us.
	if reexec.Init() {
		return
	}
	depth := pflag.Uint("depth", 3, "depth of the process chain to spawn")
	pflag.Parse()
	if err := spawntree.Run(*depth); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
