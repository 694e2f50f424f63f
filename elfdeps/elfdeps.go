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

// Package elfdeps reads the shared-object dependency lists of ELF binaries,
// so tests can prove that the statically linked scenario fixtures really
// carry the wrapper routine inside themselves instead of pulling in the
// wrapper shared object at runtime.
package elfdeps

import "debug/elf"

// Needed returns the DT_NEEDED shared object names recorded in the specified
// ELF binary. Fully statically linked binaries have no dynamic section and
// thus yield an empty list.
func Needed(path string) ([]string, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ImportedLibraries()
}

// DependsOn reports whether the specified ELF binary records a runtime
// dependency on the shared object with the given soname.
func DependsOn(path string, soname string) (bool, error) {
	needed, err := Needed(path)
	if err != nil {
		return false, err
	}
	for _, lib := range needed {
		if lib == soname {
			return true, nil
		}
	}
	return false, nil
}
