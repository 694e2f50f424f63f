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

// Package wrapper is the single source of truth for the contract between the
// linkage scenario fixtures and the shared wrapper routine: where the shared
// object lives, what its entry point is called, and which exact lines of
// text the routine and its locally-linked baseline counterpart print. All
// three linkage mechanisms must yield byte-identical routine output, so
// every fixture and every test draws on these constants instead of repeating
// the strings.
//
// The routine itself lives in lib/printf_wrapper.c and gets built into three
// physical forms (shared object, static archive, plain object file), all
// implementing the same symbol with the same observable behavior.
package wrapper

const (
	// Library is the well-known absolute path of the wrapper shared object,
	// used verbatim by the runtime-loading scenario and also discoverable
	// through the loader's library search path for load-time linking.
	Library = "/usr/local/lib/libprintf_wrapper.so"

	// Symbol is the name of the routine exported by all physical forms of
	// the wrapper library.
	Symbol = "printf_wrapper"

	// Message is the fixed line of text the wrapper routine prints,
	// identical across all linkage mechanisms.
	Message = "Hello from printf_wrapper!\n"

	// Baseline is the fixed line of text printed through a locally-linked
	// code path just before the runtime-loading scenario invokes the
	// resolved wrapper routine.
	Baseline = "Hello from printf!\n"
)
