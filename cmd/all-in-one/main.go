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

// all-in-one is the load-time dynamic linkage scenario: the wrapper routine
// is an ordinary link-time dependency on the wrapper shared object, resolved
// by the program loader before main ever runs. If the loader cannot satisfy
// the dependency the process fails to start at all, which is exactly the
// failure mode this fixture exists to demonstrate.
package main

/*
#cgo LDFLAGS: -L/usr/local/lib -lprintf_wrapper
#include <stdlib.h>

extern int printf_wrapper(const char *msg);
*/
import "C"

import (
	"unsafe"

	"github.com/thediveo/spawntree/wrapper"
)

func main() {
	msg := C.CString(wrapper.Message)
	defer C.free(unsafe.Pointer(msg))
	C.printf_wrapper(msg)
}
