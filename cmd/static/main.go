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

// static is the static linkage scenario: the wrapper routine's object code
// comes from the static archive and ends up inside the executable itself, so
// no wrapper shared object is needed at runtime. The Makefile builds this
// program twice, once conventionally linked and once as a fully
// self-contained static position-independent executable ("static-pie")
// without any runtime loader dependency at all.
package main

/*
#cgo LDFLAGS: /usr/local/lib/libprintf_wrapper.a
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
