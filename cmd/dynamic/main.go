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

// dynamic is the runtime-loading linkage scenario: it opens the wrapper
// shared object by absolute path only after process start, resolves the
// wrapper routine by symbol name, and invokes it through the resolved
// pointer. Loader problems end up on stderr with exit code 1.
package main

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>

typedef int (*printf_wrapper_fn)(const char *msg);

static int invoke_wrapper(void *sym, const char *msg) {
	return ((printf_wrapper_fn)sym)(msg);
}
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/thediveo/spawntree/wrapper"
)

func main() {
	lib := C.CString(wrapper.Library)
	defer C.free(unsafe.Pointer(lib))
	handle := C.dlopen(lib, C.RTLD_LAZY)
	if handle == nil {
		fmt.Fprintln(os.Stderr, C.GoString(C.dlerror()))
		os.Exit(1)
	}
	fmt.Print(wrapper.Baseline)
	sym := C.CString(wrapper.Symbol)
	defer C.free(unsafe.Pointer(sym))
	C.dlerror() // clear any stale loader error state before resolving.
	fn := C.dlsym(handle, sym)
	if errmsg := C.dlerror(); errmsg != nil {
		fmt.Fprintln(os.Stderr, C.GoString(errmsg))
		os.Exit(1)
	}
	msg := C.CString(wrapper.Message)
	defer C.free(unsafe.Pointer(msg))
	C.invoke_wrapper(fn, msg)
	C.dlclose(handle)
}
