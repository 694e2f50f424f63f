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

package spawntree_test

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/thediveo/spawntree/wrapper"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

// The dynamic-open scenario binds only at runtime, so it builds and starts
// just fine without the wrapper library being installed; this is the one
// place where the open-failure contract becomes testable.
var _ = Describe("dynamic-open scenario", func() {

	It("reports the loader error and terminates when the wrapper cannot be opened", func() {
		if _, err := os.Stat(wrapper.Library); err == nil {
			Skip("wrapper library installed; open-failure path not reachable")
		}
		bin, err := gexec.Build("github.com/thediveo/spawntree/cmd/dynamic")
		Expect(err).NotTo(HaveOccurred())
		defer gexec.CleanupBuildArtifacts()
		var out, serr bytes.Buffer
		cmd := exec.Command(bin)
		cmd.Stdout = &out
		cmd.Stderr = &serr
		err = cmd.Run()
		ee, ok := err.(*exec.ExitError)
		Expect(ok).To(BeTrue())
		Expect(ee.ExitCode()).To(Equal(1))
		Expect(out.String()).To(BeEmpty())
		Expect(serr.String()).To(ContainSubstring("libprintf_wrapper.so"))
	})

})
