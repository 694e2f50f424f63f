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
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/moby/moby/pkg/reexec"

	"github.com/thediveo/spawntree"
	"github.com/thediveo/spawntree/scenario"
	"github.com/thediveo/spawntree/wrapper"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// stubScenarios drops shell script stand-ins for the three scenario binaries
// into the specified directory; each stand-in prints exactly the lines its
// real counterpart would print. Being executable files addressed by path,
// they work as execve targets just like the real fixtures.
func stubScenarios(dir string) {
	stub := func(sc scenario.Scenario, lines ...string) {
		var script strings.Builder
		script.WriteString("#!/bin/sh\n")
		for _, line := range lines {
			fmt.Fprintf(&script, "printf '%s\\n'\n", strings.TrimSuffix(line, "\n"))
		}
		Expect(os.WriteFile(filepath.Join(dir, sc.Name),
			[]byte(script.String()), 0o755)).To(Succeed())
	}
	stub(scenario.AllInOne, wrapper.Message)
	stub(scenario.Dynamic, wrapper.Baseline, wrapper.Message)
	stub(scenario.Static, wrapper.Message)
}

// respawn re-executes this test binary into the specified action, pointing
// all transitively spawned chain links at the specified scenario binary
// directory and compressing their staggering to keep tests quick.
func respawn(action string, depth string, bindir string) (stdout string, stderr string, err error) {
	cmd := reexec.Command(action, depth)
	cmd.Env = append(os.Environ(),
		"spawntree_bindir="+bindir,
		"spawntree_stagger=10ms")
	var out, serr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &serr
	err = cmd.Run()
	return out.String(), serr.String(), err
}

var _ = Describe("process chain", func() {

	var bindir string

	BeforeEach(func() {
		bindir = GinkgoT().TempDir()
		stubScenarios(bindir)
	})

	It("immediately returns for a chain depth of zero", func() {
		Expect(spawntree.Run(0)).To(Succeed())
		stdout, stderr, err := respawn(runAction, "0", bindir)
		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(BeEmpty())
		Expect(stderr).To(BeEmpty())
	})

	It("spawns the default-depth chain and serializes the full transcript", func() {
		stdout, stderr, err := respawn(runAction, "3", bindir)
		Expect(err).NotTo(HaveOccurred())
		Expect(stderr).To(BeEmpty())
		Expect(stdout).To(Equal(`Child 1 calling all-in-one...
Hello from printf_wrapper!
Goodbye from parent 1!
Child 2 calling dynamic...
Hello from printf!
Hello from printf_wrapper!
Goodbye from parent 2!
Child 3 calling static...
Hello from printf_wrapper!
Goodbye from parent 3!
`))
	})

	It("produces the same chain shape on repeated runs", func() {
		first, _, err := respawn(runAction, "2", bindir)
		Expect(err).NotTo(HaveOccurred())
		second, _, err := respawn(runAction, "2", bindir)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("fails a chain link fast on an unmapped depth", func() {
		stdout, stderr, err := respawn("spawntree-link", "4", bindir)
		ee, ok := err.(*exec.ExitError)
		Expect(ok).To(BeTrue())
		Expect(ee.ExitCode()).To(Equal(1))
		Expect(stdout).To(BeEmpty())
		Expect(stderr).To(ContainSubstring("no scenario bound to chain depth 4"))
	})

	It("keeps a failing image replacement local to its chain link", func() {
		empty := GinkgoT().TempDir() // no scenario binaries whatsoever.
		stdout, stderr, err := respawn(runAction, "1", empty)
		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(Equal("Child 1 calling all-in-one...\nGoodbye from parent 1!\n"))
		Expect(stderr).To(ContainSubstring("cannot replace process image"))
		Expect(stderr).To(ContainSubstring("no such file or directory"))
	})

})
