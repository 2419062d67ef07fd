// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const identity = `
name: identity
program:
  let: id
  value: {fun: [x], body: x}
  in: [{call: id, args: [1]}, {call: id, args: [true]}]
`

const mismatch = `
name: mismatch
source: "if 1 then 2 else true"
program:
  if: {str: s, span: [3, 1]}
  then: 2
  else: true
`

func TestRunOK(t *testing.T) {
	path := writeFixture(t, "identity.yaml", identity)
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr.String())
	}
	if out := stdout.String(); out != "identity: bool\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunErrors(t *testing.T) {
	path := writeFixture(t, "mismatch.yaml", mismatch)
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("unexpected exit code %d", code)
	}
	out := stdout.String()
	for _, want := range []string{"mismatch: bool", "error[type mismatch]", "mismatch.yaml:1:4", "expected bool, found str"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("colour must be disabled for non-terminal output")
	}
	if !strings.Contains(stderr.String(), "check failed") {
		t.Fatalf("expected the failure to be logged: %s", stderr.String())
	}
}

func TestRunExpectations(t *testing.T) {
	path := writeFixture(t, "expected.yaml", mismatch+"expect: {errors: [type mismatch]}\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected errors must not fail the run: %s", stderr.String())
	}

	path = writeFixture(t, "unexpected.yaml", identity+"expect: {type: s32}\n")
	if code := run([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("unmet expectations must fail the run")
	}
}

func TestRunFlags(t *testing.T) {
	path := writeFixture(t, "literal.yaml", "program: {binary: \"+\", x: 1, y: 2}\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-no-default", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr.String())
	}
	if !strings.HasSuffix(stdout.String(), ": 'a\n") {
		t.Fatalf("expected a polymorphic literal: %q", stdout.String())
	}

	stdout.Reset()
	path = writeFixture(t, "strict.yaml", "program: {annot: 1, type: Meters}\n")
	if code := run([]string{"-strict", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected an undefined type")
	}
	if !strings.Contains(stdout.String(), "undefined type `Meters`") {
		t.Fatalf("unexpected output: %s", stdout.String())
	}
}

func TestRunDumpAndVerbose(t *testing.T) {
	path := writeFixture(t, "identity.yaml", identity)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-dump", "-v", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, `"fn('a) -> 'a"`) || !strings.Contains(out, `"id(true)"`) {
		t.Fatalf("unexpected dump:\n%s", out)
	}
	if !strings.Contains(stderr.String(), "level=DEBUG") || !strings.Contains(stderr.String(), "msg=checked") {
		t.Fatalf("expected debug logs: %s", stderr.String())
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("expected usage error")
	}
	if !strings.Contains(stderr.String(), "usage: tyck") {
		t.Fatalf("expected usage: %s", stderr.String())
	}
	if code := run([]string{"-bogus"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected flag error")
	}
	if code := run([]string{filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected load error")
	}
}
