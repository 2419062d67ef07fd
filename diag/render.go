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

package diag

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiError = "\x1b[38;2;232;65;24m"
	ansiTitle = "\x1b[38;2;112;161;255m"
	ansiNote  = "\x1b[38;2;15;188;249m"
)

// RenderConfig controls the text rendering of diagnostics.
type RenderConfig struct {
	// Maximum number of errors to print. Zero means no limit.
	MaxErrors int
	// Emit ANSI colour sequences.
	Color bool
}

// ColorEnabled reports whether f is a terminal which should receive coloured output.
// Colour is disabled when NO_COLOR is set.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Renderer prints diagnostics against the source text they refer to.
type Renderer struct {
	Config RenderConfig
}

// Render writes errs to w. Each error is printed with its location and, when the
// span falls within source, the offending line with the span underlined.
func (r *Renderer) Render(w io.Writer, errs []Error, source, filename string) error {
	bw := bufio.NewWriter(w)
	lines := newLineIndex(source)
	shown := errs
	if r.Config.MaxErrors > 0 && len(shown) > r.Config.MaxErrors {
		shown = shown[:r.Config.MaxErrors]
	}
	for _, err := range shown {
		r.renderOne(bw, lines, err, source, filename)
	}
	if hidden := len(errs) - len(shown); hidden > 0 {
		r.paint(bw, ansiNote, "note")
		bw.WriteString(": ")
		bw.WriteString(strconv.Itoa(hidden))
		bw.WriteString(" more errors not shown\n")
	}
	return bw.Flush()
}

func (r *Renderer) renderOne(w *bufio.Writer, lines lineIndex, err Error, source, filename string) {
	r.paint(w, ansiError+ansiBold, "error")
	w.WriteString("[")
	w.WriteString(err.Kind.String())
	w.WriteString("]")
	if err.Message != "" {
		w.WriteString(": ")
		w.WriteString(err.Message)
	}
	w.WriteByte('\n')

	line, col := lines.position(err.Span.Start)
	r.paint(w, ansiTitle, "  --> ")
	if filename != "" {
		w.WriteString(filename)
		w.WriteByte(':')
	}
	w.WriteString(strconv.Itoa(line))
	w.WriteByte(':')
	w.WriteString(strconv.Itoa(col))
	w.WriteByte('\n')

	if int(err.Span.Start) > len(source) || line > len(lines) {
		return
	}
	text := lines.text(source, line)
	gutter := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(gutter))
	r.paint(w, ansiTitle, pad+" |\n")
	r.paint(w, ansiTitle, gutter+" | ")
	w.WriteString(text)
	w.WriteByte('\n')
	r.paint(w, ansiTitle, pad+" | ")
	w.WriteString(strings.Repeat(" ", col-1))
	width := int(err.Span.Len)
	if rest := len(text) - (col - 1); width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	r.paint(w, ansiError, strings.Repeat("^", width))
	w.WriteByte('\n')
}

func (r *Renderer) paint(w *bufio.Writer, color, s string) {
	if !r.Config.Color {
		w.WriteString(s)
		return
	}
	w.WriteString(color)
	w.WriteString(s)
	w.WriteString(ansiReset)
}

// lineIndex holds the starting offset of each line.
type lineIndex []uint32

func newLineIndex(source string) lineIndex {
	idx := lineIndex{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			idx = append(idx, uint32(i+1))
		}
	}
	return idx
}

// position returns the 1-based line and column of offset.
func (idx lineIndex) position(offset uint32) (line, col int) {
	lo, hi := 0, len(idx)
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if idx[mid] <= offset {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + 1, int(offset-idx[lo]) + 1
}

func (idx lineIndex) text(source string, line int) string {
	start := int(idx[line-1])
	end := len(source)
	if line < len(idx) {
		end = int(idx[line]) - 1
	}
	if start > end {
		return ""
	}
	return strings.TrimRight(source[start:end], "\r")
}
