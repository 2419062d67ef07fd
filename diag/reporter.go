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

// MaxErrors is the number of errors a Collector retains. Errors past the limit are
// counted but dropped.
const MaxErrors = 128

// Reporter accepts diagnostics. Add must not block and must not abort the caller.
type Reporter interface {
	Add(err Error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Error)

func (f ReporterFunc) Add(err Error) { f(err) }

var (
	_ Reporter = (*Collector)(nil)
	_ Reporter = ReporterFunc(nil)
)

// Collector is a bounded, in-memory Reporter.
//
// A collector cannot be used concurrently.
type Collector struct {
	errors  []Error
	dropped int
}

// Create an empty collector.
func NewCollector() *Collector { return &Collector{errors: make([]Error, 0, 8)} }

// Add retains err if fewer than MaxErrors errors are held, otherwise err is counted as dropped.
func (c *Collector) Add(err Error) {
	if len(c.errors) >= MaxErrors {
		c.dropped++
		return
	}
	c.errors = append(c.errors, err)
}

// Len returns the number of retained errors.
func (c *Collector) Len() int { return len(c.errors) }

// Dropped returns the number of errors discarded after the collector filled up.
func (c *Collector) Dropped() int { return c.dropped }

// Full indicates whether further errors will be dropped.
func (c *Collector) Full() bool { return len(c.errors) >= MaxErrors }

// Errors returns a copy of the retained errors, in reporting order.
func (c *Collector) Errors() []Error {
	errs := make([]Error, len(c.errors))
	copy(errs, c.errors)
	return errs
}

// Count returns the number of retained errors of the given kind.
func (c *Collector) Count(kind ErrorKind) int {
	n := 0
	for _, err := range c.errors {
		if err.Kind == kind {
			n++
		}
	}
	return n
}

// Drain returns the retained errors and resets the collector.
func (c *Collector) Drain() []Error {
	errs := c.errors
	c.errors, c.dropped = make([]Error, 0, 8), 0
	return errs
}

// Reset discards all retained errors.
func (c *Collector) Reset() {
	for i := range c.errors {
		c.errors[i] = Error{}
	}
	c.errors, c.dropped = c.errors[:0], 0
}
