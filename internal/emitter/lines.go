package emitter

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Lines yields the raw lines of r in order, each with its trailing newline
// when the input has one. The sequence is single pass: it consumes r.
// A read failure is yielded once with an empty line and ends the sequence;
// text read before the failure without its newline is dropped.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" && (err == nil || errors.Is(err, io.EOF)) {
				if !yield(line, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
		}
	}
}
