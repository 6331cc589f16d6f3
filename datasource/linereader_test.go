package datasource

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestLineReader(t *testing.T) {
	type step struct {
		name  string
		write string
		// want is the line expected from the next read; empty means the
		// read must report EOF because no whole line is buffered yet.
		want string
	}
	buf := bytes.NewBuffer(nil)
	l := NewLineReader(buf)
	for i, st := range []step{
		{name: "first of two whole lines", write: "hello\nthere\n", want: "hello\n"},
		{name: "second buffered line", want: "there\n"},
		{name: "partial line is withheld", write: "unterminated"},
		{name: "partial completes", write: "line\n", want: "unterminatedline\n"},
		{name: "fragment", write: "foo"},
		{name: "another fragment", write: "bar"},
		{name: "fragments join at the newline", write: "bin\nbaz", want: "foobarbin\n"},
	} {
		buf.WriteString(st.write)
		var scratch [1024]byte
		n, err := l.Read(scratch[:])
		if st.want == "" {
			if !errors.Is(err, io.EOF) {
				t.Errorf("step %d (%s): expected EOF, got %v with %q", i, st.name, err, scratch[:n])
			} else if n != 0 {
				t.Errorf("step %d (%s): expected no data with EOF, read %q", i, st.name, scratch[:n])
			}
			continue
		}
		if err != nil {
			t.Errorf("step %d (%s): expected read to succeed, got: %v", i, st.name, err)
		} else if got := string(scratch[:n]); got != st.want {
			t.Errorf("step %d (%s): expected %q, got %q", i, st.name, st.want, got)
		}
	}
}
