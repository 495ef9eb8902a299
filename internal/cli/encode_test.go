package cli

import (
	"testing"

	"github.com/matryer/is"
)

func TestEncodeList(t *testing.T) {
	is := is.New(t)
	out, err := encodeList([]string{"a", "b"})
	is.NoErr(err)
	is.Equal(out, `["a", "b"]`)

	out, err = encodeList(nil)
	is.NoErr(err)
	is.Equal(out, `[]`)

	out, err = encodeList([]string{`say "hi"`, "<tag>&"})
	is.NoErr(err)
	is.Equal(out, `["say \"hi\"", "<tag>&"]`)
}
