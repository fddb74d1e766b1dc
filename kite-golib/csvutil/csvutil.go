package csvutil

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/kiteco/logitdemo/kite-golib/errors"
	"github.com/spf13/afero"
)

// Stdio is the path that stands for stdin when reading and stdout when writing
const Stdio = "-"

// Write marshals rows, a slice of structs with csv tags, to w
func Write(w io.Writer, rows interface{}) error {
	return errors.WrapfOrNil(gocsv.Marshal(rows, w), "error writing csv")
}

// WriteFile marshals rows to path on fs, or to stdout if path is Stdio
func WriteFile(fs afero.Fs, path string, rows interface{}) (err error) {
	if path == Stdio {
		return Write(os.Stdout, rows)
	}
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	defer errors.Defer(&err, f.Close)
	return errors.WrapfOrNil(Write(f, rows), "%s", path)
}

// Read unmarshals csv from r into out, a pointer to a slice of structs
func Read(r io.Reader, out interface{}) error {
	return errors.WrapfOrNil(gocsv.Unmarshal(r, out), "error reading csv")
}

// ReadFile unmarshals the csv file at path on fs into out, or stdin if path is Stdio
func ReadFile(fs afero.Fs, path string, out interface{}) (err error) {
	if path == Stdio {
		return Read(os.Stdin, out)
	}
	f, err := fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, "error opening %s", path)
	}
	defer errors.Defer(&err, f.Close)
	return errors.WrapfOrNil(Read(f, out), "%s", path)
}
