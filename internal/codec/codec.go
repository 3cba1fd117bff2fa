// Package codec encodes documents to byte streams and back.
//
// Every format writes the document field by field through its own record
// type, so decode(encode(d)) yields the same Name and Content for any d.
package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"textmemo/internal/document"
	. "textmemo/internal/logger"
)

var ErrUnknownFormat = errors.New("unknown format")

type Codec interface {
	Format() string
	Encode(w io.Writer, doc *document.Document) error
	Decode(r io.Reader) (*document.Document, error)
}

// SerializationError reports an encode or decode failure for one format.
type SerializationError struct {
	Format string
	Op     string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

func encodeError(format string, err error) error {
	return &SerializationError{Format: format, Op: "encode", Err: err}
}

func decodeError(format string, err error) error {
	return &SerializationError{Format: format, Op: "decode", Err: err}
}

var codecs = map[string]Codec{
	"binary": Binary{},
	"yaml":   YAML{},
	"json":   JSON{},
}

var extensions = map[string]string{
	".bin":  "binary",
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
}

func Formats() []string { return []string{"binary", "yaml", "json"} }

func ByName(name string) (Codec, error) {
	c, ok := codecs[strings.ToLower(name)]
	if !ok { return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name) }
	return c, nil
}

// ForPath picks a codec from the file extension of path.
func ForPath(path string) (Codec, error) {
	name, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok { return nil, fmt.Errorf("%w: extension of %q", ErrUnknownFormat, path) }
	return codecs[name], nil
}

func SaveFile(c Codec, path string, doc *document.Document) error {
	file, err := os.Create(path)
	if err != nil { return err }

	if err := c.Encode(file, doc); err != nil {
		file.Close()
		Log.Error("save", path, err.Error())
		return err
	}
	Log.Info("saved", path, "as", c.Format())
	return file.Close()
}

func LoadFile(c Codec, path string) (*document.Document, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()

	doc, err := c.Decode(file)
	if err != nil { Log.Error("load", path, err.Error()); return nil, err }
	return doc, nil
}
