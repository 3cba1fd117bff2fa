package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"textmemo/internal/document"
)

const binaryVersion = 1

var binaryMagic = []byte("TMDC")

var (
	ErrInvalidFormat   = errors.New("invalid document format")
	ErrVersionMismatch = errors.New("document version mismatch")
)

// Field lengths are stored as uint32.
const maxStringLength = math.MaxUint32

// Binary is the compact form.
// Format:
//
//	[4 bytes] Magic "TMDC"
//	[4 bytes] Version (little endian)
//	[4 bytes] Name length
//	[n bytes] Name
//	[4 bytes] Content length
//	[n bytes] Content
type Binary struct{}

func (Binary) Format() string { return "binary" }

func (b Binary) Encode(w io.Writer, doc *document.Document) error {
	if doc == nil { return encodeError(b.Format(), errors.New("nil document")) }
	if uint64(len(doc.Name)) > maxStringLength || uint64(len(doc.Content)) > maxStringLength {
		return encodeError(b.Format(), fmt.Errorf("field exceeds %d bytes", maxStringLength))
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(binaryMagic); err != nil { return encodeError(b.Format(), err) }
	if err := binary.Write(bw, binary.LittleEndian, uint32(binaryVersion)); err != nil {
		return encodeError(b.Format(), err)
	}
	if err := writeString(bw, doc.Name); err != nil { return encodeError(b.Format(), err) }
	if err := writeString(bw, doc.Content); err != nil { return encodeError(b.Format(), err) }
	if err := bw.Flush(); err != nil { return encodeError(b.Format(), err) }
	return nil
}

func (b Binary) Decode(r io.Reader) (*document.Document, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(binaryMagic))
	if _, err := io.ReadFull(br, magic); err != nil { return nil, decodeError(b.Format(), err) }
	if !bytes.Equal(magic, binaryMagic) { return nil, decodeError(b.Format(), ErrInvalidFormat) }

	var version uint32
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, decodeError(b.Format(), err)
	}
	if version != binaryVersion {
		return nil, decodeError(b.Format(), fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, version, binaryVersion))
	}

	name, err := readString(br)
	if err != nil { return nil, decodeError(b.Format(), err) }
	content, err := readString(br)
	if err != nil { return nil, decodeError(b.Format(), err) }

	return document.New(name, content), nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil { return err }
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil { return "", err }

	// grow with the bytes actually read, a forged length must not allocate up front
	var buf strings.Builder
	n, err := io.CopyN(&buf, r, int64(length))
	if err == io.EOF { return "", fmt.Errorf("%w: string length %d, got %d bytes", io.ErrUnexpectedEOF, length, n) }
	if err != nil { return "", err }
	return buf.String(), nil
}
