package codec

import (
	"encoding/base64"
	"errors"
	"io"
	"unicode/utf8"

	"textmemo/internal/document"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// record is the structured-text shape of a document.
type record struct {
	Name    *string `yaml:"name" json:"name"`
	Content *string `yaml:"content" json:"content"`
}

var errMissingField = errors.New("missing name or content field")

// ErrInvalidUTF8 is returned by JSON, which cannot carry arbitrary bytes.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

func toRecord(doc *document.Document) record {
	name, content := doc.Name, doc.Content
	return record{Name: &name, Content: &content}
}

func (r record) toDocument() (*document.Document, error) {
	if r.Name == nil || r.Content == nil { return nil, errMissingField }
	return document.New(*r.Name, *r.Content), nil
}

// MarshalYAML pins every value to a double-quoted scalar. Block scalars drop
// trailing newlines and reject tab-led lines on the way back.
func (r record) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "name"}, scalarNode(*r.Name),
			{Kind: yaml.ScalarNode, Value: "content"}, scalarNode(*r.Content),
		},
	}, nil
}

func scalarNode(value string) *yaml.Node {
	if !utf8.ValidString(value) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: base64.StdEncoding.EncodeToString([]byte(value))}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: value}
}

type YAML struct{}

func (YAML) Format() string { return "yaml" }

func (y YAML) Encode(w io.Writer, doc *document.Document) error {
	if doc == nil { return encodeError(y.Format(), errors.New("nil document")) }

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRecord(doc)); err != nil { return encodeError(y.Format(), err) }
	if err := encoder.Close(); err != nil { return encodeError(y.Format(), err) }
	return nil
}

func (y YAML) Decode(r io.Reader) (*document.Document, error) {
	var rec record
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&rec); err != nil { return nil, decodeError(y.Format(), err) }

	doc, err := rec.toDocument()
	if err != nil { return nil, decodeError(y.Format(), err) }
	return doc, nil
}

type JSON struct{}

func (JSON) Format() string { return "json" }

func (j JSON) Encode(w io.Writer, doc *document.Document) error {
	if doc == nil { return encodeError(j.Format(), errors.New("nil document")) }
	if !utf8.ValidString(doc.Name) || !utf8.ValidString(doc.Content) {
		return encodeError(j.Format(), ErrInvalidUTF8)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(toRecord(doc)); err != nil { return encodeError(j.Format(), err) }
	return nil
}

func (j JSON) Decode(r io.Reader) (*document.Document, error) {
	var rec record
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rec); err != nil { return nil, decodeError(j.Format(), err) }

	doc, err := rec.toDocument()
	if err != nil { return nil, decodeError(j.Format(), err) }
	return doc, nil
}
