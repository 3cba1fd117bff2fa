package document

// Document is the named text value being edited.
type Document struct {
	Name    string
	Content string
}

func New(name string, content string) *Document {
	return &Document{Name: name, Content: content}
}
