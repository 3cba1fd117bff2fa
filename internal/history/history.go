package history

// Snapshot is an immutable capture of document content.
type Snapshot struct {
	content string
}

func NewSnapshot(content string) Snapshot { return Snapshot{content: content} }

func (s Snapshot) Content() string { return s.content }

// History is a linear undo stack of snapshots, newest last.
type History struct {
	snapshots []Snapshot
}

func New() *History {
	return &History{snapshots: []Snapshot{}}
}

// Record pushes a snapshot of content on top of the stack.
func (h *History) Record(content string) {
	h.snapshots = append(h.snapshots, NewSnapshot(content))
}

// RestoreLast discards the top snapshot and returns the content of the new top.
// It returns false when the stack was empty or became empty by the pop.
func (h *History) RestoreLast() (string, bool) {
	if len(h.snapshots) == 0 { return "", false }

	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	if len(h.snapshots) == 0 { return "", false }

	return h.snapshots[len(h.snapshots)-1].Content(), true
}

func (h *History) Top() (string, bool) {
	if len(h.snapshots) == 0 { return "", false }
	return h.snapshots[len(h.snapshots)-1].Content(), true
}

func (h *History) Len() int { return len(h.snapshots) }
