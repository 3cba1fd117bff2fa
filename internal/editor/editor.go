package editor

import (
	"fmt"
	"sync"

	"textmemo/internal/document"
	"textmemo/internal/history"
	. "textmemo/internal/logger"
	"textmemo/internal/search"
)

// Editor owns one document and its linear undo history.
// All methods are safe for concurrent use.
type Editor struct {
	mu       sync.Mutex
	document *document.Document
	history  *history.History
}

// New wraps doc and records its current content as the first snapshot.
func New(doc *document.Document) *Editor {
	e := &Editor{document: doc, history: history.New()}
	e.history.Record(doc.Content)
	Log.Info("editor: open", doc.Name)
	return e
}

// Change replaces the document content. The snapshot is recorded before the
// document is touched, so history top and content always agree afterwards.
func (e *Editor) Change(newText string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.Record(newText)
	e.document.Content = newText
	Log.Info("editor: change", e.document.Name, fmt.Sprintf("version=%d", e.history.Len()-1))
}

// Undo drops the latest snapshot and restores the one below it.
// When no earlier snapshot remains the content is left as is.
func (e *Editor) Undo() {
	e.mu.Lock()
	defer e.mu.Unlock()

	content, ok := e.history.RestoreLast()
	if !ok { Log.Info("editor: undo, nothing to restore", e.document.Name); return }

	e.document.Content = content
	Log.Info("editor: undo", e.document.Name, fmt.Sprintf("version=%d", e.history.Len()-1))
}

func (e *Editor) Render() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.document.Content
}

// Matches reports whether the current content contains every keyword.
func (e *Editor) Matches(keywords ...string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return search.ContainsAll(e.document.Content, keywords)
}

func (e *Editor) Name() string { return e.document.Name }

func (e *Editor) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}
