package state

// Document is the committed drawing: strokes and stamps in commit order
// plus the strokes removed by Undo.
//
// Undo and Redo only ever move strokes. Stamps stay until Clear. Committing
// a stroke leaves the redo stack as it is, so Redo can bring back strokes
// undone before newer ones were drawn.
//
// A Document is not safe for concurrent use; it is owned by the UI thread.
type Document struct {
	strokes []*Stroke
	stamps  []*Stamp
	redo    []*Stroke
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CommitStroke appends s to the stroke list.
func (d *Document) CommitStroke(s *Stroke) {
	if s == nil {
		return
	}
	d.strokes = append(d.strokes, s)
}

// CommitStamp appends s to the stamp list.
func (d *Document) CommitStamp(s *Stamp) {
	if s == nil {
		return
	}
	d.stamps = append(d.stamps, s)
}

// Undo moves the newest stroke onto the redo stack. It reports false and
// changes nothing when there is no stroke.
func (d *Document) Undo() bool {
	n := len(d.strokes)
	if n == 0 {
		return false
	}
	s := d.strokes[n-1]
	d.strokes[n-1] = nil
	d.strokes = d.strokes[:n-1]
	d.redo = append(d.redo, s)
	return true
}

// Redo re-commits the most recently undone stroke. It reports false when
// the redo stack is empty.
func (d *Document) Redo() bool {
	n := len(d.redo)
	if n == 0 {
		return false
	}
	s := d.redo[n-1]
	d.redo[n-1] = nil
	d.redo = d.redo[:n-1]
	d.strokes = append(d.strokes, s)
	return true
}

// Clear drops every stroke, stamp and redo entry.
func (d *Document) Clear() {
	d.strokes = nil
	d.stamps = nil
	d.redo = nil
}

// Strokes returns the committed strokes, oldest first.
func (d *Document) Strokes() []*Stroke {
	return append([]*Stroke(nil), d.strokes...)
}

// Stamps returns the committed stamps, oldest first.
func (d *Document) Stamps() []*Stamp {
	return append([]*Stamp(nil), d.stamps...)
}

// RedoStack returns the undone strokes, bottom of the stack first.
func (d *Document) RedoStack() []*Stroke {
	return append([]*Stroke(nil), d.redo...)
}

// Empty reports whether the document holds nothing at all.
func (d *Document) Empty() bool {
	return len(d.strokes) == 0 && len(d.stamps) == 0 && len(d.redo) == 0
}

// Bounds covers every committed stroke. It is the zero Rect for a document
// without strokes.
func (d *Document) Bounds() Rect {
	var r Rect
	for _, s := range d.strokes {
		r = r.Union(s.Bounds())
	}
	return r
}
