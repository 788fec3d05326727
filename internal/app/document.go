package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// snapshot is the document state saved when a user action starts.
type snapshot struct {
	text   []rune
	cursor int
	anchor int
}

// Document is an open file. Offsets count runes. The selection runs from
// the anchor to the cursor; an anchor of -1 means no selection.
type Document struct {
	// Path is the file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	text     []rune
	cursor   int
	anchor   int
	modified bool

	depth int
	undo  []snapshot
}

// NewDocument creates a document holding content.
func NewDocument(path, content string) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}
	return &Document{
		Path:   path,
		Name:   name,
		text:   []rune(content),
		anchor: -1,
	}
}

// OpenDocument reads path. A missing file opens as an empty document that
// is created on save.
func OpenDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	return NewDocument(path, string(data)), nil
}

// Save writes the document to its path.
func (d *Document) Save() error {
	if d.Path == "" {
		return &FileError{Op: "save", Err: ErrNoPath}
	}
	if err := os.WriteFile(d.Path, []byte(string(d.text)), 0o644); err != nil {
		return &FileError{Op: "save", Path: d.Path, Err: err}
	}
	d.modified = false
	return nil
}

// Content returns the whole text.
func (d *Document) Content() string {
	return string(d.text)
}

// Len returns the length in runes.
func (d *Document) Len() int {
	return len(d.text)
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified
}

// Cursor returns the cursor offset.
func (d *Document) Cursor() int {
	return d.cursor
}

// HasSelection reports whether a non-empty range is selected.
func (d *Document) HasSelection() bool {
	return d.anchor >= 0 && d.anchor != d.cursor
}

// SelectionBounds returns the ordered selection range.
func (d *Document) SelectionBounds() (start, end int) {
	if d.anchor < 0 {
		return d.cursor, d.cursor
	}
	if d.anchor < d.cursor {
		return d.anchor, d.cursor
	}
	return d.cursor, d.anchor
}

// Text returns the runes in [start, end).
func (d *Document) Text(start, end int) string {
	start, end = d.clamp(start), d.clamp(end)
	if start > end {
		start, end = end, start
	}
	return string(d.text[start:end])
}

// BeginUserAction starts a group of edits that undo together.
func (d *Document) BeginUserAction() {
	if d.depth == 0 {
		d.undo = append(d.undo, snapshot{
			text:   append([]rune(nil), d.text...),
			cursor: d.cursor,
			anchor: d.anchor,
		})
	}
	d.depth++
}

// EndUserAction ends the group started by BeginUserAction.
func (d *Document) EndUserAction() {
	if d.depth > 0 {
		d.depth--
	}
}

// Undo reverts the most recent user action.
func (d *Document) Undo() bool {
	if d.depth > 0 || len(d.undo) == 0 {
		return false
	}
	s := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	d.text, d.cursor, d.anchor = s.text, s.cursor, s.anchor
	d.modified = true
	return true
}

// Delete removes the runes in [start, end).
func (d *Document) Delete(start, end int) {
	start, end = d.clamp(start), d.clamp(end)
	if start > end {
		start, end = end, start
	}
	if start == end {
		return
	}
	d.text = append(d.text[:start:start], d.text[end:]...)
	d.cursor = shiftDelete(d.cursor, start, end)
	if d.anchor >= 0 {
		d.anchor = shiftDelete(d.anchor, start, end)
	}
	d.modified = true
}

// Insert inserts text at offset at and leaves the cursor after it.
func (d *Document) Insert(at int, text string) {
	at = d.clamp(at)
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	rest := append(runes, d.text[at:]...)
	d.text = append(d.text[:at:at], rest...)
	d.cursor = at + len(runes)
	d.anchor = -1
	d.modified = true
}

// Select selects [start, end) and puts the cursor at end.
func (d *Document) Select(start, end int) {
	d.anchor = d.clamp(start)
	d.cursor = d.clamp(end)
}

// SelectAll selects the whole text.
func (d *Document) SelectAll() {
	d.Select(0, len(d.text))
}

// ClearSelection drops the selection and keeps the cursor.
func (d *Document) ClearSelection() {
	d.anchor = -1
}

// MoveTo moves the cursor to offset. With extend the selection grows from
// the current anchor.
func (d *Document) MoveTo(offset int, extend bool) {
	offset = d.clamp(offset)
	if extend {
		if d.anchor < 0 {
			d.anchor = d.cursor
		}
	} else {
		d.anchor = -1
	}
	d.cursor = offset
}

// MoveLines moves the cursor delta lines, keeping the column where
// possible.
func (d *Document) MoveLines(delta int, extend bool) {
	line, col := d.Position(d.cursor)
	d.MoveTo(d.Offset(line+delta, col), extend)
}

// LineStart returns the offset of the line holding offset.
func (d *Document) LineStart(offset int) int {
	offset = d.clamp(offset)
	for offset > 0 && d.text[offset-1] != '\n' {
		offset--
	}
	return offset
}

// LineEnd returns the offset of the newline ending the line holding offset.
func (d *Document) LineEnd(offset int) int {
	offset = d.clamp(offset)
	for offset < len(d.text) && d.text[offset] != '\n' {
		offset++
	}
	return offset
}

// Lines returns the text split into lines.
func (d *Document) Lines() []string {
	return strings.Split(string(d.text), "\n")
}

// Position converts an offset to a zero-based line and column.
func (d *Document) Position(offset int) (line, col int) {
	offset = d.clamp(offset)
	for _, r := range d.text[:offset] {
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// Offset converts a line and column to an offset, clamping both.
func (d *Document) Offset(line, col int) int {
	if line < 0 {
		return 0
	}
	offset := 0
	for l := 0; l < line; l++ {
		end := d.LineEnd(offset)
		if end >= len(d.text) {
			return len(d.text)
		}
		offset = end + 1
	}
	end := d.LineEnd(offset)
	if col < 0 {
		col = 0
	}
	if offset+col > end {
		return end
	}
	return offset + col
}

func (d *Document) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(d.text) {
		return len(d.text)
	}
	return offset
}

// shiftDelete maps offset across the deletion of [start, end).
func shiftDelete(offset, start, end int) int {
	switch {
	case offset <= start:
		return offset
	case offset >= end:
		return offset - (end - start)
	default:
		return start
	}
}
