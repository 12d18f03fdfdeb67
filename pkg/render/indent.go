package render

// indentTracker converts the source column a nested node began at into a
// stable left-margin indent for rendered lines. Raw column offsets vary
// with key-name lengths and list markers, so column deltas between
// neighboring nodes collapse to a small logical indent count, emitted at
// two render columns per level.
//
// One tracker serves one section's traversal and is reset at section
// boundaries. The baseline is established by the first rendered text line,
// not the first node visited: Snapshot is called after every rendered line
// and is idempotent once steady state is reached.
type indentTracker struct {
	initColumn    int
	usedColumn    int
	currentColumn int
	indentCount   int
	unindentCount int
	initialized   bool
}

// Reset clears all state at a section boundary
func (t *indentTracker) Reset() {
	*t = indentTracker{}
}

// Compute returns the indent width for a node starting at column
func (t *indentTracker) Compute(column int) int {
	if !t.initialized {
		t.currentColumn = column
		return 0
	}
	if column == t.initColumn {
		return 0
	}
	if column == t.usedColumn {
		return t.indentCount
	}
	if column > t.usedColumn {
		t.indentCount += (column - t.usedColumn) / 2
	} else {
		t.indentCount -= (t.usedColumn - column) / 2
	}
	t.currentColumn = column
	t.usedColumn = column
	return (t.indentCount - t.unindentCount) * 2
}

// Snapshot fixes the section baseline at the current column. Called after
// every rendered text line.
func (t *indentTracker) Snapshot() {
	t.initialized = true
	t.initColumn = t.currentColumn
	t.usedColumn = t.currentColumn
}
