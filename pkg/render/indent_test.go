package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndentTrackerBaseline(t *testing.T) {
	var tr indentTracker

	// first visit establishes the baseline and renders flush
	assert.Equal(t, 0, tr.Compute(4))
	assert.False(t, tr.initialized)

	// the baseline is fixed only once a text line is actually rendered
	tr.Snapshot()
	assert.True(t, tr.initialized)
	assert.Equal(t, 4, tr.initColumn)
	assert.Equal(t, 4, tr.usedColumn)
}

func TestIndentTrackerNesting(t *testing.T) {
	var tr indentTracker
	tr.Compute(4)
	tr.Snapshot()

	// a deeper sibling indents by (8-4)/2 logical levels, two render
	// columns each
	assert.Equal(t, 4, tr.Compute(8))
	assert.Equal(t, 2, tr.indentCount)
	tr.Snapshot()

	// back to the section baseline
	assert.Equal(t, 0, tr.Compute(4))
}

func TestIndentTrackerSiblingRepeat(t *testing.T) {
	var tr indentTracker
	tr.Compute(2)
	tr.Snapshot()

	assert.Equal(t, 4, tr.Compute(6))

	// a repeat at the same column before the next rendered line returns
	// the raw count, while after a render the column is re-baselined
	assert.Equal(t, 2, tr.Compute(6))
	tr.Snapshot()
	assert.Equal(t, 0, tr.Compute(6))
}

func TestIndentTrackerDedent(t *testing.T) {
	var tr indentTracker
	tr.Compute(2)
	tr.Snapshot()

	assert.Equal(t, 4, tr.Compute(6)) // two levels in
	assert.Equal(t, 8, tr.Compute(10))
	assert.Equal(t, 4, tr.Compute(6)) // one level back out
}

func TestIndentTrackerReset(t *testing.T) {
	var tr indentTracker
	tr.Compute(4)
	tr.Snapshot()
	tr.Compute(8)

	tr.Reset()
	assert.False(t, tr.initialized)
	assert.Equal(t, 0, tr.indentCount)
	assert.Equal(t, 0, tr.Compute(10))
}
