package sheetview

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/anchorsheet/internal/sheet"
	"github.com/llehouerou/anchorsheet/internal/ui/testutil"
)

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item %d", i)
	}
	return out
}

func newPanel(width, height, n int) *Model {
	m := New("Nearby places")
	m.SetSize(width, height)
	m.SetItems(items(n))
	return m
}

func TestFindScrollingView_FindsList(t *testing.T) {
	m := newPanel(40, 20, 50)

	sv := sheet.FindScrollingView(m)
	require.NotNil(t, sv)
	assert.Same(t, m.List(), sv)

	m.List().SetNestedScrollingEnabled(false)
	assert.Nil(t, sheet.FindScrollingView(m))
}

func TestList_Bounds(t *testing.T) {
	m := newPanel(40, 20, 50)
	assert.Equal(t, image.Rect(1, HeaderRows, 39, 20), m.List().Bounds())
}

func TestList_ScrollBy(t *testing.T) {
	m := newPanel(40, 20, 50) // 17 visible rows, max offset 33
	l := m.List()

	assert.False(t, l.CanScrollUp())
	assert.Equal(t, 0, l.ScrollBy(-3), "cannot scroll above the start")

	assert.Equal(t, 10, l.ScrollBy(10))
	assert.True(t, l.CanScrollUp())
	assert.Equal(t, 10, l.Offset())

	assert.Equal(t, 23, l.ScrollBy(100), "stops at the end")
	assert.Equal(t, -33, l.ScrollBy(-100))
	assert.False(t, l.CanScrollUp())
}

func TestList_ItemAt(t *testing.T) {
	m := newPanel(40, 10, 20) // 7 visible rows
	l := m.List()
	l.ScrollBy(5)

	assert.Equal(t, 5, l.ItemAt(0))
	assert.Equal(t, 11, l.ItemAt(6))
	assert.Equal(t, -1, l.ItemAt(7))
	assert.Equal(t, -1, l.ItemAt(-1))

	short := newPanel(40, 10, 2)
	assert.Equal(t, -1, short.List().ItemAt(3))
}

func TestView_Rows(t *testing.T) {
	m := newPanel(40, 12, 50)
	m.SetSheet(sheet.StateAnchor, 0.5)

	out := m.View()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)
	for i, line := range lines {
		assert.Equal(t, 40, testutil.MeasureWidth(line), "row %d width", i)
	}

	assert.Contains(t, testutil.Row(out, 0), "╭")
	assert.Contains(t, testutil.Row(out, 1), "━━━━")
	assert.Contains(t, testutil.Row(out, 2), "Nearby places")
	assert.Contains(t, testutil.Row(out, 2), "anchor")
	assert.Contains(t, testutil.Row(out, HeaderRows), "item 0")
}

func TestView_ShortPanel(t *testing.T) {
	m := newPanel(40, 2, 5)
	assert.Len(t, strings.Split(m.View(), "\n"), 2)

	empty := newPanel(1, 10, 5)
	assert.Empty(t, empty.View())
}

func TestView_TruncatesTitle(t *testing.T) {
	m := New(strings.Repeat("long title ", 10))
	m.SetSize(30, 8)
	m.SetSheet(sheet.StateExpanded, 1)

	row := testutil.Row(m.View(), 2)
	assert.Contains(t, row, "…")
	assert.Contains(t, row, "expanded")
	assert.Equal(t, 30, testutil.MeasureWidth(row))
}
