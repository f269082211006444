package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sprintdeck/internal/calendar"
	"github.com/roach88/sprintdeck/internal/plan"
	"github.com/roach88/sprintdeck/internal/testutil"
)

// TestWindow_Build tests the day-index sequence of the visible window.
func TestWindow_Build(t *testing.T) {
	e := New()
	w, ok := e.Window(twoWeekProject())
	require.True(t, ok)

	assert.Equal(t, 12, w.Len(), "two weeks is 12 calendar days, weekends included")
	days := w.Days()
	assert.Equal(t, "2024-06-03", days[0].String())
	assert.Equal(t, "2024-06-14", days[11].String())
}

// TestWindow_Unconfigured tests that there is nothing to project onto.
func TestWindow_Unconfigured(t *testing.T) {
	e := New()
	_, ok := e.Window(plan.Project{})
	assert.False(t, ok)
	_, ok = e.Window(plan.Project{StartDate: datePtr("2024-06-03")})
	assert.False(t, ok)
}

// TestBar_InsideWindow tests plain projection with no clipping.
func TestBar_InsideWindow(t *testing.T) {
	e := New()
	w, _ := e.Window(twoWeekProject())

	bar, ok := w.Bar(plan.Task{
		ID:        "t1",
		Owner:     "ana",
		StartDate: datePtr("2024-06-04"),
		EndDate:   datePtr("2024-06-06"),
	})
	require.True(t, ok)
	assert.False(t, bar.Unscheduled)
	assert.Equal(t, 1, bar.StartIndex)
	assert.Equal(t, 3, bar.EndIndex)
	assert.Equal(t, 3, bar.Span)
	assert.False(t, bar.OverflowLeft)
	assert.False(t, bar.OverflowRight)
}

// TestBar_ClipsLeft tests that a task starting before the sprint clips
// to the window start with the left overflow flag set.
func TestBar_ClipsLeft(t *testing.T) {
	e := New()
	w, _ := e.Window(twoWeekProject())

	bar, ok := w.Bar(plan.Task{
		ID:        "t1",
		Owner:     "ana",
		StartDate: datePtr("2024-05-30"),
		EndDate:   datePtr("2024-06-05"),
	})
	require.True(t, ok)
	assert.Equal(t, 0, bar.StartIndex)
	assert.Equal(t, 2, bar.EndIndex)
	assert.Equal(t, 3, bar.Span)
	assert.True(t, bar.OverflowLeft)
	assert.False(t, bar.OverflowRight)
}

// TestBar_ClipsRight tests the symmetric right-edge truncation.
func TestBar_ClipsRight(t *testing.T) {
	e := New()
	w, _ := e.Window(twoWeekProject())

	bar, ok := w.Bar(plan.Task{
		ID:        "t1",
		Owner:     "ana",
		StartDate: datePtr("2024-06-13"),
		EndDate:   datePtr("2024-06-20"),
	})
	require.True(t, ok)
	assert.Equal(t, 10, bar.StartIndex)
	assert.Equal(t, 11, bar.EndIndex)
	assert.False(t, bar.OverflowLeft)
	assert.True(t, bar.OverflowRight)
}

// TestBar_SpansWindow tests a task overhanging both edges.
func TestBar_SpansWindow(t *testing.T) {
	e := New()
	w, _ := e.Window(twoWeekProject())

	bar, ok := w.Bar(plan.Task{
		ID:        "t1",
		Owner:     "ana",
		StartDate: datePtr("2024-05-01"),
		EndDate:   datePtr("2024-07-01"),
	})
	require.True(t, ok)
	assert.Equal(t, 0, bar.StartIndex)
	assert.Equal(t, 11, bar.EndIndex)
	assert.Equal(t, 12, bar.Span)
	assert.True(t, bar.OverflowLeft)
	assert.True(t, bar.OverflowRight)
}

// TestBar_OutsideWindow tests that a task entirely outside the sprint
// draws nothing.
func TestBar_OutsideWindow(t *testing.T) {
	e := New()
	w, _ := e.Window(twoWeekProject())

	_, ok := w.Bar(plan.Task{ID: "t1", Owner: "ana", StartDate: datePtr("2024-05-01"), EndDate: datePtr("2024-05-10")})
	assert.False(t, ok)
	_, ok = w.Bar(plan.Task{ID: "t1", Owner: "ana", StartDate: datePtr("2024-07-01"), EndDate: datePtr("2024-07-05")})
	assert.False(t, ok)
}

// TestBar_Unscheduled tests the single-marker fallback for tasks without
// a usable interval: distinct from a real one-day bar at index 0.
func TestBar_Unscheduled(t *testing.T) {
	e := New()
	w, _ := e.Window(twoWeekProject())

	for _, task := range []plan.Task{
		{ID: "t1", Owner: "ana"},
		{ID: "t2", Owner: "ana", StartDate: datePtr("2024-06-04")},
		{ID: "t3", Owner: "ana", EndDate: datePtr("2024-06-04")},
	} {
		bar, ok := w.Bar(task)
		require.True(t, ok, "task %s", task.ID)
		assert.True(t, bar.Unscheduled)
		assert.Equal(t, 0, bar.StartIndex)
		assert.Equal(t, 0, bar.EndIndex)
		assert.Equal(t, 1, bar.Span)
	}
}

// TestCells_Tagging tests that weekend, holiday, and today tags are set
// independently of any bar placement.
func TestCells_Tagging(t *testing.T) {
	e := New(WithClock(testutil.NewFixedClock("2024-06-05")))
	w, _ := e.Window(twoWeekProject())

	holidays := map[calendar.Date]bool{calendar.MustParse("2024-06-10"): true}
	cells := e.Cells(w, holidays)
	require.Len(t, cells, 12)

	assert.True(t, cells[2].Today, "Wednesday the 5th")
	assert.False(t, cells[2].Weekend)

	assert.True(t, cells[5].Weekend, "Saturday the 8th")
	assert.True(t, cells[6].Weekend, "Sunday the 9th")

	assert.True(t, cells[7].Holiday, "Monday the 10th")
	assert.False(t, cells[7].Weekend, "holiday tagging is independent of the weekend tag")

	for i, c := range cells {
		assert.Equal(t, i, c.Index)
	}
}

// TestBar_MayOverlayWeekend tests that a bar spanning a weekend keeps the
// weekend cells inside its span; only working-day counts exclude them.
func TestBar_MayOverlayWeekend(t *testing.T) {
	e := New()
	w, _ := e.Window(twoWeekProject())

	bar, ok := w.Bar(plan.Task{
		ID:        "t1",
		Owner:     "ana",
		StartDate: datePtr("2024-06-07"),
		EndDate:   datePtr("2024-06-10"),
	})
	require.True(t, ok)
	assert.Equal(t, 4, bar.Span, "Friday through Monday includes both weekend cells")
}
