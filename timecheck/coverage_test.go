package timecheck_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tolltab/table"
	"github.com/katalvlaran/tolltab/timecheck"
)

// weekDates are seven consecutive dates, Monday through Sunday.
var weekDates = [7]string{
	"2023-01-02", // Monday
	"2023-01-03",
	"2023-01-04",
	"2023-01-05",
	"2023-01-06",
	"2023-01-07",
	"2023-01-08", // Sunday
}

// timeOfDay formats a second-of-day index as "15:04:05".
func timeOfDay(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec/60)%60, sec%60)
}

// denseWeek generates one row per second of the day for the given pair,
// cycling the date across all seven weekdays. The resulting group covers
// every weekday and every second — the only shape that can be complete.
func denseWeek(id, id2 string) (ids, id2s, days, times []string) {
	n := timecheck.SecondsPerDay
	ids = make([]string, n)
	id2s = make([]string, n)
	days = make([]string, n)
	times = make([]string, n)
	for s := 0; s < n; s++ {
		ids[s] = id
		id2s[s] = id2
		days[s] = weekDates[s%7]
		times[s] = timeOfDay(s)
	}

	return ids, id2s, days, times
}

func coverageTable(t *testing.T, ids, id2s, days, times []string) *table.Table {
	t.Helper()

	tbl, err := table.New(
		table.Label("id", ids),
		table.Label("id_2", id2s),
		table.Label("startDay", days),
		table.Label("startTime", times),
	)
	require.NoError(t, err)

	return tbl
}

func TestCheckCoverage_FullWeekFullDayIsComplete(t *testing.T) {
	t.Parallel()

	ids, id2s, days, times := denseWeek("1", "2")
	tbl := coverageTable(t, ids, id2s, days, times)

	got, err := timecheck.CheckCoverage(tbl)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, timecheck.PairCoverage{ID: "1", ID2: "2", Complete: true}, got[0])
}

func TestCheckCoverage_MissingOneSecondIsIncomplete(t *testing.T) {
	t.Parallel()

	ids, id2s, days, times := denseWeek("1", "2")

	// Drop the single observation at 12:00:00; weekday coverage survives
	// (the other ~12342 rows of that date remain) but one second is gone.
	drop := 12 * 3600
	ids = append(ids[:drop], ids[drop+1:]...)
	id2s = append(id2s[:drop], id2s[drop+1:]...)
	days = append(days[:drop], days[drop+1:]...)
	times = append(times[:drop], times[drop+1:]...)

	got, err := timecheck.CheckCoverage(coverageTable(t, ids, id2s, days, times))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Complete)
}

func TestCheckCoverage_MissingOneWeekdayIsIncomplete(t *testing.T) {
	t.Parallel()

	// Full second coverage, but every row sits on the same Monday.
	n := timecheck.SecondsPerDay
	ids := make([]string, n)
	id2s := make([]string, n)
	days := make([]string, n)
	times := make([]string, n)
	for s := 0; s < n; s++ {
		ids[s], id2s[s] = "1", "2"
		days[s] = weekDates[0]
		times[s] = timeOfDay(s)
	}

	got, err := timecheck.CheckCoverage(coverageTable(t, ids, id2s, days, times))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Complete)
}

func TestCheckCoverage_ParseFailureIsNullNotError(t *testing.T) {
	t.Parallel()

	// A malformed date must not abort the computation: the pair simply
	// reports incomplete, and other pairs are evaluated normally.
	tbl := coverageTable(t,
		[]string{"1", "9"},
		[]string{"2", "9"},
		[]string{"not-a-date", weekDates[0]},
		[]string{"08:00:00", "08:00:00"},
	)

	got, err := timecheck.CheckCoverage(tbl)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.False(t, got[0].Complete)
	assert.Equal(t, "9", got[1].ID)
	assert.False(t, got[1].Complete) // sparse, but evaluated without error
}

func TestCheckCoverage_GroupOrderAndKeys(t *testing.T) {
	t.Parallel()

	tbl := coverageTable(t,
		[]string{"B", "A", "B"},
		[]string{"1", "1", "1"},
		[]string{weekDates[0], weekDates[1], weekDates[2]},
		[]string{"00:00:00", "00:00:01", "00:00:02"},
	)

	got, err := timecheck.CheckCoverage(tbl)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// First-appearance order: (B,1) before (A,1).
	assert.Equal(t, "B", got[0].ID)
	assert.Equal(t, "A", got[1].ID)
}

func TestCoverageMap_LookupForm(t *testing.T) {
	t.Parallel()

	tbl := coverageTable(t,
		[]string{"B", "A"},
		[]string{"1", "1"},
		[]string{weekDates[0], weekDates[1]},
		[]string{"00:00:00", "00:00:01"},
	)

	got, err := timecheck.CheckCoverage(tbl)
	require.NoError(t, err)

	m := timecheck.CoverageMap(got)
	assert.Equal(t, map[timecheck.PairKey]bool{
		{ID: "B", ID2: "1"}: false,
		{ID: "A", ID2: "1"}: false,
	}, m)

	// Absent pairs are absent keys, distinguishable from incomplete ones.
	_, ok := m[timecheck.PairKey{ID: "Z", ID2: "9"}]
	assert.False(t, ok)

	assert.Empty(t, timecheck.CoverageMap(nil))
}

func TestCheckCoverage_EmptyAndMissingColumns(t *testing.T) {
	t.Parallel()

	empty := coverageTable(t, nil, nil, nil, nil)
	got, err := timecheck.CheckCoverage(empty)
	require.NoError(t, err)
	assert.Empty(t, got)

	bad := table.MustNew(table.Label("id", []string{"1"}))
	_, err = timecheck.CheckCoverage(bad)
	assert.ErrorIs(t, err, table.ErrMissingColumn)
}

func TestCheckCoverage_CustomLayouts(t *testing.T) {
	t.Parallel()

	// Day strings in a non-default layout parse only when configured.
	tbl := coverageTable(t,
		[]string{"1"}, []string{"2"},
		[]string{"02/01/2023"}, []string{"08:00:00"},
	)

	// Default layouts: null observation → incomplete but no error.
	got, err := timecheck.CheckCoverage(tbl)
	require.NoError(t, err)
	assert.False(t, got[0].Complete)

	// Custom layout parses; the sparse pair is still incomplete, which
	// exercises the layout path without needing a dense fixture.
	got, err = timecheck.CheckCoverage(tbl, timecheck.WithLayouts("02/01/2006 15:04:05"))
	require.NoError(t, err)
	assert.False(t, got[0].Complete)

	// Zero layouts is a programmer error.
	assert.Panics(t, func() { timecheck.WithLayouts() })
}
