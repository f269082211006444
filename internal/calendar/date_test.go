package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestParse_Valid tests strict parsing of the YYYY-MM-DD form.
func TestParse_Valid(t *testing.T) {
	d, err := Parse("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year)
	assert.Equal(t, time.June, d.Month)
	assert.Equal(t, 3, d.Day)
	assert.Equal(t, "2024-06-03", d.String())
}

// TestParse_Invalid tests that malformed and out-of-range dates are rejected.
func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024-6-3",      // not zero-padded
		"06/03/2024",    // wrong separator
		"2024-02-30",    // day out of range
		"2024-13-01",    // month out of range
		"2024-06-03T00", // trailing time component
	}
	for _, s := range cases {
		_, err := Parse(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}

// TestDate_RoundTrip tests that formatting and re-parsing every date in a
// sprint-sized range yields the same year/month/day with no timezone shift.
func TestDate_RoundTrip(t *testing.T) {
	start := MustParse("2024-05-25")
	for _, d := range Range(start, start.AddDays(60)) {
		parsed, err := Parse(d.String())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(d), "round-trip changed %s to %s", d, parsed)
	}
}

// TestDate_Compare tests ordering across year, month, and day boundaries.
func TestDate_Compare(t *testing.T) {
	a := MustParse("2023-12-31")
	b := MustParse("2024-01-01")
	c := MustParse("2024-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, b.Equal(c))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, b.Compare(c))
	assert.Equal(t, 1, b.Compare(a))
}

// TestDate_AddDays tests calendar arithmetic across month and leap-year
// boundaries.
func TestDate_AddDays(t *testing.T) {
	assert.Equal(t, "2024-03-01", MustParse("2024-02-29").AddDays(1).String())
	assert.Equal(t, "2024-02-29", MustParse("2024-02-28").Next().String())
	assert.Equal(t, "2023-12-25", MustParse("2024-01-01").AddDays(-7).String())
}

// TestDate_Weekday pins known weekdays.
func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Monday, MustParse("2024-06-03").Weekday())
	assert.Equal(t, time.Saturday, MustParse("2024-06-08").Weekday())
	assert.Equal(t, time.Sunday, MustParse("2024-06-09").Weekday())
}

// TestDate_JSON tests the JSON string codec.
func TestDate_JSON(t *testing.T) {
	d := MustParse("2024-06-03")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-03"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d))

	assert.Error(t, json.Unmarshal([]byte(`42`), &back))
}

// TestDate_YAML tests the YAML scalar codec.
func TestDate_YAML(t *testing.T) {
	var d Date
	require.NoError(t, yaml.Unmarshal([]byte("2024-06-03"), &d))
	assert.Equal(t, "2024-06-03", d.String())

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	var back Date
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, back.Equal(d), "YAML round trip changed %s to %s", d, back)

	assert.Error(t, yaml.Unmarshal([]byte("not-a-date"), &d))
}

// TestFixedClock tests that a pinned clock always reports the same day.
func TestFixedClock(t *testing.T) {
	d := MustParse("2024-06-05")
	clock := Fixed(d)
	assert.True(t, clock.Today().Equal(d))
	assert.True(t, clock.Today().Equal(d))
}

// TestSystemClock_LocalDay tests that SystemClock agrees with time.Now in
// the local zone (the only assertion that is stable on any host).
func TestSystemClock_LocalDay(t *testing.T) {
	got := SystemClock{}.Today()
	want := DateOf(time.Now())
	// A midnight rollover between the two reads is the only legitimate skew.
	if !got.Equal(want) {
		assert.True(t, got.Next().Equal(want))
	}
}
