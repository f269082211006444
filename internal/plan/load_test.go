package plan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
project:
  name: Q2 launch
  start_date: 2024-06-03
  end_date: 2024-06-14
members:
  - id: ana
    name: Ana
  - id: ben
    name: Ben
    bandwidth_hours: 20
tasks:
  - id: t1
    owner: ana
    status: in_progress
    start_date: 2024-06-03
    end_date: 2024-06-05
    estimated_hours: 12
  - id: t2
    owner: both
  - id: t3
    owner: unassigned
    completed: true
holidays:
  - 2024-06-10
`

// TestParse_SamplePlan tests end-to-end schema check plus decode.
func TestParse_SamplePlan(t *testing.T) {
	p, err := Parse("plan.yaml", []byte(samplePlan))
	require.NoError(t, err)

	assert.Equal(t, "Q2 launch", p.Project.Name)
	require.True(t, p.Project.Configured())
	assert.Equal(t, "2024-06-03", p.Project.StartDate.String())
	assert.Equal(t, "2024-06-14", p.Project.EndDate.String())

	require.Len(t, p.Members, 2)
	assert.Equal(t, 40.0, p.Members[0].Bandwidth())
	assert.Equal(t, 20.0, p.Members[1].Bandwidth())

	require.Len(t, p.Tasks, 3)
	assert.True(t, p.Tasks[0].Scheduled())
	assert.Equal(t, 12.0, *p.Tasks[0].EstimatedHours)
	assert.False(t, p.Tasks[1].Scheduled())
	assert.True(t, p.Tasks[2].Completed)

	require.Len(t, p.Holidays, 1)
	assert.Equal(t, "2024-06-10", p.Holidays[0].String())
}

// TestParse_SchemaViolations tests that shape errors are caught by the CUE
// schema before decoding.
func TestParse_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"bad date format", "project:\n  start_date: 03/06/2024\n"},
		{"negative bandwidth", "members:\n  - id: ana\n    bandwidth_hours: -4\n"},
		{"member without id", "members:\n  - name: Ana\n"},
		{"task without owner", "tasks:\n  - id: t1\n"},
		{"wrong scalar kind", "tasks:\n  - owner: ana\n    completed: sometimes\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("plan.yaml", []byte(tc.src))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, ErrCodeSchema, loadErr.Code)
		})
	}
}

// TestParse_EmptyDocument tests that an empty file yields an empty plan.
func TestParse_EmptyDocument(t *testing.T) {
	p, err := Parse("plan.yaml", nil)
	require.NoError(t, err)
	assert.False(t, p.Project.Configured())
	assert.Empty(t, p.Members)
	assert.Empty(t, p.Tasks)
}

// TestLoadFile_Missing tests the not-found error code.
func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// TestLoadFile_RoundTrip tests loading a plan written to disk.
func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, p.Validate())
}
