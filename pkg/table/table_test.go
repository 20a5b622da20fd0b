package table_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/table"
)

func TestTranslate(t *testing.T) {
	t.Run("Default Token", func(t *testing.T) {
		got := table.Translate([]string{"A", "*", "B"}, "")
		assert.Equal(t, domain.NewLiteral("A"), got[0])
		assert.Equal(t, domain.AnyValue, got[1])
		assert.Equal(t, domain.NewLiteral("B"), got[2])
	})

	t.Run("Custom Token Frees The Default", func(t *testing.T) {
		got := table.Translate([]string{"*", "?"}, "?")
		// "*" is now an opaque literal; "?" is the sentinel.
		assert.Equal(t, domain.NewLiteral("*"), got[0])
		assert.Equal(t, domain.AnyValue, got[1])
	})

	t.Run("Literals Stay Opaque", func(t *testing.T) {
		got := table.Translate([]string{"3.14", " spaced "}, "*")
		assert.Equal(t, "3.14", got[0].Literal)
		assert.Equal(t, " spaced ", got[1].Literal)
	})
}

func TestInputs(t *testing.T) {
	rows := table.Inputs(2)
	require.Len(t, rows, 4)
	// Row 0 is all-true; the last variable toggles fastest.
	assert.Equal(t, []bool{true, true}, rows[0])
	assert.Equal(t, []bool{true, false}, rows[1])
	assert.Equal(t, []bool{false, true}, rows[2])
	assert.Equal(t, []bool{false, false}, rows[3])
}

func TestLoadSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grades.yaml")
	content := `name: grade
params: [passed, honors]
values: ["A+", "A", "B", "B"]
notes: ignored by the loader
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	spec, err := table.LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "grade", spec.Name)
	assert.Equal(t, []string{"passed", "honors"}, spec.Params)
	assert.Equal(t, table.DefaultDontCare, spec.DontCare)
	assert.Equal(t, []string{"A+", "A", "B", "B"}, spec.Values)
}

func TestLoadSpec_Missing(t *testing.T) {
	_, err := table.LoadSpec(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSpec_NoValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o644))

	_, err := table.LoadSpec(path)
	assert.ErrorContains(t, err, "no values")
}
