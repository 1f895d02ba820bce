package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vselect/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

var produce = []domain.Option{
	{Value: "apple", Label: "Apple", Group: "Fruit"},
	{Value: "leek", Label: "Leek", Group: "Veg", Disabled: true},
	{Value: "salt"},
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "produce.toml", `
[[option]]
value = "apple"
label = "Apple"
group = "Fruit"

[[option]]
value = "leek"
label = "Leek"
group = "Veg"
disabled = true

[[option]]
value = "salt"
`)

	cat, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(produce, cat.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, cat.HasGroups())
	assert.False(t, cat.HasSizes())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "produce.yml", `options:
  - value: apple
    label: Apple
    group: Fruit
  - value: leek
    label: Leek
    group: Veg
    disabled: true
  - value: salt
`)

	cat, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(produce, cat.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cat, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, cat.Options)
}

func TestLoadTSV(t *testing.T) {
	path := writeFile(t, "produce.tsv", "# value\tlabel\tgroup\tdisabled\n"+
		"apple\tApple\tFruit\n"+
		"leek\tLeek\tVeg\ttrue\n"+
		"salt\n")

	cat, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(produce, cat.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTSVBadDisabledFlag(t *testing.T) {
	_, err := Load(writeFile(t, "bad.tsv", "apple\tApple\tFruit\tmaybe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid disabled flag "maybe"`)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "produce.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "blank.tsv", "\tNo value\n"))
	assert.ErrorIs(t, err, ErrMissingValue)

	_, err = Load(writeFile(t, "neg.toml", "[[option]]\nvalue = \"a\"\nsize = -1\n"))
	assert.ErrorContains(t, err, "negative size")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to open catalogue")
}

func TestLoadAllKeepsArgumentOrder(t *testing.T) {
	first := writeFile(t, "a.tsv", "b\tB\nshared\tFrom A\n")
	second := writeFile(t, "b.yaml", "options:\n  - value: shared\n    label: From B\n  - value: a\n")

	cat, err := LoadAll(context.Background(), []string{first, second})
	require.NoError(t, err)

	want := []domain.Option{
		{Value: "b", Label: "B"},
		{Value: "shared", Label: "From A"},
		{Value: "a"},
	}
	if diff := cmp.Diff(want, cat.Options); diff != "" {
		t.Errorf("merged options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAllFailsOnAnyError(t *testing.T) {
	good := writeFile(t, "a.tsv", "a\n")
	_, err := LoadAll(context.Background(), []string{good, filepath.Join(t.TempDir(), "nope.tsv")})
	assert.Error(t, err)
}

func TestLoadAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadAll(ctx, []string{writeFile(t, "a.tsv", "a\n")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate(t *testing.T) {
	cat := Generate(10, 3)
	require.Len(t, cat.Options, 10)
	assert.Equal(t, domain.Option{Value: "option-0", Label: "Option 0", Group: "Group 1"}, cat.Options[0])
	assert.Equal(t, "Group 3", cat.Options[9].Group)

	// Groups are contiguous runs
	groups := []string{}
	for _, o := range cat.Options {
		if len(groups) == 0 || groups[len(groups)-1] != o.Group {
			groups = append(groups, o.Group)
		}
	}
	assert.Equal(t, []string{"Group 1", "Group 2", "Group 3"}, groups)

	assert.False(t, Generate(5, 0).HasGroups())
	assert.Empty(t, Generate(-1, 2).Options)
}
