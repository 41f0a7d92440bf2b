package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/skillpilot/internal/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const musicCatalog = `{
  "id": "music",
  "name": "Music Catalog",
  "version": "1.0.0",
  "curricula": [
    {"key": "guitar player", "entries": [{"category": "Chords", "topics": ["Open Chords", "Barre Chords"]}]},
    {"key": "piano", "entries": [{"category": "Technique", "topics": ["Scales"]}]}
  ],
  "default": [{"category": "Theory", "topics": ["Notation", "Rhythm"]}]
}`

func TestLoadBytes_Valid(t *testing.T) {
	c, err := LoadBytes([]byte(musicCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"guitar player", "piano"}, c.Keys())
	key, matched := c.ClassifyKey("Become a Guitar hero")
	assert.True(t, matched)
	assert.Equal(t, "guitar player", key)
	assert.Equal(t, "Theory", c.Classify("sing")[0].Category)
}

func TestLoadBytes_Malformed(t *testing.T) {
	_, err := LoadBytes([]byte(`{"id":"broken"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog")
}

func TestLoadBytes_InvalidReportsAllProblems(t *testing.T) {
	_, err := LoadBytes([]byte(`{
  "id": "bad",
  "curricula": [
    {"key": "Guitar", "entries": [{"category": "", "topics": []}]},
    {"key": "guitar", "entries": [{"category": "X", "topics": [" "]}]}
  ]
}`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "catalog name is required")
	assert.Contains(t, msg, "default curriculum is required")
	assert.Contains(t, msg, `key "Guitar" must be lowercase`)
	assert.Contains(t, msg, "curricula[0].entries[0]: category is required")
	assert.Contains(t, msg, "curricula[0].entries[0]: at least one topic is required")
	assert.Contains(t, msg, "curricula[1].entries[0].topics[0]: topic is blank")
}

func TestValidateSchema_DuplicateKey(t *testing.T) {
	schema := &CatalogSchema{
		ID:   "dup",
		Name: "Dup",
		Curricula: []CurriculumEntry{
			{Key: "chess", Entries: []EntryConfig{{Category: "A", Topics: []string{"x"}}}},
			{Key: "chess", Entries: []EntryConfig{{Category: "B", Topics: []string{"y"}}}},
		},
		Default: []EntryConfig{{Category: "C", Topics: []string{"z"}}},
	}

	errs := ValidateSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `duplicate key "chess"`)
}

func TestValidateSchema_ReservedDefaultKey(t *testing.T) {
	_, err := LoadBytes([]byte(`{
  "id": "x", "name": "X",
  "curricula": [{"key": "default", "entries": [{"category": "Custom", "topics": ["A"]}]}],
  "default": [{"category": "Fallback", "topics": ["F"]}]
}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "default" is reserved`)
}

func TestLoadFileAndDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"id":"broken"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(musicCatalog), 0o644))

	c, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"guitar player", "piano"}, c.Keys())

	_, err = LoadFile(filepath.Join(dir, "b.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.json")

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestLoad_EmptyPathAndEmptyDir(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, roadmap.DefaultCatalog().Keys(), c.Keys())

	c, err = Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, roadmap.DefaultCatalog().Keys(), c.Keys())

	_, err = Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestExport_RoundTripsBuiltinCatalog(t *testing.T) {
	builtin := roadmap.DefaultCatalog()

	data, err := Export("builtin", "Built-in", builtin)
	require.NoError(t, err)

	loaded, err := LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, builtin.Keys(), loaded.Keys())
	for _, key := range builtin.Keys() {
		want, _ := builtin.Curriculum(key)
		got, _ := loaded.Curriculum(key)
		assert.Equal(t, want, got, key)
	}
	assert.Equal(t, builtin.Fallback(), loaded.Fallback())
}

const musicCatalogYAML = `
id: music
name: Music Catalog
curricula:
  - key: guitar player
    entries:
      - category: Chords
        topics: [Open Chords, Barre Chords]
default:
  - category: Theory
    topics: [Notation]
`

const musicCatalogTOML = `
id = "music"
name = "Music Catalog"

[[curricula]]
key = "guitar player"

  [[curricula.entries]]
  category = "Chords"
  topics = ["Open Chords", "Barre Chords"]

[[default]]
category = "Theory"
topics = ["Notation"]
`

func TestLoadBytesAs_YAMLAndTOML(t *testing.T) {
	for f, doc := range map[Format]string{FormatYAML: musicCatalogYAML, FormatTOML: musicCatalogTOML} {
		c, err := LoadBytesAs(f, []byte(doc))
		require.NoError(t, err, f)
		assert.Equal(t, []string{"guitar player"}, c.Keys(), f)
		entries, ok := c.Curriculum("guitar player")
		require.True(t, ok, f)
		assert.Equal(t, []string{"Open Chords", "Barre Chords"}, entries[0].Topics, f)
		assert.Equal(t, "Theory", c.Fallback()[0].Category, f)
	}
}

func TestCheckDocument_RejectsUnknownFields(t *testing.T) {
	err := CheckDocument(FormatJSON, []byte(`{"id":"x","name":"X","curicula":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document schema")

	err = CheckDocument(FormatYAML, []byte("id: x\ncurricula:\n  - key: a\n    topics: [b]\n"))
	require.Error(t, err)
}

func TestCheckDocument_RejectsWrongTypes(t *testing.T) {
	err := CheckDocument(FormatTOML, []byte("id = 7\nname = \"X\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document schema")

	err = CheckDocument(FormatJSON, []byte(`{"default":[{"category":"A","topics":"not a list"}]}`))
	require.Error(t, err)
}

func TestCheckDocument_MalformedInput(t *testing.T) {
	err := CheckDocument(FormatYAML, []byte("id: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog")
}

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{"a.json": FormatJSON, "b.YAML": FormatYAML, "c.yml": FormatYAML, "d.toml": FormatTOML}
	for path, want := range cases {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("catalog")
	assert.Error(t, err)
	_, err = FormatOf("catalog.xml")
	assert.Error(t, err)
}

func TestExportAs_RoundTripsEveryFormat(t *testing.T) {
	builtin := roadmap.DefaultCatalog()

	for _, f := range Formats {
		data, err := ExportAs(f, "builtin", "Built-in", builtin)
		require.NoError(t, err, f)

		loaded, err := LoadBytesAs(f, data)
		require.NoError(t, err, f)
		assert.Equal(t, builtin.Keys(), loaded.Keys(), f)
		assert.Equal(t, builtin.Fallback(), loaded.Fallback(), f)
	}
}

func TestLoadDir_PicksYAMLFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "music.yaml"), []byte(musicCatalogYAML), 0o644))

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"guitar player"}, c.Keys())
}
