package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestGetConfigFilePath(t *testing.T) {
	dir := setupConfigHome(t)

	assert.Equal(t, filepath.Join(dir, "deckhand", "config.toml"), GetConfigFilePath())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	setupConfigHome(t)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), config)
	assert.FileExists(t, GetConfigFilePath())

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, again)
}

func TestLoadConfigInvalid(t *testing.T) {
	setupConfigHome(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte("default_profile = [\n"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestGetProfile(t *testing.T) {
	setupConfigHome(t)

	p, err := GetProfile("")
	require.NoError(t, err)
	assert.Equal(t, Profile{Kind: "standard", Shuffle: true}, p)

	p, err = GetProfile("shoe")
	require.NoError(t, err)
	assert.Equal(t, "multiple", p.Kind)
	assert.Equal(t, 6, p.Decks)

	_, err = GetProfile("missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfileFromFile(t *testing.T) {
	setupConfigHome(t)
	path := filepath.Join(t.TempDir(), "double.toml")
	content := `[profile]
name = "double"
kind = "multiple"
decks = 2
shuffle = false
seed = 99
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := GetProfile(path)
	require.NoError(t, err)
	assert.Equal(t, Profile{Kind: "multiple", Decks: 2, Seed: 99}, p)
}

func TestSetDefaultProfile(t *testing.T) {
	setupConfigHome(t)

	require.NoError(t, SetDefaultProfile("jokers"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "jokers", config.DefaultProfile)

	err = SetDefaultProfile("nope")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAddProfile(t *testing.T) {
	setupConfigHome(t)

	require.NoError(t, AddProfile("pair", Profile{Kind: "multiple", Decks: 2}))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"jokers", "pair", "shoe", "standard"}, config.ProfileNames())
	assert.Equal(t, 2, config.Profiles["pair"].Decks)
}

func TestLoadProfileFileMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	require.NoError(t, os.WriteFile(path, []byte("[profile]\nkind = \"jokers\"\n"), 0644))

	pf, md, err := LoadProfileFile(path)
	require.NoError(t, err)

	assert.Equal(t, "jokers", pf.Profile.Kind)
	assert.True(t, md.IsDefined("profile", "kind"))
	assert.False(t, md.IsDefined("profile", "decks"))
}
