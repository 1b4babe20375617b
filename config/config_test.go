package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorant-og/models"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://colorant-picker.pl4rd.com", cfg.AppBaseURL)
	assert.Equal(t, "https://colorant-picker.pl4rd.com/data/dyes.json", cfg.CatalogURL)
	assert.Equal(t, models.GeometryGolden, cfg.GeometryValue())
	assert.Equal(t, RendererImaging, cfg.Renderer)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", ":3001")
	t.Setenv("APP_BASE_URL", "https://picker.example.com/")
	t.Setenv("OG_GEOMETRY", "vertical")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "https://picker.example.com", cfg.AppBaseURL)
	assert.Equal(t, "https://picker.example.com/data/dyes.json", cfg.CatalogURL)
	assert.Equal(t, models.GeometryVertical, cfg.GeometryValue())
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ExplicitCatalogURL(t *testing.T) {
	t.Setenv("CATALOG_URL", "https://cdn.example.com/dyes.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/dyes.json", cfg.CatalogURL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("geometry", func(t *testing.T) {
		t.Setenv("OG_GEOMETRY", "diagonal")
		_, err := Load()
		assert.ErrorContains(t, err, "OG_GEOMETRY")
	})

	t.Run("renderer", func(t *testing.T) {
		t.Setenv("OG_RENDERER", "gpu")
		_, err := Load()
		assert.ErrorContains(t, err, "OG_RENDERER")
	})

	t.Run("drive without credentials", func(t *testing.T) {
		t.Setenv("CATALOG_DRIVE_FILE_ID", "file-id")
		t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
		_, err := Load()
		assert.ErrorContains(t, err, "GOOGLE_APPLICATION_CREDENTIALS")
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("OG_RENDERER", "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OG_RENDERER=chrome\n"), 0644))

	loaded, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "chrome", os.Getenv("OG_RENDERER"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("APP_ENV", "")

	loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestLoadDotEnv_SkippedInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OG_RENDERER=chrome\n"), 0644))

	loaded, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.False(t, loaded)
}
