package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "arffkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("comment-marker", "%", "comment marker")
	flags.Bool("allow-ragged-rows", false, "allow ragged rows")
	flags.String("driver", "", "database driver")
	flags.StringSlice("null-values", nil, "null values")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		CommentMarker: "%",
		Encoding:      "utf-8",
		OutputFormat:  "auto",
		Workers:       4,
		PreviewRows:   10,
		NullValues:    []string{"?"},
		Database:      DatabaseConfig{Driver: "sqlite", DSN: "arffkit.db"},
	}, cfg)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_FileValues(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, t.TempDir(), `comment_marker: "#"
allow_ragged_rows: true
encoding: latin1
output: json
workers: 2
null_values: ["?", "NA"]
database:
  driver: duckdb
  dsn: data.duckdb
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "#", cfg.CommentMarker)
	assert.True(t, cfg.AllowRaggedRows)
	assert.Equal(t, "latin1", cfg.Encoding)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 10, cfg.PreviewRows)
	assert.Equal(t, []string{"?", "NA"}, cfg.NullValues)
	assert.Equal(t, DatabaseConfig{Driver: "duckdb", DSN: "data.duckdb"}, cfg.Database)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	cfgPath := writeConfig(t, root, "preview_rows: 3\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.PreviewRows)

	// t.TempDir may sit behind a symlink, so compare resolved paths.
	want, err := filepath.EvalSymlinks(cfgPath)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(GetConfigFileUsed())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, t.TempDir(), "comment_marker: \"#\"\n")
	t.Setenv("ARFFKIT_COMMENT_MARKER", ";")

	flags := testFlags()
	require.NoError(t, flags.Set("comment-marker", "//"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "//", cfg.CommentMarker, "flag value should override config file and env var")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, t.TempDir(), "comment_marker: \"#\"\ndatabase:\n  driver: duckdb\n")
	t.Setenv("ARFFKIT_COMMENT_MARKER", ";")
	t.Setenv("ARFFKIT_DATABASE_DRIVER", "postgres")
	t.Setenv("ARFFKIT_NULL_VALUES", "NA,N/A")

	// Flags exist but are not set, so Changed is false and env wins.
	cfg, err := LoadConfig(cfgPath, testFlags())
	require.NoError(t, err)
	assert.Equal(t, ";", cfg.CommentMarker)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, []string{"NA", "N/A"}, cfg.NullValues)
}

func TestLoadConfig_FlagMapping(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	flags := testFlags()
	require.NoError(t, flags.Set("allow-ragged-rows", "true"))
	require.NoError(t, flags.Set("driver", "duckdb"))
	require.NoError(t, flags.Set("null-values", "NA"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.True(t, cfg.AllowRaggedRows)
	assert.Equal(t, "duckdb", cfg.Database.Driver)
	assert.Equal(t, []string{"NA"}, cfg.NullValues)
}

func TestLoadConfig_ExpandsDSN(t *testing.T) {
	ResetConfig()
	t.Setenv("ARFFKIT_TEST_PG_HOST", "db.internal")
	cfgPath := writeConfig(t, t.TempDir(), `database:
  driver: postgres
  dsn: postgres://${ARFFKIT_TEST_PG_HOST}/arff?password=${ARFFKIT_TEST_UNSET}
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db.internal/arff?password=${ARFFKIT_TEST_UNSET}", cfg.Database.DSN)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, t.TempDir(), "workers: 0\n")

	_, err := LoadConfig(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be at least 1")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			CommentMarker: "%",
			Encoding:      "utf-8",
			OutputFormat:  "auto",
			Workers:       1,
			Database:      DatabaseConfig{Driver: "sqlite"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "upper case values", mutate: func(c *Config) {
			c.Encoding = "LATIN1"
			c.OutputFormat = "Markdown"
			c.Database.Driver = "DuckDB"
		}},
		{name: "empty comment marker", mutate: func(c *Config) { c.CommentMarker = "" }, errSubstr: "comment_marker"},
		{name: "unknown encoding", mutate: func(c *Config) { c.Encoding = "ebcdic" }, errSubstr: "unsupported encoding"},
		{name: "unknown output", mutate: func(c *Config) { c.OutputFormat = "html" }, errSubstr: "invalid output format"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, errSubstr: "arffkit.yaml"},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, errSubstr: "workers"},
		{name: "negative preview", mutate: func(c *Config) { c.PreviewRows = -1 }, errSubstr: "preview_rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "comment_marker", envKey("ARFFKIT_COMMENT_MARKER"))
	assert.Equal(t, "database.dsn", envKey("ARFFKIT_DATABASE_DSN"))
	assert.Equal(t, "preview_rows", envKey("ARFFKIT_PREVIEW_ROWS"))
}

func TestGetConfig(t *testing.T) {
	assert.Equal(t, Default(), GetConfig(context.Background()))

	cfg := &Config{CommentMarker: "#"}
	ctx := context.WithValue(context.Background(), ConfigKey(), cfg)
	assert.Same(t, cfg, GetConfig(ctx))
}

func TestGetLogger_FallsBackToDiscard(t *testing.T) {
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), 12))
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{CommentMarker: "#", AllowRaggedRows: true, NullValues: []string{"NA"},
		Database: DatabaseConfig{Driver: "duckdb", DSN: "x.duckdb"}}

	opts := cfg.ParseOptions(nil)
	assert.Equal(t, "#", opts.CommentMarker)
	assert.True(t, opts.AllowRaggedRows)

	sc := cfg.StoreConfig(nil)
	assert.Equal(t, "duckdb", sc.Driver)
	assert.Equal(t, "x.duckdb", sc.DSN)
	assert.Equal(t, []string{"NA"}, sc.NullValues)
}
