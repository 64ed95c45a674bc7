package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[groups.db.commands]
start = "pg_ctl start"
stop = "pg_ctl stop"

[groups.web.connections]
deploy = "make deploy"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOMLMergesLegacyConnections(t *testing.T) {
	path := writeFile(t, "config.toml", sampleTOML)

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"deploy": "make deploy"}, cfg.Groups["web"].Commands)
	assert.Nil(t, cfg.Groups["web"].Connections)
	assert.Equal(t, DefaultShell, cfg.ShellOrDefault())

	catalog := cfg.Catalog()
	assert.Equal(t, []string{"db", "web"}, catalog.GroupNames())
	cmd, ok := catalog.Lookup("db", "stop")
	require.True(t, ok)
	assert.Equal(t, "pg_ctl stop", cmd)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
shell: /bin/bash
groups:
  db:
    commands:
      start: pg_ctl start
  legacy:
    connections:
      ssh: ssh prod
`)
	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/bin/bash", cfg.ShellOrDefault())
	assert.Equal(t, "ssh prod", cfg.Groups["legacy"].Commands["ssh"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeFile(t, "config.toml", "[groups.db.commands\nstart = 1")
	_, err := NewConfigService().LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestDuplicateCommandIsRejected(t *testing.T) {
	path := writeFile(t, "config.toml", `
[groups.db.commands]
start = "pg_ctl start"
[groups.db.connections]
start = "other"
`)
	_, err := NewConfigService().LoadFromPath(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateCommand))
}

func TestEmptyConfigYieldsEmptyCatalog(t *testing.T) {
	path := writeFile(t, "config.toml", "")
	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Catalog().Len())
}

func TestEmptyCommands(t *testing.T) {
	cfg, err := Parse([]byte(`
[groups.b.commands]
x = ""
y = "ok"
[groups.a.commands]
z = "  "
`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []EmptyCommand{{Group: "a", Command: "z"}, {Group: "b", Command: "x"}}, cfg.EmptyCommands())
}

func TestSaveRoundTrip(t *testing.T) {
	svc := NewConfigService()
	for _, name := range []string{"out.toml", "out.yml"} {
		path := filepath.Join(t.TempDir(), "nested", name)
		require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

		cfg, err := svc.LoadFromPath(path)
		require.NoError(t, err, name)
		assert.Equal(t, DefaultConfig().Groups, cfg.Groups, name)
		assert.Equal(t, DefaultShell, cfg.Shell, name)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/env/config.toml")
	path, err := ResolvePath("/flag/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config.toml", path)

	path, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config.toml", path)

	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", "/home/tester")
	path, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".ch", "config.toml"), path)
}
