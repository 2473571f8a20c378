// FILE: toml-cfg/generate_test.go
package tomlcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModule lays out a module under a fresh temp root. Keys are
// slash-separated paths relative to the root.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

const libOneSource = `package libone

//tomlcfg:config
type Config struct {
	BufferSize int ` + "`toml:\"buffer_size\" default:\"32\"`" + `
}
`

// TestGenerate tests the full scan, load, resolve, write pipeline
func TestGenerate(t *testing.T) {
	t.Run("FullPipeline", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"cfg.toml":          "[lib-one]\nbuffer_size = 4096\n",
			"lib-one/config.go": libOneSource,
		})

		res, err := Generate(Options{Dir: filepath.Join(root, "lib-one")})
		require.NoError(t, err)
		require.NotNil(t, res.Declaration)

		assert.Equal(t, "lib-one", res.Declaration.Namespace)
		assert.Equal(t, filepath.Join(root, "cfg.toml"), res.ConfigPath)
		assert.Equal(t, filepath.Join(root, "lib-one", "tomlcfg_gen.go"), res.OutputPath)

		written, err := os.ReadFile(res.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, res.Source, written)
		assert.Contains(t, string(written), "var CONFIG = Config{")
		assert.Contains(t, string(written), "BufferSize: 4096,")
	})

	t.Run("DefaultsWithoutConfigFile", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"lib-one/config.go": libOneSource,
		})

		res, err := Generate(Options{Dir: filepath.Join(root, "lib-one")})
		require.NoError(t, err)

		assert.Equal(t, "", res.ConfigPath)
		assert.Contains(t, string(res.Source), "BufferSize: 32,")
	})

	t.Run("NoDeclarationWritesNothing", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":        "module example.test\n\ngo 1.24\n",
			"plain/code.go": "package plain\n\nfunc F() int { return 1 }\n",
		})

		res, err := Generate(Options{Dir: filepath.Join(root, "plain")})
		require.NoError(t, err)
		assert.Nil(t, res.Declaration)

		_, statErr := os.Stat(filepath.Join(root, "plain", DefaultOutputFile))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("RequireConfigFailsWithoutFile", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"lib-one/config.go": libOneSource,
		})

		_, err := Generate(Options{Dir: filepath.Join(root, "lib-one"), RequireConfig: true})
		assert.ErrorIs(t, err, ErrConfigNotFound)
		assert.Contains(t, err.Error(), "TOML_CFG=require_cfg_present")
	})

	t.Run("ExplicitConfigPath", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"alt.toml":          "[lib-one]\nbuffer_size = 99\n",
			"cfg.toml":          "[lib-one]\nbuffer_size = 4096\n",
			"lib-one/config.go": libOneSource,
		})

		res, err := Generate(Options{
			Dir:        filepath.Join(root, "lib-one"),
			ConfigPath: filepath.Join(root, "alt.toml"),
		})
		require.NoError(t, err)
		assert.Contains(t, string(res.Source), "BufferSize: 99,")
	})

	t.Run("ExplicitConfigPathMustExist", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"lib-one/config.go": libOneSource,
		})

		_, err := Generate(Options{
			Dir:        filepath.Join(root, "lib-one"),
			ConfigPath: filepath.Join(root, "nope.toml"),
		})
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("MissingRequiredDiagnostic", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":   "module example.test\n\ngo 1.24\n",
			"cfg.toml": "[failing-config]\nwifi_passkey = \"my_password\"\n",
			"failing-config/config.go": `package failingconfig

//tomlcfg:config
type Config struct {
	WifiSSID    string ` + "`toml:\"wifi_ssid\" required:\"true\"`" + `
	WifiPasskey string ` + "`toml:\"wifi_passkey\" default:\"\"`" + `
}
`,
		})

		_, err := Generate(Options{Dir: filepath.Join(root, "failing-config")})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequired)
		assert.Contains(t, err.Error(), "Field `wifi_ssid`: required but no value was provided in the config file.")
		assert.Contains(t, err.Error(), `namespace "failing-config"`)
		assert.Contains(t, err.Error(), "config.go:5")

		_, statErr := os.Stat(filepath.Join(root, "failing-config", DefaultOutputFile))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("TypeMismatchDiagnostic", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"cfg.toml":          "[lib-one]\nbuffer_size = \"big\"\n",
			"lib-one/config.go": libOneSource,
		})

		_, err := Generate(Options{Dir: filepath.Join(root, "lib-one")})
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Contains(t, err.Error(), "expected integer value, found string")
	})

	t.Run("VarNameOverride", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"lib-one/config.go": libOneSource,
		})

		res, err := Generate(Options{Dir: filepath.Join(root, "lib-one"), VarName: "BUILD_CFG"})
		require.NoError(t, err)
		assert.Contains(t, string(res.Source), "var BUILD_CFG = Config{")
	})

	t.Run("CustomOutputName", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"lib-one/config.go": libOneSource,
		})

		res, err := Generate(Options{Dir: filepath.Join(root, "lib-one"), Output: "config_gen.go"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "lib-one", "config_gen.go"), res.OutputPath)

		_, err = os.Stat(res.OutputPath)
		assert.NoError(t, err)
	})

	t.Run("RegenerationIsStable", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"cfg.toml":          "[lib-one]\nbuffer_size = 4096\n",
			"lib-one/config.go": libOneSource,
		})
		dir := filepath.Join(root, "lib-one")

		first, err := Generate(Options{Dir: dir})
		require.NoError(t, err)

		// The second run rescans a directory that now contains the
		// generated file; it must be skipped, not treated as a duplicate
		// declaration.
		second, err := Generate(Options{Dir: dir})
		require.NoError(t, err)
		assert.Equal(t, first.Source, second.Source)
	})

	t.Run("NamespaceOverride", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"cfg.toml":          "[custom-ns]\nbuffer_size = 777\n",
			"lib-one/config.go": libOneSource,
		})

		res, err := Generate(Options{Dir: filepath.Join(root, "lib-one"), Namespace: "custom-ns"})
		require.NoError(t, err)
		assert.Contains(t, string(res.Source), "BufferSize: 777,")
	})
}

// TestCheck tests staleness detection against the file on disk
func TestCheck(t *testing.T) {
	freshModule := func(t *testing.T) (string, string) {
		t.Helper()
		root := writeModule(t, map[string]string{
			"go.mod":            "module example.test\n\ngo 1.24\n",
			"cfg.toml":          "[lib-one]\nbuffer_size = 4096\n",
			"lib-one/config.go": libOneSource,
		})
		return root, filepath.Join(root, "lib-one")
	}

	t.Run("UpToDate", func(t *testing.T) {
		_, dir := freshModule(t)
		_, err := Generate(Options{Dir: dir})
		require.NoError(t, err)

		_, err = Check(Options{Dir: dir})
		assert.NoError(t, err)
	})

	t.Run("MissingOutput", func(t *testing.T) {
		_, dir := freshModule(t)

		res, err := Check(Options{Dir: dir})
		assert.ErrorIs(t, err, ErrStaleOutput)
		assert.Contains(t, err.Error(), "does not exist")
		require.NotNil(t, res)
		assert.Equal(t, filepath.Join(dir, DefaultOutputFile), res.OutputPath)
	})

	t.Run("StaleAfterConfigChange", func(t *testing.T) {
		root, dir := freshModule(t)
		_, err := Generate(Options{Dir: dir})
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(root, "cfg.toml"),
			[]byte("[lib-one]\nbuffer_size = 512\n"), 0644))

		_, err = Check(Options{Dir: dir})
		assert.ErrorIs(t, err, ErrStaleOutput)
		assert.Contains(t, err.Error(), "run go generate")
	})

	t.Run("StaleAfterDeclarationChange", func(t *testing.T) {
		root, dir := freshModule(t)
		_, err := Generate(Options{Dir: dir})
		require.NoError(t, err)

		changed := `package libone

//tomlcfg:config
type Config struct {
	BufferSize int ` + "`toml:\"buffer_size\" default:\"64\"`" + `
	Retries    int ` + "`toml:\"retries\" default:\"3\"`" + `
}
`
		require.NoError(t, os.WriteFile(filepath.Join(root, "lib-one", "config.go"), []byte(changed), 0644))

		_, err = Check(Options{Dir: dir})
		assert.ErrorIs(t, err, ErrStaleOutput)
	})

	t.Run("CheckNeverWrites", func(t *testing.T) {
		_, dir := freshModule(t)

		_, err := Check(Options{Dir: dir})
		assert.ErrorIs(t, err, ErrStaleOutput)

		_, statErr := os.Stat(filepath.Join(dir, DefaultOutputFile))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("NoDeclarationIsClean", func(t *testing.T) {
		root := writeModule(t, map[string]string{
			"go.mod":        "module example.test\n\ngo 1.24\n",
			"plain/code.go": "package plain\n\nfunc F() {}\n",
		})

		res, err := Check(Options{Dir: filepath.Join(root, "plain")})
		require.NoError(t, err)
		assert.Nil(t, res.Declaration)
	})
}
