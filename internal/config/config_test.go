package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qrstyle "github.com/Mictilt/go-qrstyle"
	"github.com/Mictilt/go-qrstyle/internal/config"
	"github.com/Mictilt/go-qrstyle/writer/standard"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qrstyle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)

	cfg, err := c.RenderConfig()
	require.NoError(t, err)
	assert.Equal(t, standard.DefaultRenderConfig(), cfg)

	level, err := c.ErrorLevel()
	require.NoError(t, err)
	assert.Equal(t, qrstyle.LevelM, level)

	_, err = c.NewEncoder()
	assert.NoError(t, err)
	assert.Equal(t, 1.0, c.Output.PixelRatio)
	assert.Equal(t, 90, c.Output.Quality)
}

func TestLoad_File(t *testing.T) {
	path := writeYAML(t, `
text: hello
level: h
encoder: skip2
render:
  size: 300
  foreground: "#000000"
  gradient:
    enabled: false
  dot-style: liquid
  eye-shape: circle
  title: Menu
logo:
  scale: 0.3
output:
  format: svg
  pixel-ratio: 2
`)

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", c.Text)
	assert.Equal(t, "svg", c.Output.Format)
	assert.Equal(t, 2.0, c.Output.PixelRatio)

	cfg, err := c.RenderConfig()
	require.NoError(t, err)
	assert.Equal(t, 300.0, cfg.Size)
	assert.False(t, cfg.GradientEnabled)
	assert.Equal(t, standard.DotLiquid, cfg.DotStyle)
	assert.Equal(t, standard.EyeCircle, cfg.EyeShape)
	assert.Equal(t, "Menu", cfg.Title)
	assert.Equal(t, 0.3, cfg.LogoScale)

	level, err := c.ErrorLevel()
	require.NoError(t, err)
	assert.Equal(t, qrstyle.LevelH, level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("QRSTYLE_RENDER_DOT_STYLE", "dot")
	t.Setenv("QRSTYLE_TEXT", "from env")

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "from env", c.Text)
	assert.Equal(t, "dot", c.Render.DotStyle)
}

func TestRenderConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"color":      "render:\n  background: \"#zzzzzz\"\n",
		"dot style":  "render:\n  dot-style: star\n",
		"eye shape":  "render:\n  eye-shape: hexagon\n",
		"gradient":   "render:\n  gradient:\n    to: nope\n",
		"size":       "render:\n  size: 0\n",
		"logo scale": "logo:\n  scale: 0.9\n",
		"small logo": "logo:\n  scale: 0.01\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := config.Load(writeYAML(t, body))
			require.NoError(t, err)

			_, err = c.RenderConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
