package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRelativePaths(t *testing.T) {
	const baseDir = "/projects/app"

	t.Run("build made absolute", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{"build": "./web"},
		}
		ResolveRelativePaths(doc, baseDir)
		assert.Equal(t, "/projects/app/web", doc["web"].(map[string]any)["build"])
	})

	t.Run("absolute build untouched", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{"build": "/elsewhere/web"},
		}
		ResolveRelativePaths(doc, baseDir)
		assert.Equal(t, "/elsewhere/web", doc["web"].(map[string]any)["build"])
	})

	t.Run("volume host side made absolute", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{
				"volumes": []any{"./data:/var/lib/data", "cache:/cache:ro"},
			},
		}
		ResolveRelativePaths(doc, baseDir)
		volumes := doc["web"].(map[string]any)["volumes"].([]string)
		assert.Equal(t, "/projects/app/data:/var/lib/data", volumes[0])
		assert.Equal(t, "/projects/app/cache:/cache:ro", volumes[1])
	})

	t.Run("volume without separator untouched", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{
				"volumes": []any{"datavolume"},
			},
		}
		ResolveRelativePaths(doc, baseDir)
		volumes := doc["web"].(map[string]any)["volumes"].([]string)
		assert.Equal(t, "datavolume", volumes[0])
	})

	t.Run("empty volumes dropped", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{
				"image":   "nginx",
				"volumes": []any{},
			},
		}
		ResolveRelativePaths(doc, baseDir)
		_, exists := doc["web"].(map[string]any)["volumes"]
		assert.False(t, exists)
	})

	t.Run("env_file entries made absolute", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{
				"env_file": []any{".env", "secrets/.env"},
			},
		}
		ResolveRelativePaths(doc, baseDir)
		envFiles := doc["web"].(map[string]any)["env_file"].([]string)
		assert.Equal(t, "/projects/app/.env", envFiles[0])
		assert.Equal(t, "/projects/app/secrets/.env", envFiles[1])
	})

	t.Run("extends file made absolute", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{
				"extends": map[string]any{
					"file":    "common.yml",
					"service": "base-web",
				},
			},
		}
		ResolveRelativePaths(doc, baseDir)
		extends := doc["web"].(map[string]any)["extends"].(map[string]any)
		assert.Equal(t, "/projects/app/common.yml", extends["file"])
		assert.Equal(t, "base-web", extends["service"])
	})

	t.Run("opaque fields untouched", func(t *testing.T) {
		doc := Document{
			"web": map[string]any{
				"image":   "nginx",
				"command": "./start.sh",
				"labels":  map[string]any{"path": "./local"},
			},
		}
		ResolveRelativePaths(doc, baseDir)
		web := doc["web"].(map[string]any)
		assert.Equal(t, "./start.sh", web["command"])
		assert.Equal(t, "./local", web["labels"].(map[string]any)["path"])
	})

	t.Run("non-mapping top level values skipped", func(t *testing.T) {
		doc := Document{
			"version": "2",
			"web":     map[string]any{"build": "."},
		}
		require.NotPanics(t, func() { ResolveRelativePaths(doc, baseDir) })
		assert.Equal(t, "/projects/app", doc["web"].(map[string]any)["build"])
	})
}
