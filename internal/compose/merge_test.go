package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name    string
		base    Document
		overlay Document
		want    Document
	}{
		{
			name: "basic dict merge overlay wins",
			base: Document{
				"key1": "base1",
				"key2": "base2",
			},
			overlay: Document{
				"key2": "overlay2",
				"key3": "overlay3",
			},
			want: Document{
				"key1": "base1",
				"key2": "overlay2",
				"key3": "overlay3",
			},
		},
		{
			name: "nested dict merge recursive",
			base: Document{
				"web": map[string]any{
					"image":   "nginx",
					"restart": "always",
				},
			},
			overlay: Document{
				"web": map[string]any{
					"image": "nginx:1.27",
					"ports": []any{"80:80"},
				},
			},
			want: Document{
				"web": map[string]any{
					"image":   "nginx:1.27",
					"restart": "always",
					"ports":   []any{"80:80"},
				},
			},
		},
		{
			name: "lists replace",
			base: Document{
				"web": map[string]any{
					"ports": []any{"80", "443"},
				},
			},
			overlay: Document{
				"web": map[string]any{
					"ports": []any{"8080"},
				},
			},
			want: Document{
				"web": map[string]any{
					"ports": []any{"8080"},
				},
			},
		},
		{
			name:    "empty base",
			base:    Document{},
			overlay: Document{"key": "value"},
			want:    Document{"key": "value"},
		},
		{
			name:    "empty overlay",
			base:    Document{"key": "value"},
			overlay: Document{},
			want:    Document{"key": "value"},
		},
		{
			name:    "nil base",
			base:    nil,
			overlay: Document{"key": "value"},
			want:    Document{"key": "value"},
		},
		{
			name: "deeply nested merge",
			base: Document{
				"level1": map[string]any{
					"level2": map[string]any{
						"level3": "base",
					},
				},
			},
			overlay: Document{
				"level1": map[string]any{
					"level2": map[string]any{
						"level3": "overlay",
						"new":    "added",
					},
				},
			},
			want: Document{
				"level1": map[string]any{
					"level2": map[string]any{
						"level3": "overlay",
						"new":    "added",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.base, tt.overlay)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeepMerge_NoMutationOfOriginals(t *testing.T) {
	base := Document{
		"web": map[string]any{
			"image": "nginx",
		},
	}
	overlay := Document{
		"web": map[string]any{
			"image": "nginx:1.27",
		},
	}

	result := DeepMerge(base, overlay)
	result["web"].(map[string]any)["image"] = "modified"

	assert.Equal(t, "nginx", base["web"].(map[string]any)["image"])
	assert.Equal(t, "nginx:1.27", overlay["web"].(map[string]any)["image"])
}

func TestDeepCopy(t *testing.T) {
	t.Run("mutating the copy leaves the original alone", func(t *testing.T) {
		original := Document{
			"web": map[string]any{
				"image": "nginx",
				"links": []any{"db:db"},
			},
		}

		copied := DeepCopy(original)
		copied["web"].(map[string]any)["image"] = "modified"
		copied["web"].(map[string]any)["links"].([]any)[0] = "modified"

		assert.Equal(t, "nginx", original["web"].(map[string]any)["image"])
		assert.Equal(t, "db:db", original["web"].(map[string]any)["links"].([]any)[0])
	})

	t.Run("copies are structurally equal", func(t *testing.T) {
		original := Document{
			"web": map[string]any{"image": "nginx"},
		}
		assert.Equal(t, original, DeepCopy(original))
	})

	t.Run("nil document", func(t *testing.T) {
		copied := DeepCopy(nil)
		assert.NotNil(t, copied)
		assert.Empty(t, copied)
	})

	t.Run("string slices copied", func(t *testing.T) {
		original := Document{
			"web": map[string]any{
				"env_file": []string{"/a/.env"},
			},
		}
		copied := DeepCopy(original)
		copied["web"].(map[string]any)["env_file"].([]string)[0] = "modified"
		assert.Equal(t, "/a/.env", original["web"].(map[string]any)["env_file"].([]string)[0])
	})
}
