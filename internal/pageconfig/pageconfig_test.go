package pageconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_ScalarOverride(t *testing.T) {
	dst := PageConfig{"token": "old", "appVersion": "1.0.0"}
	src := PageConfig{"token": "new"}

	require.NoError(t, Update(dst, src))

	assert.Equal(t, "new", dst["token"])
	assert.Equal(t, "1.0.0", dst["appVersion"])
}

func TestUpdate_NestedMappingsMergeKeywise(t *testing.T) {
	dst := PageConfig{
		"plugins": map[string]any{
			"completer": map[string]any{"enabled": true},
			"tooltip":   map[string]any{"delay": float64(300)},
		},
	}
	src := PageConfig{
		"plugins": map[string]any{
			"completer": map[string]any{"caseSensitive": false},
		},
	}

	require.NoError(t, Update(dst, src))

	plugins := dst["plugins"].(map[string]any)
	completer := plugins["completer"].(map[string]any)
	assert.Equal(t, true, completer["enabled"], "untouched nested key survives")
	assert.Equal(t, false, completer["caseSensitive"], "new nested key is merged in")
	assert.Contains(t, plugins, "tooltip", "sibling mapping survives")
}

func TestUpdate_NestedOverrideKeepsSiblings(t *testing.T) {
	dst := PageConfig{
		"nested": map[string]any{"keep": float64(1), "swap": "a", "flag": true},
	}
	src := PageConfig{
		"nested": map[string]any{"swap": "b", "add": float64(2), "flag": false},
	}

	require.NoError(t, Update(dst, src))

	nested := dst["nested"].(map[string]any)
	assert.Equal(t, float64(1), nested["keep"], "key absent from the later layer survives")
	assert.Equal(t, "b", nested["swap"], "key present in the later layer is replaced")
	assert.Equal(t, float64(2), nested["add"], "new key is merged in")
	assert.Equal(t, false, nested["flag"], "false from the later layer wins inside nested maps too")
}

func TestUpdate_ArraysAreReplacedNotConcatenated(t *testing.T) {
	dst := PageConfig{"disabledExtensions": []any{"a", "b"}}
	src := PageConfig{"disabledExtensions": []any{"c"}}

	require.NoError(t, Update(dst, src))

	assert.Equal(t, []any{"c"}, dst["disabledExtensions"])
}

func TestUpdate_FalseAndEmptyValuesOverride(t *testing.T) {
	dst := PageConfig{"customCss": true, "token": "secret"}
	src := PageConfig{"customCss": false, "token": ""}

	require.NoError(t, Update(dst, src))

	assert.Equal(t, false, dst["customCss"])
	assert.Equal(t, "", dst["token"])
}

func TestUpdate_ToleratesEmptyLayers(t *testing.T) {
	dst := PageConfig{"baseUrl": "/"}

	require.NoError(t, Update(dst, nil))
	require.NoError(t, Update(dst, PageConfig{}))

	assert.Equal(t, PageConfig{"baseUrl": "/"}, dst)
}

// TestUpdate_Associative verifies that merging fragments [A, B] then C yields
// the same result as merging [A, B, C] as one ordered sequence.
func TestUpdate_Associative(t *testing.T) {
	a := PageConfig{"x": float64(1), "nested": map[string]any{"p": "a"}}
	b := PageConfig{"x": float64(2), "nested": map[string]any{"q": "b"}}
	c := PageConfig{"nested": map[string]any{"p": "c"}}

	grouped := PageConfig{}
	require.NoError(t, Update(grouped, a))
	require.NoError(t, Update(grouped, b))
	intermediate := PageConfig{}
	require.NoError(t, Update(intermediate, grouped))
	require.NoError(t, Update(intermediate, c))

	sequential := PageConfig{}
	for _, frag := range []PageConfig{a, b, c} {
		require.NoError(t, Update(sequential, frag))
	}

	assert.Equal(t, sequential, intermediate)
}
