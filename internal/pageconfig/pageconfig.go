package pageconfig

import (
	"fmt"

	"dario.cat/mergo"
)

// PageConfig is the mapping delivered to the browser-side application
// describing its runtime configuration: URLs, flags, versions, and anything
// extensions contribute. Keys are camelCase strings; values are scalars or
// nested mappings.
//
// A PageConfig is created fresh per request and must be treated as immutable
// once handed to the template renderer.
type PageConfig = map[string]any

// Update deep-merges src into dst. Nested mappings merge key-by-key
// recursively; scalar and array values from src replace the ones in dst,
// including zero values like false and "" (map entries are untyped, so
// WithOverride replaces any key src carries regardless of zero-ness).
// Empty or nil src layers are tolerated and leave dst untouched; dst must be
// non-nil.
func Update(dst PageConfig, src PageConfig) error {
	if len(src) == 0 {
		return nil
	}

	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging page config: %w", err)
	}

	return nil
}
