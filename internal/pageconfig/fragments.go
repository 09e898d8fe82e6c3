package pageconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// fragmentFileName is the file an installed extension drops next to its
// assets to contribute partial page configuration.
const fragmentFileName = "page_config.json"

// DiscoverFragments scans the given extension roots, in order, for
// page_config.json fragments and returns them in merge order: the root's own
// fragment first, then one per subdirectory in lexical order.
//
// A missing root or a missing fragment file is not an error. A fragment that
// exists but cannot be read or parsed IS an error and aborts discovery:
// silently dropping configuration is considered more dangerous than a loud
// failure.
func DiscoverFragments(roots []string) ([]PageConfig, error) {
	var fragments []PageConfig

	for _, root := range roots {
		frag, ok, err := readFragment(filepath.Join(root, fragmentFileName))
		if err != nil {
			return nil, err
		}
		if ok {
			fragments = append(fragments, frag)
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			// a configured-but-absent extension root contributes nothing
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			frag, ok, err := readFragment(filepath.Join(root, entry.Name(), fragmentFileName))
			if err != nil {
				return nil, err
			}
			if ok {
				fragments = append(fragments, frag)
			}
		}
	}

	return fragments, nil
}

// readFragment loads a single fragment file. Fragments may carry comments and
// trailing commas; they are converted to strict JSON before decoding.
func readFragment(path string) (PageConfig, bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading page config fragment %s: %w", path, err)
	}

	var frag PageConfig
	if err := json.Unmarshal(jsonc.ToJSON(raw), &frag); err != nil {
		return nil, false, fmt.Errorf("malformed page config fragment %s: %w", path, err)
	}

	return frag, true, nil
}
