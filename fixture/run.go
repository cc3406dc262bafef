// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wavforge/container"
	"github.com/ik5/wavforge/evil"
)

// Result summarises one generation run.
type Result struct {
	// Written lists every file written, in write order, malformed included.
	Written []string
	// Manifest holds one entry per well-formed fixture; it is also what was
	// persisted as manifest.json.
	Manifest Manifest
	// Failed maps fixture names to their configuration errors. Failures
	// here did not stop the run and left no file behind.
	Failed map[string]error
}

// Run generates every enabled fixture into cfg.OutputDir and writes the
// manifest once at the end. Configuration errors are fatal for their
// fixture only; I/O errors abort the run before the manifest is written, so
// the manifest never claims a file that did not make it to disk intact.
func Run(cfg Config) (*Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res := &Result{
		Manifest: Manifest{},
		Failed:   map[string]error{},
	}

	for _, f := range Catalog(cfg) {
		data, entry, err := f.Generate()
		if err != nil {
			res.Failed[f.Name] = err
			continue
		}

		path := filepath.Join(cfg.OutputDir, f.Name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Name, err)
		}

		if cfg.Verify && f.Stream.Endian == container.LittleEndian {
			if err := Verify(path, entry); err != nil {
				return nil, fmt.Errorf("verifying %s: %w", f.Name, err)
			}
		}

		res.Manifest[f.Name] = entry
		res.Written = append(res.Written, f.Name)
	}

	if !cfg.SkipEvil {
		for _, r := range evil.Recipes() {
			if !cfg.matches(r.Filename()) {
				continue
			}

			path := filepath.Join(cfg.OutputDir, r.Filename())
			if err := os.WriteFile(path, r.Build(), 0o644); err != nil {
				return nil, fmt.Errorf("writing %s: %w", r.Filename(), err)
			}
			res.Written = append(res.Written, r.Filename())
		}
	}

	if err := res.Manifest.WriteFile(filepath.Join(cfg.OutputDir, ManifestName)); err != nil {
		return nil, err
	}

	return res, nil
}
