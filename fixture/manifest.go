// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestName is the filename the manifest is written under, next to the
// fixtures it describes.
const ManifestName = "manifest.json"

// Entry records what a downstream decoder harness should expect from one
// well-formed fixture. Malformed fixtures get no entry; their expected
// behavior is rejection, not metadata.
type Entry struct {
	Channels          int `json:"channels"`
	SampleRate        int `json:"sampleRate"`
	BitsPerSample     int `json:"bitsPerSample"`
	FormatTag         int `json:"formatTag"`
	SamplesPerChannel int `json:"samplesPerChannel"`
}

// Manifest maps fixture filenames to their expected decode metadata. It is
// collected explicitly per run and written once at the end; there is no
// package-level accumulator.
type Manifest map[string]Entry

// WriteFile serializes the manifest as indented JSON.
func (m Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteFile.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return m, nil
}
