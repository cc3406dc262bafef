// SPDX-License-Identifier: EPL-2.0

package wavforge_test

import (
	"fmt"
	"os"

	"github.com/ik5/wavforge"
)

// Example_basicUsage demonstrates the most common use case: generating the
// full fixture set, malformed files included, into one directory.
func Example_basicUsage() {
	dir, err := os.MkdirTemp("", "wavforge")
	if err != nil {
		fmt.Printf("tempdir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := wavforge.DefaultConfig()
	cfg.OutputDir = dir
	cfg.SampleRate = 8000
	cfg.Duration = 0.05

	res, err := wavforge.GenerateAll(cfg)
	if err != nil {
		fmt.Printf("generate error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d files, %d described in the manifest\n",
		len(res.Written), len(res.Manifest))
	// Output: Wrote 46 files, 22 described in the manifest
}

// Example_filtered generates only the fixtures whose filename matches a
// substring, useful when iterating on one decoder path.
func Example_filtered() {
	dir, err := os.MkdirTemp("", "wavforge")
	if err != nil {
		fmt.Printf("tempdir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := wavforge.DefaultConfig()
	cfg.OutputDir = dir
	cfg.SampleRate = 8000
	cfg.Duration = 0.05
	cfg.Only = "alaw"

	res, err := wavforge.GenerateAll(cfg)
	if err != nil {
		fmt.Printf("generate error: %v\n", err)
		return
	}

	for _, name := range res.Written {
		fmt.Println(name)
	}
	// Output: sine_alaw_8bit_le_mono.wav
}
