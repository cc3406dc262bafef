package wavforge

import (
	"github.com/ik5/wavforge/fixture"
)

// GenerateAll is a high-level convenience function that runs a full fixture
// generation pass with the given configuration and returns the run result.
//
// It is equivalent to calling fixture.Run directly; the function exists so
// that callers embedding fixture generation into their own test tooling
// need only this package and a Config:
//
//	cfg := wavforge.DefaultConfig()
//	cfg.OutputDir = "testdata/wav"
//	res, err := wavforge.GenerateAll(cfg)
//	if err != nil {
//	    // A run-fatal I/O problem; per-fixture configuration failures are
//	    // reported in res.Failed instead.
//	}
//	fmt.Println(len(res.Written), "files written")
//
// For finer control (generating a single fixture, composing custom
// containers, enumerating the malformed recipes) use the fixture,
// container and evil packages directly.
func GenerateAll(cfg fixture.Config) (*fixture.Result, error) {
	return fixture.Run(cfg)
}

// DefaultConfig returns the documented generation defaults. See
// fixture.DefaultConfig.
func DefaultConfig() fixture.Config {
	return fixture.DefaultConfig()
}
