// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
)

// Verify re-reads a written little-endian fixture through an independent
// decoder stack and cross-checks it against its manifest entry. A mismatch
// is a generator defect, not something to retry.
//
// Big-endian (RIFX) fixtures are outside the reference decoder's reach and
// are checked by the package tests instead.
func Verify(path string, want Entry) error {
	if err := verifyFormat(path, want); err != nil {
		return err
	}
	return verifyChunks(path)
}

func verifyFormat(path string, want Entry) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return fmt.Errorf("decoding header: %w", err)
	}

	if int(d.NumChans) != want.Channels {
		return fmt.Errorf("%w: channels %d, manifest says %d",
			ErrVerifyMismatch, d.NumChans, want.Channels)
	}
	if int(d.SampleRate) != want.SampleRate {
		return fmt.Errorf("%w: sample rate %d, manifest says %d",
			ErrVerifyMismatch, d.SampleRate, want.SampleRate)
	}
	if int(d.BitDepth) != want.BitsPerSample {
		return fmt.Errorf("%w: bit depth %d, manifest says %d",
			ErrVerifyMismatch, d.BitDepth, want.BitsPerSample)
	}
	if int(d.WavAudioFormat) != want.FormatTag {
		return fmt.Errorf("%w: format tag %d, manifest says %d",
			ErrVerifyMismatch, d.WavAudioFormat, want.FormatTag)
	}

	// Full sample decode only where the reference decoder supports it.
	if want.FormatTag != 1 {
		return nil
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decoding samples: %w", err)
	}
	if frames := buf.NumFrames(); frames != want.SamplesPerChannel {
		return fmt.Errorf("%w: decoded %d frames, manifest says %d",
			ErrVerifyMismatch, frames, want.SamplesPerChannel)
	}

	return nil
}

// verifyChunks walks every chunk to confirm the declared sizes line up with
// the actual byte stream.
func verifyChunks(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	p := riff.New(f)
	if err := p.ParseHeaders(); err != nil {
		return fmt.Errorf("parsing container header: %w", err)
	}

	for {
		chunk, err := p.NextChunk()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("walking chunks: %w", err)
		}
		chunk.Drain()
	}
}
