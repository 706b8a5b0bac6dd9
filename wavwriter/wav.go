// This file is part of Gopher6800.
//
// Gopher6800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6800.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	tone "github.com/jetsetilly/gopher6800/hardware/audio"
	"github.com/jetsetilly/gopher6800/logger"
)

// the bit depth of the samples in the WAV file. the tone generator produces
// samples that fit comfortably in 16 bits
const bitDepth = 16

// WAV audio format value for uncompressed PCM data
const formatPCM = 1

// WavWriter collects mono samples and writes them to a WAV file.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavwriter: bad sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// Write adds samples to the end of the audio data.
func (aw *WavWriter) Write(samples []int) {
	aw.buffer = append(aw.buffer, samples...)
}

// Len returns the number of samples collected so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Record renders the output of the tone generator in real time, one buffer at
// a time, until the context is cancelled.
func (aw *WavWriter) Record(ctx context.Context, gen *tone.Generator, bufferSize int) error {
	if gen.SampleRate() != aw.sampleRate {
		return fmt.Errorf("wavwriter: generator sample rate (%d) does not match file (%d)", gen.SampleRate(), aw.sampleRate)
	}
	if bufferSize <= 0 {
		return fmt.Errorf("wavwriter: bad buffer size (%d)", bufferSize)
	}

	buf := make([]int, bufferSize)

	ticker := time.NewTicker(time.Duration(bufferSize) * time.Second / time.Duration(aw.sampleRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			gen.Render(buf)
			aw.Write(buf)
		}
	}
}

// EndMixing writes the collected audio data to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, formatPCM)

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	// closing the encoder writes the header
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}

// Reset discards all collected audio data.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
