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

package state

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Signature is the first line of a serialised snapshot.
const Signature = "gopher6800 snapshot"

// Version of the snapshot format. Snapshots with a different version cannot
// be read.
const Version = 1

const sep = " :: "

// Snapshot is an in-memory collection of component state. It implements both
// the Sink and Source interfaces.
type Snapshot struct {
	values map[string][]byte
}

// NewSnapshot is the preferred method of initialisation for the Snapshot type.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		values: make(map[string][]byte),
	}
}

// Put implements the Sink interface.
func (s *Snapshot) Put(key string, value []byte) {
	s.values[key] = value
}

// Get implements the Source interface.
func (s *Snapshot) Get(key string) ([]byte, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of fields in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.values)
}

// Keys returns all keys in the snapshot in sorted order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Write the snapshot in text form. The first line is the signature, the
// second is the version and every subsequent line is a key followed by the
// value as a hexadecimal string.
func (s *Snapshot) Write(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%s\n", Signature)
	fmt.Fprintf(b, "version%s%d\n", sep, Version)
	for _, k := range s.Keys() {
		fmt.Fprintf(b, "%s%s%s\n", k, sep, hex.EncodeToString(s.values[k]))
	}
	return b.Flush()
}

// Read a snapshot previously created with Write(). Any existing fields in the
// Snapshot are kept unless they are replaced by a field in the input.
func (s *Snapshot) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || scanner.Text() != Signature {
		return fmt.Errorf("%w: invalid signature", SnapshotError)
	}

	if !scanner.Scan() {
		return fmt.Errorf("%w: missing version", SnapshotError)
	}
	k, v, ok := strings.Cut(scanner.Text(), sep)
	if !ok || k != "version" {
		return fmt.Errorf("%w: missing version", SnapshotError)
	}
	ver, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: invalid version: %w", SnapshotError, err)
	}
	if ver != Version {
		return fmt.Errorf("%w: unsupported version %d", SnapshotError, ver)
	}

	line := 2
	for scanner.Scan() {
		line++
		k, v, ok := strings.Cut(scanner.Text(), sep)
		if !ok {
			return fmt.Errorf("%w: malformed entry at line %d", SnapshotError, line)
		}
		d, err := hex.DecodeString(v)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", SnapshotError, line, err)
		}
		s.values[k] = d
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", SnapshotError, err)
	}

	return nil
}
