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
	"encoding/binary"
	"errors"
	"fmt"
)

// SnapshotError is wrapped by all errors caused by a corrupt or incompatible
// snapshot.
var SnapshotError = errors.New("snapshot error")

// Sink receives named values from a component's SaveState() function.
type Sink interface {
	Put(key string, value []byte)
}

// Source provides named values to a component's LoadState() function. The
// bool return value is false if the key does not exist.
type Source interface {
	Get(key string) ([]byte, bool)
}

// Key returns the snapshot key for the component field.
func Key(component string, field string) string {
	return fmt.Sprintf("%s.%s", component, field)
}

// Saver writes typed fields of a single component to a Sink.
type Saver struct {
	sink      Sink
	component string
}

// NewSaver is the preferred method of initialisation for the Saver type.
func NewSaver(sink Sink, component string) *Saver {
	return &Saver{sink: sink, component: component}
}

// Bytes stores a copy of the byte slice.
func (s *Saver) Bytes(field string, v []byte) {
	c := make([]byte, len(v))
	copy(c, v)
	s.sink.Put(Key(s.component, field), c)
}

func (s *Saver) Bool(field string, v bool) {
	if v {
		s.sink.Put(Key(s.component, field), []byte{1})
	} else {
		s.sink.Put(Key(s.component, field), []byte{0})
	}
}

func (s *Saver) Uint8(field string, v uint8) {
	s.sink.Put(Key(s.component, field), []byte{v})
}

func (s *Saver) Uint16(field string, v uint16) {
	s.sink.Put(Key(s.component, field), binary.BigEndian.AppendUint16(nil, v))
}

// Int stores the value as a signed 64 bit value.
func (s *Saver) Int(field string, v int) {
	s.sink.Put(Key(s.component, field), binary.BigEndian.AppendUint64(nil, uint64(int64(v))))
}

func (s *Saver) Uint64(field string, v uint64) {
	s.sink.Put(Key(s.component, field), binary.BigEndian.AppendUint64(nil, v))
}

// Loader reads typed fields of a single component from a Source. The first
// error is retained and all subsequent reads return zero values.
type Loader struct {
	src       Source
	component string
	err       error
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(src Source, component string) *Loader {
	return &Loader{src: src, component: component}
}

// Err returns the first error encountered by the Loader.
func (l *Loader) Err() error {
	return l.err
}

func (l *Loader) get(field string, size int) []byte {
	if l.err != nil {
		return nil
	}
	k := Key(l.component, field)
	v, ok := l.src.Get(k)
	if !ok {
		l.err = fmt.Errorf("%w: missing field %s", SnapshotError, k)
		return nil
	}
	if size >= 0 && len(v) != size {
		l.err = fmt.Errorf("%w: field %s has length %d, expected %d", SnapshotError, k, len(v), size)
		return nil
	}
	return v
}

// Bytes copies the stored value into dst. The stored value must be the same
// length as dst.
func (l *Loader) Bytes(field string, dst []byte) {
	v := l.get(field, len(dst))
	if v != nil {
		copy(dst, v)
	}
}

func (l *Loader) Bool(field string) bool {
	v := l.get(field, 1)
	if v == nil {
		return false
	}
	return v[0] != 0
}

func (l *Loader) Uint8(field string) uint8 {
	v := l.get(field, 1)
	if v == nil {
		return 0
	}
	return v[0]
}

func (l *Loader) Uint16(field string) uint16 {
	v := l.get(field, 2)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint16(v)
}

func (l *Loader) Int(field string) int {
	v := l.get(field, 8)
	if v == nil {
		return 0
	}
	return int(int64(binary.BigEndian.Uint64(v)))
}

func (l *Loader) Uint64(field string) uint64 {
	v := l.get(field, 8)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}
