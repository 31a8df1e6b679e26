// Package bincodec is a tiny shared binary encoding helper used by the
// automaton and lr packages' MarshalBinary/UnmarshalBinary implementations,
// which internal/cache feeds to github.com/dekarrin/rezi for on-disk
// caching of compiled tables.
package bincodec

import (
	"encoding/binary"
	"fmt"
)

// Writer accumulates a binary-encoded buffer.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Int(v int) *Writer {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(int64(v)))
	w.buf = append(w.buf, tmp[:]...)
	return w
}

func (w *Writer) Byte(b byte) *Writer {
	w.buf = append(w.buf, b)
	return w
}

func (w *Writer) Bool(b bool) *Writer {
	if b {
		return w.Byte(1)
	}
	return w.Byte(0)
}

func (w *Writer) String(s string) *Writer {
	w.Int(len(s))
	w.buf = append(w.buf, s...)
	return w
}

func (w *Writer) Bytes() []byte { return w.buf }

// Reader is a cursor over a byte slice produced by Writer. The first error
// encountered sticks; callers should check Err() once after all reads.
type Reader struct {
	data []byte
	pos  int
	err  error
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

func (r *Reader) Err() error { return r.err }

func (r *Reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.pos+n > len(r.data) {
		r.err = fmt.Errorf("unexpected end of data at offset %d", r.pos)
		return false
	}
	return true
}

func (r *Reader) Int() int {
	if !r.need(8) {
		return 0
	}
	v := int64(binary.BigEndian.Uint64(r.data[r.pos : r.pos+8]))
	r.pos += 8
	return int(v)
}

func (r *Reader) Byte() byte {
	if !r.need(1) {
		return 0
	}
	b := r.data[r.pos]
	r.pos++
	return b
}

func (r *Reader) Bool() bool {
	return r.Byte() != 0
}

func (r *Reader) String() string {
	n := r.Int()
	if n < 0 || !r.need(n) {
		return ""
	}
	s := string(r.data[r.pos : r.pos+n])
	r.pos += n
	return s
}
