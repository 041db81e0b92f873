package graph

// Sequence is an O(1), non-copying view into a byte buffer owned by a
// Graph's arena: a start offset and a length inside a shared backing
// array. Shrinking (Slice) never copies. Growing (extend, used by unify)
// copies only when the fast path described below cannot be taken.
type Sequence struct {
	buf    []byte
	start  int
	length int
}

// newSequence takes ownership of buf and returns a Sequence spanning all
// of it. The caller must not mutate buf afterwards through any other
// reference.
func newSequence(buf []byte) Sequence {
	return Sequence{buf: buf, start: 0, length: len(buf)}
}

// Len returns the number of bytes currently visible through this handle.
func (s Sequence) Len() int { return s.length }

// Bytes returns the visible bytes. The returned slice aliases the arena;
// callers must not retain it past the next mutation of this Node's
// sequence.
func (s Sequence) Bytes() []byte { return s.buf[s.start : s.start+s.length] }

// Slice returns the sub-sequence [from, to) of s, still O(1) and backed by
// the same underlying array.
func (s Sequence) Slice(from, to int) Sequence {
	return Sequence{buf: s.buf, start: s.start + from, length: to - from}
}

// AfterByte returns a 1-byte Sequence view of the byte immediately
// following s's visible window, still backed by the same array and not
// copied. bluntify's even-k branch uses this to materialize the one
// implicit connecting base as its own unit bridge node, mirroring the
// original's pointer-aliasing add_node call exactly: the bridge node's
// sequence is not a copy, it is a one-byte window into the node it split
// off from.
func (s Sequence) AfterByte() Sequence {
	return Sequence{buf: s.buf, start: s.start + s.length, length: 1}
}

// arena is the append-only store backing every Sequence in a Graph.
// Buffers are never freed mid-run: Node sequences sub-slice freely without
// any lifetime tracking, and the occasional in-place growth in unify's
// fast path (extend) relies on the backing array outliving the Node.
type arena struct {
	bufs [][]byte
}

// alloc copies data into a freshly owned buffer and returns a Sequence
// over it.
func (a *arena) alloc(data []byte) Sequence {
	buf := make([]byte, len(data))
	copy(buf, data)
	a.bufs = append(a.bufs, buf)
	return newSequence(buf)
}

// extend grows seq by appending tail, reusing the underlying array in
// place when there is spare capacity beyond seq's current window and the
// bytes already sitting there agree with tail byte-for-byte (the
// arena-reuse fast path spec.md §4.4 describes as an optional
// optimization, never a correctness requirement); otherwise it allocates
// a fresh concatenated buffer. Both paths are observably identical in
// content: only byte-slice identity differs.
func (a *arena) extend(seq Sequence, tail []byte) Sequence {
	bufLen := len(seq.buf)
	avail := bufLen - (seq.start + seq.length)
	if avail >= len(tail) && bytesEqual(seq.buf[seq.start+seq.length:seq.start+seq.length+len(tail)], tail) {
		return Sequence{buf: seq.buf, start: seq.start, length: seq.length + len(tail)}
	}
	out := make([]byte, seq.length+len(tail))
	copy(out, seq.Bytes())
	copy(out[seq.length:], tail)
	a.bufs = append(a.bufs, out)
	return newSequence(out)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
