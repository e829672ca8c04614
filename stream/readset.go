package stream

import "github.com/bits-and-blooms/bitset"

// readSet is the at-most-once read-bitset tracker described in spec §4.1
// "Read-bitset tracker" and §9 "At-most-once read enforcement". It marks
// every input byte that has been semantically consumed by the decoded
// structure, so that pointer-aware decoding can detect overlapping reads
// (the DoS guard of §4.7) and the finish() check can demand full coverage.
//
// Backed by [bitset.BitSet], a []uint64-chunked dense bitset that performs
// whole-word OR for range operations, giving the O(len/word) range-mark
// behavior spec §4.1 requires for multi-gigabyte buffers.
type readSet struct {
	bits *bitset.BitSet
	size int
}

// newReadSet allocates a tracker sized to cover a buffer of n bytes. It is
// allocated lazily — only the first call to [Reader.EnablePtr] constructs
// one.
func newReadSet(n int) *readSet {
	return &readSet{bits: bitset.New(uint(n)), size: n}
}

// markRange marks [pos, pos+n) as read. It returns false without modifying
// the set if allowRewrite is false and any byte in the range was already
// marked (spec §3 invariant 4).
//
// This operates directly on the bitset's backing []uint64 words (via
// [bitset.BitSet.Bytes], which exposes the live backing array rather than a
// copy) so that a range spanning many words is a handful of whole-word ORs
// instead of a per-bit loop: O(len/64), not O(len).
func (r *readSet) markRange(pos, n int, allowRewrite bool) bool {
	if n == 0 {
		return true
	}
	words := r.bits.Bytes()
	startWord := pos / 64
	endWord := (pos + n - 1) / 64

	if !allowRewrite {
		for w := startWord; w <= endWord; w++ {
			if words[w]&rangeMask(pos, n, w) != 0 {
				return false
			}
		}
	}
	for w := startWord; w <= endWord; w++ {
		words[w] |= rangeMask(pos, n, w)
	}
	return true
}

// rangeMask returns the mask of bits belonging to [pos, pos+n) that fall
// within word index w, i.e. bit positions [64*w, 64*w+64).
func rangeMask(pos, n, w int) uint64 {
	lo := 0
	if pos > w*64 {
		lo = pos - w*64
	}
	hi := 63
	if last := pos + n - 1; last < (w+1)*64-1 {
		hi = last - w*64
	}
	return (^uint64(0) << uint(lo)) & (^uint64(0) >> uint(63-hi))
}

// fullyMarked reports whether every byte in [0, size) has been marked.
func (r *readSet) fullyMarked() bool {
	return r.bits.Count() == uint(r.size)
}

// unmarkedRanges returns the contiguous ranges of unmarked bytes, used to
// build a diagnostic message for finish() failures (spec §4.1 "Error
// messages include the unread ranges in hex").
func (r *readSet) unmarkedRanges() [][2]int {
	var ranges [][2]int
	start := -1
	for i := 0; i < r.size; i++ {
		if !r.bits.Test(uint(i)) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			ranges = append(ranges, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		ranges = append(ranges, [2]int{start, r.size})
	}
	return ranges
}
