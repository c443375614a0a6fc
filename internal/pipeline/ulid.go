package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"sync"
	"time"
)

// Job IDs are ULIDs: 48-bit millisecond timestamp plus 80 random bits,
// Crockford Base32 encoded into 26 characters. Within one millisecond a
// sequence number in the random part keeps IDs increasing.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ulidClock hands out (timestamp, sequence) pairs that strictly increase.
// When the sequence is exhausted, or the wall clock steps back, the timestamp
// moves ahead of real time by one millisecond instead of wrapping.
type ulidClock struct {
	mu      sync.Mutex
	lastTS  uint64
	lastSeq uint16
}

func (c *ulidClock) next(now uint64) (uint64, uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case now > c.lastTS:
		c.lastTS = now
		c.lastSeq = 0
	case c.lastSeq == math.MaxUint16:
		c.lastTS++
		c.lastSeq = 0
	default:
		c.lastSeq++
	}
	return c.lastTS, c.lastSeq
}

var jobClock ulidClock

func newJobID() string {
	ts, seq := jobClock.next(uint64(time.Now().UnixMilli()))

	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], ts<<16)
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], seq)

	return encodeULID(b)
}

// NewJobID returns a fresh, time-ordered job identifier.
func NewJobID() string {
	return newJobID()
}

// encodeULID writes the 128 bits as 26 base32 digits, most significant
// first. The leading digit carries only the top 3 bits.
func encodeULID(b [16]byte) string {
	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint64(b[8:16])

	var out [26]byte
	for i := 25; i >= 0; i-- {
		out[i] = crockford[lo&31]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}
