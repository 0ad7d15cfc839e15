package domain

import (
	"strconv"
	"strings"
)

// RoomFilter is an allow list of room IDs. A nil filter allows every room.
// It is built once at startup and only read afterwards, so request handlers
// can share it without locking.
type RoomFilter map[uint64]struct{}

// ParseRoomFilter builds a RoomFilter from a comma-separated list of room
// IDs. Entries that do not parse as unsigned integers are dropped. If no
// usable entry remains the filter is absent (nil) and every room passes.
func ParseRoomFilter(raw string) RoomFilter {
	filter := make(RoomFilter)
	for _, entry := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(entry), 10, 64)
		if err != nil {
			continue
		}
		filter[id] = struct{}{}
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}

// Allows reports whether the room passes the filter. The wire carries
// signed IDs while the filter stores unsigned ones; the conversion wraps
// negative values two's-complement style rather than rejecting them.
func (f RoomFilter) Allows(roomID int64) bool {
	if f == nil {
		return true
	}
	_, ok := f[uint64(roomID)]
	return ok
}
