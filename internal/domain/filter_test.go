package domain

import (
	"math"
	"testing"
)

func TestParseRoomFilter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []uint64 // nil means absent filter
	}{
		{"empty string", "", nil},
		{"single id", "123", []uint64{123}},
		{"multiple ids", "123,456", []uint64{123, 456}},
		{"whitespace tolerated", " 123 , 456 ", []uint64{123, 456}},
		{"bad entries dropped", "123,abc,-7,456", []uint64{123, 456}},
		{"only bad entries", "abc,-7,", nil},
		{"max uint64", "18446744073709551615", []uint64{math.MaxUint64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ParseRoomFilter(tt.raw)
			if tt.want == nil {
				if filter != nil {
					t.Fatalf("ParseRoomFilter(%q) = %v, want absent filter", tt.raw, filter)
				}
				return
			}
			if len(filter) != len(tt.want) {
				t.Fatalf("ParseRoomFilter(%q) has %d entries, want %d", tt.raw, len(filter), len(tt.want))
			}
			for _, id := range tt.want {
				if _, ok := filter[id]; !ok {
					t.Errorf("ParseRoomFilter(%q) missing %d", tt.raw, id)
				}
			}
		})
	}
}

func TestRoomFilter_Allows(t *testing.T) {
	var absent RoomFilter
	if !absent.Allows(123) || !absent.Allows(-1) || !absent.Allows(0) {
		t.Error("absent filter must allow every room")
	}

	filter := ParseRoomFilter("123,456")
	if !filter.Allows(123) || !filter.Allows(456) {
		t.Error("filter rejects listed rooms")
	}
	if filter.Allows(789) {
		t.Error("filter allows unlisted room 789")
	}
	if filter.Allows(-123) {
		t.Error("filter allows -123; the wrapped value is not in the set")
	}
}

// The wire carries int64 room IDs while the filter stores uint64; the
// comparison wraps negative IDs two's-complement style instead of bounds
// checking. This pins down the (dubious but intentional) behavior.
func TestRoomFilter_Allows_NarrowingWraps(t *testing.T) {
	filter := ParseRoomFilter("18446744073709551615")
	if !filter.Allows(-1) {
		t.Error("room -1 must wrap to MaxUint64 and match")
	}
	if filter.Allows(1) {
		t.Error("room 1 must not match")
	}
}
