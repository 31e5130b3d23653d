package nibble

import "testing"

func TestHexPrefixRoundTrip(t *testing.T) {
	cases := []struct {
		path   Path
		isLeaf bool
	}{
		{Path{}, false},
		{Path{}, true},
		{Path{1}, false},
		{Path{1}, true},
		{Path{1, 2}, false},
		{Path{1, 2}, true},
		{Path{0xa, 0xb, 0xc}, false},
		{Path{0xa, 0xb, 0xc}, true},
		{Path{1, 2, 3, 4, 5, 6, 7}, true},
	}
	for _, tc := range cases {
		enc := HexPrefixEncode(tc.path, tc.isLeaf)
		gotPath, gotLeaf, err := HexPrefixDecode(enc)
		if err != nil {
			t.Fatalf("HexPrefixDecode(%x) failed: %v", enc, err)
		}
		if gotLeaf != tc.isLeaf {
			t.Errorf("path %v: isLeaf = %v, want %v", tc.path, gotLeaf, tc.isLeaf)
		}
		if !Equal(gotPath, tc.path) {
			t.Errorf("path %v: decoded %v", tc.path, gotPath)
		}
	}
}

// TestHexPrefixFlagNibble pins the four flag values from spec.md §6:
// 0 extension-even, 1 extension-odd, 2 leaf-even, 3 leaf-odd.
func TestHexPrefixFlagNibble(t *testing.T) {
	tests := []struct {
		path     Path
		isLeaf   bool
		wantFlag byte
	}{
		{Path{1, 2}, false, 0},
		{Path{1}, false, 1},
		{Path{1, 2}, true, 2},
		{Path{1}, true, 3},
	}
	for _, tc := range tests {
		enc := HexPrefixEncode(tc.path, tc.isLeaf)
		gotFlag := enc[0] >> 4
		if gotFlag != tc.wantFlag {
			t.Errorf("path=%v isLeaf=%v: flag nibble = %d, want %d", tc.path, tc.isLeaf, gotFlag, tc.wantFlag)
		}
	}
}

func TestHexPrefixDecodeRejectsInvalidFlag(t *testing.T) {
	// Flag nibble 0xF has bits set outside {odd, leaf}.
	_, _, err := HexPrefixDecode([]byte{0xF0})
	if err == nil {
		t.Fatal("expected error decoding an out-of-range flag nibble")
	}
}

func TestHexPrefixDecodeRejectsEmpty(t *testing.T) {
	_, _, err := HexPrefixDecode(nil)
	if err == nil {
		t.Fatal("expected error decoding an empty encoding")
	}
}
