package nibble

import "fmt"

// flag nibble bits, per spec: bit1 (value 2) selects leaf vs
// extension, bit0 (value 1) selects odd vs even remaining length.
const (
	flagOddBit  = 0x1
	flagLeafBit = 0x2
)

// HexPrefixEncode compresses a nibble path plus the is-leaf flag into
// the compact byte-string encoding used inside Leaf and Extension
// node encodings: a leading flag nibble (2*isLeaf + isOdd), a zero pad
// nibble if the remaining length is even, then the nibbles packed two
// per byte.
func HexPrefixEncode(p Path, isLeaf bool) []byte {
	odd := len(p)%2 == 1
	flag := byte(0)
	if isLeaf {
		flag |= flagLeafBit
	}
	if odd {
		flag |= flagOddBit
	}

	var firstByteNibbles Path
	if odd {
		firstByteNibbles = Path{flag, p[0]}
	} else {
		firstByteNibbles = Path{flag, 0}
	}
	rest := p
	if odd {
		rest = p[1:]
	}

	out := make([]byte, 1+len(rest)/2)
	out[0] = firstByteNibbles[0]<<4 | firstByteNibbles[1]
	for i := 0; i < len(rest); i += 2 {
		out[1+i/2] = rest[i]<<4 | rest[i+1]
	}
	return out
}

// HexPrefixDecode is the inverse of HexPrefixEncode. It rejects byte
// strings whose flag nibble has bits set outside {odd, leaf}.
func HexPrefixDecode(enc []byte) (p Path, isLeaf bool, err error) {
	if len(enc) == 0 {
		return nil, false, fmt.Errorf("nibble: hex-prefix encoding must be at least one byte")
	}
	flag := enc[0] >> 4
	if flag&^(flagOddBit|flagLeafBit) != 0 {
		return nil, false, fmt.Errorf("nibble: invalid hex-prefix flag nibble %#x", flag)
	}
	isLeaf = flag&flagLeafBit != 0
	odd := flag&flagOddBit != 0

	nibbles := FromBytes(enc)
	if odd {
		p = nibbles[1:]
	} else {
		p = nibbles[2:]
	}
	return Clone(p), isLeaf, nil
}
