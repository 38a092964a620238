package lib

// Bit64 alias for uint64, provides bit twiddling methods on 64-bit number.
type Bit64 uint64

func (b Bit64) Ones() int8 {
	b = b - ((b >> 1) & 0x5555555555555555)
	b = (b & 0x3333333333333333) + ((b >> 2) & 0x3333333333333333)
	b = (b + (b >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int8((b * 0x0101010101010101) >> 56)
}

func (b Bit64) Zeros() int8 {
	return 64 - b.Ones()
}

// Findfirstset position of the least significant set bit, -1 when no
// bit is set.
func (b Bit64) Findfirstset() int8 {
	if b == 0 {
		return -1
	}
	return Bit64((b & (^b + 1)) - 1).Ones()
}

// Ispowerof2 check whether exactly one bit is set.
func (b Bit64) Ispowerof2() bool {
	return b != 0 && (b&(b-1)) == 0
}
