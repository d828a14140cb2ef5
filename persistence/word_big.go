//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package persistence

import (
	"encoding/binary"
	"math/bits"
)

func putWord(buf []byte, value uint) {
	if bits.UintSize == 64 {
		binary.BigEndian.PutUint64(buf, uint64(value))
	} else {
		binary.BigEndian.PutUint32(buf, uint32(value))
	}
}

func word(buf []byte) uint {
	if bits.UintSize == 64 {
		return uint(binary.BigEndian.Uint64(buf))
	}
	return uint(binary.BigEndian.Uint32(buf))
}
