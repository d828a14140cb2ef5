//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mips64p32le || mipsle || ppc64le || riscv || riscv64 || wasm

package persistence

import (
	"encoding/binary"
	"math/bits"
)

func putWord(buf []byte, value uint) {
	if bits.UintSize == 64 {
		binary.LittleEndian.PutUint64(buf, uint64(value))
	} else {
		binary.LittleEndian.PutUint32(buf, uint32(value))
	}
}

func word(buf []byte) uint {
	if bits.UintSize == 64 {
		return uint(binary.LittleEndian.Uint64(buf))
	}
	return uint(binary.LittleEndian.Uint32(buf))
}
