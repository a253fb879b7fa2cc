package crcengine_test

import (
	"fmt"

	"github.com/LynnColeArt/crcengine"
)

func ExampleNewCRC32() {
	e := crcengine.NewCRC32()
	e.Consume([]byte("123456789"))
	fmt.Printf("%08X\n", e.Digest())
	// Output: CBF43926
}

func ExampleNew() {
	// CRC-16/CCITT-FALSE spelled out as a custom profile.
	p := crcengine.Profile{
		Width:      16,
		Polynomial: 0x1021,
		Initial:    0xFFFF,
		Kernel:     crcengine.Kernel4x32,
	}
	e, err := crcengine.New[uint16](p)
	if err != nil {
		panic(err)
	}
	e.Consume([]byte("123456789"))
	fmt.Printf("%04X\n", e.Digest())
	// Output: 29B1
}

func ExampleNewHash() {
	// Width picked at runtime from configuration.
	e, err := crcengine.NewHash(crcengine.ProfileCRC64())
	if err != nil {
		panic(err)
	}
	e.Consume([]byte("123456789"))
	fmt.Printf("%0*X\n", e.Size()*2, e.Digest64())
	// Output: 995DC9BBDF1939FA
}

func ExampleEngine_ConsumeWith() {
	e := crcengine.NewCRC16()
	data := []byte("123456789")

	// Kernel choice never changes the digest, only the inner loop.
	e.ConsumeWith(data[:4], crcengine.Kernel8x32)
	e.ConsumeWith(data[4:], crcengine.KernelByte)
	fmt.Printf("%04X\n", e.Digest())
	// Output: BB3D
}
