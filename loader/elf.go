// Package loader implements the ELF loader contract spec.md treats as an
// external collaborator: it turns a RISC-V ELF32 executable into an
// ordered sequence of 32-bit instruction words, a base load address, and a
// starting program counter, ready to hand to vm.VM.LoadProgram. The core
// itself never parses ELF; this package is the concrete implementation of
// the interface spec.md describes but leaves external.
package loader

import (
	"debug/elf"
	"fmt"
)

// Program is the loader's output: exactly the {instructions, pc_base,
// pc_start} tuple spec.md's ELF loader contract defines.
type Program struct {
	// Instructions are the ordered 32-bit words to load into memory,
	// starting at PCBase.
	Instructions []uint32

	// PCBase is the byte address of the lowest loadable segment.
	PCBase uint32

	// PCStart is the ELF entry point: the initial program counter.
	PCStart uint32
}

// Load parses path as a 32-bit little-endian RISC-V ELF executable and
// returns its loadable instruction words. Any PT_LOAD program header is
// included. All segments are flattened into one image spanning the lowest
// segment start to the highest segment end (memory size); an image whose
// length is not a multiple of 4 bytes is a loader error (the core only
// ever deals in whole instruction words). Individual segment lengths are
// not checked. BSS (memory size larger than file size) and gaps between
// segments are filled with zero bytes.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer f.Close()

	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("not a 32-bit ELF file")
	}
	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("not a RISC-V ELF file (machine type: %v)", f.Machine)
	}
	if f.ByteOrder.String() != "LittleEndian" {
		return nil, fmt.Errorf("only little-endian RISC-V images are supported")
	}

	var segments []*elf.Prog
	for _, prog := range f.Progs {
		if prog.Type == elf.PT_LOAD {
			segments = append(segments, prog)
		}
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("ELF file has no PT_LOAD segments")
	}

	base := segments[0].Vaddr
	for _, seg := range segments {
		if seg.Vaddr < base {
			base = seg.Vaddr
		}
	}

	// Compute the highest byte covered by any segment, then flatten every
	// segment's bytes (file contents, zero-padded to MemSiz) into one
	// contiguous byte buffer relative to base.
	var top uint64
	for _, seg := range segments {
		end := seg.Vaddr + seg.Memsz
		if end > top {
			top = end
		}
	}

	buf := make([]byte, top-base)
	for _, seg := range segments {
		data, err := readSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("failed to read segment at 0x%X: %w", seg.Vaddr, err)
		}
		offset := seg.Vaddr - base
		copy(buf[offset:], data)
		// Bytes beyond len(data) up to Memsz stay zero (BSS), matching
		// the make([]byte, ...) zero value.
	}

	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("loadable image size %d is not a multiple of 4 bytes", len(buf))
	}

	words := make([]uint32, len(buf)/4)
	for i := range words {
		o := i * 4
		words[i] = uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	}

	return &Program{
		Instructions: words,
		PCBase:       uint32(base),
		PCStart:      uint32(f.Entry),
	}, nil
}

func readSegment(prog *elf.Prog) ([]byte, error) {
	data := make([]byte, prog.Filesz)
	if prog.Filesz == 0 {
		return data, nil
	}
	if _, err := prog.ReadAt(data, 0); err != nil {
		return nil, err
	}
	return data, nil
}
