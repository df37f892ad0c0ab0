package loader_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/riscv32-emu/loader"
)

// buildELF32 assembles a minimal 32-bit little-endian RISC-V ELF
// executable with a single PT_LOAD segment containing code, for exercising
// the loader without depending on an external toolchain or a committed
// binary fixture.
func buildELF32(t *testing.T, vaddr, entry uint32, code []uint32) string {
	t.Helper()

	const (
		ehdrSize = 52
		phdrSize = 32
	)

	codeBytes := make([]byte, len(code)*4)
	for i, w := range code {
		binary.LittleEndian.PutUint32(codeBytes[i*4:], w)
	}

	var buf bytes.Buffer

	// e_ident
	ident := make([]byte, 16)
	copy(ident, []byte{0x7f, 'E', 'L', 'F'})
	ident[4] = 1 // ELFCLASS32
	ident[5] = 1 // ELFDATA2LSB
	ident[6] = 1 // EV_CURRENT
	buf.Write(ident)

	write16 := func(v uint16) { binary.Write(&buf, binary.LittleEndian, v) }
	write32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }

	write16(2)             // e_type = ET_EXEC
	write16(243)            // e_machine = EM_RISCV
	write32(1)              // e_version
	write32(entry)          // e_entry
	write32(ehdrSize)       // e_phoff
	write32(0)              // e_shoff
	write32(0)              // e_flags
	write16(ehdrSize)       // e_ehsize
	write16(phdrSize)       // e_phentsize
	write16(1)              // e_phnum
	write16(0)              // e_shentsize
	write16(0)              // e_shnum
	write16(0)              // e_shstrndx

	// Program header (immediately followed by code, at offset ehdrSize+phdrSize)
	const dataOffset = ehdrSize + phdrSize
	write32(1)                       // p_type = PT_LOAD
	write32(dataOffset)               // p_offset
	write32(vaddr)                    // p_vaddr
	write32(vaddr)                    // p_paddr
	write32(uint32(len(codeBytes)))   // p_filesz
	write32(uint32(len(codeBytes)))   // p_memsz
	write32(5)                        // p_flags = PF_R|PF_X
	write32(0x1000)                   // p_align

	buf.Write(codeBytes)

	path := filepath.Join(t.TempDir(), "test.elf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write test ELF: %v", err)
	}
	return path
}

func TestLoadSimpleImage(t *testing.T) {
	code := []uint32{0x00500093, 0x00300113, 0x002081B3} // ADDI x1,x0,5; ADDI x2,x0,3; ADD x3,x1,x2
	path := buildELF32(t, 0x1000, 0x1000, code)

	prog, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if prog.PCBase != 0x1000 {
		t.Errorf("expected PCBase=0x1000, got 0x%X", prog.PCBase)
	}
	if prog.PCStart != 0x1000 {
		t.Errorf("expected PCStart=0x1000, got 0x%X", prog.PCStart)
	}
	if len(prog.Instructions) != len(code) {
		t.Fatalf("expected %d instructions, got %d", len(code), len(prog.Instructions))
	}
	for i, w := range code {
		if prog.Instructions[i] != w {
			t.Errorf("instruction %d: expected 0x%08X, got 0x%08X", i, w, prog.Instructions[i])
		}
	}
}

func TestLoadRejectsWrongMachine(t *testing.T) {
	path := buildELF32(t, 0x1000, 0x1000, []uint32{0})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read test ELF: %v", err)
	}
	// e_machine is at offset 18 (after 16-byte e_ident + 2-byte e_type).
	binary.LittleEndian.PutUint16(data[18:], 0x28) // EM_ARM
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to rewrite test ELF: %v", err)
	}

	if _, err := loader.Load(path); err == nil {
		t.Error("expected error for non-RISC-V machine type, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.elf")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
