// Package elfdepstesting provides test helpers for packages that need ELF
// object fixtures on disk.
package elfdepstesting

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fixtureFilePerm = 0o644
	headerSize      = 64
	sectionSize     = 64
)

// elfIdent is the identification prefix shared by every 64-bit little-endian
// fixture: magic, class, data encoding, version and System V ABI.
var elfIdent = [16]byte{
	0x7f, 'E', 'L', 'F',
	byte(elf.ELFCLASS64),
	byte(elf.ELFDATA2LSB),
	byte(elf.EV_CURRENT),
	byte(elf.ELFOSABI_NONE),
}

// WriteDynamicLibrary writes a minimal shared object at path whose dynamic
// section lists the given DT_NEEDED names, in order.
func WriteDynamicLibrary(t *testing.T, path string, needed ...string) {
	t.Helper()
	writeDynamicELF(t, path, elf.ET_DYN, needed)
}

// WriteDynamicExecutable writes a minimal dynamically linked executable at
// path whose dynamic section lists the given DT_NEEDED names, in order.
func WriteDynamicExecutable(t *testing.T, path string, needed ...string) {
	t.Helper()
	writeDynamicELF(t, path, elf.ET_EXEC, needed)
}

// WriteStaticObject writes a minimal statically linked ELF object at path.
// The file parses as ELF but carries no section table at all.
func WriteStaticObject(t *testing.T, path string) {
	t.Helper()

	header := elf.Header64{
		Ident:     elfIdent,
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_X86_64),
		Version:   uint32(elf.EV_CURRENT),
		Ehsize:    headerSize,
		Phentsize: 56,
		Shentsize: sectionSize,
	}

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), fixtureFilePerm))

	// Verify it can be parsed as ELF
	f, err := elf.Open(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

// WriteCorruptObject writes a file that begins with the ELF magic number but
// cannot be parsed as an ELF object.
func WriteCorruptObject(t *testing.T, path string) {
	t.Helper()

	content := append([]byte(elf.ELFMAG), 0xde, 0xad, 0xbe, 0xef)
	require.NoError(t, os.WriteFile(path, content, fixtureFilePerm))
}

// WriteScript writes a shell script at path. Scripts are executable but are
// not ELF objects.
func WriteScript(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
}

// writeDynamicELF builds an ELF object from scratch: header, a null section,
// a .dynstr string table and a .dynamic section whose DT_NEEDED entries
// reference the requested names.
func writeDynamicELF(t *testing.T, path string, typ elf.Type, needed []string) {
	t.Helper()

	// String table: index 0 is the empty string, then one entry per name.
	// Padded to an 8-byte boundary so .dynamic starts aligned.
	strtab := []byte{0}
	offsets := make([]uint64, len(needed))
	for i, name := range needed {
		offsets[i] = uint64(len(strtab))
		strtab = append(strtab, name...)
		strtab = append(strtab, 0)
	}
	for len(strtab)%8 != 0 {
		strtab = append(strtab, 0)
	}

	// Dynamic section: one DT_NEEDED per name plus the DT_NULL terminator
	var dyntab bytes.Buffer
	for _, off := range offsets {
		require.NoError(t, binary.Write(&dyntab, binary.LittleEndian,
			elf.Dyn64{Tag: int64(elf.DT_NEEDED), Val: off}))
	}
	require.NoError(t, binary.Write(&dyntab, binary.LittleEndian,
		elf.Dyn64{Tag: int64(elf.DT_NULL), Val: 0}))

	const numSections = 3
	strtabOff := uint64(headerSize + numSections*sectionSize)
	dynOff := strtabOff + uint64(len(strtab))

	header := elf.Header64{
		Ident:     elfIdent,
		Type:      uint16(typ),
		Machine:   uint16(elf.EM_X86_64),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     headerSize,
		Ehsize:    headerSize,
		Phentsize: 56,
		Shentsize: sectionSize,
		Shnum:     numSections,
		Shstrndx:  0,
	}

	// Section 2 links to section 1 for string lookups
	sections := []elf.Section64{
		{},
		{Type: uint32(elf.SHT_STRTAB), Off: strtabOff, Size: uint64(len(strtab)), Addralign: 1},
		{Type: uint32(elf.SHT_DYNAMIC), Off: dynOff, Size: uint64(dyntab.Len()), Link: 1, Addralign: 8, Entsize: 16},
	}

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	for _, sh := range sections {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, sh))
	}
	buf.Write(strtab)
	buf.Write(dyntab.Bytes())

	require.NoError(t, os.WriteFile(path, buf.Bytes(), fixtureFilePerm))

	// Verify the fixture round-trips through debug/elf
	f, err := elf.Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	libs, err := f.ImportedLibraries()
	require.NoError(t, err)
	if len(needed) == 0 {
		require.Empty(t, libs)
	} else {
		require.Equal(t, needed, libs)
	}
}
