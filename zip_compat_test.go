package tacozip

import (
	"archive/zip"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"go4.org/readerutil"
)

// centralDirectoryOffsets walks the archive's own trailer records to
// recover each entry's local file header offset, the same way a
// from-scratch ZIP64 reader would, independent of archive/zip.
func centralDirectoryOffsets(t *testing.T, path string) []uint64 {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	size := fi.Size()

	locBuf := make([]byte, directory64LocLen)
	if _, err := f.ReadAt(locBuf, size-directoryEndLen-directory64LocLen); err != nil {
		t.Fatal(err)
	}
	if sig := binary.LittleEndian.Uint32(locBuf); sig != directory64LocSignature {
		t.Fatalf("bad zip64 locator signature %#x", sig)
	}
	eocd64Offset := binary.LittleEndian.Uint64(locBuf[8:16])

	eocd64Buf := make([]byte, directory64EndLen)
	if _, err := f.ReadAt(eocd64Buf, int64(eocd64Offset)); err != nil {
		t.Fatal(err)
	}
	if sig := binary.LittleEndian.Uint32(eocd64Buf); sig != directory64EndSignature {
		t.Fatalf("bad zip64 end of central directory signature %#x", sig)
	}
	numEntries := binary.LittleEndian.Uint64(eocd64Buf[32:40])
	cdStart := binary.LittleEndian.Uint64(eocd64Buf[48:56])

	cd := make([]byte, eocd64Offset-cdStart)
	if _, err := f.ReadAt(cd, int64(cdStart)); err != nil {
		t.Fatal(err)
	}

	offsets := make([]uint64, 0, numEntries)
	pos := 0
	for i := uint64(0); i < numEntries; i++ {
		if binary.LittleEndian.Uint32(cd[pos:]) != directoryHeaderSignature {
			t.Fatalf("entry %d: bad central directory header signature", i)
		}
		nameLen := int(binary.LittleEndian.Uint16(cd[pos+28:]))
		extraLen := int(binary.LittleEndian.Uint16(cd[pos+30:]))
		extra := cd[pos+directoryHeaderLen+nameLen : pos+directoryHeaderLen+nameLen+extraLen]
		// ZIP64 extra: id(2) size(2) uncompSize(8) compSize(8) lfhOffset(8)
		lfhOffset := binary.LittleEndian.Uint64(extra[20:28])
		offsets = append(offsets, lfhOffset)
		pos += directoryHeaderLen + nameLen + extraLen
	}
	return offsets
}

// repeatingByte is an io.ReaderAt that never allocates more than one
// byte, letting a section reader describe an arbitrarily large logical
// extent without backing storage.
type repeatingByte struct {
	b byte
}

func (r repeatingByte) ReadAt(p []byte, off int64) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

func TestArchiveReadableByStandardZipReader(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceFile(t, dir, "src.bin", "round trip me")
	zipPath := filepath.Join(dir, "out.zip")
	files := []FileEntry{{SourcePath: src, ArchiveName: "entry.txt"}}
	if err := Create(zipPath, files, GhostEntries{{Offset: 5, Length: 9}}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		t.Fatalf("archive/zip could not read the archive: %v", err)
	}
	if len(zr.File) != 1 {
		t.Fatalf("archive/zip found %d entries, want 1", len(zr.File))
	}
	zf := zr.File[0]
	if zf.Name != "entry.txt" {
		t.Errorf("entry name = %q, want entry.txt", zf.Name)
	}
	rc, err := zf.Open()
	if err != nil {
		t.Fatalf("opening entry: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if string(got) != "round trip me" {
		t.Errorf("entry content = %q, want %q", got, "round trip me")
	}
}

func TestArchiveHandlesEmptyEntry(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceFile(t, dir, "empty.bin", "")
	zipPath := filepath.Join(dir, "out.zip")
	files := []FileEntry{{SourcePath: src, ArchiveName: "empty.txt"}}
	if err := Create(zipPath, files, GhostEntries{}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		t.Fatalf("archive/zip could not read an archive with an empty entry: %v", err)
	}
	if len(zr.File) != 1 {
		t.Fatalf("archive/zip found %d entries, want 1", len(zr.File))
	}
	zf := zr.File[0]
	if zf.CRC32 != 0 {
		t.Errorf("empty entry CRC32 = %#x, want 0", zf.CRC32)
	}
	if zf.UncompressedSize64 != 0 {
		t.Errorf("empty entry uncompressed size = %d, want 0", zf.UncompressedSize64)
	}
	if zf.CompressedSize64 != 0 {
		t.Errorf("empty entry compressed size = %d, want 0", zf.CompressedSize64)
	}

	rc, err := zf.Open()
	if err != nil {
		t.Fatalf("opening empty entry: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading empty entry: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty entry content = %q, want empty", got)
	}
}

// TestArchiveHandlesLargeEntry exercises the ZIP64 size fields against a
// synthetic source larger than 4 GiB, built from a sparse repeated
// section via go4.org/readerutil so the test never allocates the
// multi-gigabyte buffer it pretends to archive.
func TestArchiveHandlesLargeEntry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-entry test in short mode")
	}

	dir := t.TempDir()
	const bigSize = int64(1<<32) + (1 << 20) // just over 4 GiB
	big := readerutil.NewMultiReaderAt(
		io.NewSectionReader(repeatingByte{'Z'}, 0, bigSize))

	bigPath := filepath.Join(dir, "big.bin")
	bigFile, err := os.Create(bigPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.Copy(bigFile, io.NewSectionReader(big, 0, big.Size())); err != nil {
		bigFile.Close()
		t.Fatal(err)
	}
	bigFile.Close()

	zipPath := filepath.Join(dir, "out.zip")
	files := []FileEntry{{SourcePath: bigPath, ArchiveName: "huge.bin"}}
	if err := Create(zipPath, files, GhostEntries{}); err != nil {
		t.Fatalf("Create with >4GiB entry: %v", err)
	}

	f, err := os.Open(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		t.Fatalf("archive/zip could not read a >4GiB ZIP64 entry: %v", err)
	}
	if got, want := zr.File[0].UncompressedSize64, big.Size(); got != uint64(want) {
		t.Errorf("uncompressed size = %d, want %d", got, want)
	}
}
