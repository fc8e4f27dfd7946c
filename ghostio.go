package tacozip

import (
	"io"
	"os"
)

// ReadGhost opens an existing archive and returns its seven metadata
// pointers. Only the first ghostSize bytes are read; the rest of the
// archive is never touched.
func ReadGhost(zipPath string) (GhostEntries, error) {
	f, err := os.Open(zipPath)
	if err != nil {
		return GhostEntries{}, newIOError("open archive", err)
	}
	defer f.Close()

	buf := make([]byte, ghostSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return GhostEntries{}, newIOError("read ghost", err)
	}
	if err := validateGhost(buf); err != nil {
		return GhostEntries{}, err
	}
	return parseGhost(buf), nil
}

// ReadGhostSingle returns only the first metadata pointer, for callers
// built against the legacy one-pointer API.
func ReadGhostSingle(zipPath string) (offset, length uint64, err error) {
	entries, err := ReadGhost(zipPath)
	if err != nil {
		return 0, 0, err
	}
	return entries[0].Offset, entries[0].Length, nil
}

// UpdateGhost patches all seven metadata pointers of an existing
// archive in place. The surrounding local file header and extra field
// header, bytes [0, ghostPayloadOffset), are never touched. If the
// existing ghost fails validation, the file is left untouched and the
// error reports invalid-ghost rather than a partial write.
func UpdateGhost(zipPath string, entries GhostEntries) error {
	f, err := os.OpenFile(zipPath, os.O_RDWR, 0)
	if err != nil {
		return newIOError("open archive", err)
	}
	defer f.Close()

	header := make([]byte, ghostSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return newIOError("read ghost", err)
	}
	if err := validateGhost(header); err != nil {
		return err
	}

	payload := make([]byte, ghostExtraDataSize)
	b := writeBuf(payload)
	b.uint8(entries.count())
	b.uint8(0)
	b.uint8(0)
	b.uint8(0)
	for _, e := range entries {
		b.uint64(e.Offset)
		b.uint64(e.Length)
	}

	if _, err := f.WriteAt(payload, ghostPayloadOffset); err != nil {
		return newIOError("write ghost payload", err)
	}
	if err := f.Sync(); err != nil {
		return newIOError("flush archive", err)
	}
	return nil
}

// UpdateGhostSingle patches only the first metadata pointer, leaving
// the remaining six exactly as they were on disk.
func UpdateGhostSingle(zipPath string, offset, length uint64) error {
	entries, err := ReadGhost(zipPath)
	if err != nil {
		return err
	}
	entries[0] = GhostEntry{Offset: offset, Length: length}
	return UpdateGhost(zipPath, entries)
}
