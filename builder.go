package tacozip

import (
	"bufio"
	"os"
)

// FileEntry pairs a source file on disk with the name it will carry
// inside the archive.
type FileEntry struct {
	SourcePath  string
	ArchiveName string
}

// Create builds a new ZIP64 archive at zipPath containing one entry per
// element of files, preceded by a ghost record carrying the given
// metadata pointers. zipPath is opened for exclusive write, truncating
// any existing file at that path before the first byte is written. If
// Create fails partway through, the file at zipPath is left behind
// incomplete; removing it is the caller's responsibility.
func Create(zipPath string, files []FileEntry, ghost GhostEntries, opts ...Option) error {
	if len(files) == 0 {
		return newParamError("files must be non-empty")
	}
	for _, f := range files {
		if f.SourcePath == "" {
			return newParamError("source path must not be empty")
		}
		if len(f.ArchiveName) == 0 || len(f.ArchiveName) > maxNameLen {
			return newParamError("archive name length %d out of range [1,%d]", len(f.ArchiveName), maxNameLen)
		}
	}

	cfg := newConfig(opts)

	out, err := os.OpenFile(zipPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return newIOError("open output", err)
	}
	defer out.Close()

	preallocateHint(out.Fd(), files)

	bw := bufio.NewWriterSize(out, cfg.outputBufferSize)
	cw := &countWriter{w: bw}

	if _, err := cw.Write(marshalGhost(ghost)); err != nil {
		return newIOError("write ghost", err)
	}

	entries := make([]entryRecord, 0, len(files))
	for _, f := range files {
		rec, err := writeEntry(cw, f.SourcePath, f.ArchiveName, cfg.utf8, cfg.copyBufferSize)
		if err != nil {
			return err
		}
		entries = append(entries, rec)
	}

	cdStart, cdSize, err := writeCentralDirectory(cw, entries)
	if err != nil {
		return err
	}
	if err := writeEndOfCentralDirectory(cw, cdStart, cdSize, len(entries)); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return newIOError("flush output", err)
	}
	if err := out.Close(); err != nil {
		return newIOError("close output", err)
	}
	return nil
}

// CreateSingle is Create for the common case of a single metadata
// pointer: it fills entry zero of the ghost and leaves the remaining
// six as zero pairs.
func CreateSingle(zipPath string, files []FileEntry, offset, length uint64, opts ...Option) error {
	var ghost GhostEntries
	ghost[0] = GhostEntry{Offset: offset, Length: length}
	return Create(zipPath, files, ghost, opts...)
}
