package tacozip

import (
	"os"
	"syscall"
)

// estimateArchiveSize computes the exact final size of the archive a
// Create call with these files will produce: the ghost, then each
// entry's LFH + name + data + data descriptor, then the central
// directory and its trailing records. It fails if any source file's
// size cannot be read, which the caller treats as non-fatal.
func estimateArchiveSize(files []FileEntry) (int64, error) {
	total := int64(ghostSize)
	for _, f := range files {
		fi, err := os.Stat(f.SourcePath)
		if err != nil {
			return 0, err
		}
		nameLen := int64(len(f.ArchiveName))
		total += int64(fileHeaderLen) + nameLen + fi.Size() + int64(dataDescriptor64Len)
		total += int64(directoryHeaderLen) + nameLen + 28
	}
	total += int64(directory64EndLen) + int64(directory64LocLen) + int64(directoryEndLen)
	return total, nil
}

// preallocateHint asks the filesystem to reserve the archive's final
// size ahead of time, so the writer's sequential passes extend an
// already-sized file instead of growing it one allocation at a time.
// It is a throughput hint, never a correctness gate: any failure,
// including running on a filesystem that doesn't support Ftruncate
// pre-sizing, is silently ignored.
func preallocateHint(fd uintptr, files []FileEntry) {
	size, err := estimateArchiveSize(files)
	if err != nil {
		return
	}
	_ = syscall.Ftruncate(int(fd), size)
}
