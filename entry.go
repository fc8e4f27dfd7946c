package tacozip

import (
	"io"
	"os"
)

// entryRecord is the bookkeeping the archive builder accumulates for
// one archived file, enough for writeCentralDirectory to emit its CDFH
// and ZIP64 extra without rereading the entry.
type entryRecord struct {
	name      string
	flags     uint16
	crc32     uint32
	size      uint64
	lfhOffset uint64
}

// writeEntry streams one file into the archive: a local file header
// with ZIP64 size sentinels, the archive name, the raw bytes (while
// accumulating a CRC-32), and a ZIP64 data descriptor carrying the real
// CRC and sizes. comp_size always equals uncomp_size because tacozip
// never compresses.
func writeEntry(cw *countWriter, srcPath, arcName string, utf8 bool, copyBufferSize int) (entryRecord, error) {
	if len(arcName) == 0 || len(arcName) > maxNameLen {
		return entryRecord{}, newParamError("archive name length %d out of range [1,%d]", len(arcName), maxNameLen)
	}

	lfhOffset := uint64(cw.count)
	flags := uint16(gpFlagDataDescriptor)
	if utf8 {
		flags |= gpFlagUTF8
	}

	var hdr [fileHeaderLen]byte
	b := writeBuf(hdr[:])
	b.uint32(fileHeaderSignature)
	b.uint16(zipVersion45)
	b.uint16(flags)
	b.uint16(Store)
	b.uint16(0) // mod time: zero, the ghost and every entry are timeless
	b.uint16(0) // mod date
	b.uint32(0) // crc32 arrives in the data descriptor
	b.uint32(uint32max)
	b.uint32(uint32max)
	b.uint16(uint16(len(arcName)))
	b.uint16(0) // no LFH extra field for regular entries
	if _, err := cw.Write(hdr[:]); err != nil {
		return entryRecord{}, newIOError("write local file header", err)
	}
	if _, err := cw.WriteString(arcName); err != nil {
		return entryRecord{}, newIOError("write entry name", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return entryRecord{}, newIOError("open source file", err)
	}
	defer src.Close()

	crc := newCRC32Accumulator()
	buf := make([]byte, copyBufferSize)
	var size uint64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			crc.Write(buf[:n])
			if _, werr := cw.Write(buf[:n]); werr != nil {
				return entryRecord{}, newIOError("write entry data", werr)
			}
			size += uint64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return entryRecord{}, newIOError("read source file", rerr)
		}
	}

	var dd [dataDescriptor64Len]byte
	db := writeBuf(dd[:])
	db.uint32(dataDescriptorSignature)
	db.uint32(crc.Sum32())
	db.uint64(size)
	db.uint64(size)
	if _, err := cw.Write(dd[:]); err != nil {
		return entryRecord{}, newIOError("write data descriptor", err)
	}

	return entryRecord{
		name:      arcName,
		flags:     flags,
		crc32:     crc.Sum32(),
		size:      size,
		lfhOffset: lfhOffset,
	}, nil
}
