package tacozip

// cdVersionMadeBy mirrors the value real ZIP64 writers stamp into the
// high byte (creator OS) / low byte (spec version) pair of the central
// directory file header's version-made-by field.
const cdVersionMadeBy = 0x031E

// writeCentralDirectory emits one 46-byte CDFH, name and 28-byte ZIP64
// extra per entry. Every size and offset field in the CDFH itself is
// the ZIP64 sentinel 0xFFFFFFFF; the real 64-bit values live only in
// the extra field, so a reader that understands ZIP64 never consults
// the 32-bit fields at all.
func writeCentralDirectory(cw *countWriter, entries []entryRecord) (cdStart, cdSize uint64, err error) {
	cdStart = uint64(cw.count)
	for _, e := range entries {
		var hdr [directoryHeaderLen]byte
		b := writeBuf(hdr[:])
		b.uint32(directoryHeaderSignature)
		b.uint16(cdVersionMadeBy)
		b.uint16(zipVersion45)
		b.uint16(e.flags)
		b.uint16(Store)
		b.uint16(0) // mod time
		b.uint16(0) // mod date
		b.uint32(e.crc32)
		b.uint32(uint32max)
		b.uint32(uint32max)
		b.uint16(uint16(len(e.name)))
		b.uint16(28) // ZIP64 extra length
		b.uint16(0)  // comment length
		b.uint16(0)  // disk number start
		b.uint16(0)  // internal attributes
		b.uint32(0)  // external attributes
		b.uint32(uint32max)
		if _, err = cw.Write(hdr[:]); err != nil {
			return 0, 0, newIOError("write central directory header", err)
		}
		if _, err = cw.WriteString(e.name); err != nil {
			return 0, 0, newIOError("write central directory entry name", err)
		}

		var extra [28]byte
		eb := writeBuf(extra[:])
		eb.uint16(zip64ExtraID)
		eb.uint16(24)
		eb.uint64(e.size)
		eb.uint64(e.size)
		eb.uint64(e.lfhOffset)
		if _, err = cw.Write(extra[:]); err != nil {
			return 0, 0, newIOError("write zip64 extra field", err)
		}
	}
	cdSize = uint64(cw.count) - cdStart
	return cdStart, cdSize, nil
}

// writeEndOfCentralDirectory emits the ZIP64 end-of-central-directory
// record, the ZIP64 locator, and finally the classic 22-byte EOCD with
// its four sentinel fields, in that order, so a ZIP64-aware reader
// finds everything it needs by walking backward from the end of the
// file.
func writeEndOfCentralDirectory(cw *countWriter, cdStart, cdSize uint64, numEntries int) error {
	n := uint64(numEntries)
	eocd64Offset := uint64(cw.count)

	var zip64 [directory64EndLen]byte
	b := writeBuf(zip64[:])
	b.uint32(directory64EndSignature)
	b.uint64(directory64EndLen - 12) // size of remainder after this field
	b.uint16(zipVersion45)           // version made by
	b.uint16(zipVersion45)           // version needed
	b.uint32(0)                      // number of this disk
	b.uint32(0)                      // disk with start of central directory
	b.uint64(n)                      // entries on this disk
	b.uint64(n)                      // total entries
	b.uint64(cdSize)
	b.uint64(cdStart)
	if _, err := cw.Write(zip64[:]); err != nil {
		return newIOError("write zip64 end of central directory", err)
	}

	var loc [directory64LocLen]byte
	lb := writeBuf(loc[:])
	lb.uint32(directory64LocSignature)
	lb.uint32(0) // disk with the zip64 EOCD
	lb.uint64(eocd64Offset)
	lb.uint32(1) // total number of disks
	if _, err := cw.Write(loc[:]); err != nil {
		return newIOError("write zip64 locator", err)
	}

	var end [directoryEndLen]byte
	eb := writeBuf(end[:])
	eb.uint32(directoryEndSignature)
	eb.uint16(0) // number of this disk
	eb.uint16(0) // disk with start of central directory
	eb.uint16(uint16max)
	eb.uint16(uint16max)
	eb.uint32(uint32max)
	eb.uint32(uint32max)
	eb.uint16(0) // comment length
	if _, err := cw.Write(end[:]); err != nil {
		return newIOError("write end of central directory", err)
	}
	return nil
}
