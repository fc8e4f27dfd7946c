// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tacozip

// Compression methods. tacozip only ever emits Store, so it is the only
// method declared here.
const (
	Store uint16 = 0
)

const (
	fileHeaderSignature      = 0x04034b50
	directoryHeaderSignature = 0x02014b50
	directoryEndSignature    = 0x06054b50
	directory64LocSignature  = 0x07064b50
	directory64EndSignature  = 0x06064b50
	dataDescriptorSignature  = 0x08074b50

	fileHeaderLen       = 30 // + name + extra
	directoryHeaderLen  = 46 // + name + extra
	directoryEndLen     = 22 // + comment
	dataDescriptor64Len = 24 // signature, crc32, 8-byte compressed size, 8-byte uncompressed size
	directory64LocLen   = 20
	directory64EndLen   = 56

	// Version numbers.
	zipVersion45 = 45 // 4.5: reads and writes ZIP64 archives

	// Limits and sentinels for the 32-bit fields ZIP64 supersedes.
	uint16max = (1 << 16) - 1
	uint32max = (1 << 32) - 1

	// Extra header IDs.
	zip64ExtraID = 0x0001

	// gpFlagDataDescriptor marks that the local file header's CRC-32
	// and size fields do not carry the real values (tacozip writes a zero
	// CRC-32 and 0xFFFFFFFF sizes there); the real values follow the
	// entry's data in a data descriptor record.
	gpFlagDataDescriptor = 0x0008
	// gpFlagUTF8 marks that the entry name is UTF-8 encoded.
	gpFlagUTF8 = 0x0800

	maxNameLen = uint16max
)
