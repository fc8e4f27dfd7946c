// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tacozip writes ZIP64 archives that carry a fixed-size "ghost"
metadata record at byte offset zero.

The ghost is a syntactically valid local file header named TACO_GHOST
whose extra field holds up to seven (offset, length) pairs pointing at
application metadata appended outside the archive (for example a
columnar index footer). Any conforming ZIP64 reader can open the
archives this package produces; the ghost additionally gives an
application a constant-time way to find its own metadata by reading
only the first 160 bytes of the file.

tacozip always emits ZIP64 structures regardless of entry size, and
always stores entries uncompressed (method STORE). It does not read
archives or enumerate central directory entries; that is the job of
archive/zip or a dedicated reader. It does not compress, encrypt, split
across disks, or support concurrent writers for the same output path.

See: https://www.pkware.com/appnote for the underlying ZIP64 format.
*/
package tacozip
