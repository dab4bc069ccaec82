// Package section defines the fixed binary structures of the dicol column blob.
//
// A column blob is a 32-byte header followed by two variable-size payloads:
//
//	┌────────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                   │
//	│  - Options (2 bytes, always little-endian)                 │
//	│      bit 0: dictionary payload present                     │
//	│      bit 1: big-endian                                     │
//	│      bits 2-3: reserved, zero                              │
//	│      bits 4-15: magic number 0xEC1                         │
//	│  - CodeEncoding (1 byte), PayloadCompression (1 byte)      │
//	│  - RowCount, DictionaryCount (4 bytes each)                │
//	│  - CodesOffset, CodesSize, StoredSize (4 bytes each)       │
//	│  - Checksum (8 bytes): xxHash64 of the code stream         │
//	├────────────────────────────────────────────────────────────┤
//	│ Dictionary payload (optional)                              │
//	│  - uvarint length + key bytes, one per code, in code order │
//	├────────────────────────────────────────────────────────────┤
//	│ Codes payload                                              │
//	│  - code stream (CodeEncoding), block-compressed            │
//	│    with PayloadCompression                                 │
//	└────────────────────────────────────────────────────────────┘
//
// Header fields after Options use the byte order selected by bit 1.
//
// This package only knows the layout. Building and reading whole blobs is the
// blob package's job.
package section
