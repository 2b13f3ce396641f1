package packer_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k0kubun/rbparse/packer"
	"github.com/k0kubun/rbparse/parser"
)

// TestRecordSizeAndCount checks the packer emits exactly one 12-byte
// record per visited node.
func TestRecordSizeAndCount(t *testing.T) {
	source := []byte("1 + 2\n")
	pk := packer.New()
	parser.Parse(source, pk)

	// One record for each literal plus one for the binary op: 1, 2, +.
	require.Equal(t, 36, pk.Buf.Len())
}

// TestKindOverwriteBug documents the preserved bug: every record's first
// 4 bytes read back as the node's start offset, never its kind tag, since
// the kind write is clobbered before the record leaves Packer.record.
func TestKindOverwriteBug(t *testing.T) {
	source := []byte("1\n")
	pk := packer.New()
	parser.Parse(source, pk)

	rec := pk.Buf.Bytes()
	require.Len(t, rec, 12)

	start := binary.LittleEndian.Uint32(rec[0:4])
	end := binary.LittleEndian.Uint32(rec[4:8])
	assert.Equal(t, uint32(0), start)
	assert.Equal(t, uint32(1), end)
}
