package hpack

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecodeIndexedStaticEntry(t *testing.T) {
	d := NewDecoder(0)
	headers, err := d.Decode([]byte{0x82})
	require.NoError(t, err)
	assert.Equal(t, []HeaderField{{Name: ":method", Value: "GET"}}, headers)
}

func TestDecodeDefaultTableSize(t *testing.T) {
	assert.Equal(t, uint64(DefaultMaxTableSize), NewDecoder(0).MaxTableSize())
	assert.Equal(t, uint64(256), NewDecoder(256).MaxTableSize())
}

func TestDecodeEmptyBlock(t *testing.T) {
	d := NewDecoder(0)
	headers, err := d.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, headers)
}

func TestDecodeLiteralWithIncrementalIndexing(t *testing.T) {
	d := NewDecoder(0)
	block := append([]byte{0x44, 12}, "/sample/path"...)

	headers, err := d.Decode(block)
	require.NoError(t, err)
	assert.Equal(t, []HeaderField{{Name: ":path", Value: "/sample/path"}}, headers)

	index, ok := d.table.lookupExact(":path", "/sample/path")
	require.True(t, ok)
	assert.Equal(t, uint64(62), index)
}

func TestDecodeLiteralWithoutIndexingIndexedName(t *testing.T) {
	d := NewDecoder(0)
	block := append([]byte{0x04, 12}, "/sample/path"...)

	headers, err := d.Decode(block)
	require.NoError(t, err)
	assert.Equal(t, []HeaderField{{Name: ":path", Value: "/sample/path"}}, headers)

	// No insertion for the non-indexing form.
	assert.Equal(t, uint64(0), d.table.dynamic.length())
}

func TestDecodeNeverIndexedLiteralNewName(t *testing.T) {
	d := NewDecoder(0)
	block := []byte{
		0x10,
		8, 'p', 'a', 's', 's', 'w', 'o', 'r', 'd',
		6, 's', 'e', 'c', 'r', 'e', 't',
	}

	headers, err := d.Decode(block)
	require.NoError(t, err)
	assert.Equal(t, []HeaderField{{Name: "password", Value: "secret"}}, headers)
	assert.Equal(t, uint64(0), d.table.dynamic.length())
}

func TestDecodeNewNameLiteralWithoutIndexing(t *testing.T) {
	d := NewDecoder(0)
	block := []byte{0, 3, 'f', 'o', 'o', 3, 'b', 'a', 'r'}

	headers, err := d.Decode(block)
	require.NoError(t, err)
	assert.Equal(t, []HeaderField{{Name: "foo", Value: "bar"}}, headers)
	assert.Equal(t, uint64(0), d.table.dynamic.length())
}

func TestDecodeSizeUpdate(t *testing.T) {
	d := NewDecoder(0)
	headers, err := d.Decode([]byte{62})
	require.NoError(t, err)
	assert.Empty(t, headers)
	assert.Equal(t, uint64(30), d.MaxTableSize())
}

func TestDecodeSizeUpdateEvicts(t *testing.T) {
	d := NewDecoder(0)
	_, err := d.Decode(append([]byte{0x44, 12}, "/sample/path"...))
	require.NoError(t, err)
	require.Equal(t, uint64(1), d.table.dynamic.length())

	// Shrink to zero: table empties, no headers decoded.
	headers, err := d.Decode([]byte{0x20})
	require.NoError(t, err)
	assert.Empty(t, headers)
	assert.Equal(t, uint64(0), d.MaxTableSize())
	assert.Equal(t, uint64(0), d.table.dynamic.length())
}

func TestDecodeInsertedEntryVisibleWithinSameBlock(t *testing.T) {
	d := NewDecoder(0)
	block := append([]byte{0x40, 10}, "custom-key"...)
	block = append(block, 12)
	block = append(block, "custom-value"...)
	// Reference the entry just inserted, at combined index 62.
	block = append(block, 0xbe)

	headers, err := d.Decode(block)
	require.NoError(t, err)
	require.Len(t, headers, 2)
	assert.Equal(t, headers[0], headers[1])
	assert.Equal(t, "custom-key", headers[1].Name)
}

func TestDecodeIndexZero(t *testing.T) {
	d := NewDecoder(0)
	_, err := d.Decode([]byte{0x80})
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestDecodeIndexBeyondTable(t *testing.T) {
	d := NewDecoder(0)
	_, err := d.Decode([]byte{0xbe})
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestDecodeTruncatedLiteral(t *testing.T) {
	d := NewDecoder(0)
	_, err := d.Decode([]byte{0x40, 3, 'f'})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeTruncatedInteger(t *testing.T) {
	d := NewDecoder(0)
	_, err := d.Decode([]byte{0xff, 0x80})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeHuffmanStringRejected(t *testing.T) {
	d := NewDecoder(0)
	block := []byte{
		130, 134, 132, 1, 140, 241, 227, 194, 229, 242, 58, 107, 160,
		171, 144, 244, 255,
	}
	_, err := d.Decode(block)
	require.ErrorIs(t, err, ErrHuffmanUnsupported)
}

func TestDecodeFailureDoesNotRollBackTable(t *testing.T) {
	d := NewDecoder(0)
	block := append([]byte{0x40, 10}, "custom-key"...)
	block = append(block, 12)
	block = append(block, "custom-value"...)
	// Trailing garbage reference makes the block fail after the insertion.
	block = append(block, 0xff, 0x80)

	_, err := d.Decode(block)
	require.Error(t, err)
	assert.Equal(t, uint64(1), d.table.dynamic.length())
}

func TestDecodeRequestBlockSequence(t *testing.T) {
	raw, err := os.ReadFile("testdata/request_blocks.yaml")
	require.NoError(t, err)

	var fixture struct {
		Blocks []struct {
			Input   string        `yaml:"input"`
			Headers []HeaderField `yaml:"headers"`
		} `yaml:"blocks"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &fixture))
	require.Len(t, fixture.Blocks, 3)

	d := NewDecoder(0)
	for i, blk := range fixture.Blocks {
		block, err := hex.DecodeString(blk.Input)
		require.NoError(t, err)

		headers, err := d.Decode(block)
		require.NoError(t, err, "block %d", i+1)
		assert.Equal(t, blk.Headers, headers, "block %d", i+1)
	}

	// Only custom-key entered the dynamic table across the three blocks.
	index, ok := d.table.lookupExact("custom-key", "custom-value")
	require.True(t, ok)
	assert.Equal(t, uint64(62), index)
	assert.Equal(t, uint64(1), d.table.dynamic.length())
}
