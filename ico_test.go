package assetgen

import (
	"bytes"
	"encoding/binary"
	"image"
	"testing"
)

// pngSignature is the fixed eight-byte header of a PNG stream.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestEncodeICO(t *testing.T) {
	sizes := []int{16, 32, 48}
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		images = append(images, image.NewNRGBA(image.Rect(0, 0, size, size)))
	}

	var buf bytes.Buffer
	if err := EncodeICO(&buf, images); err != nil {
		t.Fatalf("unable to encode the icon container: %v", err)
	}
	data := buf.Bytes()

	// File header: reserved 0, type 1, image count.
	if got := binary.LittleEndian.Uint16(data[0:2]); got != 0 {
		t.Errorf("reserved field expected 0, got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[2:4]); got != 1 {
		t.Errorf("type field expected 1 (icon), got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != uint16(len(sizes)) {
		t.Fatalf("image count expected %d, got %d", len(sizes), got)
	}

	// Directory entries: dimensions in input order, PNG data at each offset.
	prevEnd := uint32(icoHeaderSize + len(sizes)*icoEntrySize)
	for i, size := range sizes {
		entry := data[icoHeaderSize+i*icoEntrySize:]
		if entry[0] != byte(size) || entry[1] != byte(size) {
			t.Errorf("entry %d expected dimensions %dx%d, got %dx%d",
				i, size, size, entry[0], entry[1])
		}
		length := binary.LittleEndian.Uint32(entry[8:12])
		offset := binary.LittleEndian.Uint32(entry[12:16])
		if offset != prevEnd {
			t.Errorf("entry %d expected offset %d, got %d", i, prevEnd, offset)
		}
		if !bytes.HasPrefix(data[offset:], pngSignature) {
			t.Errorf("entry %d data expected to start with the PNG signature", i)
		}
		prevEnd = offset + length
	}
	if int(prevEnd) != len(data) {
		t.Errorf("container length expected %d, got %d", prevEnd, len(data))
	}
}

func TestEncodeICO_LargeDimensionEncoding(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeICO(&buf, []image.Image{image.NewNRGBA(image.Rect(0, 0, 256, 256))})
	if err != nil {
		t.Fatal(err)
	}

	// 256 px entries encode their dimension as zero.
	data := buf.Bytes()
	if data[icoHeaderSize] != 0 || data[icoHeaderSize+1] != 0 {
		t.Errorf("256px entry expected dimension bytes 0/0, got %d/%d",
			data[icoHeaderSize], data[icoHeaderSize+1])
	}
}

func TestEncodeICO_Contract(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeICO(&buf, nil); err == nil {
		t.Error("expected an error for an empty image list")
	}

	rect := image.NewNRGBA(image.Rect(0, 0, 16, 32))
	if err := EncodeICO(&buf, []image.Image{rect}); err == nil {
		t.Error("expected an error for a non-square image")
	}
}
