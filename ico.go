package assetgen

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// icoHeaderSize and icoEntrySize are the fixed sizes of the ICO file header
// and of one icon directory entry.
const (
	icoHeaderSize = 6
	icoEntrySize  = 16
)

// EncodeICO packages the raster images into a single multi-resolution icon
// container with PNG-compressed entries. The contract is explicit: at least
// one image must be given, every image must be square, and the directory
// preserves the input order, making the first image the default entry that
// consumers fall back to when they do not select a size themselves.
func EncodeICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return errors.New("an icon container needs at least one image")
	}

	entries := make([][]byte, 0, len(images))
	for _, img := range images {
		b := img.Bounds()
		if b.Dx() != b.Dy() {
			return fmt.Errorf("icon image must be square, got %dx%d", b.Dx(), b.Dy())
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("unable to encode the icon entry: %v", err)
		}
		entries = append(entries, buf.Bytes())
	}

	// File header: reserved, type 1 (icon), image count.
	if err := writeLE(w, uint16(0), uint16(1), uint16(len(images))); err != nil {
		return err
	}

	// Directory entries. Image data follows the directory back to back.
	offset := icoHeaderSize + len(images)*icoEntrySize
	for i, img := range images {
		side := img.Bounds().Dx()
		dim := uint8(side)
		if side >= 256 {
			dim = 0 // 0 encodes 256 in the directory
		}
		err := writeLE(w,
			dim, dim,
			uint8(0),  // no color palette
			uint8(0),  // reserved
			uint16(1), // color planes
			uint16(32),
			uint32(len(entries[i])),
			uint32(offset),
		)
		if err != nil {
			return err
		}
		offset += len(entries[i])
	}

	for _, data := range entries {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("unable to write the icon container: %v", err)
		}
	}
	return nil
}

// writeLE writes the values in little-endian order.
func writeLE(w io.Writer, values ...interface{}) error {
	for _, v := range values {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("unable to write the icon container: %v", err)
		}
	}
	return nil
}
