// Package assets resolves and decodes the scene's image resources: the
// panel image pool, the shared background texture, and the .pak bundle
// they ship in.
package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/galaco/dxt"
	"github.com/pierrec/lz4/v4"
)

// Texture container layout (all integers little-endian):
//
//	magic    [8]byte  "TEXB0001"
//	width    uint32
//	height   uint32
//	format   uint8    0 = RGBA8, 1 = DXT1, 2 = DXT5
//	usize    uint32   uncompressed payload size
//	csize    uint32   stored payload size; csize < usize means LZ4 block
//	payload  [csize]byte

const containerMagic = "TEXB0001"

const (
	FormatRGBA8 uint8 = iota
	FormatDXT1
	FormatDXT5
)

var ErrBadMagic = errors.New("not a TEXB0001 container")

// DecodeContainer decodes a .tex container into a straight-alpha image.
func DecodeContainer(data []byte) (*image.NRGBA, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, len(containerMagic))
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != containerMagic {
		return nil, ErrBadMagic
	}

	var width, height uint32
	var format uint8
	var usize, csize uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("container header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("container header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &format); err != nil {
		return nil, fmt.Errorf("container header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &usize); err != nil {
		return nil, fmt.Errorf("container header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &csize); err != nil {
		return nil, fmt.Errorf("container header: %w", err)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("container: degenerate size %dx%d", width, height)
	}

	payload := make([]byte, csize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("container payload: %w", err)
	}

	raw := payload
	if csize < usize {
		raw = make([]byte, usize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("container lz4: %w", err)
		}
		raw = raw[:n]
	}

	w, h := int(width), int(height)
	var pixels []byte
	switch format {
	case FormatRGBA8:
		if len(raw) != w*h*4 {
			return nil, fmt.Errorf("container: RGBA8 payload is %d bytes, want %d", len(raw), w*h*4)
		}
		pixels = raw
	case FormatDXT1:
		decoded, err := dxt.Decode(raw, w, h, dxt.DXT1)
		if err != nil {
			return nil, fmt.Errorf("container dxt1: %w", err)
		}
		pixels = decoded
	case FormatDXT5:
		decoded, err := dxt.Decode(raw, w, h, dxt.DXT5)
		if err != nil {
			return nil, fmt.Errorf("container dxt5: %w", err)
		}
		pixels = decoded
	default:
		return nil, fmt.Errorf("container: unknown format %d", format)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	return img, nil
}

// EncodeContainer writes an image as an RGBA8 container, LZ4-compressed
// when that actually saves space. Used by the bundling tool and tests;
// DXT payloads are produced offline.
func EncodeContainer(img *image.NRGBA) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("container: refusing to encode empty image")
	}

	raw := make([]byte, 0, w*h*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Min.X, y)+w*4]
		raw = append(raw, row...)
	}

	var c lz4.Compressor
	compressed := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := c.CompressBlock(raw, compressed)
	if err != nil {
		return nil, fmt.Errorf("container lz4: %w", err)
	}

	payload := raw
	csize := uint32(len(raw))
	if n > 0 && n < len(raw) {
		payload = compressed[:n]
		csize = uint32(n)
	}

	var buf bytes.Buffer
	buf.WriteString(containerMagic)
	binary.Write(&buf, binary.LittleEndian, uint32(w))
	binary.Write(&buf, binary.LittleEndian, uint32(h))
	binary.Write(&buf, binary.LittleEndian, FormatRGBA8)
	binary.Write(&buf, binary.LittleEndian, uint32(len(raw)))
	binary.Write(&buf, binary.LittleEndian, csize)
	buf.Write(payload)
	return buf.Bytes(), nil
}
