/*
JPEG dimension extraction without decoding.

A JPEG stream is a sequence of segments, each introduced by 0xFF and a marker
code:

	FF D8                    start of image, no payload
	FF Dn (n=0..7), FF 01    standalone, no payload
	FF xx LL LL <payload>    LL LL = big-endian length including itself

Frame dimensions live in the Start Of Frame segment (C0..CF except C4 DHT,
C8 JPG and CC DAC):

	FF Cn LL LL PP HH HH WW WW ...
	            |  |     +-- width
	            |  +-------- height
	            +----------- sample precision
*/

package parser

import (
	"encoding/binary"
	"strconv"

	"github.com/docmanager/backend/internal/models"
)

const (
	markerPrefix byte = 0xFF

	markerSOI byte = 0xD8
	markerEOI byte = 0xD9
	markerSOS byte = 0xDA
	markerTEM byte = 0x01

	markerRST0 byte = 0xD0
	markerRST7 byte = 0xD7

	markerSOF0  byte = 0xC0
	markerSOF15 byte = 0xCF
	markerDHT   byte = 0xC4
	markerJPG   byte = 0xC8
	markerDAC   byte = 0xCC

	// length(2) + precision(1) + height(2) + width(2)
	sofMinLength = 7
)

// ImageParser reads pixel dimensions from JPEG images.
type ImageParser struct{}

// NewImageParser returns a new ImageParser.
func NewImageParser() *ImageParser {
	return &ImageParser{}
}

// Name returns the parser name.
func (p *ImageParser) Name() string {
	return "image"
}

// Parse extracts width and height from the first frame header.
func (p *ImageParser) Parse(content []byte) (*models.Attributes, error) {
	width, height, err := jpegDimensions(content)
	if err != nil {
		return nil, err
	}

	attrs := models.NewAttributes()
	attrs.Set(models.AttrType, string(models.TypeImage))
	attrs.Set(models.AttrWidth, strconv.Itoa(int(width)))
	attrs.Set(models.AttrHeight, strconv.Itoa(int(height)))
	return attrs, nil
}

// isSOF reports whether marker starts a frame header.
func isSOF(marker byte) bool {
	if marker < markerSOF0 || marker > markerSOF15 {
		return false
	}
	return marker != markerDHT && marker != markerJPG && marker != markerDAC
}

// isStandalone reports whether marker carries no length field.
func isStandalone(marker byte) bool {
	return marker == markerSOI || marker == markerTEM ||
		(marker >= markerRST0 && marker <= markerRST7)
}

// jpegDimensions walks the marker segments of data up to the first SOF.
func jpegDimensions(data []byte) (width, height uint16, err error) {
	if len(data) < 2 || data[0] != markerPrefix || data[1] != markerSOI {
		return 0, 0, malformed("missing JPEG start-of-image marker")
	}

	pos := 2
	for pos < len(data) {
		// Scan to the next marker prefix.
		if data[pos] != markerPrefix {
			pos++
			continue
		}
		// Any number of 0xFF fill bytes may precede the marker code.
		for pos < len(data) && data[pos] == markerPrefix {
			pos++
		}
		if pos >= len(data) {
			break
		}
		marker := data[pos]
		pos++

		switch {
		case marker == 0x00:
			// Stuffed byte, not a marker.
			continue
		case isStandalone(marker):
			continue
		case marker == markerEOI || marker == markerSOS:
			return 0, 0, malformed("no frame header before marker 0x%02X", marker)
		}

		if pos+2 > len(data) {
			return 0, 0, malformed("truncated segment 0x%02X", marker)
		}
		length := int(binary.BigEndian.Uint16(data[pos : pos+2]))
		if length < 2 {
			return 0, 0, malformed("invalid length %d for segment 0x%02X", length, marker)
		}

		if isSOF(marker) {
			if length < sofMinLength || pos+sofMinLength > len(data) {
				return 0, 0, malformed("truncated frame header 0x%02X", marker)
			}
			height = binary.BigEndian.Uint16(data[pos+3 : pos+5])
			width = binary.BigEndian.Uint16(data[pos+5 : pos+7])
			return width, height, nil
		}

		if pos+length > len(data) {
			return 0, 0, malformed("segment 0x%02X overruns data", marker)
		}
		pos += length
	}

	return 0, 0, malformed("no frame header found")
}
