package hdr

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

// WritePFM encodes the image in the binary PFM format, bottom-up scanline
// order, little-endian samples
func (img *HdrImage) WritePFM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	// Scale -1.0 flags little-endian samples
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", img.Width, img.Height); err != nil {
		return err
	}

	for row := img.Height - 1; row >= 0; row-- {
		for col := 0; col < img.Width; col++ {
			c := img.GetPixel(col, row)
			for _, sample := range [3]float64{c.R, c.G, c.B} {
				if err := binary.Write(bw, binary.LittleEndian, float32(sample)); err != nil {
					return err
				}
			}
		}
	}

	return bw.Flush()
}

// WritePFMFile encodes the image into a new file at the given path
func (img *HdrImage) WritePFMFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return img.WritePFM(f)
}

// ReadPFM decodes a binary PFM stream into a new image
func ReadPFM(r io.Reader) (*HdrImage, error) {
	br := bufio.NewReader(r)

	magic, err := readPFMLine(br)
	if err != nil {
		return nil, err
	}
	if magic != "PF" {
		return nil, fmt.Errorf("invalid PFM magic %q", magic)
	}

	sizeLine, err := readPFMLine(br)
	if err != nil {
		return nil, err
	}
	width, height, err := parsePFMSize(sizeLine)
	if err != nil {
		return nil, err
	}

	scaleLine, err := readPFMLine(br)
	if err != nil {
		return nil, err
	}
	endianness, err := parsePFMEndianness(scaleLine)
	if err != nil {
		return nil, err
	}

	img := NewHdrImage(width, height)
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			var samples [3]float32
			for i := range samples {
				if err := binary.Read(br, endianness, &samples[i]); err != nil {
					return nil, fmt.Errorf("truncated PFM pixel data: %w", err)
				}
			}
			img.SetPixel(col, row, core.NewColor(
				float64(samples[0]), float64(samples[1]), float64(samples[2])))
		}
	}

	return img, nil
}

// ReadPFMFile decodes the PFM file at the given path
func ReadPFMFile(path string) (*HdrImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Reason: err.Error()}
	}
	defer f.Close()

	img, err := ReadPFM(f)
	if err != nil {
		return nil, &FileError{Path: path, Reason: err.Error()}
	}
	return img, nil
}

// readPFMLine reads one header line without its trailing newline
func readPFMLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("truncated PFM header: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parsePFMSize(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("invalid PFM size line %q", line)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid PFM width %q", fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid PFM height %q", fields[1])
	}
	return width, height, nil
}

func parsePFMEndianness(line string) (binary.ByteOrder, error) {
	scale, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || scale == 0 || math.IsNaN(scale) {
		return nil, fmt.Errorf("invalid PFM scale %q", line)
	}
	if scale < 0 {
		return binary.LittleEndian, nil
	}
	return binary.BigEndian, nil
}
