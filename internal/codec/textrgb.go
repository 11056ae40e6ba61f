package codec

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"spritedit/internal/core"
)

const (
	textMagic    = "P3"
	textMaxValue = 255
)

// textRGB reads and writes the plain-text P3 layout:
//
//	P3
//	<width> <height>
//	255
//
//	R G B R G B ... (one line per row)
//
// Channels read from text are quantized to 1/100 so that files written by
// other tools load to the same colors.
type textRGB struct{}

func (textRGB) Encode(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n\n", textMagic, g.W, g.H, textMaxValue)

	cells := g.Cells()
	line := make([]byte, 0, g.W*12)
	for y := 0; y < g.H; y++ {
		line = line[:0]
		for _, c := range cells[y*g.W : (y+1)*g.W] {
			r, gr, b := c.Bytes()
			for _, v := range [3]uint8{r, gr, b} {
				line = strconv.AppendUint(line, uint64(v), 10)
				line = append(line, ' ')
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (textRGB) Decode(r io.Reader) (*core.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: text header needs 4 lines, got %d", core.ErrFormat, len(lines))
	}
	if magic := strings.TrimSpace(lines[0]); magic != textMagic {
		return nil, fmt.Errorf("%w: unexpected magic %q", core.ErrFormat, magic)
	}
	var w, h int
	if n, err := fmt.Sscanf(strings.TrimSpace(lines[1]), "%d %d", &w, &h); err != nil || n != 2 {
		return nil, fmt.Errorf("%w: invalid dimensions line %q", core.ErrFormat, lines[1])
	}
	if maxVal := strings.TrimSpace(lines[2]); maxVal != strconv.Itoa(textMaxValue) {
		return nil, fmt.Errorf("%w: unsupported max channel value %q", core.ErrFormat, maxVal)
	}
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFormat, err)
	}

	y := 0
	for i, line := range lines[3:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lineNo := i + 4
		if len(fields)%3 != 0 {
			return nil, fmt.Errorf("%w: line %d has %d values, not a multiple of 3", core.ErrFormat, lineNo, len(fields))
		}
		if len(fields)/3 != w {
			return nil, fmt.Errorf("%w: line %d has %d pixels, expected %d", core.ErrFormat, lineNo, len(fields)/3, w)
		}
		if y >= h {
			return nil, fmt.Errorf("%w: more than %d rows", core.ErrFormat, h)
		}
		for x := 0; x < w; x++ {
			var ch [3]float32
			for k := range ch {
				v, err := strconv.Atoi(fields[x*3+k])
				if err != nil || v < 0 || v > textMaxValue {
					return nil, fmt.Errorf("%w: line %d has invalid channel %q", core.ErrFormat, lineNo, fields[x*3+k])
				}
				ch[k] = quantize(v)
			}
			g.Cells()[g.Index(x, y)] = core.Color{R: ch[0], G: ch[1], B: ch[2], A: 1}
		}
		y++
	}
	if y != h {
		return nil, fmt.Errorf("%w: got %d rows, expected %d", core.ErrFormat, y, h)
	}
	return g, nil
}

// quantize maps a channel byte to [0, 1] with a fixed 1/100 granularity.
func quantize(v int) float32 {
	return float32(math.Round(float64(v)/textMaxValue*100) / 100)
}
