package preprocess

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/katalvlaran/jpsplus/goalbound"
	"github.com/katalvlaran/jpsplus/grid"
)

// Save writes m's binary layout to w: row-major over g's cells, walls
// skipped, eight int16 jump distances followed by eight GoalBounds records
// per non-wall cell.
func Save(w io.Writer, g *grid.Grid, m *PreprocessedMap) error {
	if g == nil {
		return ErrNilGrid
	}
	if m == nil {
		return ErrNilMap
	}
	if g.Width() != m.Width() || g.Height() != m.Height() {
		return ErrDimensionMismatch
	}

	bw := bufio.NewWriter(w)
	if err := writeBody(bw, g, m); err != nil {
		return err
	}

	return bw.Flush()
}

// SaveCompressed writes the same layout as Save, wrapped in DEFLATE.
func SaveCompressed(w io.Writer, g *grid.Grid, m *PreprocessedMap) error {
	if g == nil {
		return ErrNilGrid
	}
	if m == nil {
		return ErrNilMap
	}
	if g.Width() != m.Width() || g.Height() != m.Height() {
		return ErrDimensionMismatch
	}

	fw, err := flate.NewWriter(w, flate.DefaultCompression)
	if err != nil {
		return fmt.Errorf("preprocess: opening flate writer: %w", err)
	}
	if err := writeBody(fw, g, m); err != nil {
		return err
	}

	return fw.Close()
}

func writeBody(w io.Writer, g *grid.Grid, m *PreprocessedMap) error {
	bw := newInt16Writer(w)
	n := g.Width() * g.Height()
	for idx := 0; idx < n; idx++ {
		coord := g.Coordinate(idx)
		if g.Blocked(coord.Row, coord.Col) {
			continue
		}
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			if err := bw.write(m.DistantJump(idx, d)); err != nil {
				return err
			}
		}
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			b := m.GoalBounds(idx, d)
			if b.Empty {
				if err := bw.write(-1); err != nil {
					return err
				}

				continue
			}
			if err := bw.write(int16(b.MinRow)); err != nil {
				return err
			}
			if err := bw.write(int16(b.MaxRow)); err != nil {
				return err
			}
			if err := bw.write(int16(b.MinCol)); err != nil {
				return err
			}
			if err := bw.write(int16(b.MaxCol)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Load reads a PreprocessedMap previously written by Save, using g to
// determine which cells are walls and therefore absent from the file.
func Load(r io.Reader, g *grid.Grid) (*PreprocessedMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return readBody(bufio.NewReader(r), g)
}

// LoadCompressed reads a PreprocessedMap previously written by
// SaveCompressed.
func LoadCompressed(r io.Reader, g *grid.Grid) (*PreprocessedMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	fr := flate.NewReader(r)
	defer fr.Close()

	return readBody(fr, g)
}

func readBody(r io.Reader, g *grid.Grid) (*PreprocessedMap, error) {
	n := g.Width() * g.Height()
	m := &PreprocessedMap{
		width:  g.Width(),
		height: g.Height(),
		jump:   make([][grid.NumDirections]int16, n),
		bounds: make([][grid.NumDirections]goalbound.Bounds, n),
	}

	maxMagnitude := int16(g.Width())
	if g.Height() > g.Width() {
		maxMagnitude = int16(g.Height())
	}

	br := newInt16Reader(r)
	for idx := 0; idx < n; idx++ {
		coord := g.Coordinate(idx)
		if g.Blocked(coord.Row, coord.Col) {
			continue
		}
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			v, err := br.read()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
			}
			if v > maxMagnitude || v < -maxMagnitude {
				return nil, fmt.Errorf("%w: jump distance %d exceeds grid dimensions", ErrCorruptFile, v)
			}
			m.jump[idx][d] = v
		}
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			marker, err := br.read()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
			}
			if marker == -1 {
				m.bounds[idx][d] = goalbound.Bounds{Empty: true}

				continue
			}
			maxRow, err := br.read()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
			}
			minCol, err := br.read()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
			}
			maxCol, err := br.read()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
			}
			m.bounds[idx][d] = goalbound.Bounds{
				MinRow: int(marker), MaxRow: int(maxRow),
				MinCol: int(minCol), MaxCol: int(maxCol),
			}
		}
	}

	return m, nil
}

// int16Writer/int16Reader centralize the file's fixed little-endian
// encoding for each individual short.
type int16Writer struct {
	w   io.Writer
	buf [2]byte
}

func newInt16Writer(w io.Writer) *int16Writer { return &int16Writer{w: w} }

func (iw *int16Writer) write(v int16) error {
	binary.LittleEndian.PutUint16(iw.buf[:], uint16(v))
	_, err := iw.w.Write(iw.buf[:])

	return err
}

type int16Reader struct {
	r   io.Reader
	buf [2]byte
}

func newInt16Reader(r io.Reader) *int16Reader { return &int16Reader{r: r} }

func (ir *int16Reader) read() (int16, error) {
	if _, err := io.ReadFull(ir.r, ir.buf[:]); err != nil {
		return 0, err
	}

	return int16(binary.LittleEndian.Uint16(ir.buf[:])), nil
}
