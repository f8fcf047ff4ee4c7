package gridgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Map bundles a grid with its start and goal cells.
type Map struct {
	Grid  *Grid
	Start Coord
	Goal  Coord
}

// Problem builds the PathFinding problem for m under opts.
func (m *Map) Problem(opts GridOptions) (*PathFinding, error) {
	return NewPathFinding(m.Grid, m.Start, m.Goal, opts)
}

// Render draws the map with 'S' start, 'G' goal and '*' on every cell of path
// other than its endpoints.
func (m *Map) Render(path []Coord) string {
	marks := make(map[Coord]byte, len(path)+2)
	for _, c := range path {
		marks[c] = '*'
	}
	marks[m.Start] = 'S'
	marks[m.Goal] = 'G'

	return m.Grid.render(marks)
}

// MapDoc is the JSON map document:
//
//	{"rows": 5, "start": [0,0], "end": [4,4], "barrier": [[0,2],[1,2]], "zones": [[3,3]]}
//
// Coordinates are [x, y]. The grid is rows×rows unless Cols is set, in which
// case it is rows wide and cols high.
type MapDoc struct {
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols,omitempty"`
	Start   [2]int   `json:"start"`
	End     [2]int   `json:"end"`
	Barrier [][2]int `json:"barrier"`
	Zones   [][2]int `json:"zones,omitempty"`
}

// MaxDocCells caps the grid a MapDoc may describe.
const MaxDocCells = 1 << 24

// Size returns the width and height the document describes.
func (d MapDoc) Size() (w, h int) {
	w, h = d.Rows, d.Rows
	if d.Cols > 0 {
		h = d.Cols
	}

	return w, h
}

// Fits reports whether the document describes at most limit cells.
// The comparison never multiplies, so huge dimensions cannot wrap around.
func (d MapDoc) Fits(limit int) bool {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return true
	}

	return w <= limit && h <= limit/w
}

// Build validates the document and returns the corresponding Map.
// Barrier or zone cells outside the grid yield ErrOutOfBounds; documents
// above MaxDocCells yield ErrGridTooLarge.
func (d MapDoc) Build() (*Map, error) {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if !d.Fits(MaxDocCells) {
		return nil, fmt.Errorf("%w: %d×%d > %d cells", ErrGridTooLarge, w, h, MaxDocCells)
	}
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
	}
	mark := func(cells [][2]int, v int, what string) error {
		for _, xy := range cells {
			if xy[0] < 0 || xy[0] >= w || xy[1] < 0 || xy[1] >= h {
				return fmt.Errorf("%w: %s cell (%d,%d)", ErrOutOfBounds, what, xy[0], xy[1])
			}
			values[xy[1]][xy[0]] = v
		}
		return nil
	}
	if err := mark(d.Zones, Zone, "zone"); err != nil {
		return nil, err
	}
	if err := mark(d.Barrier, Wall, "barrier"); err != nil {
		return nil, err
	}
	g, err := NewGrid(values)
	if err != nil {
		return nil, err
	}

	return &Map{
		Grid:  g,
		Start: Coord{d.Start[0], d.Start[1]},
		Goal:  Coord{d.End[0], d.End[1]},
	}, nil
}

// DecodeMap reads a JSON MapDoc from r and builds it.
func DecodeMap(r io.Reader) (*Map, error) {
	var doc MapDoc
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("gridgraph: decode map: %w", err)
	}

	return doc.Build()
}

// ParseASCII reads a map drawn one row per line, y ascending:
//
//	'.' or ' '  free
//	'#' or '%'  wall
//	'z'         restricted zone
//	'S'         start (free)
//	'G'         goal (free)
//
// Blank leading and trailing lines are ignored; rows must share a length.
func ParseASCII(text string) (*Map, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	values := make([][]int, 0, len(lines))
	var start, goal []Coord
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]int, len(line))
		for x, ch := range []byte(line) {
			switch ch {
			case '.', ' ':
				row[x] = Free
			case '#', '%':
				row[x] = Wall
			case 'z', 'Z':
				row[x] = Zone
			case 'S':
				start = append(start, Coord{x, y})
			case 'G':
				goal = append(goal, Coord{x, y})
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrCellValue, ch, x, y)
			}
		}
		values = append(values, row)
	}
	g, err := NewGrid(values)
	if err != nil {
		return nil, err
	}
	if len(start) != 1 || len(goal) != 1 {
		return nil, fmt.Errorf("%w: found %d start, %d goal", ErrMissingMarker, len(start), len(goal))
	}

	return &Map{Grid: g, Start: start[0], Goal: goal[0]}, nil
}
