package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellValue indicates a cell value other than Free, Wall or Zone.
	ErrCellValue = errors.New("gridgraph: unsupported cell value")
	// ErrGridTooLarge indicates a map document above MaxDocCells.
	ErrGridTooLarge = errors.New("gridgraph: map document too large")
	// ErrOutOfBounds indicates a start or goal coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBlockedCell indicates a start or goal the mover cannot occupy.
	ErrBlockedCell = errors.New("gridgraph: coordinate is not traversable")
	// ErrUnknownMover indicates an unrecognised mover class name.
	ErrUnknownMover = errors.New("gridgraph: unknown mover class")
	// ErrUnknownAction indicates an action label outside the movement model.
	ErrUnknownAction = errors.New("gridgraph: unknown action")
	// ErrMissingMarker indicates an ASCII map without a start or goal marker.
	ErrMissingMarker = errors.New("gridgraph: map needs exactly one start and one goal")
)
