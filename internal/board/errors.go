package board

import "errors"

// Sentinel errors for board operations. Callers match them with errors.Is;
// returned errors wrap them with the cell or operation involved.
var (
	// ErrInvalidCell indicates a cell outside the board radius.
	ErrInvalidCell = errors.New("board: cell outside board radius")
	// ErrNotFound indicates an unoccupied cell or an unknown pool.
	ErrNotFound = errors.New("board: not found")
	// ErrOccupiedTarget indicates a placement onto an occupied cell.
	ErrOccupiedTarget = errors.New("board: target cell occupied")
	// ErrResourceExhausted indicates the pool id space is used up.
	ErrResourceExhausted = errors.New("board: pool ids exhausted")
	// ErrNilTile indicates a nil tile was passed in.
	ErrNilTile = errors.New("board: nil tile")
	// ErrInvalidConfig indicates unusable generation parameters.
	ErrInvalidConfig = errors.New("board: invalid generation config")
	// ErrInconsistent indicates a broken tile/pool invariant.
	ErrInconsistent = errors.New("board: invariant violated")
)
