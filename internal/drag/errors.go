package drag

import "errors"

// ErrLocked is returned by DragStart when the item is being edited inline
var ErrLocked = errors.New("item is locked for editing")
