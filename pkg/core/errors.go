package core

import "errors"

// Construction errors. Every constructor in this package wraps one of these so
// callers can match with errors.Is.
var (
	ErrInvalidColor      = errors.New("color must be an RGB hex triplet such as #000000, or empty")
	ErrInvalidStateID    = errors.New("state id may only contain [A-Za-z0-9_]")
	ErrContentMismatch   = errors.New("content payload does not match note type")
	ErrUnknownNoteType   = errors.New("unknown note type")
	ErrFileNotFound      = errors.New("referenced file does not exist")
	ErrNegativeGeometry  = errors.New("note geometry must not be negative")
	ErrMissingTimestamp  = errors.New("note timestamps are required")
	ErrGroupStates       = errors.New("group notes cannot carry tag states")
	ErrNotAGroup         = errors.New("only group notes can hold child notes")
	ErrAlreadyAttached   = errors.New("item is already attached to a parent")
	ErrCycle             = errors.New("attaching item would create a cycle")
	ErrNoStates          = errors.New("tag needs at least one state")
	ErrStateOwned        = errors.New("state already belongs to another tag")
	ErrDuplicateStateID  = errors.New("state id is used more than once")
	ErrUnregisteredState = errors.New("note references a state whose tag is not registered")
	ErrDuplicateBasket   = errors.New("basket appears more than once in the forest")
	ErrNilItem           = errors.New("nil item")
)
