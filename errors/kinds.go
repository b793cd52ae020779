package errors

import "strconv"

// ErrCategory is the Category of errors returned by the iarray packages.
type ErrCategory uint32

// Category implements Category.
func (c ErrCategory) Category() string {
	return c.String()
}

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown ErrCategory = 0 // Unknown
	// CatRequest is an error caused by the caller, such as a bad argument or a write to a frozen array.
	CatRequest ErrCategory = 1 // Request
	// CatInternal is an error caused by a bug in this module.
	CatInternal ErrCategory = 2 // Internal
)

func (c ErrCategory) String() string {
	switch c {
	case CatUnknown:
		return "Unknown"
	case CatRequest:
		return "Request"
	case CatInternal:
		return "Internal"
	}
	return "ErrCategory(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// ErrType is the Type of errors returned by the iarray packages.
type ErrType uint16

// Type implements Type.
func (t ErrType) Type() string {
	return t.String()
}

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown ErrType = 0 // Unknown
	// TypeFrozen is returned when an in-place write is attempted on an array the freeze policy made unmodifiable.
	TypeFrozen ErrType = 1 // Frozen
	// TypeArgument is returned when an argument has the wrong type or shape for the operation.
	TypeArgument ErrType = 2 // Argument
	// TypeRange is returned when an index or length is outside of what an array can hold.
	TypeRange ErrType = 3 // Range
)

func (t ErrType) String() string {
	switch t {
	case TypeUnknown:
		return "Unknown"
	case TypeFrozen:
		return "Frozen"
	case TypeArgument:
		return "Argument"
	case TypeRange:
		return "Range"
	}
	return "ErrType(" + strconv.FormatUint(uint64(t), 10) + ")"
}
