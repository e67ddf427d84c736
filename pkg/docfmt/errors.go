package docfmt

import "errors"

var (
	// ErrPlateSymbolNotFound is returned when the fifth character of a unified
	// plate has no digit in the PlateTable.
	ErrPlateSymbolNotFound = errors.New("plate symbol not found in table")

	// ErrInvalidPlate is returned by PlateTable conversions for input that is
	// not in the expected layout.
	ErrInvalidPlate = errors.New("invalid plate format")

	// ErrInvalidPlateTable is returned when a table is not ten distinct letters A-Z.
	ErrInvalidPlateTable = errors.New("plate table must be 10 distinct letters A-Z")

	// ErrInvalidConfig is returned by NewFromConfig for unusable settings.
	ErrInvalidConfig = errors.New("invalid docfmt config")
)
