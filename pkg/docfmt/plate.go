package docfmt

import (
	"fmt"

	"github.com/dmitrymomot/formatkit/pkg/sanitizer"
)

// Index of the character that differs between the legacy and unified layouts.
const plateSymbolIndex = 4

type platePair struct {
	letter byte
	digit  byte
}

// PlateTable maps the digits 0-9 to the letters used in the fifth position
// of unified plates. The zero value is not usable; build one with
// NewPlateTable or use DefaultPlateTable.
type PlateTable struct {
	letters [10]byte
	pairs   [10]platePair
}

// DefaultPlateTable maps 0-9 to A-J.
var DefaultPlateTable = mustPlateTable("ABCDEFGHIJ")

// NewPlateTable builds a table from ten distinct upper-case letters, where
// letters[d] is the letter for digit d.
func NewPlateTable(letters string) (PlateTable, error) {
	var t PlateTable
	if len(letters) != len(t.letters) {
		return PlateTable{}, fmt.Errorf("%w: got %d characters", ErrInvalidPlateTable, len(letters))
	}

	var seen [26]bool
	for d := range len(letters) {
		l := letters[d]
		if l < 'A' || l > 'Z' {
			return PlateTable{}, fmt.Errorf("%w: %q is not a letter", ErrInvalidPlateTable, l)
		}
		if seen[l-'A'] {
			return PlateTable{}, fmt.Errorf("%w: %q repeated", ErrInvalidPlateTable, l)
		}
		seen[l-'A'] = true

		t.letters[d] = l
		t.pairs[d] = platePair{letter: l, digit: '0' + byte(d)}
	}
	return t, nil
}

func mustPlateTable(letters string) PlateTable {
	t, err := NewPlateTable(letters)
	if err != nil {
		panic(err)
	}
	return t
}

func (t PlateTable) valid() bool {
	return t.letters[0] != 0
}

// Letter returns the letter for an ASCII digit.
func (t PlateTable) Letter(digit byte) (byte, bool) {
	if digit < '0' || digit > '9' {
		return 0, false
	}
	return t.letters[digit-'0'], true
}

// Digit returns the ASCII digit for a letter.
func (t PlateTable) Digit(letter byte) (byte, bool) {
	for _, p := range t.pairs {
		if p.letter == letter {
			return p.digit, true
		}
	}
	return 0, false
}

// ToUnified rewrites a normalised legacy plate ("ABC1234") in the unified
// layout ("ABC1C34").
func (t PlateTable) ToUnified(plate string) (string, error) {
	if !legacyPlateRegex.MatchString(plate) {
		return "", fmt.Errorf("%w: expected legacy layout", ErrInvalidPlate)
	}
	letter, _ := t.Letter(plate[plateSymbolIndex])
	return replaceAt(plate, plateSymbolIndex, letter), nil
}

// ToLegacy rewrites a normalised unified plate ("ABC1C34") in the legacy
// layout ("ABC1234").
func (t PlateTable) ToLegacy(plate string) (string, error) {
	if !unifiedPlateRegex.MatchString(plate) {
		return "", fmt.Errorf("%w: expected unified layout", ErrInvalidPlate)
	}
	letter := plate[plateSymbolIndex]
	digit, ok := t.Digit(letter)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPlateSymbolNotFound, letter)
	}
	return replaceAt(plate, plateSymbolIndex, digit), nil
}

func replaceAt(s string, i int, b byte) string {
	buf := []byte(s)
	buf[i] = b
	return string(buf)
}

// IsLegacyPlate reports whether s is a legacy plate once separators and case
// are normalised.
func IsLegacyPlate(s string) bool {
	return legacyPlateRegex.MatchString(sanitizer.NormalizePlate(s))
}

// IsUnifiedPlate reports whether s is a unified plate once separators and
// case are normalised.
func IsUnifiedPlate(s string) bool {
	return unifiedPlateRegex.MatchString(sanitizer.NormalizePlate(s))
}
