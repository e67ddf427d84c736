package docfmt

import "regexp"

var (
	legacyPlateRegex  = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	unifiedPlateRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)
