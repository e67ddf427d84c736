// Package docfmt renders Brazilian documents in their canonical display form.
//
// Every formatter follows the same pipeline: normalise the input to a string,
// return "" for blank input, reduce it to the significant characters, then
// classify it by length or pattern and rewrite it. Input that matches no
// known layout is returned in its reduced form instead of failing.
//
//	docfmt.TaxID("12345678909")       // "123.456.789-09"  (CPF)
//	docfmt.TaxID(11222333000181)      // "11.222.333/0001-81" (CNPJ)
//	docfmt.PostalCode(12345678)       // "12345-678"
//	docfmt.Phone("11987654321")       // "(11) 98765-4321"
//	docfmt.Phone("1133334444")        // "(11) 3333-4444"
//
// # Vehicle plates
//
// Plate converts between the legacy layout (three letters, four digits) and
// the unified Mercosul layout (three letters, digit, letter, two digits). The
// fifth character is translated through a PlateTable, which maps the digits
// 0-9 to the letters A-J by default:
//
//	docfmt.Plate("ABC-1234") // "ABC1C34", nil
//	docfmt.Plate("ABC1C34")  // "ABC1234", nil
//
// Plate differs from the other formatters in two ways. Input matching neither
// layout yields the InvalidPlate text rather than the input itself, and a
// unified plate whose fifth letter is not in the table (for example "ABC1K23")
// yields an error wrapping ErrPlateSymbolNotFound.
//
// # Formatter
//
// The package-level functions use a default Formatter that logs nothing. Use
// New or NewFromEnv to get a Formatter with a custom PlateTable, invalid-plate
// text or a logger that records unmatched input at debug level. Raw values are
// never logged, only their length.
//
// Formatters hold no mutable state and are safe for concurrent use.
package docfmt
