package docfmt

import (
	"log/slog"

	"github.com/dmitrymomot/formatkit/pkg/logger"
)

// InvalidPlate is returned by Plate for input in neither plate layout.
const InvalidPlate = "invalid format"

// Formatter renders documents using a fixed PlateTable and logger.
type Formatter struct {
	table        PlateTable
	invalidPlate string
	logger       *slog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger sets the logger for unmatched input. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithPlateTable replaces DefaultPlateTable. A zero PlateTable is ignored.
func WithPlateTable(t PlateTable) Option {
	return func(f *Formatter) {
		if t.valid() {
			f.table = t
		}
	}
}

// WithInvalidPlateText sets the text Plate returns for unrecognised input.
func WithInvalidPlateText(text string) Option {
	return func(f *Formatter) {
		f.invalidPlate = text
	}
}

// New creates a Formatter using DefaultPlateTable, InvalidPlate and a logger
// that discards output, unless overridden by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		table:        DefaultPlateTable,
		invalidPlate: InvalidPlate,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("docfmt"))
	return f
}

// PlateTable returns the table used for plate conversion.
func (f *Formatter) PlateTable() PlateTable {
	return f.table
}

func (f *Formatter) unmatched(op string, n int) {
	f.logger.Debug("input left unformatted", logger.Operation(op), logger.InputLength(n))
}

var defaultFormatter = New()

// TaxID formats v as a CPF or CNPJ using the default Formatter.
func TaxID[T Input](v T) string {
	return defaultFormatter.TaxID(toString(v))
}

// PostalCode formats v as a CEP using the default Formatter.
func PostalCode[T Input](v T) string {
	return defaultFormatter.PostalCode(toString(v))
}

// Phone formats v as a mobile or landline number using the default Formatter.
func Phone[T Input](v T) string {
	return defaultFormatter.Phone(toString(v))
}

// Plate converts between plate layouts using the default Formatter.
func Plate(v string) (string, error) {
	return defaultFormatter.Plate(v)
}
