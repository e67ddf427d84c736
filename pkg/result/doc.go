// Package result provides Result, an immutable success-or-failure outcome
// carrying either data or a list of field-level ValidationFailure records.
//
//	func Register(in Input) result.Result[Customer] {
//	    if err := validator.Apply(validator.ValidTaxID("document", in.Document)); err != nil {
//	        return result.From(Customer{}, err)
//	    }
//	    return result.Success(Customer{Document: docfmt.TaxID(in.Document)})
//	}
//
// Failure accepts ValidationFailure values and bare Field names; a Field is
// reported with the generic "Invalid value" message:
//
//	r := result.Failure[Customer](
//	    result.Field("document"),
//	    result.ValidationFailure{PropertyName: "cep", ErrorMessage: "unknown CEP"},
//	)
//
// A successful Result never holds failures and a failed Result never holds
// data. Results are values; accessors return copies, so a Result can be
// shared between goroutines.
package result
