// Package validator provides a small rule-based validation toolkit used by the
// connector schema layer to produce field-level validation errors.
//
// Validation is expressed as a list of Rule values executed by Apply. Each rule
// carries a Check closure and the ValidationError reported when the check
// fails. Failed rules accumulate into ValidationErrors, which implements the
// error interface and preserves the order in which rules were applied.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("host", cfg.Host),
//	    validator.OneOfString("scheme", cfg.Scheme, []string{"http", "https"}),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, e := range errs {
//	        // e.Field, e.Message
//	    }
//	}
package validator
