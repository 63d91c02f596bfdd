// Package errors reports problems in attribute documents and query misses.
//
// An Error names its stage (syntax, structural, io, query), the location of
// the offending YAML node, an excerpt of the source around it, and an
// optional hint. The decoder collects every structural problem of a document
// into one ErrorList rather than stopping at the first:
//
//	errs := errors.NewErrorList()
//	errs.AddError(errors.ErrorTypeStructural, "Attribute entry is missing 'name'", loc)
//	return errs.ToError()
//
// ErrorList unwraps to its members, so errors.As finds an individual *Error:
//
//	var e *errors.Error
//	if stderrors.As(err, &e) {
//		fmt.Println(e.Location, e.Message)
//	}
//
// SuggestPath and SuggestFieldName turn near misses into "Did you mean" hints.
package errors
