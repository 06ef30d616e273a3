package document

import "errors"

var (
	// ErrPageIndexOutOfRange reports a page index outside the form's pages.
	ErrPageIndexOutOfRange = errors.New("document: page index out of range")
	// ErrFieldNotFound reports a field id missing from the selected page.
	ErrFieldNotFound = errors.New("document: field not found on selected page")
	// ErrNoPage reports an operation that needs a selected page on a form
	// loaded without any.
	ErrNoPage = errors.New("document: form has no pages")
)
