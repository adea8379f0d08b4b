// Package errorlist accumulates continuable errors, to report every
// problem of a dimensions file in one pass instead of failing on the
// first.
package errorlist

var maxErrors = 8

type List struct {
	errors  []error
	message string
}

func New(message string) *List {
	return &List{message: message}
}

func (list List) Error() string {
	return list.message
}

func (list List) Unwrap() []error {
	return list.errors
}

// Append a single error to the list.
//
// Returns false when the list is full and processing should stop.
func (list *List) Append(err error) bool {
	if err != nil {
		list.errors = append(list.errors, err)
	}
	return list.Len() < maxErrors
}

func (list List) Len() int {
	return len(list.errors)
}
