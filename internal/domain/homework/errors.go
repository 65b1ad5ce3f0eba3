package homework

import "errors"

// Errors returned while validating an API response or parsing a homework record.
var (
	ErrResponseType       = errors.New("unexpected API response data type")
	ErrResponseKey        = errors.New("expected key missing from API response")
	ErrHomeworkName       = errors.New("homework name is missing")
	ErrEmptyStatus        = errors.New("homework status is empty")
	ErrUndocumentedStatus = errors.New("undocumented homework status")
)
