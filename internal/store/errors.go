package store

import "errors"

// ErrBookNotFound is returned by Remove and Update when no book in the
// collection has a case-insensitively matching title. The collection and
// its backing file are left untouched.
var ErrBookNotFound = errors.New("book not found")
