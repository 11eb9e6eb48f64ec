// Package errors provides lightweight error handling and classification primitives.
//
// A classification is a sentinel error created with New and refined with Wrap. Sub classifications
// and error instances keep their parents in the chain, so that the standard 'Is' check matches
// any ancestor class. Detailed errors carry a unique ID, the operation where they were created and
// an optional human readable detail.
package errors
