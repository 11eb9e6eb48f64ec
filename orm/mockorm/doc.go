// Package mockorm contains the engine, transaction and driver doubles used in tests.
// They never connect to any database.
package mockorm
