// Package log contains the default dbhelper logger. It is used by all packages to log their messages.
//
// In order not to extort any specific logging package, the package wraps around any
// unilogger.LeveledLogger implementation. Until a logger is set with Default, New or SetLogger
// the package functions are no-op, so that the library stays silent unless the application
// asks for its logs.
package log
