// Package drivers contains the dialect mapping and the data source names shared by the engine drivers.
// The drivers themselves live in the sub packages and register on import:
//
//	import _ "github.com/neuronlabs/dbhelper/drivers/gormdriver"
package drivers
