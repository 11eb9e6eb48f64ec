/*
Package gormdriver is the orm engine driver over the github.com/jinzhu/gorm. The driver is registered
as 'gorm' on import, which is the default driver for the urls that doesn't define one.

The gorm dialects needs to be imported by the application, i.e.:

	import (
		_ "github.com/jinzhu/gorm/dialects/postgres"
		_ "github.com/neuronlabs/dbhelper/drivers/gormdriver"
	)
*/
package gormdriver
