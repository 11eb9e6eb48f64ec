// Package sqlxdriver is the orm engine driver over the github.com/jmoiron/sqlx. The driver is registered
// as 'sqlx' on import and is selected with the url driver part, i.e. 'postgres+sqlx://localhost/app'.
// The database/sql drivers needs to be imported by the application.
package sqlxdriver

import (
	"github.com/neuronlabs/dbhelper/drivers"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

// DriverName is the name of the sqlx driver.
const DriverName = "sqlx"

func init() {
	if err := orm.RegisterDriver(&Driver{}); err != nil {
		log.Errorf("Registering sqlx driver failed: %v", err)
	}
}

var _ orm.Driver = &Driver{}

// Driver creates the sqlx engines.
type Driver struct{}

// DriverName implements orm.Driver interface.
func (d *Driver) DriverName() string {
	return DriverName
}

// Open implements orm.Driver interface. The engine connects on the first use.
func (d *Driver) Open(u *orm.URL, options *orm.EngineOptions) (orm.Engine, error) {
	driverName, dsn, err := drivers.DataSource(u)
	if err != nil {
		return nil, err
	}
	return &Engine{
		url:        u.Copy(),
		driverName: driverName,
		dsn:        dsn,
		options:    *options,
		echo:       options.Echo,
	}, nil
}
