package gormdriver

import (
	"github.com/neuronlabs/dbhelper/drivers"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

// DriverName is the name of the gorm driver.
const DriverName = "gorm"

func init() {
	if err := orm.RegisterDriver(&Driver{}); err != nil {
		log.Errorf("Registering gorm driver failed: %v", err)
	}
}

var _ orm.Driver = &Driver{}

// Driver creates the gorm engines.
type Driver struct{}

// DriverName implements orm.Driver interface.
func (d *Driver) DriverName() string {
	return DriverName
}

// Open implements orm.Driver interface. The engine connects on the first use.
func (d *Driver) Open(u *orm.URL, options *orm.EngineOptions) (orm.Engine, error) {
	dialect, dsn, err := drivers.DataSource(u)
	if err != nil {
		return nil, err
	}
	return &Engine{
		url:     u.Copy(),
		dialect: dialect,
		dsn:     dsn,
		options: *options,
		echo:    options.Echo,
	}, nil
}
