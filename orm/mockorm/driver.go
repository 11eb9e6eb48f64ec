package mockorm

import (
	"github.com/neuronlabs/dbhelper/orm"
)

// DriverName is the mock driver name.
const DriverName = "mock"

var _ orm.Driver = &Driver{}

// Driver is the mock driver that creates mock engines.
type Driver struct {
	// Name overrides the driver name. Defaults to DriverName.
	Name string
	// OpenErr is returned by the Open function if set.
	OpenErr error
	// Opened are the engines created by the driver.
	Opened []*Engine
}

// NewDrivers creates new drivers container with the mock driver set as default.
func NewDrivers() (*orm.Drivers, *Driver) {
	d := &Driver{}
	return orm.NewDrivers(DriverName, d), d
}

// DriverName implements orm.Driver interface.
func (d *Driver) DriverName() string {
	if d.Name != "" {
		return d.Name
	}
	return DriverName
}

// Open implements orm.Driver interface.
func (d *Driver) Open(u *orm.URL, options *orm.EngineOptions) (orm.Engine, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}
	e := &Engine{Driver: d.DriverName(), EngineURL: u, Options: *options}
	d.Opened = append(d.Opened, e)
	return e, nil
}
