package orm

import (
	"sort"
	"sync"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
)

// DefaultDriverName is the name of the driver used for the urls that doesn't define one.
const DefaultDriverName = "gorm"

// Driver is the interface used for creating the engines.
type Driver interface {
	// DriverName gets the unique driver name - the '+driver' part of the url.
	DriverName() string
	// Open creates new engine for given 'url' and 'options'. It should not connect to the database.
	Open(url *URL, options *EngineOptions) (Engine, error)
}

var drivers = NewDrivers(DefaultDriverName)

// RegisterDriver registers the driver within the global drivers container.
func RegisterDriver(d Driver) error {
	log.Debugf("Registering driver: '%s'", d.DriverName())
	return drivers.Register(d)
}

// GlobalDrivers gets the global drivers container, where the drivers register on import.
func GlobalDrivers() *Drivers {
	return drivers
}

// CreateEngine creates new engine for the 'rawURL' using the global drivers container.
func CreateEngine(rawURL string, options ...EngineOption) (Engine, error) {
	return drivers.Create(rawURL, options...)
}

// Drivers is the container for the engine drivers.
type Drivers struct {
	defaultDriver string
	drivers       map[string]Driver
	lock          sync.RWMutex
}

// NewDrivers creates new drivers container with the 'defaultDriver' name and optional drivers.
// Duplicated drivers are ignored.
func NewDrivers(defaultDriver string, ds ...Driver) *Drivers {
	c := &Drivers{
		defaultDriver: defaultDriver,
		drivers:       map[string]Driver{},
	}
	for _, d := range ds {
		if err := c.Register(d); err != nil {
			log.Debugf("Skipping driver: %v", err)
		}
	}
	return c
}

// Register registers the driver 'd' within the container.
func (c *Drivers) Register(d Driver) error {
	name := d.DriverName()

	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.drivers[name]; ok {
		log.Debugf("Driver already registered: %s", name)
		return errors.WrapDetf(ErrDriverAlreadyRegistered, "driver: '%s' already registered", name)
	}
	c.drivers[name] = d
	log.Debugf("Driver: '%s' registered successfully.", name)
	return nil
}

// Get gets the driver with given 'name'.
func (c *Drivers) Get(name string) (Driver, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	d, ok := c.drivers[name]
	return d, ok
}

// Names gets the sorted names of the registered drivers.
func (c *Drivers) Names() []string {
	c.lock.RLock()
	names := make([]string, 0, len(c.drivers))
	for name := range c.drivers {
		names = append(names, name)
	}
	c.lock.RUnlock()
	sort.Strings(names)
	return names
}

// DefaultDriver gets the name of the default driver.
func (c *Drivers) DefaultDriver() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.defaultDriver
}

// SetDefaultDriver sets the name of the default driver.
func (c *Drivers) SetDefaultDriver(name string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.defaultDriver = name
}

// Create parses the 'rawURL' and creates new engine with the driver it selects.
func (c *Drivers) Create(rawURL string, options ...EngineOption) (Engine, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	o, err := NewEngineOptions(options...)
	if err != nil {
		return nil, err
	}
	return c.Open(u, o)
}

// Open creates new engine for the parsed 'url' and 'options' with the driver the url selects.
func (c *Drivers) Open(u *URL, options *EngineOptions) (Engine, error) {
	name := u.Driver
	if name == "" {
		name = c.DefaultDriver()
	}
	d, ok := c.Get(name)
	if !ok {
		return nil, errors.WrapDetf(ErrDriverNotFound, "driver: '%s' for url: '%s' not registered", name, u.Redacted())
	}
	if options == nil {
		options = &EngineOptions{}
	}
	e, err := d.Open(u, options)
	if err != nil {
		return nil, err
	}
	log.Debugf("Created engine: '%s' with driver: '%s'", u.Redacted(), name)
	return e, nil
}
