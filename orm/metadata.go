package orm

import (
	"reflect"
	"sync"

	"github.com/neuronlabs/dbhelper/errors"
)

// Table is the model's mapping into the database table.
type Table struct {
	// Name is the table name.
	Name string
	// Type is the model struct type.
	Type reflect.Type
}

// MetaData is the collection of tables, optionally bound to an engine.
type MetaData struct {
	bind   Engine
	tables map[string]*Table
	names  []string
	lock   sync.RWMutex
}

// NewMetaData creates new empty, unbound metadata.
func NewMetaData() *MetaData {
	return &MetaData{tables: map[string]*Table{}}
}

// Bind gets the engine the metadata is bound to. Returns nil if it is not bound.
func (m *MetaData) Bind() Engine {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.bind
}

// SetBind binds the metadata to the engine 'e'. A nil engine unbinds the metadata.
func (m *MetaData) SetBind(e Engine) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.bind = e
}

// Table gets the table with given 'name'.
func (m *MetaData) Table(name string) (*Table, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	t, ok := m.tables[name]
	return t, ok
}

// Tables gets the tables in the order they were added.
func (m *MetaData) Tables() []*Table {
	m.lock.RLock()
	defer m.lock.RUnlock()
	tables := make([]*Table, len(m.names))
	for i, name := range m.names {
		tables[i] = m.tables[name]
	}
	return tables
}

func (m *MetaData) addTable(t *Table) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if existing, ok := m.tables[t.Name]; ok {
		return errors.WrapDetf(ErrModelAlreadyRegistered, "table: '%s' already defined for model: '%s'", t.Name, existing.Type)
	}
	m.tables[t.Name] = t
	m.names = append(m.names, t.Name)
	return nil
}
