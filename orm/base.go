package orm

import (
	"reflect"
	"sync"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/namer"
)

// TableNamer is the interface implemented by the models which defines their own table name.
type TableNamer interface {
	TableName() string
}

// BaseOptions are the declarative base options.
type BaseOptions struct {
	// MetaData is the metadata used by the base. By default new metadata is created.
	MetaData *MetaData
	// Namer is the naming convention for the table names of the models that doesn't implement TableNamer.
	Namer namer.Namer
}

// BaseOption is an option function that changes the base options.
type BaseOption func(o *BaseOptions)

// WithMetaData sets the metadata for the base.
func WithMetaData(m *MetaData) BaseOption {
	return func(o *BaseOptions) {
		o.MetaData = m
	}
}

// WithNamer sets the table naming convention.
func WithNamer(n namer.Namer) BaseOption {
	return func(o *BaseOptions) {
		o.Namer = n
	}
}

// DeclarativeBase is the root of the model definitions. Each registered model is mapped into a table of the base's metadata.
type DeclarativeBase struct {
	metadata *MetaData
	namer    namer.Namer
	models   map[reflect.Type]*Table
	lock     sync.RWMutex
}

// NewDeclarativeBase creates new declarative base with empty, unbound metadata.
func NewDeclarativeBase(options ...BaseOption) *DeclarativeBase {
	o := &BaseOptions{Namer: namer.TableName}
	for _, option := range options {
		option(o)
	}
	if o.MetaData == nil {
		o.MetaData = NewMetaData()
	}
	return &DeclarativeBase{
		metadata: o.MetaData,
		namer:    o.Namer,
		models:   map[reflect.Type]*Table{},
	}
}

// Metadata gets the base metadata.
func (b *DeclarativeBase) Metadata() *MetaData {
	return b.metadata
}

// Register maps the 'models' into the metadata tables. A model must be a struct or a pointer to struct.
func (b *DeclarativeBase) Register(models ...interface{}) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	for _, model := range models {
		t, err := modelType(model)
		if err != nil {
			return err
		}
		if _, ok := b.models[t]; ok {
			return errors.WrapDetf(ErrModelAlreadyRegistered, "model: '%s' already registered", t)
		}
		table := &Table{Name: b.tableName(t), Type: t}
		if table.Name == "" {
			return errors.WrapDetf(ErrInvalidModel, "model: '%s' has no table name", t)
		}
		if err = b.metadata.addTable(table); err != nil {
			return err
		}
		b.models[t] = table
		log.Debug2f("Registered model: '%s' as table: '%s'", t, table.Name)
	}
	return nil
}

// Table gets the table for given 'model'.
func (b *DeclarativeBase) Table(model interface{}) (*Table, error) {
	t, err := modelType(model)
	if err != nil {
		return nil, err
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	table, ok := b.models[t]
	if !ok {
		return nil, errors.WrapDetf(ErrModelNotRegistered, "model: '%s' not registered", t)
	}
	return table, nil
}

func (b *DeclarativeBase) tableName(t reflect.Type) string {
	if tn, ok := reflect.New(t).Interface().(TableNamer); ok {
		return tn.TableName()
	}
	if tn, ok := reflect.New(t).Elem().Interface().(TableNamer); ok {
		return tn.TableName()
	}
	if t.Name() == "" {
		return ""
	}
	return b.namer(t.Name())
}

func modelType(model interface{}) (reflect.Type, error) {
	if model == nil {
		return nil, errors.WrapDet(ErrInvalidModel, "nil model")
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.WrapDetf(ErrInvalidModel, "model: '%s' is not a struct", t)
	}
	return t, nil
}

// Tables gets the tables registered in the base metadata.
func (b *DeclarativeBase) Tables() []*Table {
	return b.metadata.Tables()
}
