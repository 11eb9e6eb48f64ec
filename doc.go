/*
Package dbhelper is the registry of the database engines, declarative bases and scoped sessions keyed by name.
It lets the parts of an application share a single configured engine and session setup without passing them
explicitly through every function call.

Each Helper holds three registries: engines, bases and sessions. The "default" name is always present in each of them.
After initialization (New or Reset) the default engine is not set, the default base is a new, unbound
orm.DeclarativeBase and the default session is a new orm.ScopedSession with the transaction extension attached.

	h := dbhelper.New()
	engine, err := orm.CreateEngine("postgres://localhost/app")
	if err != nil {
		...
	}
	h.AddEngine(engine)
	ctx = orm.WithScope(ctx)
	session := h.GetSession().Session(ctx)
	defer h.GetSession().Close(ctx)

The engines might also be loaded from the settings:

	sqlalchemy.url = postgres://localhost/app
	sqlahelper.reports.url = postgres+sqlx://reports/app
	sqlahelper.reports.echo = yes

The package level functions operate on the process default helper.
*/
package dbhelper
