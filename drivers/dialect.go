package drivers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/orm"
)

// Database/sql driver names of the supported dialects.
const (
	Postgres = "postgres"
	MySQL    = "mysql"
	SQLite3  = "sqlite3"
)

var dialects = map[string]string{
	"postgres":   Postgres,
	"postgresql": Postgres,
	"pgsql":      Postgres,
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"sqlite":     SQLite3,
	"sqlite3":    SQLite3,
}

// SQLDriver gets the database/sql driver name for the url 'dialect'.
func SQLDriver(dialect string) (string, error) {
	name, ok := dialects[strings.ToLower(dialect)]
	if !ok {
		return "", errors.WrapDetf(orm.ErrUnsupportedDialect, "dialect: '%s' is not supported", dialect)
	}
	return name, nil
}

// DataSource gets the database/sql driver name and the data source name for the url 'u'.
func DataSource(u *orm.URL) (driverName, dsn string, err error) {
	driverName, err = SQLDriver(u.Dialect)
	if err != nil {
		return "", "", err
	}
	switch driverName {
	case Postgres:
		dsn = postgresDSN(u)
	case MySQL:
		dsn = mysqlDSN(u)
	case SQLite3:
		dsn = sqliteDSN(u)
	}
	return driverName, dsn, nil
}

// postgresDSN creates the lib/pq key=value connection string.
func postgresDSN(u *orm.URL) string {
	var parts []string
	add := func(key, value string) {
		if value == "" {
			return
		}
		if strings.ContainsAny(value, ` '\`) {
			value = "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value) + "'"
		}
		parts = append(parts, key+"="+value)
	}
	add("host", u.Host)
	if u.Port != 0 {
		add("port", strconv.Itoa(u.Port))
	}
	add("user", u.Username)
	add("password", u.Password)
	add("dbname", u.Database)
	for _, key := range sortedKeys(u.Query) {
		add(key, u.Query.Get(key))
	}
	return strings.Join(parts, " ")
}

// mysqlDSN creates the go-sql-driver/mysql data source name.
func mysqlDSN(u *orm.URL) string {
	sb := &strings.Builder{}
	if u.Username != "" {
		sb.WriteString(u.Username)
		if u.Password != "" {
			sb.WriteByte(':')
			sb.WriteString(u.Password)
		}
		sb.WriteByte('@')
	}
	if u.Host != "" {
		sb.WriteString("tcp(")
		sb.WriteString(u.Address())
		sb.WriteByte(')')
	}
	sb.WriteByte('/')
	sb.WriteString(u.Database)
	if len(u.Query) > 0 {
		sb.WriteByte('?')
		sb.WriteString(u.Query.Encode())
	}
	return sb.String()
}

// sqliteDSN gets the database file path. An empty database is an in-memory one.
func sqliteDSN(u *orm.URL) string {
	dsn := u.Database
	if dsn == "" {
		dsn = ":memory:"
	}
	if len(u.Query) > 0 {
		dsn = "file:" + dsn + "?" + u.Query.Encode()
	}
	return dsn
}

func sortedKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
