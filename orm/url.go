package orm

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/neuronlabs/dbhelper/errors"
)

// URL is the parsed engine connection url of the form:
//	dialect[+driver]://[username[:password]@]host[:port]/[database][?query]
// For file based dialects the database is the file path, i.e. 'sqlite:///app.db' is a relative
// and 'sqlite:////var/lib/app.db' an absolute path. An empty database is an in-memory one.
type URL struct {
	Dialect  string
	Driver   string
	Username string
	Password string
	Host     string
	Port     int
	Database string
	Query    url.Values
}

// ParseURL parses the 'raw' engine url.
func ParseURL(raw string) (*URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.WrapDetf(ErrInvalidURL, "%v", err)
	}
	if u.Scheme == "" || u.Opaque != "" {
		return nil, errors.WrapDetf(ErrInvalidURL, "url: '%s' must be of form dialect[+driver]://...", raw)
	}

	parsed := &URL{
		Host:     u.Hostname(),
		Database: strings.TrimPrefix(u.Path, "/"),
		Query:    u.Query(),
	}
	parsed.Dialect = u.Scheme
	if i := strings.IndexByte(u.Scheme, '+'); i != -1 {
		parsed.Dialect, parsed.Driver = u.Scheme[:i], u.Scheme[i+1:]
	}
	if parsed.Dialect == "" {
		return nil, errors.WrapDetf(ErrInvalidURL, "url: '%s' has no dialect", raw)
	}
	if port := u.Port(); port != "" {
		if parsed.Port, err = strconv.Atoi(port); err != nil {
			return nil, errors.WrapDetf(ErrInvalidURL, "url: '%s' has invalid port: '%s'", raw, port)
		}
	}
	if u.User != nil {
		parsed.Username = u.User.Username()
		parsed.Password, _ = u.User.Password()
	}
	return parsed, nil
}

// Scheme gets the url scheme - the dialect with an optional driver.
func (u *URL) Scheme() string {
	if u.Driver == "" {
		return u.Dialect
	}
	return u.Dialect + "+" + u.Driver
}

// Address gets the 'host:port' address. If the port is not set only the host is returned.
func (u *URL) Address() string {
	host := u.Host
	if strings.IndexByte(host, ':') != -1 {
		host = "[" + host + "]"
	}
	if u.Port == 0 {
		return host
	}
	return host + ":" + strconv.Itoa(u.Port)
}

// String implements fmt.Stringer interface. The result contains the password.
func (u *URL) String() string {
	return u.format(false)
}

// Redacted gets the url string with the password masked.
func (u *URL) Redacted() string {
	return u.format(true)
}

// Copy creates a deep copy of the url.
func (u *URL) Copy() *URL {
	cp := *u
	if u.Query != nil {
		cp.Query = url.Values{}
		for k, v := range u.Query {
			cp.Query[k] = append([]string(nil), v...)
		}
	}
	return &cp
}

func (u *URL) format(redact bool) string {
	sb := &strings.Builder{}
	sb.WriteString(u.Scheme())
	sb.WriteString("://")
	if u.Username != "" {
		sb.WriteString(url.User(u.Username).String())
		if u.Password != "" {
			sb.WriteByte(':')
			if redact {
				sb.WriteString("***")
			} else {
				sb.WriteString(strings.TrimPrefix(url.UserPassword("", u.Password).String(), ":"))
			}
		}
		sb.WriteByte('@')
	}
	sb.WriteString(u.Address())
	if u.Database != "" {
		sb.WriteByte('/')
		sb.WriteString(u.Database)
	}
	if len(u.Query) > 0 {
		sb.WriteByte('?')
		sb.WriteString(u.Query.Encode())
	}
	return sb.String()
}
