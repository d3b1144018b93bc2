package store

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/leapstack-labs/arffkit/pkg/arff"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// dialect captures the per-database differences the loader cares about.
type dialect struct {
	name         string
	sqlDriver    string // name registered with database/sql
	gooseDialect string // empty when goose cannot migrate this database
	realType     string
	integerType  string
	textType     string
	numbered     bool // $1 placeholders instead of ?
}

var dialects = map[string]dialect{
	DriverSQLite: {
		name:         DriverSQLite,
		sqlDriver:    "sqlite",
		gooseDialect: "sqlite",
		realType:     "REAL",
		integerType:  "INTEGER",
		textType:     "TEXT",
	},
	DriverDuckDB: {
		name:        DriverDuckDB,
		sqlDriver:   "duckdb",
		realType:    "DOUBLE",
		integerType: "BIGINT",
		textType:    "VARCHAR",
	},
	DriverPostgres: {
		name:         DriverPostgres,
		sqlDriver:    "pgx",
		gooseDialect: "postgres",
		realType:     "DOUBLE PRECISION",
		integerType:  "BIGINT",
		textType:     "TEXT",
		numbered:     true,
	},
}

// Drivers returns the supported driver names.
func Drivers() []string {
	return []string{DriverSQLite, DriverDuckDB, DriverPostgres}
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[strings.ToLower(driver)]
	if !ok {
		return dialect{}, fmt.Errorf("unknown database driver %q (supported: %s)", driver, strings.Join(Drivers(), ", "))
	}
	return d, nil
}

func (d dialect) columnType(dt arff.Datatype) string {
	switch dt.Kind {
	case arff.KindInteger:
		return d.integerType
	case arff.KindReal, arff.KindNumeric:
		return d.realType
	default:
		return d.textType
	}
}

// placeholders returns n bind parameters, e.g. "?, ?" or "$1, $2".
func (d dialect) placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		if d.numbered {
			ps[i] = "$" + strconv.Itoa(i+1)
		} else {
			ps[i] = "?"
		}
	}
	return strings.Join(ps, ", ")
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Identifier turns an arbitrary name into a lower-case SQL identifier made
// of letters, digits and underscores. It returns fallback for names with
// nothing usable in them.
func Identifier(name, fallback string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	id := strings.TrimRight(b.String(), "_")
	if id == "" {
		return fallback
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}

// TableName derives a table name from a relation name.
func TableName(relation string) string {
	return Identifier(relation, "relation")
}

// columnNames derives unique column identifiers for the attributes.
func columnNames(attrs []arff.Attribute) []string {
	names := make([]string, len(attrs))
	used := make(map[string]bool, len(attrs))
	for i, attr := range attrs {
		base := Identifier(attr.Name, fmt.Sprintf("column_%d", i+1))
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}
