package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/leapstack-labs/arffkit/internal/testutil"
	"github.com/leapstack-labs/arffkit/pkg/arff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *arff.Document {
	t.Helper()
	doc, err := arff.ParseString(src, arff.Options{})
	require.NoError(t, err)
	return doc
}

func openSQLite(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), Config{
		Driver: DriverSQLite,
		DSN:    ":memory:",
		Logger: testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{name: "unknown driver", cfg: Config{Driver: "mysql", DSN: "x"}, errMsg: "unknown database driver"},
		{name: "missing dsn", cfg: Config{Driver: DriverSQLite}, errMsg: "dsn is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSQLite_LoadIris(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)
	doc := parse(t, testutil.Iris)
	doc.SourcePath = "iris.arff"

	res, err := s.Load(ctx, doc, "")
	require.NoError(t, err)
	assert.Equal(t, "iris", res.Table)
	assert.Equal(t, 10, res.Rows)
	assert.Equal(t, []string{"sepallength", "sepalwidth", "petallength", "petalwidth", "class"}, res.Columns)
	assert.NotEmpty(t, res.ID)

	var count int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM "iris"`).Scan(&count))
	assert.Equal(t, 10, count)

	var sepal float64
	var class string
	require.NoError(t, s.DB().QueryRowContext(ctx,
		`SELECT sepallength, class FROM iris ORDER BY sepallength DESC LIMIT 1`).Scan(&sepal, &class))
	assert.InDelta(t, 5.4, sepal, 1e-9)
	assert.Equal(t, "Iris-setosa", class)

	loads, err := s.Loads(ctx)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, LoadRecord{
		ID:         res.ID,
		Relation:   "iris",
		SourcePath: "iris.arff",
		Table:      "iris",
		Attributes: 5,
		Rows:       10,
	}, loads[0])

	var datatype string
	require.NoError(t, s.DB().QueryRowContext(ctx,
		`SELECT datatype FROM arff_attributes WHERE relation_id = ? AND position = 5`, res.ID).Scan(&datatype))
	assert.Equal(t, "{Iris-setosa,Iris-versicolor,Iris-virginica}", datatype)
}

func TestSQLite_LoadNullsAndTypes(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	res, err := s.Load(ctx, parse(t, testutil.Weather), "")
	require.NoError(t, err)
	assert.Equal(t, "weather_data", res.Table)
	assert.Equal(t, []string{"outlook", "temp_c", "humidity", "note"}, res.Columns)

	var nullTemps, nullNotes int
	require.NoError(t, s.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM weather_data WHERE temp_c IS NULL`).Scan(&nullTemps))
	require.NoError(t, s.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM weather_data WHERE note IS NULL`).Scan(&nullNotes))
	assert.Equal(t, 1, nullTemps)
	assert.Equal(t, 1, nullNotes)

	var humidity int64
	require.NoError(t, s.DB().QueryRowContext(ctx,
		`SELECT SUM(humidity) FROM weather_data`).Scan(&humidity))
	assert.Equal(t, int64(245), humidity)
}

func TestSQLite_LoadReplacesTable(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)
	doc := parse(t, testutil.Iris)

	_, err := s.Load(ctx, doc, "flowers")
	require.NoError(t, err)

	_, err = doc.RemoveAttribute("class")
	require.NoError(t, err)
	doc.Rows = doc.Rows[:3]
	_, err = s.Load(ctx, doc, "flowers")
	require.NoError(t, err)

	var count int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM flowers`).Scan(&count))
	assert.Equal(t, 3, count)

	loads, err := s.Loads(ctx)
	require.NoError(t, err)
	assert.Len(t, loads, 2)
}

func TestSQLite_LoadErrorsLeaveTableUntouched(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	_, err := s.Load(ctx, parse(t, testutil.Iris), "iris")
	require.NoError(t, err)

	tests := []struct {
		name    string
		doc     *arff.Document
		wantErr error
		errMsg  string
	}{
		{
			name: "ragged row",
			doc: &arff.Document{
				Relation:   "iris",
				Attributes: []arff.Attribute{{Name: "a", Type: arff.Real}, {Name: "b", Type: arff.Real}},
				Rows:       []arff.Row{{"1", "2"}, {"3"}},
			},
			wantErr: arff.ErrRowSchemaMismatch,
		},
		{
			name: "invalid number",
			doc: &arff.Document{
				Relation:   "iris",
				Attributes: []arff.Attribute{{Name: "a", Type: arff.Integer}},
				Rows:       []arff.Row{{"1"}, {"1.5"}},
			},
			errMsg: `invalid integer "1.5"`,
		},
		{
			name:   "no attributes",
			doc:    &arff.Document{Relation: "iris"},
			errMsg: "no attributes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Load(ctx, tt.doc, "iris")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}

			var count int
			require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM iris`).Scan(&count))
			assert.Equal(t, 10, count)
		})
	}
}

func TestSQLite_MigrateIsIdempotent(t *testing.T) {
	s := openSQLite(t)
	require.NoError(t, s.Migrate(context.Background()))

	version, err := s.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestCustomNullValues(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Config{Driver: DriverSQLite, DSN: ":memory:", NullValues: []string{"NA", ""}})
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	doc := &arff.Document{
		Relation:   "nulls",
		Attributes: []arff.Attribute{{Name: "v", Type: arff.Real}},
		Rows:       []arff.Row{{"NA"}, {""}, {"2"}},
	}
	_, err = s.Load(ctx, doc, "")
	require.NoError(t, err)

	var nulls int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM nulls WHERE v IS NULL`).Scan(&nulls))
	assert.Equal(t, 2, nulls)

	_, err = s.Loads(ctx)
	assert.Error(t, err, "catalog is only available after Migrate")
}

func TestPostgres_LoadStatements(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	s, err := NewWithDB(db, Config{Driver: "Postgres"})
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, s.Driver())
	assert.True(t, s.HasCatalog())

	mock.ExpectBegin()
	mock.ExpectExec(`DROP TABLE IF EXISTS "weather_data"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE "weather_data" ("outlook" TEXT, "temp_c" DOUBLE PRECISION, "humidity" BIGINT, "note" TEXT)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	insert := `INSERT INTO "weather_data" VALUES ($1, $2, $3, $4)`
	mock.ExpectExec(insert).WithArgs("sunny", 30.5, int64(85), "hot").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).WithArgs("overcast", nil, int64(90), nil).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).WithArgs("rainy", 18.0, int64(70), "'wet'").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := s.Load(context.Background(), parse(t, testutil.Weather), "")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_InsertFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	s, err := NewWithDB(db, Config{Driver: DriverPostgres})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err = s.Load(context.Background(), parse(t, testutil.Iris), "iris")
	require.Error(t, err)
	var rerr *arff.RowError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 1, rerr.Row)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_LogsRowCount(t *testing.T) {
	logger, logs := testutil.NewCaptureLogger()
	s, err := Open(context.Background(), Config{Driver: DriverSQLite, DSN: ":memory:", Logger: logger})
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = s.Load(context.Background(), parse(t, testutil.Weather), "")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `msg="loaded relation"`)
	assert.Contains(t, logs.String(), "table=weather_data")
	assert.Contains(t, logs.String(), "rows=3")
	assert.Contains(t, logs.String(), "driver=sqlite")
}
