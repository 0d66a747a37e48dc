package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOpen_RequiresPostgresConfig(t *testing.T) {
	_, err := Open(context.Background(), Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.Default(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres config is missing")
}

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	_, _, waited := poolWaitAttrs(prev, prev)
	assert.False(t, waited)

	cur := sql.DBStats{WaitCount: 5, WaitDuration: 30 * time.Millisecond}
	attrs, slow, waited := poolWaitAttrs(prev, cur)
	assert.True(t, waited)
	assert.False(t, slow)
	assert.Equal(t, "avgWait", attrs[2].Key)
	assert.Equal(t, 10*time.Millisecond, attrs[2].Value.Duration())

	cur.WaitDuration = prev.WaitDuration + dbPoolWarnDurationThreshold
	_, slow, _ = poolWaitAttrs(prev, cur)
	assert.True(t, slow)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantLog string
	}{
		{name: "fast query is quiet outside debug", begin: time.Now()},
		{name: "fast query is logged in debug", debug: true, begin: time.Now(), wantLog: "kv query"},
		{name: "record not found is ignored", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "failure is logged", begin: time.Now(), err: assert.AnError, wantLog: "kv query failed"},
		{name: "slow query is logged", begin: time.Now().Add(-time.Second), wantLog: "kv slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newGormSlogLogger(base, cfg)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "component=kv_records")
		})
	}
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)
	l.Error(context.Background(), "boom %d", 1)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "", 0 }, assert.AnError)

	assert.Empty(t, buf.String())
}

func TestStore_SetIfAbsentStatement(t *testing.T) {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=storefront dbname=storefront sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	store := NewStore(db)
	key := repository.NewKey(repository.NamespaceUsers, "ada@example.com")

	statement := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return store.insertIfAbsent(tx, key, []byte(`{}`))
	})
	assert.Contains(t, statement, `INSERT INTO "kv_records"`)
	assert.Contains(t, statement, "ON CONFLICT DO NOTHING")
	assert.NotContains(t, statement, "DO UPDATE")
}
