package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/AntonStoeckl/ddd-shop-go/config"
)

const slowQueryThreshold = 200 * time.Millisecond

// customerModel becomes customers, orderItemModel becomes order_items.
var namingReplacer = strings.NewReplacer("Model", "")

// Connect opens a GORM connection with the pool settings of cfg and pings the database once.
// Tables get cfg.TablePrefix. SQL is logged at debug level when logger is not nil.
func Connect(ctx context.Context, cfg config.Config, logger Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		PrepareStmt:          true,
		TranslateError:       true,
		DisableAutomaticPing: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:  cfg.TablePrefix,
			NameReplacer: namingReplacer,
		},
		Logger: newGormLogger(logger),
	})
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	config.ApplySQLPool(sqlDB, cfg.Pool)

	if cfg.Pool.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Pool.ConnectTimeout)
		defer cancel()
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close() // the ping error is the one that matters
		return nil, errors.Join(ErrPingingDatabaseFailed, err)
	}

	return db, nil
}

// Close closes the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func newGormLogger(logger Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}

	return gormlogger.New(
		printfLogger{logger: logger},
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// printfLogger hands GORM's log lines to a Logger at debug level.
type printfLogger struct {
	logger Logger
}

func (l printfLogger) Printf(format string, args ...any) {
	l.logger.Debug(logMsgGormLog, logAttrMessage, strings.TrimSpace(fmt.Sprintf(format, args...)))
}
