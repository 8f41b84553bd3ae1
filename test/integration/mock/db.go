package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/walletive/backend/internal/infra/db"
)

var once sync.Once
var database *Db

// Db is a shared in-memory SQLite store migrated with the application models.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database on first use.
func NewDb(models []any) *Db {
	once.Do(func() {
		database = open(models)
	})
	return database
}

func open(models []any) *Db {
	dbConn, err := gorm.Open(sqlite.Open(db.SQLiteDSN("file:walletive_integration?mode=memory&cache=shared")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := newDbMock.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB drops and recreates every table.
func (d *Db) ClearDB() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		if err := d.DbConn.Migrator().DropTable(d.models[i]); err != nil {
			return err
		}
	}

	if err := d.DbConn.AutoMigrate(d.models...); err != nil {
		return err
	}

	for _, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// Reset deletes all rows, children first.
func (d *Db) Reset() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(d.models[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in table matching the optional where clause.
func (d *Db) Count(table, where string, args ...any) (int64, error) {
	var count int64
	query := d.DbConn.Table(table)
	if where != "" {
		query = query.Where(where, args...)
	}
	err := query.Count(&count).Error
	return count, err
}
