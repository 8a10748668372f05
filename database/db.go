package database

import (
	"fmt"
	"sync"

	"inventory-app/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

var (
	db      *gorm.DB
	dbMutex sync.Mutex
)

// Connect opens the shared store connection. Repeated calls are no-ops
// once the handle exists; every request reuses the same pool.
func Connect() (*gorm.DB, error) {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	if db != nil {
		return db, nil
	}

	_, dialector := getDSNAndDialector(config.DBName)
	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	db = conn
	return db, nil
}

// Close tears down the shared connection on shutdown.
func Close() error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	db = nil
	return sqlDB.Close()
}

func getDSNAndDialector(dbName string) (string, gorm.Dialector) {
	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		return dsn, postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return dsn, mysql.Open(dsn)
	default:
		dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" + config.DBHost + ":" + config.DBPort + "?database=" + dbName
		return dsn, sqlserver.Open(dsn)
	}
}
