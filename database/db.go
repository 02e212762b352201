package database

import (
	"fmt"

	"mobile-order/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// OpenDatabaseConnection opens a GORM connection for the configured driver.
func OpenDatabaseConnection() (*gorm.DB, error) {
	dsn, err := buildDSN(config.DBName)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch config.DBDriver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "mssql", "sqlserver":
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB driver: %s", config.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", config.DBDriver, err)
	}

	return db, nil
}

func buildDSN(dbName string) (string, error) {
	switch config.DBDriver {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort), nil
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName), nil
	case "mssql", "sqlserver":
		return fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName), nil
	default:
		return "", fmt.Errorf("unsupported DB driver: %s", config.DBDriver)
	}
}
