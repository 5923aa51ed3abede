package repository

import (
	"errors"
	"fmt"

	domainRepo "go-medical-frontdesk/internal/domain/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// translateError maps driver specific unique violations onto domainRepo.ErrDuplicateKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", domainRepo.ErrDuplicateKey, err)
	}
	return err
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		// MySQL error 1062 = ER_DUP_ENTRY
		return myErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func findFirst[T any](db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var record T
	err := db.Where(query, args...).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// updateAll writes every column except created_at for the record's primary key.
func updateAll(db *gorm.DB, record interface{}) error {
	result := db.Model(record).Select("*").Omit("created_at").Updates(record)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrRecordNotFound
	}
	return nil
}

// deleteByID removes the record inside a transaction and returns what was removed.
func deleteByID[T any](db *gorm.DB, id string) (*T, error) {
	var deleted *T
	err := db.Transaction(func(tx *gorm.DB) error {
		record, err := findFirst[T](tx, "id = ?", id)
		if err != nil {
			return err
		}
		if record == nil {
			return domainRepo.ErrRecordNotFound
		}
		if err := tx.Delete(record).Error; err != nil {
			return err
		}
		deleted = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
