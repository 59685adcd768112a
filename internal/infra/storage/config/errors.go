package config

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const checkViolation = "23514"

var (
	// ErrConfigNotFound у компании нет сохраненных настроек, действуют значения по умолчанию
	ErrConfigNotFound = errors.New("config.repository: config not found")

	// ErrOutOfRange значение отклонено CHECK-ограничением таблицы scheduling_configs
	ErrOutOfRange = errors.New("config.repository: value rejected by check constraint")

	ErrBuildQuery = errors.New("config.repository: failed to build query")
	ErrExecQuery  = errors.New("config.repository: failed to execute query")
	ErrScanRow    = errors.New("config.repository: failed to scan row")
)

// checkError возвращает ErrOutOfRange, если err - нарушение CHECK-ограничения
func checkError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == checkViolation {
		return fmt.Errorf("%w: %s", ErrOutOfRange, pqErr.Constraint)
	}
	return nil
}
