package conflicts

import "errors"

var (
	// ErrLoadAppointments занятость не удалось загрузить; вызывающий код не должен считать это отсутствием конфликта
	ErrLoadAppointments = errors.New("conflicts: failed to load appointments")
)
