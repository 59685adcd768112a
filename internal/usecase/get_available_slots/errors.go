package get_available_slots

import "errors"

var (
	// ErrProcedureNotFound процедура не найдена или неактивна
	ErrProcedureNotFound = errors.New("get_available_slots: procedure not found")

	// ErrProfessionalNotFound специалист не найден или неактивен
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrInvalidDate дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: date is in the past")

	// ErrDateTooFarInFuture дата превышает горизонт записи
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_available_slots: internal error")
)
