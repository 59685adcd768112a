package create_appointment

import "errors"

var (
	// ErrProcedureNotFound процедура не найдена или неактивна
	ErrProcedureNotFound = errors.New("create_appointment: procedure not found")

	// ErrProfessionalNotFound специалист не найден или неактивен
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrAccessDenied пользователь не может создавать записи в этой компании
	ErrAccessDenied = errors.New("create_appointment: access denied")

	// ErrInvalidDate время записи уже прошло
	ErrInvalidDate = errors.New("create_appointment: appointment time is in the past")

	// ErrTooSoon запись нарушает минимальное время до начала
	ErrTooSoon = errors.New("create_appointment: too late to book this time")

	// ErrDateTooFarInFuture дата превышает горизонт записи
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_appointment: internal error")
)
