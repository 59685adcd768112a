package transition_appointment

import "errors"

var (
	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("transition_appointment: appointment not found")

	// ErrAccessDenied пользователь не может менять статус записи
	ErrAccessDenied = errors.New("transition_appointment: access denied")

	// ErrInventoryDeduction сервис клиники не списал материалы, завершение откатывается
	ErrInventoryDeduction = errors.New("transition_appointment: inventory deduction failed")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("transition_appointment: invalid input data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("transition_appointment: internal error")
)
