package clinicservice

import "errors"

var (
	// ErrProcedureNotFound возвращается, когда процедура не найдена в компании
	ErrProcedureNotFound = errors.New("clinicservice client: procedure not found")

	// ErrProfessionalNotFound возвращается, когда специалист не найден в компании
	ErrProfessionalNotFound = errors.New("clinicservice client: professional not found")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("clinicservice client: patient not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clinicservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clinicservice client: invalid response")
)
