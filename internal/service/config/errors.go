package config

import "errors"

var (
	// ErrAccessDenied менять настройки расписания может только персонал своей компании
	ErrAccessDenied = errors.New("config.service: scheduling settings are managed by company staff only")

	// ErrInvalidInput значение настройки вне допустимого диапазона
	ErrInvalidInput = errors.New("config.service: scheduling setting out of range")

	// ErrInternal ошибка хранилища настроек
	ErrInternal = errors.New("config.service: settings storage failure")
)
