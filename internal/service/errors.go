package service

import "errors"

// ErrInputRequired возвращается, когда в запросе отсутствует inputContent
var ErrInputRequired = errors.New("input content is required")
