package entity

import "errors"

var (
	ErrLeadNotFound    = errors.New("lead não encontrado")
	ErrAlreadyInFunnel = errors.New("lead já está no funil")
	ErrForbidden       = errors.New("caller sem permissão para esta operação")
)
