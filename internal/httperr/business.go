package httperr

import "errors"

// Kind classifica falhas de negócio para o mapeamento HTTP.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidState    Kind = "invalid_state"
	KindNotQueueHead    Kind = "not_queue_head"
	KindAlreadyTerminal Kind = "already_terminal"
	KindValidation      Kind = "validation_error"
	KindConflict        Kind = "conflict"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	if e.Code == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Code
}

// New cria um erro de negócio com kind e código detalhado.
func New(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

// ErrBusiness mantém o atalho antigo: erro de validação com código.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
