package httperr

import "errors"

type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindInfrastructure Kind = "infrastructure"
)

// BusinessError is the only error type handlers translate into a response.
// Err carries the underlying cause for infrastructure failures.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func Validation(code, message string) error {
	return &BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func NotFoundErr(code, message string) error {
	return &BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func Unauthenticated(code, message string) error {
	return &BusinessError{Kind: KindAuthentication, Code: code, Message: message}
}

func Forbidden(code, message string) error {
	return &BusinessError{Kind: KindAuthorization, Code: code, Message: message}
}

func Infrastructure(code string, err error) error {
	return &BusinessError{
		Kind:    KindInfrastructure,
		Code:    code,
		Message: "Internal server error.",
		Err:     err,
	}
}

// KindOf reports the kind of err. Errors that are not a BusinessError are
// treated as infrastructure failures.
func KindOf(err error) Kind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInfrastructure
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func IsBusiness(err error, code string) bool {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
