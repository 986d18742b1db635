package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

const (
	ErrKeyPageMustBeGreaterThanZero     = "ErrKeyPageMustBeGreaterThanZero"
	ErrKeyPageSizeMustBeGreaterThanZero = "ErrKeyPageSizeMustBeGreaterThanZero"
	ErrKeyInvalidDateTimeFormat         = "ErrKeyInvalidDateTimeFormat"
	ErrKeyInvalidAmountFormat           = "ErrKeyInvalidAmountFormat"
	ErrKeyOldestTimeAfterNewestTime     = "ErrKeyOldestTimeAfterNewestTime"
	ErrKeyCustomerNotFound              = "ErrKeyCustomerNotFound"
	ErrKeyAccountNotFound               = "ErrKeyAccountNotFound"
)

var MapErrors = MapErrs{
	ErrKeyPageMustBeGreaterThanZero: {
		Code:         "MDH-4001",
		ErrorMessage: errors.New("page must be greater than zero"),
	},
	ErrKeyPageSizeMustBeGreaterThanZero: {
		Code:         "MDH-4002",
		ErrorMessage: errors.New("page-size must be greater than zero"),
	},
	ErrKeyInvalidDateTimeFormat: {
		Code:         "MDH-4003",
		ErrorMessage: errors.New("datetime must be a valid RFC3339 value"),
	},
	ErrKeyInvalidAmountFormat: {
		Code:         "MDH-4004",
		ErrorMessage: errors.New("amount must be a valid decimal value"),
	},
	ErrKeyOldestTimeAfterNewestTime: {
		Code:         "MDH-4005",
		ErrorMessage: errors.New("oldest-time must not be after newest-time"),
	},
	ErrKeyCustomerNotFound: {
		Code:         "MDH-4041",
		ErrorMessage: errors.New("customer not found"),
	},
	ErrKeyAccountNotFound: {
		Code:         "MDH-4042",
		ErrorMessage: errors.New("account not found"),
	},
}
