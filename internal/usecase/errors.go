package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// 500 のときクライアントに返すのはこの文言だけ
const MsgInternal = "Something went wrong."

// 入力不正（validator がラップして返す）
var ErrInvalidInput = errors.New("invalid input")

type HTTPError struct {
	Status  int
	Message string

	// ログ用の原因（レスポンスには出さない）
	Err error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func WrapHTTPError(status int, message string, err error) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// DBなどの失敗
func internalError(err error) error {
	return WrapHTTPError(http.StatusInternalServerError, MsgInternal, err)
}
