package auth

import (
	"alumni-chat/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IssueRequest describes who a token is issued for.
type IssueRequest struct {
	UserID string   `validate:"required,max=128,excludesall=:_"`
	Name   string   `validate:"max=120"`
	Roles  []string `validate:"dive,required,alphanum"`
}

func ValidateIssueRequest(req IssueRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidationFailure, err)
	}
	return nil
}
