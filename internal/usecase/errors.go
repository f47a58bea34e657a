package usecase

import "errors"

var (
	ErrSkillsEmpty = errors.New("skills cannot be empty")
	ErrInternal    = errors.New("internal error")
)
