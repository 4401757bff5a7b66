package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrEmptyResult      = errors.New("no reviews found")
	ErrConfigIncomplete = errors.New("api key and place id are both required")
	ErrUnknownTheme     = errors.New("unknown theme")
)
