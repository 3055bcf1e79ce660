package main

import "errors"

var (
	ErrInvalidFlag      = errors.New("invalid flag provided")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrLoadConfig       = errors.New("failed to load configuration")
	ErrGenerate         = errors.New("failed to generate PKCE pair")
	ErrWriteOutput      = errors.New("failed to write output")
)
