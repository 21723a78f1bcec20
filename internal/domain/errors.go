package domain

import "errors"

var (
	ErrMalformedMessage     = errors.New("malformed message")
	ErrDownloadFailed       = errors.New("download failed")
	ErrRegistrationRejected = errors.New("registration rejected")
	ErrChannelUnavailable   = errors.New("channel unavailable")
	ErrInvalidPackID        = errors.New("invalid pack id")
	ErrPackNotFound         = errors.New("pack not found")
)
