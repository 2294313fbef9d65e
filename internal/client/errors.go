package client

import "errors"

var (
	errUnknownOutput = errors.New("unknown output format")
	errNothingToSend = errors.New("nothing to update: set --first-name, --last-name or --password")
)
