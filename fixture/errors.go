package fixture

import "errors"

var (
	ErrVerifyMismatch = errors.New("written fixture does not match its manifest entry")
)
