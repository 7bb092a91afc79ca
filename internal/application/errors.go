package application

import (
	"errors"
	"fmt"
)

// Sentinel errors translated to stable codes at the HTTP boundary.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidPassword     = errors.New("invalid account password")
	ErrAvatarInvalid       = errors.New("invalid avatar image format")
	ErrAvatarTooLarge      = errors.New("avatar exceeds the size limit")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatusChange = errors.New("invalid order status change")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrResetTokenInvalid   = errors.New("invalid or expired token")
)

// CooldownError rejects a username change attempted before the cooldown
// elapsed. DaysLeft is rounded up so "less than a day" still reads as 1.
type CooldownError struct {
	DaysLeft int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("you can change your username again in %d day(s)", e.DaysLeft)
}
