package service

import "github.com/ATenderholt/rainbow-copy/internal/domain"

// Report shapes the confirmation token into the handler's output.
func Report(token domain.ConfirmationToken) string {
	return token.String()
}
