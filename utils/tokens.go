package utils

import (
	"os"
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"
)

// AccessToken is the session claim set issued at login and verified on
// every protected route. Role travels in the token so the dispatcher
// can gate agent/admin operations without a store round trip.
type AccessToken struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func CreateAccessToken(userID, role string) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 24*time.Hour)
	token, err := signer.Sign(AccessToken{ID: userID, Role: role})
	if err != nil {
		return "", err
	}
	return string(token), nil
}
