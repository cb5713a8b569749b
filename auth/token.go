package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"vastra/globals"
	"vastra/middleware"
	"vastra/models"
	"vastra/mq"
	"vastra/rdx"
	"vastra/utils"

	"github.com/golang-jwt/jwt/v5"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	accessTokenTTL  = 12 * time.Hour
)

func generateAccessToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Email:   user.Email,
		UserID:  user.UserID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// Generates a random refresh token
func generateRefreshToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

// Hashes a given token
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	mq.Emit(r.Context(), mq.Event{Name: "user-loggedout", UserID: claims.UserID})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "User logged out successfully"})
}

func refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	// Only tokens close to expiry may be refreshed.
	if time.Until(claims.ExpiresAt.Time) >= 30*time.Minute {
		http.Error(w, "Token refresh not allowed yet", http.StatusForbidden)
		return
	}

	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(accessTokenTTL))
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	newTokenString, err := newToken.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", claims.UserID, newTokenString); err != nil {
		log.Printf("Error updating token in Redis: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": newTokenString})
}
