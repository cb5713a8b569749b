package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vastra/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateJWTRoundTrip(t *testing.T) {
	signed := signToken(t, &Claims{
		Email:  "shopper@example.com",
		UserID: "u123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ValidateJWT("Bearer " + signed)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "u123" || claims.Email != "shopper@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.IsAdmin {
		t.Fatal("expected non-admin claims")
	}
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	signed := signToken(t, &Claims{
		UserID: "u123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	if _, err := ValidateJWT("Bearer " + signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	called := false
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if called {
		t.Fatal("handler must not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticatePassesUserID(t *testing.T) {
	signed := signToken(t, &Claims{
		UserID: "u456",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "u456" {
		t.Fatalf("expected userid u456 in context, got %q", gotUserID)
	}
}

func TestAdminOnlyRejectsShopper(t *testing.T) {
	signed := signToken(t, &Claims{
		UserID: "u789",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	handler := AdminOnly(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run for non-admin")
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/ORD1", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
