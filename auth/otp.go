package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"vastra/db"
	"vastra/mailer"
	"vastra/models"
	"vastra/mq"
	"vastra/rdx"
	"vastra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 10 * time.Minute

func sendOTPHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	otp := utils.GenerateRandomDigitString(6)

	// Only the bcrypt hash of the code ever leaves this handler.
	hashed, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to generate OTP", http.StatusInternalServerError)
		return
	}
	if err := rdx.SetWithExpiry("otp:"+input.Email, string(hashed), otpTTL); err != nil {
		log.Printf("sendOTP redis error: %v", err)
		http.Error(w, "Failed to generate OTP", http.StatusInternalServerError)
		return
	}

	// Lazily create the user, defaulting the name from the email prefix.
	now := time.Now()
	name := strings.SplitN(input.Email, "@", 2)[0]
	update := bson.M{
		"$setOnInsert": bson.M{
			"userid":    "u" + utils.GenerateRandomString(10),
			"name":      name,
			"isAdmin":   false,
			"createdAt": now,
		},
		"$set": bson.M{"updatedAt": now},
	}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"email": input.Email}, update, options.Update().SetUpsert(true)); err != nil {
		log.Printf("sendOTP upsert error: %v", err)
		http.Error(w, "Failed to send OTP", http.StatusInternalServerError)
		return
	}

	if err := mailer.SendOTP(input.Email, otp); err != nil {
		log.Printf("sendOTP mail error: %v", err)
		http.Error(w, "Failed to send OTP", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "OTP sent successfully"})
}

func verifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" || input.OTP == "" {
		http.Error(w, "Email and OTP are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	storedHash, err := rdx.RdxGet("otp:" + input.Email)
	if err != nil {
		http.Error(w, "Invalid or expired OTP", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input.OTP)); err != nil {
		http.Error(w, "Invalid or expired OTP", http.StatusUnauthorized)
		return
	}

	var user models.User
	err = db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	tokenString, err := generateAccessToken(user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		http.Error(w, "Error generating refresh token", http.StatusInternalServerError)
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{
			"isVerified":     true,
			"refresh_token":  hashToken(refreshToken),
			"refresh_expiry": time.Now().Add(refreshTokenTTL),
			"last_login":     time.Now(),
		}},
	)
	if err != nil {
		http.Error(w, "Failed to store refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", user.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}
	rdx.RdxDel("otp:" + input.Email)

	mq.Emit(ctx, mq.Event{Name: "user-verified", EntityID: user.UserID, UserID: user.UserID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       user.UserID,
		"name":         user.Name,
		"isAdmin":      user.IsAdmin,
	})
}
