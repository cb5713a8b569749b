package auth

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func SendOTP(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sendOTPHandler(w, r)
}
func VerifyOTP(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	verifyOTPHandler(w, r)
}
func LogoutUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logoutUserHandler(w, r)
}
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	refreshTokenHandler(w, r)
}
