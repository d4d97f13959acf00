package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login handles password authentication for the dashboard. The login screen
// is super-admin only: a valid password on a non-super-admin profile is still
// rejected, matching the dashboard's immediate sign-out on that path.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request data",
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, hash, err := h.DB.GetProfileByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "User lookup failed", Message: err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	if !profile.IsSuperAdmin {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "Access denied",
			Message: "Superadmin privileges required.",
		})
		return
	}

	token, expiresAt, err := generateJWTToken(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   *profile,
	})
}

// GetProfile re-resolves the caller's profile row. The dashboard calls this
// on every session change; a missing row means the session must be torn down.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid token claims"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := h.DB.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "Unauthorized",
				Message: "No profile for this identity; sign out required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Profile lookup failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// generateJWTToken creates the HMAC token carrying identity and role claims.
func generateJWTToken(profile *models.Profile) (string, time.Time, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("JWT secret not configured")
	}

	expirationMinutes := 30
	if expMinStr := os.Getenv("JWT_EXPIRATION_MINUTES"); expMinStr != "" {
		if exp, err := strconv.Atoi(expMinStr); err == nil {
			expirationMinutes = exp
		}
	}
	expiresAt := time.Now().Add(time.Minute * time.Duration(expirationMinutes))

	claims := jwt.MapClaims{
		"user_id":        profile.ID,
		"email":          profile.Email,
		"role":           profile.Role,
		"is_super_admin": profile.IsSuperAdmin,
		"exp":            expiresAt.Unix(),
		"iat":            time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}
