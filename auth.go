package main

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Auth handler functions

const (
	contextUserIDKey = "userID"
	contextRoleKey   = "userRole"
	tokenLifetime    = 24 * time.Hour
)

// authClaims carries the user id (subject) and role inside the bearer token
type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Register user
// @Description Create a new API user with a bcrypt-hashed password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User data (name, email, password required)"
// @Success 201 {object} map[string]interface{} "Created user"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/register [post]
func register(c *gin.Context) {
	var request RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := validateName(request.Name); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid email address", nil)
		return
	}
	if len(request.Password) < 8 {
		respondError(c, http.StatusBadRequest, "Password must be at least 8 characters", nil)
		return
	}

	role := request.Role
	if role == "" {
		role = RoleStaff
	}
	if role != RoleAdmin && role != RoleStaff {
		respondError(c, http.StatusBadRequest, "Role must be admin or staff", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Errorf("Error hashing password: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	dbUser, err := queries.CreateUser(context.Background(), CreateUserParams{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	})
	if err != nil {
		logger.Errorf("Error creating user: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	logger.Infof("User registered: %s", dbUser.Email)
	respondOK(c, http.StatusCreated, "User registered successfully", convertUser(dbUser))
}

// @Summary Login
// @Description Authenticate with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Token and user"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dbUser, err := queries.GetUserByEmail(context.Background(), request.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(request.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	tokenString, err := issueToken(uuidString(dbUser.ID), dbUser.Role)
	if err != nil {
		logger.Errorf("Error signing token: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	logger.Infof("User logged in: %s", dbUser.Email)
	respondOK(c, http.StatusOK, "Login successful", gin.H{
		"token": tokenString,
		"user":  convertUser(dbUser),
	})
}

// issueToken signs an HS256 bearer token for the given user
func issueToken(userID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	})
	return token.SignedString([]byte(jwtSecret))
}

// requireAuth validates the bearer token and stores user id and role on the context
func requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(c, http.StatusUnauthorized, "Missing bearer token", nil)
			c.Abort()
			return
		}

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
			func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
		if err != nil || !token.Valid {
			respondError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, claims.Subject)
		c.Set(contextRoleKey, claims.Role)
		c.Next()
	}
}

// requireAdmin gates destructive endpoints behind the admin role
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(contextRoleKey) != RoleAdmin {
			respondError(c, http.StatusForbidden, "Admin role required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
