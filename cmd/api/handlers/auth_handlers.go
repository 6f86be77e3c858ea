package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abaneee/social-pulse/cmd/api/dto"
	"github.com/Abaneee/social-pulse/cmd/api/middleware"
	"github.com/Abaneee/social-pulse/cmd/api/services"
	"github.com/Abaneee/social-pulse/internal/logger"
)

// RegisterHandler godoc
// @Summary      Register a new account
// @Description  Creates a user and returns the profile together with an initial token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequestDTO  true  "signup payload"
// @Success      201   {object}  dto.AuthResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /auth/register [post]
func RegisterHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Username, email and password are required."})
			return
		}

		user, pair, err := authSvc.Register(c.Request.Context(), services.RegisterInput{
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			CompanyName: req.CompanyName,
			Role:        req.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Username, email and password are required."})
			case errors.Is(err, services.ErrPasswordTooShort):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Password must be at least 6 characters."})
			case errors.Is(err, services.ErrEmailTaken):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "A user with this email already exists."})
			default:
				logger.Log.Errorf("register failed: %v", err)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Registration failed."})
			}
			return
		}

		c.JSON(http.StatusCreated, dto.NewAuthResponseDTO(user, pair))
	}
}

// LoginHandler godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequestDTO  true  "credentials"
// @Success      200   {object}  dto.AuthResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		if err := bindJSONAllowEmpty(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Email and password are required."})
			return
		}

		user, pair, err := authSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Email and password are required."})
			case errors.Is(err, services.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "Invalid email or password."})
			default:
				logger.Log.Errorf("login failed: %v", err)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Login failed."})
			}
			return
		}

		c.JSON(http.StatusOK, dto.NewAuthResponseDTO(user, pair))
	}
}

// RefreshHandler godoc
// @Summary      Rotate a refresh token
// @Description  Exchanges a valid refresh token for a fresh access/refresh pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RefreshRequestDTO  true  "refresh token"
// @Success      200   {object}  dto.TokenPairDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /auth/refresh [post]
func RefreshHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RefreshRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Refresh token is required."})
			return
		}

		pair, err := authSvc.Refresh(c.Request.Context(), req.Refresh)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "Token is invalid or expired."})
			return
		}

		c.JSON(http.StatusOK, dto.TokenPairDTO{Access: pair.Access, Refresh: pair.Refresh})
	}
}

// CurrentUserHandler godoc
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /auth/user [get]
func CurrentUserHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authSvc.Profile(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "User not found."})
				return
			}
			logger.Log.Errorf("profile lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Failed to load profile."})
			return
		}

		c.JSON(http.StatusOK, dto.NewUserDTO(user))
	}
}
