package handler

import (
	"context"
	"log/slog"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Cfg    *config.Config
	Logger *slog.Logger
}

// UserHandler serves accounts, sessions and channel pages.
type UserHandler struct {
	userUC  usecase.UserUsecase
	cookies sessionCookies
	paging  *config.PaginationConfig
	logger  *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:  params.UserUC,
		cookies: newSessionCookies(params.Cfg),
		paging:  params.Cfg.Pagination,
		logger:  params.Logger,
	}
}

type registerRequest struct {
	FullName string `form:"fullName" validate:"notblank"`
	Email    string `form:"email" validate:"required,email"`
	Username string `form:"username" validate:"notblank,max=64"`
	Password string `form:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	UsernameEmail string `json:"usernameEmail" form:"usernameEmail" validate:"notblank"`
	Password      string `json:"password" form:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" validate:"omitempty,notblank"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// Register creates an account from a multipart form with an avatar and an optional cover image.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	files := newUploads(c)
	defer files.Close()

	avatar, err := files.Image("avatar", true)
	if err != nil {
		return err
	}
	cover, err := files.Image("coverImage", false)
	if err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user, "User registered successfully")
}

func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		UsernameOrEmail: req.UsernameEmail,
		Password:        req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, out.AccessToken, out.RefreshToken)

	return response.OK(c, out, "User logged in successfully")
}

func (h *UserHandler) Logout(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), actor); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.clear(c)

	return response.OK(c, struct{}{}, "User logged out successfully")
}

// RefreshAccessToken rotates both tokens. The refresh token comes from its cookie or the body.
func (h *UserHandler) RefreshAccessToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		return domainerrors.ErrRefreshTokenMissing
	}

	out, err := h.userUC.RefreshTokens(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, out.AccessToken, out.RefreshToken)

	return response.OK(c, out, "Access token refreshed")
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), actor, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Password changed", slog.String("user_id", actor.String()))

	return response.OK(c, struct{}{}, "Password changed successfully")
}

func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetCurrentUser(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Current user fetched successfully")
}

func (h *UserHandler) UpdateAccountDetails(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateAccountDetails(c.Request().Context(), actor, &usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.replaceImage(c, "avatar", h.userUC.UpdateAvatar, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.replaceImage(c, "coverImage", h.userUC.UpdateCoverImage, "Cover image updated successfully")
}

type imageUpdater func(ctx context.Context, userID uuid.UUID, file *usecase.FileInput) (*usecase.UserView, error)

func (h *UserHandler) replaceImage(c echo.Context, field string, update imageUpdater, message string) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	files := newUploads(c)
	defer files.Close()

	image, err := files.Image(field, true)
	if err != nil {
		return err
	}

	user, err := update(c.Request().Context(), actor, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, message)
}

// GetChannelProfile is public. isSubscribed is only true for a signed in viewer.
func (h *UserHandler) GetChannelProfile(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username is required")
	}

	profile, err := h.userUC.GetChannelProfile(c.Request().Context(), deliverycontext.GetOptionalActorID(c), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile, "User channel fetched successfully")
}

func (h *UserHandler) GetWatchHistory(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	history, err := h.userUC.GetWatchHistory(c.Request().Context(), actor, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, history, "Watch history fetched successfully")
}
