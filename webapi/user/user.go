package user

import (
	"errors"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/mapper"
	"github.com/amirasaad/backoffice/pkg/middleware"
	usersvc "github.com/amirasaad/backoffice/pkg/service/user"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app fiber.Router, userSvc *usersvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	admin := middleware.RequireRole(user.RoleAdmin)
	app.Post("/users", jwt, admin, CreateUser(userSvc))
	app.Get("/users", jwt, admin, ListUsers(userSvc))
	app.Get("/users/:id", jwt, GetUser(userSvc))
	app.Put("/users/:id", jwt, UpdateUser(userSvc))
	app.Delete("/users/:id", jwt, DeleteUser(userSvc))
}

// CreateUser creates a backoffice operator.
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserCreate true "User creation data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /users [post]
// @Security Bearer
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.UserCreate](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user", mapper.MapUserToRead(u))
	}
}

// ListUsers returns one page of users.
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Router /users [get]
// @Security Bearer
func ListUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size := dto.NormalizePage(common.Paging(c))
		users, total, err := userSvc.ListUsers(c.UserContext(), page, size)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users", dto.Page[dto.UserRead]{
			Items:    mapper.MapUsersToRead(users),
			Page:     page,
			PageSize: size,
			Total:    total,
		})
	}
}

// GetUser returns a user. Non-admins may only read themselves.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /users/{id} [get]
// @Security Bearer
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		p, _ := middleware.GetPrincipal(c)
		if p.UserID != id && p.Role != user.RoleAdmin {
			return common.ProblemDetailsJSON(c, "Forbidden", domain.ErrForbidden)
		}
		u, err := userSvc.GetUser(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", mapper.MapUserToRead(u))
	}
}

// UpdateUser changes a user. Users may change their own names and password;
// role and active flag need an admin.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UserUpdate true "User update data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /users/{id} [put]
// @Security Bearer
func UpdateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.UserUpdate](c)
		if input == nil {
			return err
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		p, _ := middleware.GetPrincipal(c)
		isAdmin := p.Role == user.RoleAdmin
		if p.UserID != id && !isAdmin {
			return common.ProblemDetailsJSON(c, "Forbidden", domain.ErrForbidden, "You are not allowed to update this user")
		}
		if !isAdmin && (input.Role != nil || input.Active != nil) {
			return common.ProblemDetailsJSON(c, "Forbidden", domain.ErrForbidden, "Only admins can change role or status")
		}
		u, err := userSvc.UpdateUser(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated successfully", mapper.MapUserToRead(u))
	}
}

// DeleteUser deletes a user. Deleting yourself requires your password.
// @Summary Delete user
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param request body dto.UserDelete false "Password confirmation"
// @Success 204
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /users/{id} [delete]
// @Security Bearer
func DeleteUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		var input dto.UserDelete
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
			}
		}
		p, _ := middleware.GetPrincipal(c)
		err = userSvc.DeleteUser(c.UserContext(), p.UserID, id, input.Password)
		if errors.Is(err, user.ErrUserUnauthorized) {
			return common.ProblemDetailsJSON(c, "Invalid credentials", nil, fiber.StatusUnauthorized)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
