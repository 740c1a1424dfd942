package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"resource-manager/internal/entities"
	api "resource-manager/internal/oapi"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrEngineerNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "engineer not found"
	case errors.Is(err, entities.ErrProjectNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "project not found"
	case errors.Is(err, entities.ErrAssignmentNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "assignment not found"
	case errors.Is(err, entities.ErrEngineerExists):
		status = http.StatusConflict
		code = api.ENGINEEREXISTS
		msg = "engineer id or email already exists"
	case errors.Is(err, entities.ErrProjectExists):
		status = http.StatusConflict
		code = api.PROJECTEXISTS
		msg = "project id already exists"
	case errors.Is(err, entities.ErrAssignmentExists):
		status = http.StatusConflict
		code = api.ASSIGNMENTEXISTS
		msg = "assignment id already exists"
	case errors.Is(err, entities.ErrCapacityExceeded):
		status = http.StatusConflict
		code = api.CAPACITYEXCEEDED
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

// bind parses the JSON body into dst and checks its validate tags.
func (h *Handler) bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: invalid body", entities.ErrInvalidArgument)
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", entities.ErrInvalidArgument, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}
	return nil
}
