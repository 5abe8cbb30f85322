package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "fitness-club/pkg/app_errors"
	"fitness-club/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// names that are only whitespace are stored trimmed, so they count as empty
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

// render adds the values every page template expects and writes the page.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	data["CSRFField"] = csrf.TemplateField(c.Request)
	c.HTML(status, name, data)
}

func renderError(c *gin.Context, status int, title, message, back string) {
	render(c, status, "error", gin.H{
		"Title":   title,
		"Message": message,
		"Back":    back,
	})
}

// BindForm binds a posted form. Validation failures come back as per-field messages,
// any other binding failure as a single form message.
func BindForm(c *gin.Context, obj any) (fieldErrors map[string]string, formError string) {
	err := c.ShouldBind(obj)
	if err == nil {
		return nil, ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return validationMessages(verrs), ""
	}
	return map[string]string{}, "The form contains a value that could not be read."
}

func validationMessages(verrs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		messages[fe.Field()] = fieldMessage(fe)
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + fe.Param() + "."
	case "gt":
		return "Must be greater than " + fe.Param() + "."
	case "datetime":
		return "Enter a date in the format " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}

// parseID reads the :id path parameter; on failure a 400 page has already been written.
func parseID(c *gin.Context, back string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		renderError(c, http.StatusBadRequest, "Bad request", "The record id is not valid.", back)
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error, operation, back string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("Record not found")
		renderError(c, http.StatusNotFound, "Not found", "The requested record does not exist.", back)
	case errors.Is(err, apperrors.ErrReferenceViolation):
		log.Warn("Reference violation")
		renderError(c, http.StatusConflict, "Still in use", "The record is referenced by other records and cannot be changed this way.", back)
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		renderError(c, http.StatusBadRequest, "Invalid input", "The submitted data is not valid.", back)
	default:
		log.Error("Unexpected error")
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Internal server error", "Something went wrong. Please try again.", back)
	}
}

func formTitle(id int, entity string) string {
	if id == 0 {
		return "New " + entity
	}
	return "Edit " + entity
}
