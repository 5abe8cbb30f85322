package handler

import (
	"net/http"

	"fitness-club/internal/service"

	"github.com/gin-gonic/gin"
)

const specializationsPath = "/specializations"

type SpecializationHandler struct {
	service service.SpecializationService
}

func NewSpecializationHandler(service service.SpecializationService) *SpecializationHandler {
	return &SpecializationHandler{service: service}
}

func (h *SpecializationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group(specializationsPath)
	{
		router.GET("", h.List)
		router.GET("/new", h.New)
		router.GET("/edit/:id", h.Edit)
		router.POST("/save", h.Save)
		router.GET("/delete/:id", h.Delete)
	}
}

func (h *SpecializationHandler) List(c *gin.Context) {
	specializations, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListSpecializations", "/")
		return
	}
	render(c, http.StatusOK, "specializations_list", gin.H{
		"Title":           "Specializations",
		"Specializations": specializations,
	})
}

func (h *SpecializationHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &SpecializationForm{}, nil, "")
}

func (h *SpecializationHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, specializationsPath)
	if !ok {
		return
	}
	specialization, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "EditSpecialization", specializationsPath)
		return
	}
	h.renderForm(c, http.StatusOK, specializationForm(specialization), nil, "")
}

func (h *SpecializationHandler) Save(c *gin.Context) {
	var form SpecializationForm
	if fieldErrors, formError := BindForm(c, &form); fieldErrors != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, &form, fieldErrors, formError)
		return
	}
	if _, err := h.service.Save(c, form.toModel()); err != nil {
		handleError(c, err, "SaveSpecialization", specializationsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, specializationsPath)
}

func (h *SpecializationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, specializationsPath)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteSpecialization", specializationsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, specializationsPath)
}

func (h *SpecializationHandler) renderForm(c *gin.Context, status int, form *SpecializationForm, fieldErrors map[string]string, formError string) {
	render(c, status, "specializations_form", gin.H{
		"Title":  formTitle(form.ID, "specialization"),
		"Form":   form,
		"Errors": fieldErrors,
		"Error":  formError,
	})
}
