package handler

import (
	"net/http"

	"fitness-club/internal/service"

	"github.com/gin-gonic/gin"
)

const coachesPath = "/coaches"

type CoachHandler struct {
	service         service.CoachService
	specializations service.SpecializationService
}

func NewCoachHandler(service service.CoachService, specializations service.SpecializationService) *CoachHandler {
	return &CoachHandler{service: service, specializations: specializations}
}

func (h *CoachHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group(coachesPath)
	{
		router.GET("", h.List)
		router.GET("/new", h.New)
		router.GET("/edit/:id", h.Edit)
		router.POST("/save", h.Save)
		router.GET("/delete/:id", h.Delete)
	}
}

func (h *CoachHandler) List(c *gin.Context) {
	coaches, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListCoaches", "/")
		return
	}
	render(c, http.StatusOK, "coaches_list", gin.H{
		"Title":   "Coaches",
		"Coaches": coaches,
	})
}

func (h *CoachHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &CoachForm{}, nil, "")
}

// Edit answers 404 for an unknown coach.
func (h *CoachHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, coachesPath)
	if !ok {
		return
	}
	coach, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "EditCoach", coachesPath)
		return
	}
	h.renderForm(c, http.StatusOK, coachForm(coach), nil, "")
}

func (h *CoachHandler) Save(c *gin.Context) {
	var form CoachForm
	if fieldErrors, formError := BindForm(c, &form); fieldErrors != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, &form, fieldErrors, formError)
		return
	}
	if _, err := h.service.Save(c, form.toModel()); err != nil {
		handleError(c, err, "SaveCoach", coachesPath)
		return
	}
	c.Redirect(http.StatusSeeOther, coachesPath)
}

// Delete also removes the coach's visits.
func (h *CoachHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, coachesPath)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteCoach", coachesPath)
		return
	}
	c.Redirect(http.StatusSeeOther, coachesPath)
}

func (h *CoachHandler) renderForm(c *gin.Context, status int, form *CoachForm, fieldErrors map[string]string, formError string) {
	specializations, err := h.specializations.List(c)
	if err != nil {
		handleError(c, err, "CoachForm", coachesPath)
		return
	}
	render(c, status, "coaches_form", gin.H{
		"Title":           formTitle(form.ID, "coach"),
		"Form":            form,
		"Specializations": specializations,
		"Errors":          fieldErrors,
		"Error":           formError,
	})
}
