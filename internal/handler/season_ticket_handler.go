package handler

import (
	"net/http"

	"fitness-club/internal/service"

	"github.com/gin-gonic/gin"
)

const ticketsPath = "/tickets"

type SeasonTicketHandler struct {
	service         service.SeasonTicketService
	specializations service.SpecializationService
}

func NewSeasonTicketHandler(service service.SeasonTicketService, specializations service.SpecializationService) *SeasonTicketHandler {
	return &SeasonTicketHandler{service: service, specializations: specializations}
}

func (h *SeasonTicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group(ticketsPath)
	{
		router.GET("", h.List)
		router.GET("/new", h.New)
		router.GET("/edit/:id", h.Edit)
		router.POST("/save", h.Save)
		router.GET("/delete/:id", h.Delete)
	}
}

func (h *SeasonTicketHandler) List(c *gin.Context) {
	tickets, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListSeasonTickets", "/")
		return
	}
	render(c, http.StatusOK, "tickets_list", gin.H{
		"Title":   "Season tickets",
		"Tickets": tickets,
	})
}

func (h *SeasonTicketHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &SeasonTicketForm{}, nil, "")
}

func (h *SeasonTicketHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, ticketsPath)
	if !ok {
		return
	}
	ticket, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "EditSeasonTicket", ticketsPath)
		return
	}
	h.renderForm(c, http.StatusOK, seasonTicketForm(ticket), nil, "")
}

func (h *SeasonTicketHandler) Save(c *gin.Context) {
	var form SeasonTicketForm
	if fieldErrors, formError := BindForm(c, &form); fieldErrors != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, &form, fieldErrors, formError)
		return
	}
	if _, err := h.service.Save(c, form.toModel()); err != nil {
		handleError(c, err, "SaveSeasonTicket", ticketsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, ticketsPath)
}

// Delete also removes every purchase of the ticket.
func (h *SeasonTicketHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, ticketsPath)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteSeasonTicket", ticketsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, ticketsPath)
}

func (h *SeasonTicketHandler) renderForm(c *gin.Context, status int, form *SeasonTicketForm, fieldErrors map[string]string, formError string) {
	specializations, err := h.specializations.List(c)
	if err != nil {
		handleError(c, err, "SeasonTicketForm", ticketsPath)
		return
	}
	render(c, status, "tickets_form", gin.H{
		"Title":           formTitle(form.ID, "season ticket"),
		"Form":            form,
		"Specializations": specializations,
		"Errors":          fieldErrors,
		"Error":           formError,
	})
}
