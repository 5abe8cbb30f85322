package handler

import (
	"net/http"

	"fitness-club/internal/service"

	"github.com/gin-gonic/gin"
)

const purchasesPath = "/purchases"

type TicketPurchaseHandler struct {
	service service.TicketPurchaseService
	clients service.ClientService
	tickets service.SeasonTicketService
}

func NewTicketPurchaseHandler(service service.TicketPurchaseService, clients service.ClientService, tickets service.SeasonTicketService) *TicketPurchaseHandler {
	return &TicketPurchaseHandler{service: service, clients: clients, tickets: tickets}
}

func (h *TicketPurchaseHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group(purchasesPath)
	{
		router.GET("", h.List)
		router.GET("/new", h.New)
		router.GET("/edit/:id", h.Edit)
		router.POST("/save", h.Save)
		router.GET("/delete/:id", h.Delete)
	}
}

func (h *TicketPurchaseHandler) List(c *gin.Context) {
	purchases, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListPurchases", "/")
		return
	}
	render(c, http.StatusOK, "purchases_list", gin.H{
		"Title":     "Ticket purchases",
		"Purchases": purchases,
	})
}

func (h *TicketPurchaseHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &TicketPurchaseForm{}, nil, "")
}

func (h *TicketPurchaseHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, purchasesPath)
	if !ok {
		return
	}
	purchase, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "EditPurchase", purchasesPath)
		return
	}
	h.renderForm(c, http.StatusOK, ticketPurchaseForm(purchase), nil, "")
}

// Save records the purchase; a blank date means today.
func (h *TicketPurchaseHandler) Save(c *gin.Context) {
	var form TicketPurchaseForm
	if fieldErrors, formError := BindForm(c, &form); fieldErrors != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, &form, fieldErrors, formError)
		return
	}
	if _, err := h.service.Save(c, form.toModel()); err != nil {
		handleError(c, err, "SavePurchase", purchasesPath)
		return
	}
	c.Redirect(http.StatusSeeOther, purchasesPath)
}

func (h *TicketPurchaseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, purchasesPath)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeletePurchase", purchasesPath)
		return
	}
	c.Redirect(http.StatusSeeOther, purchasesPath)
}

func (h *TicketPurchaseHandler) renderForm(c *gin.Context, status int, form *TicketPurchaseForm, fieldErrors map[string]string, formError string) {
	clients, err := h.clients.List(c)
	if err != nil {
		handleError(c, err, "PurchaseForm", purchasesPath)
		return
	}
	tickets, err := h.tickets.List(c)
	if err != nil {
		handleError(c, err, "PurchaseForm", purchasesPath)
		return
	}
	render(c, status, "purchases_form", gin.H{
		"Title":   formTitle(form.ID, "purchase"),
		"Form":    form,
		"Clients": clients,
		"Tickets": tickets,
		"Errors":  fieldErrors,
		"Error":   formError,
	})
}
