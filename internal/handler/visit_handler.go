package handler

import (
	"errors"
	"fmt"
	"net/http"

	"fitness-club/internal/model"
	"fitness-club/internal/service"
	apperrors "fitness-club/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

const visitsPath = "/visits"

type VisitHandler struct {
	service   service.VisitService
	clients   service.ClientService
	purchases service.TicketPurchaseService
	coaches   service.CoachService
}

func NewVisitHandler(service service.VisitService, clients service.ClientService, purchases service.TicketPurchaseService, coaches service.CoachService) *VisitHandler {
	return &VisitHandler{service: service, clients: clients, purchases: purchases, coaches: coaches}
}

func (h *VisitHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group(visitsPath)
	{
		router.GET("", h.List)
		router.GET("/new", h.New)
		router.GET("/edit/:id", h.Edit)
		router.POST("/save", h.Save)
		router.GET("/delete/:id", h.Delete)
	}
}

func (h *VisitHandler) List(c *gin.Context) {
	visits, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListVisits", "/")
		return
	}
	render(c, http.StatusOK, "visits_list", gin.H{
		"Title":  "Visits",
		"Visits": visits,
	})
}

func (h *VisitHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &VisitForm{}, nil, "")
}

func (h *VisitHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, visitsPath)
	if !ok {
		return
	}
	visit, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "EditVisit", visitsPath)
		return
	}
	h.renderForm(c, http.StatusOK, visitForm(visit), nil, "")
}

// Save registers the visit. A visit refused by the registration rules redisplays the
// submitted form with the reason.
func (h *VisitHandler) Save(c *gin.Context) {
	var form VisitForm
	if fieldErrors, formError := BindForm(c, &form); fieldErrors != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, &form, fieldErrors, formError)
		return
	}
	if _, err := h.service.Save(c, form.toModel()); err != nil {
		if apperrors.IsVisitRuleViolation(err) {
			h.renderForm(c, http.StatusUnprocessableEntity, &form, nil, visitRuleMessage(err))
			return
		}
		handleError(c, err, "SaveVisit", visitsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, visitsPath)
}

func (h *VisitHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, visitsPath)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteVisit", visitsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, visitsPath)
}

// ClientOption is a client in the visit form picker.
type ClientOption struct {
	*model.Client
	HasPurchase bool
}

// renderForm lists every client and marks those without a purchase, so a rejected
// submission keeps its selection.
func (h *VisitHandler) renderForm(c *gin.Context, status int, form *VisitForm, fieldErrors map[string]string, formError string) {
	clients, err := h.clients.List(c)
	if err != nil {
		handleError(c, err, "VisitForm", visitsPath)
		return
	}
	purchases, err := h.purchases.List(c)
	if err != nil {
		handleError(c, err, "VisitForm", visitsPath)
		return
	}
	coaches, err := h.coaches.List(c)
	if err != nil {
		handleError(c, err, "VisitForm", visitsPath)
		return
	}
	render(c, status, "visits_form", gin.H{
		"Title":   formTitle(form.ID, "visit"),
		"Form":    form,
		"Clients": clientOptions(clients, purchases),
		"Coaches": coaches,
		"Errors":  fieldErrors,
		"Error":   formError,
	})
}

func clientOptions(clients []*model.Client, purchases []*model.TicketPurchase) []ClientOption {
	owners := make(map[int]bool, len(purchases))
	for _, p := range purchases {
		owners[p.ClientID] = true
	}
	options := make([]ClientOption, 0, len(clients))
	for _, client := range clients {
		options = append(options, ClientOption{Client: client, HasPurchase: owners[client.ID]})
	}
	return options
}

func visitRuleMessage(err error) string {
	var before *model.VisitBeforePurchaseError
	switch {
	case errors.As(err, &before):
		return fmt.Sprintf("The visit date is earlier than the ticket purchase date (%s).", before.PurchaseDate.Format(model.DateLayout))
	case errors.Is(err, apperrors.ErrVisitInFuture):
		return "The visit date cannot be in the future."
	case errors.Is(err, apperrors.ErrNoTicketPurchase):
		return "This client has not bought a season ticket yet."
	default:
		return "The visit cannot be registered."
	}
}
