package handler

import (
	"net/http"

	"fitness-club/internal/service"

	"github.com/gin-gonic/gin"
)

const clientsPath = "/clients"

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(service service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group(clientsPath)
	{
		router.GET("", h.List)
		router.GET("/new", h.New)
		router.GET("/edit/:id", h.Edit)
		router.POST("/save", h.Save)
		router.GET("/delete/:id", h.Delete)
	}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListClients", "/")
		return
	}
	render(c, http.StatusOK, "clients_list", gin.H{
		"Title":   "Clients",
		"Clients": clients,
	})
}

func (h *ClientHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &ClientForm{}, nil, "")
}

func (h *ClientHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, clientsPath)
	if !ok {
		return
	}
	client, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "EditClient", clientsPath)
		return
	}
	h.renderForm(c, http.StatusOK, clientForm(client), nil, "")
}

func (h *ClientHandler) Save(c *gin.Context) {
	var form ClientForm
	if fieldErrors, formError := BindForm(c, &form); fieldErrors != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, &form, fieldErrors, formError)
		return
	}
	if _, err := h.service.Save(c, form.toModel()); err != nil {
		handleError(c, err, "SaveClient", clientsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, clientsPath)
}

// Delete also removes the client's purchases and visits.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, clientsPath)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteClient", clientsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, clientsPath)
}

func (h *ClientHandler) renderForm(c *gin.Context, status int, form *ClientForm, fieldErrors map[string]string, formError string) {
	render(c, status, "clients_form", gin.H{
		"Title":  formTitle(form.ID, "client"),
		"Form":   form,
		"Errors": fieldErrors,
		"Error":  formError,
	})
}
