package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcdev12/userform/go/internal/formclient"
	"github.com/rs/zerolog/log"
)

const pageTemplate = "page.html"

//go:embed templates/*.html
var templateFS embed.FS

var formFields = []string{"username", "email", "contact", "info"}

// Handler renders the form page against the user API
type Handler struct {
	client formclient.UsersClient
}

func NewHandler(client formclient.UsersClient) *Handler {
	return &Handler{client: client}
}

// NewRouter builds the gin engine serving the form page
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	router.GET("/", h.Show)
	router.POST("/", h.Submit)

	return router
}

// Show handles GET / by loading the current list
func (h *Handler) Show(c *gin.Context) {
	view := formclient.NewView(h.client)
	view.Mount()

	if err := view.Load(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("failed to load view")
	}

	h.render(c, view)
}

// Submit handles POST / by creating a user from the posted form
func (h *Handler) Submit(c *gin.Context) {
	view := formclient.NewView(h.client)
	view.Mount()

	if err := view.Load(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("failed to load view")
	}

	for _, field := range formFields {
		if err := view.SetField(field, c.PostForm(field)); err != nil {
			log.Error().Err(err).Str("field", field).Msg("failed to set form field")
		}
	}

	if err := view.Submit(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("failed to submit form")
	}

	// A saved user redirects so a browser refresh does not repost the form.
	if state, _ := view.Snapshot(); state.Error == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	h.render(c, view)
}

// render expects a mounted view.
func (h *Handler) render(c *gin.Context, view *formclient.View) {
	state, _ := view.Snapshot()
	c.HTML(http.StatusOK, pageTemplate, state)
}
