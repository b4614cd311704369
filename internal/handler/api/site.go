package api

import (
	"errors"
	"net/http"

	"PolyXBets/internal/content"
	models "PolyXBets/internal/domain/models"
	"PolyXBets/internal/domain/service"
	"PolyXBets/internal/services/series"
	"PolyXBets/internal/services/sparkline"
	"PolyXBets/internal/session"
	"PolyXBets/internal/view"
	"PolyXBets/pkg/clock"
	xhttp "PolyXBets/pkg/http"
	xlogger "PolyXBets/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// SiteEchoHandler serves the landing page, its live session socket and
// the read-only JSON API.
type SiteEchoHandler struct {
	logger   *xlogger.Logger
	hub      *session.Hub
	series   *series.Generator
	charts   *sparkline.Renderer
	clock    clock.Scheduler
	catalog  models.Catalog
	meta     models.Metadata
	upgrader websocket.Upgrader
}

func NewSiteEchoHandler(
	logger *xlogger.Logger,
	hub *session.Hub,
	gen *series.Generator,
	charts *sparkline.Renderer,
	clk clock.Scheduler,
	siteURL string,
) *SiteEchoHandler {
	return &SiteEchoHandler{
		logger:  logger,
		hub:     hub,
		series:  gen,
		charts:  charts,
		clock:   clk,
		catalog: content.Catalog(),
		meta:    content.Metadata(siteURL),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

func (h *SiteEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/ws", h.Live)
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/series", h.Series)
	g.GET("/content", h.Content)
}

// Index renders the document in its initial state: intro, logos apart,
// no toast. The live session takes over once the socket connects.
func (h *SiteEchoHandler) Index(c echo.Context) error {
	page := view.NewPage(service.PublisherFunc(func(string) {}), view.PageOptions{
		Catalog:  h.catalog,
		Fixtures: h.series.Fixtures(content.Baselines[:]...),
		Charts:   h.charts,
		Year:     h.clock.Now().Year(),
		Logger:   h.logger,
	})
	doc := view.Document(h.meta, page.Body(models.ViewState{}))

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().WriteHeader(http.StatusOK)
	return doc.Render(c.Response())
}

// Live upgrades to a WebSocket and serves a session until it ends.
func (h *SiteEchoHandler) Live(c echo.Context) error {
	if h.hub.Full() {
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("too many live sessions"))
	}
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already replied.
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return nil
	}
	if err := h.hub.Serve(c.Request().Context(), conn); err != nil {
		if errors.Is(err, session.ErrFull) || errors.Is(err, session.ErrClosed) {
			h.logger.Warn("session refused", xlogger.Error(err))
			return nil
		}
		h.logger.Warn("session ended with error", xlogger.Error(err))
	}
	return nil
}

// Series returns a freshly generated walk for the given baseline.
func (h *SiteEchoHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, models.SeriesResponse{
		Baseline: *req.Baseline,
		Points:   h.series.Generate(*req.Baseline),
	})
}

func (h *SiteEchoHandler) Content(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")
	return xhttp.SuccessResponse(c, h.catalog)
}

func (h *SiteEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.HealthResponse{Status: "ok", Sessions: h.hub.Len()})
}
