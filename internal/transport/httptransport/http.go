package httptransport

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/store"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/view"
)

//go:generate mockgen -source=http.go -destination=mocks/mock_services.go -package=httptransportmocks

// StateSource — снимок состояния и подписка на изменения.
type StateSource interface {
	State() store.State
	Subscribe() (<-chan store.State, func())
}

// Paginator — подгрузка списка монет.
type Paginator interface {
	OnSentinelVisible(ctx context.Context)
}

// Selector — выбор монеты и окна истории.
type Selector interface {
	Select(ctx context.Context, id string) error
	SetRange(ctx context.Context, r domain.Range) error
}

// Router — то, что нужно от echo для регистрации маршрутов.
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type selectionRequest struct {
	AssetID string `json:"asset_id"`
}

type rangeRequest struct {
	Days int `json:"days"`
}

type assetsResponse struct {
	Assets     []domain.AssetSummary `json:"assets"`
	Pagination store.Pagination      `json:"pagination"`
}

// DashboardHandler — HTTP‑handler экрана дашборда.
type DashboardHandler struct {
	logger    *slog.Logger
	state     StateSource
	pages     Paginator
	selection Selector
	upgrader  websocket.Upgrader

	quit      chan struct{}
	closeOnce sync.Once
}

// allowedOrigins — Origin, с которых разрешён websocket; пусто — только тот же хост, "*" — любой.
func NewDashboardHandler(logger *slog.Logger, state StateSource, pages Paginator, selection Selector, allowedOrigins []string) *DashboardHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if state == nil || pages == nil || selection == nil {
		log.Fatal("nil service")
	}
	return &DashboardHandler{
		logger:    logger,
		state:     state,
		pages:     pages,
		selection: selection,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		quit: make(chan struct{}),
	}
}

func (h *DashboardHandler) RegisterRoutes(r Router) {
	r.GET("/healthz", h.Health)
	r.GET("/api/dashboard", h.GetDashboard)
	r.GET("/api/dashboard/ws", h.StreamDashboard)
	r.GET("/api/assets", h.GetAssets)
	r.POST("/api/assets/visible", h.SentinelVisible)
	r.PUT("/api/selection", h.PutSelection)
	r.PUT("/api/range", h.PutRange)
}

// Close — завершить открытые websocket-потоки
func (h *DashboardHandler) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}

func (h *DashboardHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, view.Build(h.state.State()))
}

func (h *DashboardHandler) GetAssets(c echo.Context) error {
	s := h.state.State()
	assets := s.Assets
	if assets == nil {
		assets = []domain.AssetSummary{}
	}
	return c.JSON(http.StatusOK, assetsResponse{Assets: assets, Pagination: s.Pagination})
}

// SentinelVisible — конец списка в области видимости клиента
func (h *DashboardHandler) SentinelVisible(c echo.Context) error {
	h.pages.OnSentinelVisible(detach(c))
	return c.JSON(http.StatusAccepted, echo.Map{"status": "accepted"})
}

func (h *DashboardHandler) PutSelection(c echo.Context) error {
	var req selectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "bad_request",
		})
	}
	id := strings.TrimSpace(req.AssetID)

	if err := h.selection.Select(detach(c), id); err != nil {
		return h.serviceError(c, "PutSelection", err)
	}
	return c.JSON(http.StatusAccepted, echo.Map{"asset_id": id})
}

// PutRange — окно из ?days= или тела {"days": 7}
func (h *DashboardHandler) PutRange(c echo.Context) error {
	var (
		r   domain.Range
		err error
	)
	if q := c.QueryParam("days"); q != "" {
		r, err = domain.ParseRange(q)
	} else {
		var req rangeRequest
		if bindErr := c.Bind(&req); bindErr != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "bad_request",
			})
		}
		r, err = domain.RangeFromDays(req.Days)
	}
	if err == nil {
		err = h.selection.SetRange(detach(c), r)
	}
	if err != nil {
		return h.serviceError(c, "PutRange", err)
	}
	return c.JSON(http.StatusAccepted, echo.Map{"days": r.Days(), "label": r.Label()})
}

func (h *DashboardHandler) serviceError(c echo.Context, op string, err error) error {
	switch FromServiceError(err) {
	case errcode.AssetRequired:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "asset_id_required",
		})
	case errcode.InvalidRange:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid_range",
		})
	case errcode.BadRequest:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "bad_request",
		})
	default:
		h.logger.Error("request failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal_server_error",
		})
	}
}

// detach — загрузки переживают HTTP-запрос, который их запустил
func detach(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}
