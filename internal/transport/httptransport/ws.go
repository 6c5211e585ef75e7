package httptransport

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/store"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/view"
)

const writeWait = 5 * time.Second

// StreamDashboard — websocket: текущий экран сразу, дальше по одному на каждое изменение состояния.
func (h *DashboardHandler) StreamDashboard(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// ответ клиенту уже записан апгрейдером
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return nil
	}
	defer conn.Close()

	// подписка до первого снимка, чтобы не пропустить изменение между ними
	updates, cancel := h.state.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	if err := writeView(conn, h.state.State()); err != nil {
		h.logger.Debug("websocket write failed", slog.String("error", err.Error()))
		return nil
	}

	for {
		select {
		case st, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeView(conn, st); err != nil {
				h.logger.Debug("websocket write failed", slog.String("error", err.Error()))
				return nil
			}
		case <-closed:
			return nil
		case <-h.quit:
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return nil
		}
	}
}

func writeView(conn *websocket.Conn, st store.State) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(view.Build(st))
}

// originChecker — запросы без Origin (не браузер) и с того же хоста пропускаются всегда
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	anyOrigin := false
	for _, o := range allowed {
		o = strings.ToLower(strings.TrimRight(strings.TrimSpace(o), "/"))
		switch o {
		case "":
		case "*":
			anyOrigin = true
		default:
			set[o] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || anyOrigin {
			return true
		}
		if _, ok := set[strings.ToLower(origin)]; ok {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}
