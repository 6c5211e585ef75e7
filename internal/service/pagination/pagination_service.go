package pagination

import (
	"context"
	"log/slog"
	"sync"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/store"
)

//go:generate mockgen -source=pagination_service.go -destination=mocks/mock_provider.go -package=paginationmocks

type AssetsProvider interface {
	FetchAssets(ctx context.Context, page int) ([]domain.AssetSummary, error)
}

// Controller — догрузка страниц списка монет по мере прокрутки.
// Одновременно в полёте не больше одного запроса страницы.
type Controller struct {
	provider AssetsProvider
	store    *store.Store
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewController — конструктор контроллера пагинации.
func NewController(provider AssetsProvider, st *store.Store, logger *slog.Logger) *Controller {
	return &Controller{
		provider: provider,
		store:    st,
		logger:   logger,
	}
}

// LoadNextPage — запрашивает следующую страницу и дописывает её в список.
// Возвращает false, если запрос не начат: уже идёт загрузка или страниц больше нет.
func (c *Controller) LoadNextPage(ctx context.Context) bool {
	tr := c.store.Dispatch(store.PageRequested{})
	if !tr.Changed {
		return false
	}
	page := tr.After.Pagination.CurrentPage

	assets, err := c.provider.FetchAssets(ctx, page)
	if err != nil {
		c.logger.Error("fetch assets page", "page", page, "err", err)
		c.store.Dispatch(store.PageFailed{Page: page})
		return true
	}

	c.store.Dispatch(store.PageAppended{Page: page, Assets: assets})
	c.logger.Debug("assets page loaded", "page", page, "count", len(assets))
	return true
}

// OnSentinelVisible — сигнал, что конец списка попал в область видимости
func (c *Controller) OnSentinelVisible(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.LoadNextPage(ctx)
	}()
}

// Wait — дождаться запросов, запущенных через OnSentinelVisible
func (c *Controller) Wait() {
	c.wg.Wait()
}
