package selection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/store"
)

//go:generate mockgen -source=selection_service.go -destination=mocks/mock_reader.go -package=selectionmocks

type MarketReader interface {
	FetchSeries(ctx context.Context, id string, r domain.Range) ([]domain.PricePoint, error)
	FetchDetail(ctx context.Context, id string) (domain.AssetDetail, error)
}

// Service — смена монеты и окна истории, загрузка ряда и статистики.
// Запросы в полёте не отменяются: каждый помечен токеном, судьбу ответа решает редьюсер.
type Service struct {
	reader MarketReader
	store  *store.Store
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewService — конструктор сервиса выбора.
func NewService(reader MarketReader, st *store.Store, logger *slog.Logger) *Service {
	return &Service{
		reader: reader,
		store:  st,
		logger: logger,
	}
}

// Select — выбрать монету. Повторный выбор текущей монеты ничего не делает.
func (s *Service) Select(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := domain.ValidateAssetID(id); err != nil {
		return err
	}
	s.start(ctx, store.SelectionChanged{AssetID: id})
	return nil
}

// SetRange — выбрать окно истории для текущей монеты.
func (s *Service) SetRange(ctx context.Context, r domain.Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %d days", domain.ErrInvalidRange, r.Days())
	}
	s.start(ctx, store.RangeChanged{Range: r})
	return nil
}

// Refresh — перезагрузить ряд и статистику для текущего выбора
func (s *Service) Refresh(ctx context.Context) {
	s.start(ctx, store.RefreshRequested{})
}

// Wait — дождаться всех запущенных загрузок
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) start(ctx context.Context, a store.Action) {
	tr := s.store.Dispatch(a)
	if !tr.Changed {
		return
	}
	st := tr.After

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.load(ctx, st.RequestToken, st.SelectedAssetID, st.SelectedRange)
	}()
}

// load — ряд и статистика параллельно; применяются вместе одним Dispatch
func (s *Service) load(ctx context.Context, token uint64, id string, r domain.Range) {
	var (
		series []domain.PricePoint
		detail domain.AssetDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		series, err = s.reader.FetchSeries(gctx, id, r)
		if err != nil {
			return fmt.Errorf("fetch series: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		detail, err = s.reader.FetchDetail(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch detail: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("load asset data",
			slog.String("asset", id),
			slog.Int("days", r.Days()),
			slog.String("err", err.Error()),
		)
		s.store.Dispatch(store.LoadFinished{Token: token})
		return
	}

	tr := s.store.Dispatch(
		store.SeriesLoaded{Token: token, AssetID: id, Series: series},
		store.DetailLoaded{Token: token, Detail: detail},
		store.LoadFinished{Token: token},
	)
	if !tr.Changed {
		s.logger.Debug("stale asset data discarded", "asset", id, "token", token)
	}
}
