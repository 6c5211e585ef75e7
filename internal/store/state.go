package store

import "github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"

// Pagination — состояние бесконечной прокрутки списка монет
type Pagination struct {
	CurrentPage   int  `json:"current_page"` // последняя запрошенная страница
	LoadedPages   int  `json:"loaded_pages"` // страницы 1..LoadedPages получены
	HasMore       bool `json:"has_more"`
	IsLoadingMore bool `json:"is_loading_more"`
}

// NextPage — страница для следующего триггера; упавшая страница запрашивается снова
func (p Pagination) NextPage() int { return p.LoadedPages + 1 }

// CanLoad — можно ли начать новый запрос страницы
func (p Pagination) CanLoad() bool { return p.HasMore && !p.IsLoadingMore }

// State — всё состояние одного экрана дашборда.
// Значения State не изменяются после публикации: редьюсер копирует то, что меняет.
type State struct {
	Assets          []domain.AssetSummary
	Pagination      Pagination
	SelectedAssetID string
	SelectedRange   domain.Range
	SeriesByAsset   map[string][]domain.PricePoint
	Detail          *domain.AssetDetail
	Loading         bool
	RequestToken    uint64
}

// NewState — начальное состояние: ничего не загружено, первая страница — 1
func NewState(assetID string, r domain.Range) State {
	if assetID == "" {
		assetID = domain.DefaultAssetID
	}
	if !r.Valid() {
		r = domain.DefaultRange
	}
	return State{
		Pagination:      Pagination{CurrentPage: 1, HasMore: true},
		SelectedAssetID: assetID,
		SelectedRange:   r,
		SeriesByAsset:   map[string][]domain.PricePoint{},
	}
}

// Series — последний полученный ряд выбранной монеты
func (s State) Series() []domain.PricePoint {
	return s.SeriesByAsset[s.SelectedAssetID]
}
