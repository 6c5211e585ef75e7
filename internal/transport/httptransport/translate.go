package httptransport

import (
	"errors"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/ports/errcode"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, domain.ErrEmptyAssetID):
		return errcode.AssetRequired
	case errors.Is(err, domain.ErrInvalidRange):
		return errcode.InvalidRange
	case errors.Is(err, domain.ErrInvalidAssetID):
		return errcode.BadRequest
	default:
		return errcode.Internal
	}
}
