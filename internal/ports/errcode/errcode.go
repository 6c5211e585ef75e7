package errcode

type Code string

const (
	AssetRequired Code = "ASSET_REQUIRED"
	InvalidRange  Code = "INVALID_RANGE"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
