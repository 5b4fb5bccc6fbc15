package server

// CachePolicy decides the Cache-Control header of a response.
type CachePolicy int

const (
	// CacheNoCaching is for pages whose content can change between
	// refreshes, such as a build list with queued work.
	CacheNoCaching CachePolicy = iota

	// CacheForeverInCdn is for responses addressed by an immutable path,
	// such as a redirect naming an exact version.
	CacheForeverInCdn

	// CacheNoStoreMustRevalidate is for API responses whose consumers must
	// never read stale results.
	CacheNoStoreMustRevalidate
)

func (p CachePolicy) CacheControl() string {
	switch p {
	case CacheForeverInCdn:
		return "max-age=0, s-maxage=31104000"
	case CacheNoStoreMustRevalidate:
		return "no-cache, no-store, must-revalidate, max-age=0"
	default:
		return "max-age=0"
	}
}
