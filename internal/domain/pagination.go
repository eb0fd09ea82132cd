package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxResultWindow bounds offset+size, matching Elasticsearch's index.max_result_window
	MaxResultWindow = 10000
)

// PageParams is a 1-based page number pagination request
type PageParams struct {
	Page     int
	PageSize int
}

// Normalize fills defaults and clamps the page size
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// MaxPage is the deepest page whose window still fits in MaxResultWindow
func (p PageParams) MaxPage() int {
	return MaxResultWindow / p.Normalize().PageSize
}

// InWindow reports whether the page can be served by every backend
func (p PageParams) InWindow() bool {
	return p.Normalize().Page <= p.MaxPage()
}

// Offset never exceeds the result window, so it cannot overflow
func (p PageParams) Offset() int {
	p = p.Normalize()
	if last := p.MaxPage(); p.Page > last {
		p.Page = last
	}
	return (p.Page - 1) * p.PageSize
}
