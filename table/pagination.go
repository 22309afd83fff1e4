package table

// ComputePageCount returns the number of pages needed to show totalCount
// members pageSize at a time
func ComputePageCount(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// ChangePage returns requestedPage when it is within [1, pageCount],
// otherwise the current page is kept
func ChangePage(requestedPage, currentPage, pageCount int) int {
	if requestedPage < 1 || requestedPage > pageCount {
		return currentPage
	}
	return requestedPage
}

// ClampWindowStart moves windowStart into [1, max(1, pageCount-windowSize+1)]
// so that a full window never shows pages past pageCount
func ClampWindowStart(windowStart, pageCount, windowSize int) int {
	last := pageCount - windowSize + 1
	if windowStart > last {
		windowStart = last
	}
	if windowStart < 1 {
		windowStart = 1
	}
	return windowStart
}

// Window returns the page numbers shown by the paginator, at most
// min(windowSize, pageCount) consecutive pages starting at the clamped windowStart
func Window(windowStart, pageCount, windowSize int) []int {
	size := windowSize
	if pageCount < size {
		size = pageCount
	}
	if size <= 0 {
		return []int{}
	}

	start := ClampWindowStart(windowStart, pageCount, windowSize)
	pages := make([]int, 0, size)
	for page := start; page < start+size && page <= pageCount; page++ {
		pages = append(pages, page)
	}
	return pages
}

// CanSlideWindowBack reports whether the window can move one page back
func CanSlideWindowBack(windowStart int) bool {
	return windowStart > 1
}

// CanSlideWindowForward reports whether pages past the window exist
func CanSlideWindowForward(windowStart, pageCount, windowSize int) bool {
	return windowStart+windowSize-1 < pageCount
}

// Pagination is the paginator state of the members table
type Pagination struct {
	Page        int `json:"page"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	WindowStart int `json:"windowStart"`
	WindowSize  int `json:"windowSize"`
}

// NewPagination creates a Pagination on the first page
func NewPagination(pageSize, windowSize int) Pagination {
	return Pagination{
		Page:        1,
		PageSize:    pageSize,
		WindowStart: 1,
		WindowSize:  windowSize,
	}
}

// PageCount returns the number of pages
func (p Pagination) PageCount() int {
	return ComputePageCount(p.TotalCount, p.PageSize)
}

// Window returns the page numbers currently shown by the paginator
func (p Pagination) Window() []int {
	return Window(p.WindowStart, p.PageCount(), p.WindowSize)
}

// HasPrevious reports whether a page before the current one exists
func (p Pagination) HasPrevious() bool {
	return p.Page > 1
}

// HasNext reports whether a page after the current one exists
func (p Pagination) HasNext() bool {
	return p.Page < p.PageCount()
}

// CanSlideWindowBack reports whether the window can slide back
func (p Pagination) CanSlideWindowBack() bool {
	return CanSlideWindowBack(p.WindowStart)
}

// CanSlideWindowForward reports whether the window can slide forward
func (p Pagination) CanSlideWindowForward() bool {
	return CanSlideWindowForward(p.WindowStart, p.PageCount(), p.WindowSize)
}

// SlideWindowBack moves the window one page back. The selected page is not changed.
func (p Pagination) SlideWindowBack() Pagination {
	if p.CanSlideWindowBack() {
		p.WindowStart--
	}
	return p
}

// SlideWindowForward moves the window one page forward. The selected page is not changed.
func (p Pagination) SlideWindowForward() Pagination {
	if p.CanSlideWindowForward() {
		p.WindowStart++
	}
	return p
}

// WithTotalCount updates the total count, clamping the page into
// [1, max(pageCount, 1)] and the window start so the window stays valid
func (p Pagination) WithTotalCount(totalCount int) Pagination {
	if totalCount < 0 {
		totalCount = 0
	}
	p.TotalCount = totalCount

	maxPage := p.PageCount()
	if maxPage < 1 {
		maxPage = 1
	}
	if p.Page > maxPage {
		p.Page = maxPage
	}
	if p.Page < 1 {
		p.Page = 1
	}

	p.WindowStart = ClampWindowStart(p.WindowStart, p.PageCount(), p.WindowSize)
	return p
}

// WithPage selects the given page when it is valid and slides the window
// so that the selected page is visible
func (p Pagination) WithPage(page int) (Pagination, bool) {
	if page < 1 || page > p.PageCount() {
		return p, false
	}

	p.Page = ChangePage(page, p.Page, p.PageCount())
	if p.Page < p.WindowStart {
		p.WindowStart = p.Page
	} else if p.WindowSize > 0 && p.Page >= p.WindowStart+p.WindowSize {
		p.WindowStart = p.Page - p.WindowSize + 1
	}
	return p, true
}
