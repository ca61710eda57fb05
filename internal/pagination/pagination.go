package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is the query shape derived from a page/limit pair.
type Page struct {
	Skip     int
	Take     int
	LastPage int
}

// Paginate translates a 1-based page and limit into offset/count and
// computes the last page for total rows. total = 0 yields LastPage 0.
func Paginate(page, limit, total int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	lastPage := total / limit
	if total%limit != 0 {
		lastPage++
	}

	return Page{
		Skip:     (page - 1) * limit,
		Take:     limit,
		LastPage: lastPage,
	}
}
