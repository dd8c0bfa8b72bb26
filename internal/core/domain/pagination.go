package domain

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func (p Pagination) HasNext() bool {
	return p.Page < p.Pages
}

// Page is the list envelope every collection endpoint returns.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
