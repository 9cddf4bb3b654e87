package domain

const (
	MinPageSize = 1
	MaxPageSize = 100
)

type PageParams struct {
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	SortField  string `json:"sort_field,omitempty"`
	Descending bool   `json:"descending,omitempty"`
}

type Page[T any] struct {
	Items        []T `json:"items"`
	PageNumber   int `json:"page_number"`
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
}

// Normalize clamps page and size into range instead of rejecting them, so
// pagination stays total for any caller input.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < MinPageSize {
		p.Size = MinPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Size
}
