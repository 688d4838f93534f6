package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Parse aplica os defaults quando o parâmetro está ausente,
// não numérico ou <= 0.
func Parse(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

type Page struct {
	StartIndex  int
	EndIndex    int
	CurrentPage int
	Limit       int
	TotalPages  int
	Next        *Params
	Previous    *Params
}

// Paginate calcula os limites da fatia e os metadados da página.
// O total deve vir da MESMA query que devolve os dados (count-then-slice).
func Paginate(p Params, total int64) Page {
	start := (p.Page - 1) * p.Limit
	end := p.Page * p.Limit

	pg := Page{
		StartIndex:  start,
		EndIndex:    end,
		CurrentPage: p.Page,
		Limit:       p.Limit,
		TotalPages:  int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}

	if int64(end) < total {
		pg.Next = &Params{Page: p.Page + 1, Limit: p.Limit}
	}
	if start > 0 {
		pg.Previous = &Params{Page: p.Page - 1, Limit: p.Limit}
	}

	return pg
}
