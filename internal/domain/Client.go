package domain

// Client representa uma aba da planilha (um expert/cliente)
type Client struct {
	Name string `json:"name"`
	GID  string `json:"gid"`
	Slug string `json:"slug"`
}

// RawRow é uma linha crua da planilha: números, strings ou vazio (nil)
type RawRow []any

// RawSheet é o conteúdo completo de uma aba, na ordem da planilha
type RawSheet []RawRow
