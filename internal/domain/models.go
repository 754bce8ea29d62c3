package domain

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Item belongs to exactly one Category. Description and Price are nullable
// columns and serialize as null when unset.
type Item struct {
	ID          int64    `json:"id"`
	CategoryID  int64    `json:"category_id"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
