package storefront

// StoreData is the storefront metadata of one game.
type StoreData struct {
	Info string
	// Tags holds decoded tag values. Entries are usually strings or
	// {"name": ...} maps, but callers must tolerate any shape.
	Tags []any
}

type appDetailsEntry struct {
	Success bool `json:"success"`
	Data    struct {
		ShortDescription string  `json:"short_description"`
		Genres           []genre `json:"genres"`
	} `json:"data"`
}

type genre struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
