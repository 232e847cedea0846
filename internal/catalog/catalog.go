package catalog

// Summary holds the front-page counts for the library.
type Summary struct {
	Books           int `json:"books"`
	Copies          int `json:"copies"`
	CopiesAvailable int `json:"copies_available"`
	Authors         int `json:"authors"`
	Genres          int `json:"genres"`
}
