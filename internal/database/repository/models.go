package repository

// Page represents a pages row.
type Page struct {
	ID          string
	ScriptID    string
	DisplayName string
	Icon        *string
	SortOrder   int
}
