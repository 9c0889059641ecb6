package models

type AnagramMatch struct {
	Query    string   `json:"query"`
	Anagrams []string `json:"anagrams"`
}

type Stats struct {
	WordsLoaded      int `json:"wordsLoaded"`
	QueriesProcessed int `json:"queriesProcessed"`
	TimeElapsed      int `json:"timeElapsedMs"`
}

type Result struct {
	Matches []AnagramMatch `json:"matches"`
	Stats   *Stats         `json:"stats,omitempty"`
}
