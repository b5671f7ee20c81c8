package category

// DefaultCategories returns the built-in category definitions
func DefaultCategories() []Category {
	return []Category{
		{Name: "Pictures", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"}},
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".doc", ".txt", ".md", ".odt", ".rtf"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".webm"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac"}},
		{Name: "Compressed", Extensions: []string{".zip", ".tar", ".gz", ".7z", ".rar"}},
		{Name: "Executables", Extensions: []string{".exe", ".dll", ".app", ".iso", ".dep", ".rpm"}},
		{Name: "Data_and_Code", Extensions: []string{
			".tsv", ".ods", ".xls", ".xlsx", ".xml", ".csv", ".py", ".json",
			".html", ".css", ".sh", ".bat", ".js", ".ini", ".toml", ".yaml",
		}},
	}
}

// Default returns the built-in table
func Default() *Table {
	return MustTable(DefaultCategories())
}
