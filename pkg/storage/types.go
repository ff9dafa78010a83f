package storage

// Title is one row of the program-title database. The schema mirrors the
// EPG ingest sheet the station works with, so most fields are free-form
// text filled in by hand after a slot first appears.
type Title struct {
	UniqueID         string
	Title            string
	Type             string
	Genre            string
	TCIn             string // start time-of-day
	Duration         string
	SeriesID         string
	EpisodeTitle     string
	ShortDescription string
	LongDescription  string
	SeasonNumber     string
	EpisodeNo        string
	Rating           string
	SeriesImage      string
	ProgramImage     string
	IsLive           string
}

// Columns is the canonical column order used when the database is dumped
// into a spreadsheet.
func Columns() []string {
	return []string{
		"Unique ID", "Title", "Type", "Genre", "TC IN", "Duration",
		"SeriesId", "EpisodeTitle", "Short Description", "Long Description",
		"SeasonNumber", "EpisodeNo", "Rating", "Series Image",
		"Program Image", "IsLive",
	}
}

// Values renders the row in Columns order.
func (t Title) Values() []string {
	return []string{
		t.UniqueID, t.Title, t.Type, t.Genre, t.TCIn, t.Duration,
		t.SeriesID, t.EpisodeTitle, t.ShortDescription, t.LongDescription,
		t.SeasonNumber, t.EpisodeNo, t.Rating, t.SeriesImage,
		t.ProgramImage, t.IsLive,
	}
}
