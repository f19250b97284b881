// Package listing holds the read-side rules shared by the venue and artist
// views: grouping venues into areas, counting upcoming shows, splitting a
// show list into past and upcoming, and the comma-joined genre encoding.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"fyyur/internal/http-api/models"
)

// GenreDelimiter separates tags in the stored genres column.
const GenreDelimiter = ","

// Summary is the short form of a venue or artist used in listings and search results.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is every venue sharing one (city, state) pair.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type areaKey struct{ city, state string }

// GroupByArea groups venues by (city, state). Areas are ordered by state and
// then city using byte order; venues keep their input order within an area.
func GroupByArea(venues []models.Venue, now time.Time) []Area {
	index := make(map[areaKey]int)
	areas := make([]Area, 0)

	for _, v := range venues {
		key := areaKey{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: CountUpcoming(v.Shows, now),
		})
	}

	slices.SortStableFunc(areas, func(a, b Area) int {
		if c := cmp.Compare(a.State, b.State); c != 0 {
			return c
		}
		return cmp.Compare(a.City, b.City)
	})
	return areas
}

// CountUpcoming counts shows starting strictly after now.
func CountUpcoming(shows []models.Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if s.StartTime.After(now) {
			n++
		}
	}
	return n
}

// PartitionShows splits shows into those that started before now and the
// rest. A show starting exactly at now is upcoming.
func PartitionShows(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	past = make([]models.Show, 0)
	upcoming = make([]models.Show, 0)
	for _, s := range shows {
		if s.StartTime.Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// SplitGenres decodes the stored genres column. A missing or empty column
// yields an empty list.
func SplitGenres(genres *string) []string {
	if genres == nil || *genres == "" {
		return []string{}
	}
	return strings.Split(*genres, GenreDelimiter)
}

// JoinGenres encodes tags for storage, trimming each and dropping blanks.
func JoinGenres(genres []string) string {
	kept := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			kept = append(kept, g)
		}
	}
	return strings.Join(kept, GenreDelimiter)
}

// SummarizeVenues maps venues to summaries, keeping input order.
func SummarizeVenues(venues []models.Venue, now time.Time) []Summary {
	out := make([]Summary, 0, len(venues))
	for _, v := range venues {
		out = append(out, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: CountUpcoming(v.Shows, now)})
	}
	return out
}

// SummarizeArtists maps artists to summaries, keeping input order.
func SummarizeArtists(artists []models.Artist, now time.Time) []Summary {
	out := make([]Summary, 0, len(artists))
	for _, a := range artists {
		out = append(out, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: CountUpcoming(a.Shows, now)})
	}
	return out
}
