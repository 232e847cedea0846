package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_DisplayGenre(t *testing.T) {
	tests := []struct {
		name   string
		genres []GenreRef
		want   string
	}{
		{
			name:   "no genres",
			genres: nil,
			want:   "",
		},
		{
			name:   "one genre",
			genres: []GenreRef{{Name: "Fiction"}},
			want:   "Fiction",
		},
		{
			name:   "three genres",
			genres: []GenreRef{{Name: "Fiction"}, {Name: "History"}, {Name: "Poetry"}},
			want:   "Fiction, History, Poetry",
		},
		{
			name: "more than three genres truncates to the first three",
			genres: []GenreRef{
				{Name: "Fiction"}, {Name: "History"}, {Name: "Poetry"}, {Name: "Science"},
			},
			want: "Fiction, History, Poetry",
		},
		{
			name: "attachment order preserved",
			genres: []GenreRef{
				{Name: "Poetry"}, {Name: "Fiction"}, {Name: "History"},
			},
			want: "Poetry, Fiction, History",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Book{Genres: tt.genres}
			assert.Equal(t, tt.want, b.DisplayGenre())
		})
	}
}

func TestBook_DetailURL(t *testing.T) {
	b := Book{ID: "b6f7f8f0-0000-0000-0000-000000000001"}
	assert.Equal(t, "/books/b6f7f8f0-0000-0000-0000-000000000001", b.DetailURL())
}

func TestBook_String(t *testing.T) {
	b := Book{Title: "The Dispossessed"}
	assert.Equal(t, "The Dispossessed", b.String())
}
