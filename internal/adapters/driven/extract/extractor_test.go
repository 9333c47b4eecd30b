package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
)

func page(body string) *driven.Page {
	return &driven.Page{URL: "http://x", StatusCode: 200, ContentType: "text/html; charset=utf-8", Body: []byte(body)}
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantName     string
		wantLocation string
	}{
		{
			name:         "both present",
			body:         `<html><body><h1 class="name">Ana Kovač</h1><div class="location">Zagreb</div></body></html>`,
			wantName:     "Ana Kovač",
			wantLocation: "Zagreb",
		},
		{
			name:         "text is not trimmed",
			body:         `<h1 class="name">  Ana  </h1><div class="location">
Split
</div>`,
			wantName:     "  Ana  ",
			wantLocation: "\nSplit\n",
		},
		{
			name:         "nested text is concatenated",
			body:         `<h1 class="name">Ana <span>Kovač</span></h1><div class="location">Rijeka</div>`,
			wantName:     "Ana Kovač",
			wantLocation: "Rijeka",
		},
		{
			name:         "first match wins",
			body:         `<h1 class="name">First</h1><h1 class="name">Second</h1><div class="location">A</div><div class="location">B</div>`,
			wantName:     "First",
			wantLocation: "A",
		},
		{
			name:         "location missing",
			body:         `<h1 class="name">Ana</h1>`,
			wantName:     "Ana",
			wantLocation: domain.PlaceholderLocation,
		},
		{
			name:         "name missing",
			body:         `<div class="location">Osijek</div>`,
			wantName:     domain.PlaceholderDisplayName,
			wantLocation: "Osijek",
		},
		{
			name:         "both missing",
			body:         `<html><body><p>nothing here</p></body></html>`,
			wantName:     domain.PlaceholderDisplayName,
			wantLocation: domain.PlaceholderLocation,
		},
		{
			name:         "wrong element with right class",
			body:         `<div class="name">Ana</div><span class="location">Pula</span>`,
			wantName:     domain.PlaceholderDisplayName,
			wantLocation: domain.PlaceholderLocation,
		},
		{
			name:         "empty element is present",
			body:         `<h1 class="name"></h1><div class="location"></div>`,
			wantName:     "",
			wantLocation: "",
		},
		{
			name:         "empty body",
			body:         ``,
			wantName:     domain.PlaceholderDisplayName,
			wantLocation: domain.PlaceholderLocation,
		},
		{
			name:         "not html",
			body:         `{"name": "Ana"}`,
			wantName:     domain.PlaceholderDisplayName,
			wantLocation: domain.PlaceholderLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := New(Config{}).Extract(context.Background(), page(tt.body))

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, profile.DisplayName)
			assert.Equal(t, tt.wantLocation, profile.Location)
		})
	}
}

func TestExtractor_Extract_DecodesDeclaredCharset(t *testing.T) {
	p := &driven.Page{
		ContentType: "text/html; charset=windows-1250",
		Body:        []byte("<h1 class=\"name\">Kova\xe8</h1><div class=\"location\">Zagreb</div>"),
	}

	profile, err := New(Config{}).Extract(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, "Kovač", profile.DisplayName)
}

func TestExtractor_Extract_CustomSelectors(t *testing.T) {
	e := New(Config{NameSelector: "h1.ime", LocationSelector: "div.lokacija"})

	profile, err := e.Extract(context.Background(), page(`<h1 class="ime">Ivan</h1><div class="lokacija">Zadar</div>`))

	require.NoError(t, err)
	assert.Equal(t, "Ivan", profile.DisplayName)
	assert.Equal(t, "Zadar", profile.Location)
}

func TestExtractor_Extract_NilPage(t *testing.T) {
	_, err := New(Config{}).Extract(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
