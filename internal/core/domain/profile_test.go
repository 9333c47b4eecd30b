package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileOutcome_Pair_Success(t *testing.T) {
	o := ProfileOutcome{
		Outcome: Success("fetched"),
		Profile: Profile{DisplayName: "Ana Anić", Location: "Zagreb"},
	}

	name, location := o.Pair()
	assert.Equal(t, "Ana Anić", name)
	assert.Equal(t, "Zagreb", location)
}

func TestProfileOutcome_Pair_Failure(t *testing.T) {
	o := ProfileOutcome{
		Outcome: Failure(CategoryNotFound, "profile not found; check the URL/code"),
		Profile: Profile{DisplayName: "ignored"},
	}

	first, second := o.Pair()
	assert.Equal(t, ErrorLabel, first)
	assert.Equal(t, "profile not found; check the URL/code", second)
}

func TestProfile_Placeholders(t *testing.T) {
	p := Profile{DisplayName: PlaceholderDisplayName, Location: "Split"}

	assert.False(t, p.HasDisplayName())
	assert.True(t, p.HasLocation())
	assert.NotEmpty(t, PlaceholderDisplayName)
	assert.NotEqual(t, PlaceholderDisplayName, PlaceholderLocation)
}
