package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/arena/internal/filter"
	"github.com/meur/arena/internal/models"
)

// region Catalog tests

func TestNew_RejectsEmptyID(t *testing.T) {
	_, err := New([]models.Team{{ID: "a", Name: "A"}, {Name: "No ID"}})
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New([]models.Team{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNew_RejectsNegativeCounts(t *testing.T) {
	_, err := New([]models.Player{{ID: "p1", Username: "x", Losses: -1}})
	assert.ErrorIs(t, err, models.ErrNegativeCount)
}

func TestNewSet_RejectsMissingStatus(t *testing.T) {
	_, err := NewSet(models.Bundle{Tournaments: []models.Tournament{{ID: "t1", Name: "Cup", Game: "FIFA 24"}}})
	assert.ErrorIs(t, err, models.ErrUnknownStatus)
}

func TestNew_EmptyCatalog(t *testing.T) {
	c, err := New[models.Tournament](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	got, err := c.Project(filter.State{Search: "cup"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalog_SnapshotIsIsolated(t *testing.T) {
	teams := []models.Team{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
	c, err := New(teams)
	require.NoError(t, err)

	teams[0].Name = "Changed"
	records := c.Records()
	records[1].Name = "Also changed"

	first, _ := c.Find("a")
	second, _ := c.Find("b")
	assert.Equal(t, "Alpha", first.Name)
	assert.Equal(t, "Beta", second.Name)
}

func TestCatalog_Find(t *testing.T) {
	c, err := New(Default().Players)
	require.NoError(t, err)

	p, ok := c.Find("p-3")
	assert.True(t, ok)
	assert.Equal(t, "SharpShooter", p.Username)

	_, ok = c.Find("missing")
	assert.False(t, ok)
}

func TestCatalog_IDsDiffer(t *testing.T) {
	a, err := New(Default().Teams)
	require.NoError(t, err)
	b, err := New(Default().Teams)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestCatalog_ProjectAndSuggest(t *testing.T) {
	c, err := New(Default().Tournaments)
	require.NoError(t, err)

	got, err := c.Project(filter.State{Status: filter.Only(string(models.StatusLive))})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t-warzone-battle", got[0].ID)

	assert.Equal(t, []string{"Mobile Legends Cup"}, c.Suggest("legnds", 3))
}

// endregion

// region Set tests

func TestNewSet_Default(t *testing.T) {
	set, err := NewSet(Default())
	require.NoError(t, err)
	assert.Equal(t, 5, set.Tournaments.Len())
	assert.Equal(t, 4, set.Players.Len())
	assert.Equal(t, 4, set.Teams.Len())
}

func TestNewSet_NormalizesSlices(t *testing.T) {
	set, err := NewSet(models.Bundle{
		Players: []models.Player{{ID: "p1", Username: "solo"}},
		Teams:   []models.Team{{ID: "t1", Name: "Squad", Game: "FIFA 24"}},
	})
	require.NoError(t, err)

	p, _ := set.Players.Find("p1")
	assert.NotNil(t, p.Games)
	assert.NotNil(t, p.Achievements)
	team, _ := set.Teams.Find("t1")
	assert.NotNil(t, team.Achievements)
}

func TestNewSet_WrapsCatalogName(t *testing.T) {
	_, err := NewSet(models.Bundle{Teams: []models.Team{{ID: "x"}, {ID: "x"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "teams")
}

func TestAssignIDs(t *testing.T) {
	b := models.Bundle{
		Tournaments: []models.Tournament{
			{Name: "Cup", Status: models.StatusLive},
			{ID: "keep", Name: "Kept", Status: models.StatusUpcoming},
		},
		Players: []models.Player{{Username: "anon"}},
		Teams:   []models.Team{{Name: "Squad"}},
	}
	AssignIDs(&b)

	assert.NotEmpty(t, b.Tournaments[0].ID)
	assert.Equal(t, "keep", b.Tournaments[1].ID)
	assert.NotEmpty(t, b.Players[0].ID)
	assert.NotEmpty(t, b.Teams[0].ID)

	_, err := NewSet(b)
	assert.NoError(t, err)
}

// endregion

// region Seed tests

func TestDefault_SeedIsValid(t *testing.T) {
	b := Default()
	for _, tournament := range b.Tournaments {
		assert.Contains(t, models.AllStatuses, tournament.Status, tournament.ID)
	}
	for _, p := range b.Players {
		assert.NotEmpty(t, p.Games, p.ID)
	}
}

// endregion
