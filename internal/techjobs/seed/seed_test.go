package seed

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gartstein/techjobs/internal/techjobs/db"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newRepo(t *testing.T) *db.Repository {
	t.Helper()
	repo, err := db.NewRepository(&db.Config{
		Driver:       db.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "seed.db"),
		MaxOpenConns: 1,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(`
employers:
  - name: LaunchCode
    location: St. Louis
skills:
  - name: Go
    description: Concurrency
jobs:
  - name: Developer
    employer: LaunchCode
    skills: [Go]
`))
	require.NoError(t, err)
	require.Len(t, f.Jobs, 1)
	assert.Equal(t, []string{"Go"}, f.Jobs[0].Skills)

	_, err = Load(strings.NewReader("employers:\n  - name: X\n    city: Y\n"))
	assert.Error(t, err, "unknown keys are rejected")

	empty, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Employers)
}

func TestSeeder_RunDefaultFixtures(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	fixtures, err := Default()
	require.NoError(t, err)

	seeder := NewSeeder(repo, zaptest.NewLogger(t))
	result, err := seeder.Run(ctx, fixtures)
	require.NoError(t, err)
	assert.Equal(t, len(fixtures.Employers), result.Employers)
	assert.Equal(t, len(fixtures.Skills), result.Skills)
	assert.Equal(t, len(fixtures.Jobs), result.Jobs)

	jobs, err := repo.FindJobs(ctx, db.ColumnSkill, "kafka")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	again, err := seeder.Run(ctx, fixtures)
	require.NoError(t, err, "seeding twice is a no-op")
	assert.Zero(t, again.Employers+again.Skills+again.Jobs)
	assert.Equal(t, len(fixtures.Employers)+len(fixtures.Skills)+len(fixtures.Jobs), again.Skipped)
}

func TestSeeder_RollsBackOnError(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seeder := NewSeeder(repo, zaptest.NewLogger(t))

	_, err := seeder.Run(ctx, &Fixtures{
		Employers: []EmployerFixture{{Name: "LaunchCode", Location: "St. Louis"}},
		Jobs:      []JobFixture{{Name: "Developer", Employer: "Nobody"}},
	})
	assert.ErrorContains(t, err, `unknown employer "Nobody"`)

	employers, err := repo.ListEmployers(ctx)
	require.NoError(t, err)
	assert.Empty(t, employers, "employer insert must be rolled back")
}

func TestSeeder_ValidatesFixtures(t *testing.T) {
	repo := newRepo(t)
	seeder := NewSeeder(repo, zaptest.NewLogger(t))

	_, err := seeder.Run(context.Background(), &Fixtures{
		Skills: []SkillFixture{{Name: "Go"}},
	})
	assert.ErrorIs(t, err, e.ErrInvalidInput)
	assert.ErrorContains(t, err, "description can not be blank")
}
