package load_test

import (
	"testing"
	"time"

	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pickup  = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	dropoff = time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
)

func TestNewFacility(t *testing.T) {
	t.Run("should create facility with ordered times", func(t *testing.T) {
		f, err := load.NewFacility(" Mumbai ", "Delhi", pickup, dropoff)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, "Mumbai", f.LoadingPoint())
		assert.Equal(t, "Delhi", f.UnloadingPoint())
		assert.Equal(t, pickup, f.LoadingTime())
		assert.Equal(t, dropoff, f.UnloadingTime())
	})

	t.Run("should accept equal loading and unloading times", func(t *testing.T) {
		_, err := load.NewFacility("Mumbai", "Delhi", pickup, pickup)
		require.NoError(t, err)
	})

	t.Run("should fail with inverted range", func(t *testing.T) {
		_, err := load.NewFacility("Mumbai", "Delhi", dropoff, pickup)

		require.ErrorIs(t, err, errs.ErrInvalidTemporalRange)
		assert.Contains(t, err.Error(), "is after unloading time")
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := load.NewFacility(" ", "", time.Time{}, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"loadingPoint", "unloadingPoint", "loadingTime", "unloadingTime"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var f load.Facility
		require.ErrorIs(t, f.Validate(), load.ErrFacilityIsNotConstructed)
	})
}

func TestFacility_Apply(t *testing.T) {
	base, _ := load.NewFacility("Mumbai", "Delhi", pickup, dropoff)

	t.Run("should keep unset fields", func(t *testing.T) {
		point := "Pune"

		got, err := base.Apply(load.FacilityPatch{LoadingPoint: &point})

		require.NoError(t, err)
		assert.Equal(t, "Pune", got.LoadingPoint())
		assert.Equal(t, "Delhi", got.UnloadingPoint())
		assert.Equal(t, pickup, got.LoadingTime())
		assert.Equal(t, dropoff, got.UnloadingTime())
		assert.Equal(t, "Mumbai", base.LoadingPoint(), "original must stay untouched")
	})

	t.Run("should validate single time change against the stored one", func(t *testing.T) {
		late := dropoff.Add(time.Hour)

		_, err := base.Apply(load.FacilityPatch{LoadingTime: &late})

		require.ErrorIs(t, err, errs.ErrInvalidTemporalRange)
	})

	t.Run("should report empty patch", func(t *testing.T) {
		assert.True(t, load.FacilityPatch{}.IsEmpty())
		assert.False(t, load.FacilityPatch{LoadingTime: &pickup}.IsEmpty())
	})
}
