package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadbook/internal/pkg/errs"
	"loadbook/internal/pkg/guard"
)

var ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")

// Facility describes where and when a load is picked up and dropped off.
// The loading time never follows the unloading time.
type Facility struct {
	loadingPoint   string
	unloadingPoint string
	loadingTime    time.Time
	unloadingTime  time.Time
	guard          guard.ConstructorGuard
}

// NewFacility validates the points and the temporal range.
//
// Returns:
//   - errs.ValueIsRequiredError for blank points or zero times
//   - *errs.RuleViolationError wrapping errs.ErrInvalidTemporalRange when
//     loadingTime is after unloadingTime
func NewFacility(loadingPoint string, unloadingPoint string, loadingTime time.Time, unloadingTime time.Time) (Facility, error) {
	if err := errors.Join(
		requireText("loadingPoint", loadingPoint),
		requireText("unloadingPoint", unloadingPoint),
		requireTime("loadingTime", loadingTime),
		requireTime("unloadingTime", unloadingTime),
	); err != nil {
		return Facility{}, err
	}

	if loadingTime.After(unloadingTime) {
		return Facility{}, errs.NewRuleViolationError(
			errs.ErrInvalidTemporalRange,
			fmt.Sprintf("loading time %s is after unloading time %s",
				loadingTime.Format(time.RFC3339), unloadingTime.Format(time.RFC3339)),
		)
	}

	return Facility{
		loadingPoint:   strings.TrimSpace(loadingPoint),
		unloadingPoint: strings.TrimSpace(unloadingPoint),
		loadingTime:    loadingTime,
		unloadingTime:  unloadingTime,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (f Facility) Validate() error {
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}

func (f Facility) LoadingPoint() string {
	return f.loadingPoint
}

func (f Facility) UnloadingPoint() string {
	return f.unloadingPoint
}

func (f Facility) LoadingTime() time.Time {
	return f.loadingTime
}

func (f Facility) UnloadingTime() time.Time {
	return f.unloadingTime
}

// FacilityPatch carries the facility fields of a partial update; nil fields
// keep their current value.
type FacilityPatch struct {
	LoadingPoint   *string
	UnloadingPoint *string
	LoadingTime    *time.Time
	UnloadingTime  *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p FacilityPatch) IsEmpty() bool {
	return p.LoadingPoint == nil && p.UnloadingPoint == nil && p.LoadingTime == nil && p.UnloadingTime == nil
}

// Apply merges the patch into f and re-validates the result, so a partial
// update that moves only one of the two times is still range checked.
func (f Facility) Apply(p FacilityPatch) (Facility, error) {
	loadingPoint, unloadingPoint := f.loadingPoint, f.unloadingPoint
	loadingTime, unloadingTime := f.loadingTime, f.unloadingTime

	if p.LoadingPoint != nil {
		loadingPoint = *p.LoadingPoint
	}
	if p.UnloadingPoint != nil {
		unloadingPoint = *p.UnloadingPoint
	}
	if p.LoadingTime != nil {
		loadingTime = *p.LoadingTime
	}
	if p.UnloadingTime != nil {
		unloadingTime = *p.UnloadingTime
	}

	return NewFacility(loadingPoint, unloadingPoint, loadingTime, unloadingTime)
}

func requireText(name string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireTime(name string, value time.Time) error {
	if value.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
