package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/trident-energy/riskregister/pkg/domain/types"
)

func TestDate_Scan(t *testing.T) {
	t.Run("time.Time drops the clock", func(t *testing.T) {
		var d types.Date
		src := time.Date(2026, 6, 30, 15, 4, 5, 0, time.FixedZone("WAT", 3600))
		gt.NoError(t, d.Scan(src))
		gt.Value(t, d.String()).Equal("2026-06-30")
	})

	t.Run("raw bytes", func(t *testing.T) {
		var d types.Date
		gt.NoError(t, d.Scan([]byte("2026-06-30")))
		gt.Value(t, d.String()).Equal("2026-06-30")
	})

	t.Run("nil keeps the zero value", func(t *testing.T) {
		var d types.Date
		gt.NoError(t, d.Scan(nil))
		gt.Bool(t, d.IsZero()).True()
	})

	t.Run("garbage fails", func(t *testing.T) {
		var d types.Date
		gt.Value(t, d.Scan("30/06/2026")).NotNil()
	})
}

func TestDate_JSON(t *testing.T) {
	d, err := types.ParseDate("2026-06-30")
	gt.NoError(t, err).Required()

	out, err := json.Marshal(d)
	gt.NoError(t, err).Required()
	gt.Value(t, string(out)).Equal(`"2026-06-30"`)

	var back types.Date
	gt.NoError(t, json.Unmarshal(out, &back)).Required()
	gt.Value(t, back.String()).Equal(d.String())
}

func TestDate_Before(t *testing.T) {
	a := types.NewDate(2026, time.June, 29)
	b := types.NewDate(2026, time.June, 30)
	gt.Bool(t, a.Before(b)).True()
	gt.Bool(t, b.Before(a)).False()
	gt.Bool(t, a.Before(a)).False()
}
