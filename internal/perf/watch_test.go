package perf_test

import (
	"time"

	"github.com/combigen/combigen/internal/perf"
)

func (suite *Suite) TestStopwatch() {
	r := suite.Require()

	w := perf.StopWatch{}
	w.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(0*time.Nanosecond, w.Total)
	r.Equal(1, w.Count)
	backup := w.Total

	w.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(backup, w.Total)
	r.Equal(2, w.Count)
}
