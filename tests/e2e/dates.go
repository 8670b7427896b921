//go:build e2e

package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// DaysAhead formats the salon-local date n days from now.
func DaysAhead(t *testing.T, tz string, n int) string {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	require.NoError(t, err)
	return time.Now().In(loc).AddDate(0, 0, n).Format(time.DateOnly)
}
