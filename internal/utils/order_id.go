package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderID returns a platform order id such as
// ORD-20261014-093012-1f3a9c2e, unique enough for ad hoc CLI entries.
func GenerateOrderID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102-150405"), suffix)
}
