package utils

import (
	"fmt"
	"time"
)

// TimeID returns a time-based id with a type prefix, used for caller-generated
// course ids
func TimeID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixMilli())
}
