package util

import (
	"fmt"
	"strings"
)

// FormatMultiError formats multierrors for logging, one error per line
func FormatMultiError(merrs []error) string {
	var msg strings.Builder
	for i := 0; i < len(merrs); i++ {
		fmt.Fprintf(&msg, "%+v\n", merrs[i])
	}
	return msg.String()
}
