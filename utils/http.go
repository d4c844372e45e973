// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by outbound calls; generative requests can take a while.
var HTTPClient = &http.Client{
	Timeout: 60 * time.Second,
}
