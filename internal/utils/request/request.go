package request

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Request is the shared HTTP client for all source adapters. GitHub rejects
// requests without a User-Agent.
var Request = resty.New().SetTransport(&http.Transport{
	Proxy: http.ProxyFromEnvironment,
}).SetRetryCount(3).SetHeader("User-Agent", "solana-narrative-radar/1.0")
