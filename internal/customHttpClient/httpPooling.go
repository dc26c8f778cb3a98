package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/CampusQA/internal/config"
)

var (
	once   sync.Once
	client *http.Client
)

// GetClient returns the shared pooled client used by the llm providers.
// No request timeout is set, the caller's context bounds each call.
func GetClient() *http.Client {
	once.Do(func() {
		client = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        config.MaxIdleConns,
				MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
				IdleConnTimeout:     config.IdleConnTimeout,
			},
		}
	})
	return client
}
