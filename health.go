package dbhelper

import (
	"context"
	"encoding"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

// DefaultHealthCheckTimeout is the health check timeout used when the context has no deadline.
const DefaultHealthCheckTimeout = 30 * time.Second

// HealthResponse is the response for the health check.
type HealthResponse struct {
	Status HealthStatus
	Output string
	Notes  []string
}

// HealthStatus is the status of the health check.
type HealthStatus int

// enum values for the health statuses
const (
	// StatusPass defines healthy status
	StatusPass HealthStatus = iota
	// StatusWarn defines the status when no engine could be checked.
	StatusWarn
	// StatusFail defines unhealthy result
	StatusFail
)

func (s HealthStatus) String() string {
	switch s {
	case StatusPass:
		return "Pass"
	case StatusFail:
		return "Fail"
	case StatusWarn:
		return "Warn"
	default:
		return "Unknown"
	}
}

var _ encoding.TextMarshaler = HealthStatus(0)

// MarshalText implements encoding.TextMarshaler interface.
func (s HealthStatus) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

type engineHealth struct {
	name string
	err  error
}

// HealthCheck pings all the configured engines concurrently. An engine that fails to ping sets the
// response status to fail and adds a note naming it. If the context has no deadline the DefaultHealthCheckTimeout is used.
func (h *Helper) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var cancelFunc context.CancelFunc
	if _, deadlineSet := ctx.Deadline(); !deadlineSet {
		ctx, cancelFunc = context.WithTimeout(ctx, DefaultHealthCheckTimeout)
	} else {
		ctx, cancelFunc = context.WithCancel(ctx)
	}
	defer cancelFunc()

	engines := map[string]orm.Engine{}
	for _, name := range h.engines.Names() {
		if e, _ := h.engines.Lookup(name); e != nil {
			engines[name] = e
		}
	}
	if len(engines) == 0 {
		return &HealthResponse{Status: StatusWarn, Output: "no engines configured"}, nil
	}

	wg := &sync.WaitGroup{}
	results := make(chan engineHealth, len(engines))
	for name, e := range engines {
		wg.Add(1)
		go func(name string, e orm.Engine) {
			defer wg.Done()
			results <- engineHealth{name: name, err: e.Ping(ctx)}
		}(name, e)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	resp := &HealthResponse{Status: StatusPass}
	var failed []string
lp:
	for {
		select {
		case <-ctx.Done():
			log.Errorf("HealthCheck - context deadline exceeded: %v", ctx.Err())
			return nil, ctx.Err()
		case result, ok := <-results:
			if !ok {
				break lp
			}
			if result.err != nil {
				log.Debugf("HealthCheck engine: '%s' failed: %v", result.name, result.err)
				failed = append(failed, result.name)
				resp.Notes = append(resp.Notes, fmt.Sprintf("engine '%s': %v", result.name, result.err))
			}
		}
	}
	if len(failed) > 0 {
		sort.Strings(failed)
		sort.Strings(resp.Notes)
		resp.Status = StatusFail
		resp.Output = fmt.Sprintf("%d of %d engines failed: %s", len(failed), len(engines), strings.Join(failed, ", "))
	}
	return resp, nil
}
